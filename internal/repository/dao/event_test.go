package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventDAO_CRUD(t *testing.T) {
	db := openTestDB(t)
	d := NewEventDAO(db)
	ctx := context.Background()

	created, err := d.Insert(ctx, Event{
		Title:     "Annual Meetup",
		Type:      "conference",
		StartDate: "1403/05/10",
		Capacity:  "200",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	err = d.Update(ctx, created.ID, Event{Title: "Annual Meetup (rescheduled)"})
	require.NoError(t, err)

	found, err := d.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Annual Meetup (rescheduled)", found.Title)
	// Full overwrite: the start date was not resent, so it is cleared.
	assert.Empty(t, found.StartDate)

	assert.ErrorIs(t, d.Update(ctx, 9999, Event{Title: "Ghost"}), ErrEventNotFound)

	require.NoError(t, d.Delete(ctx, created.ID))
	assert.ErrorIs(t, d.Delete(ctx, created.ID), ErrEventNotFound)
}

func TestEventDAO_DeleteCascadesChildren(t *testing.T) {
	db := openTestDB(t)
	d := NewEventDAO(db)
	orgDAO := NewOrganizationDAO(db)
	personDAO := NewPersonDAO(db)
	ctx := context.Background()

	org, err := orgDAO.Insert(ctx, Organization{Name: "Sponsor"})
	require.NoError(t, err)
	person, err := personDAO.Insert(ctx, Person{FirstName: "Sara"})
	require.NoError(t, err)
	event, err := d.Insert(ctx, Event{Title: "Workshop"})
	require.NoError(t, err)

	_, err = d.InsertOrgCollaborator(ctx, EventOrgCollaborator{
		EventID:          event.ID,
		OrganizationID:   org.ID,
		OrganizationName: org.Name,
	})
	require.NoError(t, err)

	_, err = d.InsertPersonCollaborator(ctx, EventPersonCollaborator{
		EventID:    event.ID,
		PersonID:   person.ID,
		PersonName: "Sara Ahmadi",
		Role:       "speaker",
	})
	require.NoError(t, err)

	_, err = d.InsertParticipant(ctx, EventParticipant{
		EventID:   event.ID,
		FirstName: "Reza",
		LastName:  "Karimi",
	})
	require.NoError(t, err)

	require.NoError(t, d.Delete(ctx, event.ID))

	orgCollabs, err := d.ListOrgCollaborators(ctx, event.ID)
	require.NoError(t, err)
	assert.Empty(t, orgCollabs)

	personCollabs, err := d.ListPersonCollaborators(ctx, event.ID)
	require.NoError(t, err)
	assert.Empty(t, personCollabs)

	participants, err := d.ListParticipants(ctx, event.ID)
	require.NoError(t, err)
	assert.Empty(t, participants)

	// The referenced organization and person rows are untouched.
	_, err = orgDAO.FindByID(ctx, org.ID)
	assert.NoError(t, err)
	_, err = personDAO.FindByID(ctx, person.ID)
	assert.NoError(t, err)
}

func TestEventDAO_CollaboratorNameIsSnapshot(t *testing.T) {
	db := openTestDB(t)
	d := NewEventDAO(db)
	orgDAO := NewOrganizationDAO(db)
	ctx := context.Background()

	org, err := orgDAO.Insert(ctx, Organization{Name: "Old Name"})
	require.NoError(t, err)
	event, err := d.Insert(ctx, Event{Title: "Workshop"})
	require.NoError(t, err)

	_, err = d.InsertOrgCollaborator(ctx, EventOrgCollaborator{
		EventID:          event.ID,
		OrganizationID:   org.ID,
		OrganizationName: org.Name,
	})
	require.NoError(t, err)

	// Renaming the organization must not rewrite the stored snapshot.
	err = orgDAO.Update(ctx, org.ID, Organization{Name: "New Name"})
	require.NoError(t, err)

	collabs, err := d.ListOrgCollaborators(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, collabs, 1)
	assert.Equal(t, "Old Name", collabs[0].OrganizationName)
}

func TestEventDAO_DeleteCollaboratorsAndParticipants(t *testing.T) {
	db := openTestDB(t)
	d := NewEventDAO(db)
	orgDAO := NewOrganizationDAO(db)
	personDAO := NewPersonDAO(db)
	ctx := context.Background()

	org, err := orgDAO.Insert(ctx, Organization{Name: "Sponsor"})
	require.NoError(t, err)
	person, err := personDAO.Insert(ctx, Person{FirstName: "Sara"})
	require.NoError(t, err)
	event, err := d.Insert(ctx, Event{Title: "Workshop"})
	require.NoError(t, err)

	orgCollab, err := d.InsertOrgCollaborator(ctx, EventOrgCollaborator{
		EventID:        event.ID,
		OrganizationID: org.ID,
	})
	require.NoError(t, err)

	personCollab, err := d.InsertPersonCollaborator(ctx, EventPersonCollaborator{
		EventID:  event.ID,
		PersonID: person.ID,
	})
	require.NoError(t, err)

	participant, err := d.InsertParticipant(ctx, EventParticipant{
		EventID:   event.ID,
		FirstName: "Reza",
	})
	require.NoError(t, err)

	require.NoError(t, d.DeleteOrgCollaborator(ctx, orgCollab.ID))
	assert.ErrorIs(t, d.DeleteOrgCollaborator(ctx, orgCollab.ID), ErrEventCollaboratorNotFound)

	require.NoError(t, d.DeletePersonCollaborator(ctx, personCollab.ID))
	assert.ErrorIs(t, d.DeletePersonCollaborator(ctx, personCollab.ID), ErrEventCollaboratorNotFound)

	require.NoError(t, d.DeleteParticipant(ctx, participant.ID))
	assert.ErrorIs(t, d.DeleteParticipant(ctx, participant.ID), ErrEventParticipantNotFound)
}
