package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrganizationDAO_CRUD(t *testing.T) {
	db := openTestDB(t)
	d := NewOrganizationDAO(db)
	ctx := context.Background()

	created, err := d.Insert(ctx, Organization{
		Name:       "Haamee Foundation",
		Type:       "charity",
		NationalID: "10101234567",
		City:       "Tehran",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	older, err := d.Insert(ctx, Organization{Name: "Second Org"})
	require.NoError(t, err)

	orgs, err := d.List(ctx)
	require.NoError(t, err)
	require.Len(t, orgs, 2)
	assert.Equal(t, older.ID, orgs[0].ID)

	err = d.Update(ctx, created.ID, Organization{Name: "Haamee Foundation", City: "Shiraz"})
	require.NoError(t, err)

	found, err := d.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shiraz", found.City)
	assert.Empty(t, found.NationalID)

	assert.ErrorIs(t, d.Update(ctx, 9999, Organization{Name: "Ghost"}), ErrOrganizationNotFound)

	require.NoError(t, d.Delete(ctx, created.ID))
	assert.ErrorIs(t, d.Delete(ctx, created.ID), ErrOrganizationNotFound)
}

func TestOrganizationDAO_DeleteCascadesEventCollaborations(t *testing.T) {
	db := openTestDB(t)
	d := NewOrganizationDAO(db)
	eventDAO := NewEventDAO(db)
	ctx := context.Background()

	org, err := d.Insert(ctx, Organization{Name: "Sponsor"})
	require.NoError(t, err)
	event, err := eventDAO.Insert(ctx, Event{Title: "Workshop"})
	require.NoError(t, err)

	_, err = eventDAO.InsertOrgCollaborator(ctx, EventOrgCollaborator{
		EventID:          event.ID,
		OrganizationID:   org.ID,
		OrganizationName: org.Name,
	})
	require.NoError(t, err)

	require.NoError(t, d.Delete(ctx, org.ID))

	collabs, err := eventDAO.ListOrgCollaborators(ctx, event.ID)
	require.NoError(t, err)
	assert.Empty(t, collabs)

	// The event itself is untouched.
	_, err = eventDAO.FindByID(ctx, event.ID)
	assert.NoError(t, err)
}
