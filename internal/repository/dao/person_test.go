package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonDAO_InsertWithChildren(t *testing.T) {
	db := openTestDB(t)
	d := NewPersonDAO(db)
	ctx := context.Background()

	created, err := d.Insert(ctx, Person{
		NationalCode: "0012345678",
		FirstName:    "Sara",
		LastName:     "Ahmadi",
		Contacts: []PersonContact{
			{ContactType: "mobile", ContactValue: "09120000001"},
			{ContactType: "email", ContactValue: "sara@example.com"},
		},
		Roles: []PersonRole{
			{RoleTitle: "Researcher", Organization: "Institute"},
		},
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	contacts, err := d.ListContacts(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, created.ID, contacts[0].PersonID)

	roles, err := d.ListRoles(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.Equal(t, "Researcher", roles[0].RoleTitle)
}

func TestPersonDAO_ListOrdersNewestFirst(t *testing.T) {
	db := openTestDB(t)
	d := NewPersonDAO(db)
	ctx := context.Background()

	first, err := d.Insert(ctx, Person{FirstName: "First"})
	require.NoError(t, err)
	second, err := d.Insert(ctx, Person{FirstName: "Second"})
	require.NoError(t, err)

	persons, err := d.List(ctx)
	require.NoError(t, err)
	require.Len(t, persons, 2)
	assert.Equal(t, second.ID, persons[0].ID)
	assert.Equal(t, first.ID, persons[1].ID)
}

func TestPersonDAO_UpdateOverwritesZeroValues(t *testing.T) {
	db := openTestDB(t)
	d := NewPersonDAO(db)
	ctx := context.Background()

	created, err := d.Insert(ctx, Person{
		FirstName:               "Sara",
		Notes:                   "old notes",
		OrganizationID:          7,
		ChangeFieldToHumanities: true,
	})
	require.NoError(t, err)

	// An update with empty fields must clear them, not keep the old values.
	err = d.Update(ctx, created.ID, Person{FirstName: "Sara"})
	require.NoError(t, err)

	found, err := d.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sara", found.FirstName)
	assert.Empty(t, found.Notes)
	assert.Zero(t, found.OrganizationID)
	assert.False(t, found.ChangeFieldToHumanities)
}

func TestPersonDAO_UpdateMissingID(t *testing.T) {
	db := openTestDB(t)
	d := NewPersonDAO(db)
	ctx := context.Background()

	err := d.Update(ctx, 9999, Person{FirstName: "Ghost"})
	assert.ErrorIs(t, err, ErrPersonNotFound)

	// The failed update must not have created a row.
	persons, err := d.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, persons)
}

func TestPersonDAO_DeleteCascades(t *testing.T) {
	db := openTestDB(t)
	d := NewPersonDAO(db)
	ctx := context.Background()

	created, err := d.Insert(ctx, Person{
		FirstName: "Sara",
		Contacts: []PersonContact{
			{ContactType: "mobile", ContactValue: "09120000001"},
		},
		Roles: []PersonRole{
			{RoleTitle: "Advisor"},
			{RoleTitle: "Reviewer"},
		},
	})
	require.NoError(t, err)

	_, err = d.InsertDocument(ctx, PersonDocument{
		PersonID:     created.ID,
		DocumentType: "id-card",
		FileName:     "card.pdf",
		FilePath:     "uploads/123-abc.pdf",
	})
	require.NoError(t, err)

	require.NoError(t, d.Delete(ctx, created.ID))

	_, err = d.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrPersonNotFound)

	contacts, err := d.ListContacts(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, contacts)

	roles, err := d.ListRoles(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, roles)

	documents, err := d.ListDocuments(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, documents)
}

func TestPersonDAO_DeleteMissingID(t *testing.T) {
	db := openTestDB(t)
	d := NewPersonDAO(db)

	err := d.Delete(context.Background(), 424242)
	assert.ErrorIs(t, err, ErrPersonNotFound)
}

func TestPersonDAO_WeakOrganizationReferenceSurvivesOrgDelete(t *testing.T) {
	db := openTestDB(t)
	personDAO := NewPersonDAO(db)
	orgDAO := NewOrganizationDAO(db)
	ctx := context.Background()

	org, err := orgDAO.Insert(ctx, Organization{Name: "Sponsor"})
	require.NoError(t, err)

	person, err := personDAO.Insert(ctx, Person{FirstName: "Sara", OrganizationID: org.ID})
	require.NoError(t, err)

	require.NoError(t, orgDAO.Delete(ctx, org.ID))

	// The person keeps the dangling id.
	found, err := personDAO.FindByID(ctx, person.ID)
	require.NoError(t, err)
	assert.Equal(t, org.ID, found.OrganizationID)
}

func TestPersonDAO_Documents(t *testing.T) {
	db := openTestDB(t)
	d := NewPersonDAO(db)
	ctx := context.Background()

	person, err := d.Insert(ctx, Person{FirstName: "Sara"})
	require.NoError(t, err)

	document, err := d.InsertDocument(ctx, PersonDocument{
		PersonID:     person.ID,
		DocumentType: "certificate",
		FileName:     "cert.pdf",
		FilePath:     "uploads/456-def.pdf",
	})
	require.NoError(t, err)
	assert.NotZero(t, document.ID)
	assert.False(t, document.UploadDate.IsZero())

	found, err := d.FindDocumentByID(ctx, document.ID)
	require.NoError(t, err)
	assert.Equal(t, "uploads/456-def.pdf", found.FilePath)

	require.NoError(t, d.DeleteDocument(ctx, document.ID))
	err = d.DeleteDocument(ctx, document.ID)
	assert.ErrorIs(t, err, ErrPersonDocumentNotFound)
}

func TestPersonDAO_ContactsAndRoles(t *testing.T) {
	db := openTestDB(t)
	d := NewPersonDAO(db)
	ctx := context.Background()

	person, err := d.Insert(ctx, Person{FirstName: "Sara"})
	require.NoError(t, err)

	contact, err := d.InsertContact(ctx, PersonContact{
		PersonID:     person.ID,
		ContactType:  "telegram",
		ContactValue: "@sara",
	})
	require.NoError(t, err)

	role, err := d.InsertRole(ctx, PersonRole{
		PersonID:  person.ID,
		RoleTitle: "Mentor",
		StartDate: "1402/01/01",
	})
	require.NoError(t, err)

	require.NoError(t, d.DeleteContact(ctx, contact.ID))
	assert.ErrorIs(t, d.DeleteContact(ctx, contact.ID), ErrPersonContactNotFound)

	require.NoError(t, d.DeleteRole(ctx, role.ID))
	assert.ErrorIs(t, d.DeleteRole(ctx, role.ID), ErrPersonRoleNotFound)
}
