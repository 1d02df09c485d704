package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haamee/haamee-api/internal/domain"
	"github.com/haamee/haamee-api/internal/repository"
	"github.com/haamee/haamee-api/internal/repository/dao"
)

func TestPersonService_DeleteSweepsDocumentFiles(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewPersonRepository(dao.NewPersonDAO(db))
	store := &fakeStore{}
	svc := NewPersonService(repo, store)
	ctx := context.Background()

	person, err := svc.Create(ctx, domain.Person{FirstName: "Sara"})
	require.NoError(t, err)

	_, err = repo.CreateDocument(ctx, domain.PersonDocument{
		PersonID: person.ID,
		FileName: "a.pdf",
		FilePath: "uploads/a.pdf",
	})
	require.NoError(t, err)
	_, err = repo.CreateDocument(ctx, domain.PersonDocument{
		PersonID: person.ID,
		FileName: "b.pdf",
		FilePath: "uploads/b.pdf",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, person.ID))

	assert.ElementsMatch(t, []string{"uploads/a.pdf", "uploads/b.pdf"}, store.removed)

	_, err = svc.Get(ctx, person.ID)
	assert.ErrorIs(t, err, ErrPersonNotFound)
}

func TestPersonService_RemoveDocumentDeletesFileThenRow(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewPersonRepository(dao.NewPersonDAO(db))
	store := &fakeStore{}
	svc := NewPersonService(repo, store)
	ctx := context.Background()

	person, err := svc.Create(ctx, domain.Person{FirstName: "Sara"})
	require.NoError(t, err)

	document, err := repo.CreateDocument(ctx, domain.PersonDocument{
		PersonID: person.ID,
		FileName: "a.pdf",
		FilePath: "uploads/a.pdf",
	})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveDocument(ctx, document.ID))
	assert.Equal(t, []string{"uploads/a.pdf"}, store.removed)

	// A second delete fails on the missing row.
	err = svc.RemoveDocument(ctx, document.ID)
	assert.ErrorIs(t, err, ErrPersonDocumentNotFound)
}

func TestPersonService_CreateWithChildrenIsAtomic(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewPersonRepository(dao.NewPersonDAO(db))
	svc := NewPersonService(repo, &fakeStore{})
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.Person{
		FirstName: "Sara",
		Contacts: []domain.PersonContact{
			{ContactType: "mobile", ContactValue: "09120000001"},
		},
		Roles: []domain.PersonRole{
			{RoleTitle: "Advisor"},
		},
	})
	require.NoError(t, err)

	contacts, err := svc.ListContacts(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, contacts, 1)

	roles, err := svc.ListRoles(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, roles, 1)
}

func TestAuthService_Login(t *testing.T) {
	svc, err := NewAuthService("admin", "123456")
	require.NoError(t, err)
	ctx := context.Background()

	admin, err := svc.Login(ctx, "admin", "123456")
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Username)

	_, err = svc.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, ErrWrongCredentials)

	_, err = svc.Login(ctx, "someone", "123456")
	assert.ErrorIs(t, err, ErrWrongCredentials)
}
