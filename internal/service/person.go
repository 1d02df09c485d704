package service

import (
	"context"
	"fmt"
	"mime/multipart"

	"go.uber.org/zap"

	"github.com/haamee/haamee-api/internal/domain"
	"github.com/haamee/haamee-api/internal/repository"
)

var (
	ErrPersonNotFound         = repository.ErrPersonNotFound
	ErrPersonContactNotFound  = repository.ErrPersonContactNotFound
	ErrPersonRoleNotFound     = repository.ErrPersonRoleNotFound
	ErrPersonDocumentNotFound = repository.ErrPersonDocumentNotFound
)

// AttachmentStore is the disk half of document handling; the repository keeps
// the metadata rows.
type AttachmentStore interface {
	Save(fh *multipart.FileHeader) (string, string, error)
	Remove(path string) error
}

type PersonService struct {
	repo  *repository.PersonRepository
	store AttachmentStore
}

func NewPersonService(repo *repository.PersonRepository, store AttachmentStore) *PersonService {
	return &PersonService{
		repo:  repo,
		store: store,
	}
}

func (s *PersonService) List(ctx context.Context) ([]domain.Person, error) {
	return s.repo.List(ctx)
}

func (s *PersonService) Get(ctx context.Context, id uint) (domain.Person, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PersonService) Create(ctx context.Context, person domain.Person) (domain.Person, error) {
	return s.repo.Create(ctx, person)
}

func (s *PersonService) Update(ctx context.Context, id uint, person domain.Person) error {
	return s.repo.Update(ctx, id, person)
}

// Delete removes the person row, which cascades over contacts, roles and
// document rows, after sweeping the document files off disk. File removal is
// best-effort: a missing file never blocks the delete.
func (s *PersonService) Delete(ctx context.Context, id uint) error {
	documents, err := s.repo.ListDocuments(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.ListDocuments -> %w", err)
	}

	for _, doc := range documents {
		if err = s.store.Remove(doc.FilePath); err != nil {
			zap.L().Warn("failed to remove document file",
				zap.String("path", doc.FilePath), zap.Error(err))
		}
	}

	return s.repo.Delete(ctx, id)
}

func (s *PersonService) ListContacts(ctx context.Context, personID uint) ([]domain.PersonContact, error) {
	return s.repo.ListContacts(ctx, personID)
}

func (s *PersonService) AddContact(ctx context.Context, contact domain.PersonContact) (domain.PersonContact, error) {
	return s.repo.CreateContact(ctx, contact)
}

func (s *PersonService) RemoveContact(ctx context.Context, id uint) error {
	return s.repo.DeleteContact(ctx, id)
}

func (s *PersonService) ListRoles(ctx context.Context, personID uint) ([]domain.PersonRole, error) {
	return s.repo.ListRoles(ctx, personID)
}

func (s *PersonService) AddRole(ctx context.Context, role domain.PersonRole) (domain.PersonRole, error) {
	return s.repo.CreateRole(ctx, role)
}

func (s *PersonService) RemoveRole(ctx context.Context, id uint) error {
	return s.repo.DeleteRole(ctx, id)
}

func (s *PersonService) ListDocuments(ctx context.Context, personID uint) ([]domain.PersonDocument, error) {
	return s.repo.ListDocuments(ctx, personID)
}

// AttachDocument stores the uploaded file and records its metadata. The two
// steps are not atomic: a crash in between leaves an orphan file, never an
// orphan row.
func (s *PersonService) AttachDocument(ctx context.Context, personID uint, documentType string, fh *multipart.FileHeader) (domain.PersonDocument, error) {
	_, path, err := s.store.Save(fh)
	if err != nil {
		return domain.PersonDocument{}, fmt.Errorf("s.store.Save -> %w", err)
	}

	return s.repo.CreateDocument(ctx, domain.PersonDocument{
		PersonID:     personID,
		DocumentType: documentType,
		FileName:     fh.Filename,
		FilePath:     path,
	})
}

func (s *PersonService) RemoveDocument(ctx context.Context, id uint) error {
	document, err := s.repo.FindDocumentByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.FindDocumentByID -> %w", err)
	}

	if err = s.store.Remove(document.FilePath); err != nil {
		zap.L().Warn("failed to remove document file",
			zap.String("path", document.FilePath), zap.Error(err))
	}

	return s.repo.DeleteDocument(ctx, id)
}
