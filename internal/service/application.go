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
	ErrApplicationNotFound         = repository.ErrApplicationNotFound
	ErrApplicationDocumentNotFound = repository.ErrApplicationDocumentNotFound
)

type ApplicationService struct {
	repo  *repository.ApplicationRepository
	store AttachmentStore
}

func NewApplicationService(repo *repository.ApplicationRepository, store AttachmentStore) *ApplicationService {
	return &ApplicationService{
		repo:  repo,
		store: store,
	}
}

func (s *ApplicationService) List(ctx context.Context) ([]domain.Application, error) {
	return s.repo.List(ctx)
}

func (s *ApplicationService) Get(ctx context.Context, id uint) (domain.Application, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ApplicationService) Create(ctx context.Context, application domain.Application) (domain.Application, error) {
	return s.repo.Create(ctx, application)
}

func (s *ApplicationService) Update(ctx context.Context, id uint, application domain.Application) error {
	return s.repo.Update(ctx, id, application)
}

func (s *ApplicationService) Delete(ctx context.Context, id uint) error {
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

func (s *ApplicationService) ListDocuments(ctx context.Context, applicationID uint) ([]domain.ApplicationDocument, error) {
	return s.repo.ListDocuments(ctx, applicationID)
}

func (s *ApplicationService) AttachDocument(ctx context.Context, applicationID uint, documentType string, fh *multipart.FileHeader) (domain.ApplicationDocument, error) {
	_, path, err := s.store.Save(fh)
	if err != nil {
		return domain.ApplicationDocument{}, fmt.Errorf("s.store.Save -> %w", err)
	}

	return s.repo.CreateDocument(ctx, domain.ApplicationDocument{
		ApplicationID: applicationID,
		DocumentType:  documentType,
		FileName:      fh.Filename,
		FilePath:      path,
	})
}

func (s *ApplicationService) RemoveDocument(ctx context.Context, id uint) error {
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
