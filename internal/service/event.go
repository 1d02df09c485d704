package service

import (
	"context"

	"github.com/haamee/haamee-api/internal/domain"
	"github.com/haamee/haamee-api/internal/repository"
)

var (
	ErrEventNotFound             = repository.ErrEventNotFound
	ErrEventCollaboratorNotFound = repository.ErrEventCollaboratorNotFound
	ErrEventParticipantNotFound  = repository.ErrEventParticipantNotFound
)

type EventService struct {
	repo *repository.EventRepository
}

func NewEventService(repo *repository.EventRepository) *EventService {
	return &EventService{
		repo: repo,
	}
}

func (s *EventService) List(ctx context.Context) ([]domain.Event, error) {
	return s.repo.List(ctx)
}

func (s *EventService) Get(ctx context.Context, id uint) (domain.Event, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EventService) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	return s.repo.Create(ctx, event)
}

func (s *EventService) Update(ctx context.Context, id uint, event domain.Event) error {
	return s.repo.Update(ctx, id, event)
}

func (s *EventService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *EventService) ListOrgCollaborators(ctx context.Context, eventID uint) ([]domain.EventOrgCollaborator, error) {
	return s.repo.ListOrgCollaborators(ctx, eventID)
}

func (s *EventService) AddOrgCollaborator(ctx context.Context, collab domain.EventOrgCollaborator) (domain.EventOrgCollaborator, error) {
	return s.repo.CreateOrgCollaborator(ctx, collab)
}

func (s *EventService) RemoveOrgCollaborator(ctx context.Context, id uint) error {
	return s.repo.DeleteOrgCollaborator(ctx, id)
}

func (s *EventService) ListPersonCollaborators(ctx context.Context, eventID uint) ([]domain.EventPersonCollaborator, error) {
	return s.repo.ListPersonCollaborators(ctx, eventID)
}

func (s *EventService) AddPersonCollaborator(ctx context.Context, collab domain.EventPersonCollaborator) (domain.EventPersonCollaborator, error) {
	return s.repo.CreatePersonCollaborator(ctx, collab)
}

func (s *EventService) RemovePersonCollaborator(ctx context.Context, id uint) error {
	return s.repo.DeletePersonCollaborator(ctx, id)
}

func (s *EventService) ListParticipants(ctx context.Context, eventID uint) ([]domain.EventParticipant, error) {
	return s.repo.ListParticipants(ctx, eventID)
}

func (s *EventService) AddParticipant(ctx context.Context, participant domain.EventParticipant) (domain.EventParticipant, error) {
	return s.repo.CreateParticipant(ctx, participant)
}

func (s *EventService) RemoveParticipant(ctx context.Context, id uint) error {
	return s.repo.DeleteParticipant(ctx, id)
}
