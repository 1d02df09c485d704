package repository

import (
	"context"
	"fmt"

	"github.com/haamee/haamee-api/internal/domain"
	"github.com/haamee/haamee-api/internal/repository/dao"
)

var (
	ErrEventNotFound             = dao.ErrEventNotFound
	ErrEventCollaboratorNotFound = dao.ErrEventCollaboratorNotFound
	ErrEventParticipantNotFound  = dao.ErrEventParticipantNotFound
)

type EventDAO interface {
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	List(ctx context.Context) ([]dao.Event, error)
	FindByID(ctx context.Context, id uint) (dao.Event, error)
	Update(ctx context.Context, id uint, event dao.Event) error
	Delete(ctx context.Context, id uint) error
	ListOrgCollaborators(ctx context.Context, eventID uint) ([]dao.EventOrgCollaborator, error)
	InsertOrgCollaborator(ctx context.Context, collab dao.EventOrgCollaborator) (dao.EventOrgCollaborator, error)
	DeleteOrgCollaborator(ctx context.Context, id uint) error
	ListPersonCollaborators(ctx context.Context, eventID uint) ([]dao.EventPersonCollaborator, error)
	InsertPersonCollaborator(ctx context.Context, collab dao.EventPersonCollaborator) (dao.EventPersonCollaborator, error)
	DeletePersonCollaborator(ctx context.Context, id uint) error
	ListParticipants(ctx context.Context, eventID uint) ([]dao.EventParticipant, error)
	InsertParticipant(ctx context.Context, participant dao.EventParticipant) (dao.EventParticipant, error)
	DeleteParticipant(ctx context.Context, id uint) error
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *EventRepository) List(ctx context.Context) ([]domain.Event, error) {
	events, err := r.dao.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	results := make([]domain.Event, len(events))
	for i, event := range events {
		results[i] = r.daoToDomain(event)
	}

	return results, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (domain.Event, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EventRepository) Update(ctx context.Context, id uint, event domain.Event) error {
	if err := r.dao.Update(ctx, id, r.domainToDao(event)); err != nil {
		return fmt.Errorf("r.dao.Update -> %w", err)
	}

	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *EventRepository) ListOrgCollaborators(ctx context.Context, eventID uint) ([]domain.EventOrgCollaborator, error) {
	collabs, err := r.dao.ListOrgCollaborators(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListOrgCollaborators -> %w", err)
	}

	results := make([]domain.EventOrgCollaborator, len(collabs))
	for i, collab := range collabs {
		results[i] = r.orgCollabDaoToDomain(collab)
	}

	return results, nil
}

func (r *EventRepository) CreateOrgCollaborator(ctx context.Context, collab domain.EventOrgCollaborator) (domain.EventOrgCollaborator, error) {
	created, err := r.dao.InsertOrgCollaborator(ctx, dao.EventOrgCollaborator{
		EventID:          collab.EventID,
		OrganizationID:   collab.OrganizationID,
		OrganizationName: collab.OrganizationName,
	})
	if err != nil {
		return domain.EventOrgCollaborator{}, fmt.Errorf("r.dao.InsertOrgCollaborator -> %w", err)
	}

	return r.orgCollabDaoToDomain(created), nil
}

func (r *EventRepository) DeleteOrgCollaborator(ctx context.Context, id uint) error {
	if err := r.dao.DeleteOrgCollaborator(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteOrgCollaborator -> %w", err)
	}

	return nil
}

func (r *EventRepository) ListPersonCollaborators(ctx context.Context, eventID uint) ([]domain.EventPersonCollaborator, error) {
	collabs, err := r.dao.ListPersonCollaborators(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListPersonCollaborators -> %w", err)
	}

	results := make([]domain.EventPersonCollaborator, len(collabs))
	for i, collab := range collabs {
		results[i] = r.personCollabDaoToDomain(collab)
	}

	return results, nil
}

func (r *EventRepository) CreatePersonCollaborator(ctx context.Context, collab domain.EventPersonCollaborator) (domain.EventPersonCollaborator, error) {
	created, err := r.dao.InsertPersonCollaborator(ctx, dao.EventPersonCollaborator{
		EventID:    collab.EventID,
		PersonID:   collab.PersonID,
		PersonName: collab.PersonName,
		Role:       collab.Role,
	})
	if err != nil {
		return domain.EventPersonCollaborator{}, fmt.Errorf("r.dao.InsertPersonCollaborator -> %w", err)
	}

	return r.personCollabDaoToDomain(created), nil
}

func (r *EventRepository) DeletePersonCollaborator(ctx context.Context, id uint) error {
	if err := r.dao.DeletePersonCollaborator(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeletePersonCollaborator -> %w", err)
	}

	return nil
}

func (r *EventRepository) ListParticipants(ctx context.Context, eventID uint) ([]domain.EventParticipant, error) {
	participants, err := r.dao.ListParticipants(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListParticipants -> %w", err)
	}

	results := make([]domain.EventParticipant, len(participants))
	for i, participant := range participants {
		results[i] = r.participantDaoToDomain(participant)
	}

	return results, nil
}

func (r *EventRepository) CreateParticipant(ctx context.Context, participant domain.EventParticipant) (domain.EventParticipant, error) {
	created, err := r.dao.InsertParticipant(ctx, dao.EventParticipant{
		EventID:   participant.EventID,
		FirstName: participant.FirstName,
		LastName:  participant.LastName,
		Mobile:    participant.Mobile,
		Position:  participant.Position,
	})
	if err != nil {
		return domain.EventParticipant{}, fmt.Errorf("r.dao.InsertParticipant -> %w", err)
	}

	return r.participantDaoToDomain(created), nil
}

func (r *EventRepository) DeleteParticipant(ctx context.Context, id uint) error {
	if err := r.dao.DeleteParticipant(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteParticipant -> %w", err)
	}

	return nil
}

func (r *EventRepository) domainToDao(event domain.Event) dao.Event {
	return dao.Event{
		ID:          event.ID,
		Title:       event.Title,
		Type:        event.Type,
		Organizer:   event.Organizer,
		StartDate:   event.StartDate,
		EndDate:     event.EndDate,
		Location:    event.Location,
		Capacity:    event.Capacity,
		Description: event.Description,
	}
}

func (r *EventRepository) daoToDomain(event dao.Event) domain.Event {
	return domain.Event{
		ID:          event.ID,
		Title:       event.Title,
		Type:        event.Type,
		Organizer:   event.Organizer,
		StartDate:   event.StartDate,
		EndDate:     event.EndDate,
		Location:    event.Location,
		Capacity:    event.Capacity,
		Description: event.Description,
		CreatedAt:   event.CreatedAt,
	}
}

func (r *EventRepository) orgCollabDaoToDomain(collab dao.EventOrgCollaborator) domain.EventOrgCollaborator {
	return domain.EventOrgCollaborator{
		ID:               collab.ID,
		EventID:          collab.EventID,
		OrganizationID:   collab.OrganizationID,
		OrganizationName: collab.OrganizationName,
		CreatedAt:        collab.CreatedAt,
	}
}

func (r *EventRepository) personCollabDaoToDomain(collab dao.EventPersonCollaborator) domain.EventPersonCollaborator {
	return domain.EventPersonCollaborator{
		ID:         collab.ID,
		EventID:    collab.EventID,
		PersonID:   collab.PersonID,
		PersonName: collab.PersonName,
		Role:       collab.Role,
		CreatedAt:  collab.CreatedAt,
	}
}

func (r *EventRepository) participantDaoToDomain(participant dao.EventParticipant) domain.EventParticipant {
	return domain.EventParticipant{
		ID:        participant.ID,
		EventID:   participant.EventID,
		FirstName: participant.FirstName,
		LastName:  participant.LastName,
		Mobile:    participant.Mobile,
		Position:  participant.Position,
		CreatedAt: participant.CreatedAt,
	}
}
