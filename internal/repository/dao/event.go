package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrEventNotFound             = errors.New("event not found")
	ErrEventCollaboratorNotFound = errors.New("collaborator not found")
	ErrEventParticipantNotFound  = errors.New("participant not found")
)

type Event struct {
	ID          uint `gorm:"primaryKey"`
	Title       string
	Type        string
	Organizer   string
	StartDate   string
	EndDate     string
	Location    string
	Capacity    string
	Description string

	OrgCollaborators    []EventOrgCollaborator    `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	PersonCollaborators []EventPersonCollaborator `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	Participants        []EventParticipant        `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
}

type EventOrgCollaborator struct {
	ID             uint `gorm:"primaryKey"`
	EventID        uint `gorm:"index"`
	OrganizationID uint `gorm:"index"`
	// Snapshot of the organization name at link time, never resynced.
	OrganizationName string
	CreatedAt        time.Time
}

type EventPersonCollaborator struct {
	ID       uint `gorm:"primaryKey"`
	EventID  uint `gorm:"index"`
	PersonID uint `gorm:"index"`
	// Snapshot of the person name at link time, never resynced.
	PersonName string
	Role       string
	CreatedAt  time.Time
}

type EventParticipant struct {
	ID        uint `gorm:"primaryKey"`
	EventID   uint `gorm:"index"`
	FirstName string
	LastName  string
	Mobile    string
	Position  string
	CreatedAt time.Time
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Create(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) List(ctx context.Context) ([]Event, error) {
	var events []Event

	result := d.db.WithContext(ctx).Order("id DESC").Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) FindByID(ctx context.Context, id uint) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) Update(ctx context.Context, id uint, event Event) error {
	result := d.db.WithContext(ctx).Model(&Event{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title":       event.Title,
		"type":        event.Type,
		"organizer":   event.Organizer,
		"start_date":  event.StartDate,
		"end_date":    event.EndDate,
		"location":    event.Location,
		"capacity":    event.Capacity,
		"description": event.Description,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}

func (d *EventDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Event{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}

func (d *EventDAO) ListOrgCollaborators(ctx context.Context, eventID uint) ([]EventOrgCollaborator, error) {
	var collabs []EventOrgCollaborator

	result := d.db.WithContext(ctx).Where("event_id = ?", eventID).Find(&collabs)
	if result.Error != nil {
		return nil, result.Error
	}

	return collabs, nil
}

func (d *EventDAO) InsertOrgCollaborator(ctx context.Context, collab EventOrgCollaborator) (EventOrgCollaborator, error) {
	result := d.db.WithContext(ctx).Create(&collab)
	if result.Error != nil {
		return EventOrgCollaborator{}, result.Error
	}

	return collab, nil
}

func (d *EventDAO) DeleteOrgCollaborator(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&EventOrgCollaborator{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventCollaboratorNotFound
	}

	return nil
}

func (d *EventDAO) ListPersonCollaborators(ctx context.Context, eventID uint) ([]EventPersonCollaborator, error) {
	var collabs []EventPersonCollaborator

	result := d.db.WithContext(ctx).Where("event_id = ?", eventID).Find(&collabs)
	if result.Error != nil {
		return nil, result.Error
	}

	return collabs, nil
}

func (d *EventDAO) InsertPersonCollaborator(ctx context.Context, collab EventPersonCollaborator) (EventPersonCollaborator, error) {
	result := d.db.WithContext(ctx).Create(&collab)
	if result.Error != nil {
		return EventPersonCollaborator{}, result.Error
	}

	return collab, nil
}

func (d *EventDAO) DeletePersonCollaborator(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&EventPersonCollaborator{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventCollaboratorNotFound
	}

	return nil
}

func (d *EventDAO) ListParticipants(ctx context.Context, eventID uint) ([]EventParticipant, error) {
	var participants []EventParticipant

	result := d.db.WithContext(ctx).Where("event_id = ?", eventID).Find(&participants)
	if result.Error != nil {
		return nil, result.Error
	}

	return participants, nil
}

func (d *EventDAO) InsertParticipant(ctx context.Context, participant EventParticipant) (EventParticipant, error) {
	result := d.db.WithContext(ctx).Create(&participant)
	if result.Error != nil {
		return EventParticipant{}, result.Error
	}

	return participant, nil
}

func (d *EventDAO) DeleteParticipant(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&EventParticipant{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventParticipantNotFound
	}

	return nil
}
