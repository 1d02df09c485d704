package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrPersonNotFound         = errors.New("person not found")
	ErrPersonContactNotFound  = errors.New("contact not found")
	ErrPersonRoleNotFound     = errors.New("role not found")
	ErrPersonDocumentNotFound = errors.New("document not found")
)

type Person struct {
	ID           uint `gorm:"primaryKey"`
	NationalCode string
	FirstName    string
	LastName     string
	Gender       string
	BirthDate    string
	Mobile       string
	Email        string
	City         string
	Country      string
	Education    string
	Job          string
	// Weak reference, deliberately no constraint: deleting the organization
	// must not touch this row.
	OrganizationID          uint
	ChangeFieldToHumanities bool
	Notes                   string

	Contacts  []PersonContact  `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE"`
	Roles     []PersonRole     `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE"`
	Documents []PersonDocument `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE"`

	EventCollaborations []EventPersonCollaborator `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
}

type PersonContact struct {
	ID           uint `gorm:"primaryKey"`
	PersonID     uint `gorm:"index"`
	ContactType  string
	ContactValue string
	CreatedAt    time.Time
}

type PersonRole struct {
	ID           uint `gorm:"primaryKey"`
	PersonID     uint `gorm:"index"`
	RoleTitle    string
	Organization string
	StartDate    string
	EndDate      string
	CreatedAt    time.Time
}

type PersonDocument struct {
	ID           uint `gorm:"primaryKey"`
	PersonID     uint `gorm:"index"`
	DocumentType string
	FileName     string
	FilePath     string
	UploadDate   time.Time `gorm:"autoCreateTime"`
}

type PersonDAO struct {
	db *gorm.DB
}

func NewPersonDAO(db *gorm.DB) *PersonDAO {
	return &PersonDAO{
		db: db,
	}
}

// Insert creates the person together with any nested contacts and roles in a
// single transaction, so a parent row can never appear with half its children.
func (d *PersonDAO) Insert(ctx context.Context, person Person) (Person, error) {
	result := d.db.WithContext(ctx).Create(&person)
	if result.Error != nil {
		return Person{}, result.Error
	}

	return person, nil
}

func (d *PersonDAO) List(ctx context.Context) ([]Person, error) {
	var persons []Person

	result := d.db.WithContext(ctx).Order("id DESC").Find(&persons)
	if result.Error != nil {
		return nil, result.Error
	}

	return persons, nil
}

func (d *PersonDAO) FindByID(ctx context.Context, id uint) (Person, error) {
	var person Person

	result := d.db.WithContext(ctx).First(&person, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Person{}, ErrPersonNotFound
		}

		return Person{}, result.Error
	}

	return person, nil
}

// Update overwrites every mutable column, zero values included. A missing row
// is reported as ErrPersonNotFound instead of silently succeeding.
func (d *PersonDAO) Update(ctx context.Context, id uint, person Person) error {
	result := d.db.WithContext(ctx).Model(&Person{}).Where("id = ?", id).Updates(map[string]interface{}{
		"national_code":              person.NationalCode,
		"first_name":                 person.FirstName,
		"last_name":                  person.LastName,
		"gender":                     person.Gender,
		"birth_date":                 person.BirthDate,
		"mobile":                     person.Mobile,
		"email":                      person.Email,
		"city":                       person.City,
		"country":                    person.Country,
		"education":                  person.Education,
		"job":                        person.Job,
		"organization_id":            person.OrganizationID,
		"change_field_to_humanities": person.ChangeFieldToHumanities,
		"notes":                      person.Notes,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPersonNotFound
	}

	return nil
}

func (d *PersonDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Person{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPersonNotFound
	}

	return nil
}

func (d *PersonDAO) ListContacts(ctx context.Context, personID uint) ([]PersonContact, error) {
	var contacts []PersonContact

	result := d.db.WithContext(ctx).Where("person_id = ?", personID).Find(&contacts)
	if result.Error != nil {
		return nil, result.Error
	}

	return contacts, nil
}

func (d *PersonDAO) InsertContact(ctx context.Context, contact PersonContact) (PersonContact, error) {
	result := d.db.WithContext(ctx).Create(&contact)
	if result.Error != nil {
		return PersonContact{}, result.Error
	}

	return contact, nil
}

func (d *PersonDAO) DeleteContact(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&PersonContact{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPersonContactNotFound
	}

	return nil
}

func (d *PersonDAO) ListRoles(ctx context.Context, personID uint) ([]PersonRole, error) {
	var roles []PersonRole

	result := d.db.WithContext(ctx).Where("person_id = ?", personID).Find(&roles)
	if result.Error != nil {
		return nil, result.Error
	}

	return roles, nil
}

func (d *PersonDAO) InsertRole(ctx context.Context, role PersonRole) (PersonRole, error) {
	result := d.db.WithContext(ctx).Create(&role)
	if result.Error != nil {
		return PersonRole{}, result.Error
	}

	return role, nil
}

func (d *PersonDAO) DeleteRole(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&PersonRole{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPersonRoleNotFound
	}

	return nil
}

func (d *PersonDAO) ListDocuments(ctx context.Context, personID uint) ([]PersonDocument, error) {
	var documents []PersonDocument

	result := d.db.WithContext(ctx).Where("person_id = ?", personID).Find(&documents)
	if result.Error != nil {
		return nil, result.Error
	}

	return documents, nil
}

func (d *PersonDAO) InsertDocument(ctx context.Context, document PersonDocument) (PersonDocument, error) {
	result := d.db.WithContext(ctx).Create(&document)
	if result.Error != nil {
		return PersonDocument{}, result.Error
	}

	return document, nil
}

func (d *PersonDAO) FindDocumentByID(ctx context.Context, id uint) (PersonDocument, error) {
	var document PersonDocument

	result := d.db.WithContext(ctx).First(&document, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return PersonDocument{}, ErrPersonDocumentNotFound
		}

		return PersonDocument{}, result.Error
	}

	return document, nil
}

func (d *PersonDAO) DeleteDocument(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&PersonDocument{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPersonDocumentNotFound
	}

	return nil
}
