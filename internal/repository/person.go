package repository

import (
	"context"
	"fmt"

	"github.com/haamee/haamee-api/internal/domain"
	"github.com/haamee/haamee-api/internal/repository/dao"
)

var (
	ErrPersonNotFound         = dao.ErrPersonNotFound
	ErrPersonContactNotFound  = dao.ErrPersonContactNotFound
	ErrPersonRoleNotFound     = dao.ErrPersonRoleNotFound
	ErrPersonDocumentNotFound = dao.ErrPersonDocumentNotFound
)

type PersonDAO interface {
	Insert(ctx context.Context, person dao.Person) (dao.Person, error)
	List(ctx context.Context) ([]dao.Person, error)
	FindByID(ctx context.Context, id uint) (dao.Person, error)
	Update(ctx context.Context, id uint, person dao.Person) error
	Delete(ctx context.Context, id uint) error
	ListContacts(ctx context.Context, personID uint) ([]dao.PersonContact, error)
	InsertContact(ctx context.Context, contact dao.PersonContact) (dao.PersonContact, error)
	DeleteContact(ctx context.Context, id uint) error
	ListRoles(ctx context.Context, personID uint) ([]dao.PersonRole, error)
	InsertRole(ctx context.Context, role dao.PersonRole) (dao.PersonRole, error)
	DeleteRole(ctx context.Context, id uint) error
	ListDocuments(ctx context.Context, personID uint) ([]dao.PersonDocument, error)
	InsertDocument(ctx context.Context, document dao.PersonDocument) (dao.PersonDocument, error)
	FindDocumentByID(ctx context.Context, id uint) (dao.PersonDocument, error)
	DeleteDocument(ctx context.Context, id uint) error
}

type PersonRepository struct {
	dao PersonDAO
}

func NewPersonRepository(dao PersonDAO) *PersonRepository {
	return &PersonRepository{
		dao: dao,
	}
}

func (r *PersonRepository) Create(ctx context.Context, person domain.Person) (domain.Person, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(person))
	if err != nil {
		return domain.Person{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *PersonRepository) List(ctx context.Context) ([]domain.Person, error) {
	persons, err := r.dao.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	results := make([]domain.Person, len(persons))
	for i, p := range persons {
		results[i] = r.daoToDomain(p)
	}

	return results, nil
}

func (r *PersonRepository) FindByID(ctx context.Context, id uint) (domain.Person, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Person{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *PersonRepository) Update(ctx context.Context, id uint, person domain.Person) error {
	if err := r.dao.Update(ctx, id, r.domainToDao(person)); err != nil {
		return fmt.Errorf("r.dao.Update -> %w", err)
	}

	return nil
}

func (r *PersonRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *PersonRepository) ListContacts(ctx context.Context, personID uint) ([]domain.PersonContact, error) {
	contacts, err := r.dao.ListContacts(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListContacts -> %w", err)
	}

	results := make([]domain.PersonContact, len(contacts))
	for i, c := range contacts {
		results[i] = r.contactDaoToDomain(c)
	}

	return results, nil
}

func (r *PersonRepository) CreateContact(ctx context.Context, contact domain.PersonContact) (domain.PersonContact, error) {
	created, err := r.dao.InsertContact(ctx, dao.PersonContact{
		PersonID:     contact.PersonID,
		ContactType:  contact.ContactType,
		ContactValue: contact.ContactValue,
	})
	if err != nil {
		return domain.PersonContact{}, fmt.Errorf("r.dao.InsertContact -> %w", err)
	}

	return r.contactDaoToDomain(created), nil
}

func (r *PersonRepository) DeleteContact(ctx context.Context, id uint) error {
	if err := r.dao.DeleteContact(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteContact -> %w", err)
	}

	return nil
}

func (r *PersonRepository) ListRoles(ctx context.Context, personID uint) ([]domain.PersonRole, error) {
	roles, err := r.dao.ListRoles(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListRoles -> %w", err)
	}

	results := make([]domain.PersonRole, len(roles))
	for i, role := range roles {
		results[i] = r.roleDaoToDomain(role)
	}

	return results, nil
}

func (r *PersonRepository) CreateRole(ctx context.Context, role domain.PersonRole) (domain.PersonRole, error) {
	created, err := r.dao.InsertRole(ctx, dao.PersonRole{
		PersonID:     role.PersonID,
		RoleTitle:    role.RoleTitle,
		Organization: role.Organization,
		StartDate:    role.StartDate,
		EndDate:      role.EndDate,
	})
	if err != nil {
		return domain.PersonRole{}, fmt.Errorf("r.dao.InsertRole -> %w", err)
	}

	return r.roleDaoToDomain(created), nil
}

func (r *PersonRepository) DeleteRole(ctx context.Context, id uint) error {
	if err := r.dao.DeleteRole(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteRole -> %w", err)
	}

	return nil
}

func (r *PersonRepository) ListDocuments(ctx context.Context, personID uint) ([]domain.PersonDocument, error) {
	documents, err := r.dao.ListDocuments(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListDocuments -> %w", err)
	}

	results := make([]domain.PersonDocument, len(documents))
	for i, doc := range documents {
		results[i] = r.documentDaoToDomain(doc)
	}

	return results, nil
}

func (r *PersonRepository) CreateDocument(ctx context.Context, document domain.PersonDocument) (domain.PersonDocument, error) {
	created, err := r.dao.InsertDocument(ctx, dao.PersonDocument{
		PersonID:     document.PersonID,
		DocumentType: document.DocumentType,
		FileName:     document.FileName,
		FilePath:     document.FilePath,
	})
	if err != nil {
		return domain.PersonDocument{}, fmt.Errorf("r.dao.InsertDocument -> %w", err)
	}

	return r.documentDaoToDomain(created), nil
}

func (r *PersonRepository) FindDocumentByID(ctx context.Context, id uint) (domain.PersonDocument, error) {
	found, err := r.dao.FindDocumentByID(ctx, id)
	if err != nil {
		return domain.PersonDocument{}, fmt.Errorf("r.dao.FindDocumentByID -> %w", err)
	}

	return r.documentDaoToDomain(found), nil
}

func (r *PersonRepository) DeleteDocument(ctx context.Context, id uint) error {
	if err := r.dao.DeleteDocument(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteDocument -> %w", err)
	}

	return nil
}

func (r *PersonRepository) domainToDao(p domain.Person) dao.Person {
	person := dao.Person{
		ID:                      p.ID,
		NationalCode:            p.NationalCode,
		FirstName:               p.FirstName,
		LastName:                p.LastName,
		Gender:                  p.Gender,
		BirthDate:               p.BirthDate,
		Mobile:                  p.Mobile,
		Email:                   p.Email,
		City:                    p.City,
		Country:                 p.Country,
		Education:               p.Education,
		Job:                     p.Job,
		OrganizationID:          p.OrganizationID,
		ChangeFieldToHumanities: p.ChangeFieldToHumanities,
		Notes:                   p.Notes,
	}

	for _, c := range p.Contacts {
		person.Contacts = append(person.Contacts, dao.PersonContact{
			ContactType:  c.ContactType,
			ContactValue: c.ContactValue,
		})
	}
	for _, role := range p.Roles {
		person.Roles = append(person.Roles, dao.PersonRole{
			RoleTitle:    role.RoleTitle,
			Organization: role.Organization,
			StartDate:    role.StartDate,
			EndDate:      role.EndDate,
		})
	}

	return person
}

func (r *PersonRepository) daoToDomain(p dao.Person) domain.Person {
	person := domain.Person{
		ID:                      p.ID,
		NationalCode:            p.NationalCode,
		FirstName:               p.FirstName,
		LastName:                p.LastName,
		Gender:                  p.Gender,
		BirthDate:               p.BirthDate,
		Mobile:                  p.Mobile,
		Email:                   p.Email,
		City:                    p.City,
		Country:                 p.Country,
		Education:               p.Education,
		Job:                     p.Job,
		OrganizationID:          p.OrganizationID,
		ChangeFieldToHumanities: p.ChangeFieldToHumanities,
		Notes:                   p.Notes,
		CreatedAt:               p.CreatedAt,
	}

	for _, c := range p.Contacts {
		person.Contacts = append(person.Contacts, r.contactDaoToDomain(c))
	}
	for _, role := range p.Roles {
		person.Roles = append(person.Roles, r.roleDaoToDomain(role))
	}
	for _, doc := range p.Documents {
		person.Documents = append(person.Documents, r.documentDaoToDomain(doc))
	}

	return person
}

func (r *PersonRepository) contactDaoToDomain(c dao.PersonContact) domain.PersonContact {
	return domain.PersonContact{
		ID:           c.ID,
		PersonID:     c.PersonID,
		ContactType:  c.ContactType,
		ContactValue: c.ContactValue,
		CreatedAt:    c.CreatedAt,
	}
}

func (r *PersonRepository) roleDaoToDomain(role dao.PersonRole) domain.PersonRole {
	return domain.PersonRole{
		ID:           role.ID,
		PersonID:     role.PersonID,
		RoleTitle:    role.RoleTitle,
		Organization: role.Organization,
		StartDate:    role.StartDate,
		EndDate:      role.EndDate,
		CreatedAt:    role.CreatedAt,
	}
}

func (r *PersonRepository) documentDaoToDomain(doc dao.PersonDocument) domain.PersonDocument {
	return domain.PersonDocument{
		ID:           doc.ID,
		PersonID:     doc.PersonID,
		DocumentType: doc.DocumentType,
		FileName:     doc.FileName,
		FilePath:     doc.FilePath,
		UploadDate:   doc.UploadDate,
	}
}
