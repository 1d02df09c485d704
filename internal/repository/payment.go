package repository

import (
	"context"
	"fmt"

	"github.com/haamee/haamee-api/internal/domain"
	"github.com/haamee/haamee-api/internal/repository/dao"
)

var ErrPaymentNotFound = dao.ErrPaymentNotFound

type PaymentDAO interface {
	Insert(ctx context.Context, payment dao.Payment) (dao.Payment, error)
	List(ctx context.Context) ([]dao.Payment, error)
	FindByID(ctx context.Context, id uint) (dao.Payment, error)
	Update(ctx context.Context, id uint, payment dao.Payment) error
	Delete(ctx context.Context, id uint) error
}

type PaymentRepository struct {
	dao PaymentDAO
}

func NewPaymentRepository(dao PaymentDAO) *PaymentRepository {
	return &PaymentRepository{
		dao: dao,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(payment))
	if err != nil {
		return domain.Payment{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *PaymentRepository) List(ctx context.Context) ([]domain.Payment, error) {
	payments, err := r.dao.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	results := make([]domain.Payment, len(payments))
	for i, payment := range payments {
		results[i] = r.daoToDomain(payment)
	}

	return results, nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id uint) (domain.Payment, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *PaymentRepository) Update(ctx context.Context, id uint, payment domain.Payment) error {
	if err := r.dao.Update(ctx, id, r.domainToDao(payment)); err != nil {
		return fmt.Errorf("r.dao.Update -> %w", err)
	}

	return nil
}

func (r *PaymentRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *PaymentRepository) domainToDao(payment domain.Payment) dao.Payment {
	return dao.Payment{
		ID:                payment.ID,
		Title:             payment.Title,
		PaymentCategory:   payment.PaymentCategory,
		RelatedPersonID:   payment.RelatedPersonID,
		RelatedPersonName: payment.RelatedPersonName,
		RelatedOrgID:      payment.RelatedOrgID,
		RelatedOrgName:    payment.RelatedOrgName,
		RelatedEventID:    payment.RelatedEventID,
		RelatedEventName:  payment.RelatedEventName,
		PaymentDate:       payment.PaymentDate,
		Amount:            payment.Amount,
		Method:            payment.Method,
		TransactionType:   payment.TransactionType,
		PaymentType:       payment.PaymentType,
		Status:            payment.Status,
		RefNumber:         payment.RefNumber,
		Notes:             payment.Notes,
	}
}

func (r *PaymentRepository) daoToDomain(payment dao.Payment) domain.Payment {
	return domain.Payment{
		ID:                payment.ID,
		Title:             payment.Title,
		PaymentCategory:   payment.PaymentCategory,
		RelatedPersonID:   payment.RelatedPersonID,
		RelatedPersonName: payment.RelatedPersonName,
		RelatedOrgID:      payment.RelatedOrgID,
		RelatedOrgName:    payment.RelatedOrgName,
		RelatedEventID:    payment.RelatedEventID,
		RelatedEventName:  payment.RelatedEventName,
		PaymentDate:       payment.PaymentDate,
		Amount:            payment.Amount,
		Method:            payment.Method,
		TransactionType:   payment.TransactionType,
		PaymentType:       payment.PaymentType,
		Status:            payment.Status,
		RefNumber:         payment.RefNumber,
		Notes:             payment.Notes,
		CreatedAt:         payment.CreatedAt,
	}
}
