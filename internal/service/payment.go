package service

import (
	"context"

	"github.com/haamee/haamee-api/internal/domain"
	"github.com/haamee/haamee-api/internal/repository"
)

var ErrPaymentNotFound = repository.ErrPaymentNotFound

type PaymentService struct {
	repo *repository.PaymentRepository
}

func NewPaymentService(repo *repository.PaymentRepository) *PaymentService {
	return &PaymentService{
		repo: repo,
	}
}

func (s *PaymentService) List(ctx context.Context) ([]domain.Payment, error) {
	return s.repo.List(ctx)
}

func (s *PaymentService) Get(ctx context.Context, id uint) (domain.Payment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PaymentService) Create(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	return s.repo.Create(ctx, payment)
}

func (s *PaymentService) Update(ctx context.Context, id uint, payment domain.Payment) error {
	return s.repo.Update(ctx, id, payment)
}

func (s *PaymentService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
