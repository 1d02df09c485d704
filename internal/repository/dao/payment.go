package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrPaymentNotFound = errors.New("payment not found")

// Payment carries three optional weak references (person, organization,
// event), each with a name snapshot. None of them is constrained.
type Payment struct {
	ID                uint `gorm:"primaryKey"`
	Title             string
	PaymentCategory   string
	RelatedPersonID   uint
	RelatedPersonName string
	RelatedOrgID      uint
	RelatedOrgName    string
	RelatedEventID    uint
	RelatedEventName  string
	PaymentDate       string
	Amount            string
	Method            string
	TransactionType   string
	PaymentType       string
	Status            string
	RefNumber         string
	Notes             string
	CreatedAt         time.Time
}

type PaymentDAO struct {
	db *gorm.DB
}

func NewPaymentDAO(db *gorm.DB) *PaymentDAO {
	return &PaymentDAO{
		db: db,
	}
}

func (d *PaymentDAO) Insert(ctx context.Context, payment Payment) (Payment, error) {
	result := d.db.WithContext(ctx).Create(&payment)
	if result.Error != nil {
		return Payment{}, result.Error
	}

	return payment, nil
}

func (d *PaymentDAO) List(ctx context.Context) ([]Payment, error) {
	var payments []Payment

	result := d.db.WithContext(ctx).Order("id DESC").Find(&payments)
	if result.Error != nil {
		return nil, result.Error
	}

	return payments, nil
}

func (d *PaymentDAO) FindByID(ctx context.Context, id uint) (Payment, error) {
	var payment Payment

	result := d.db.WithContext(ctx).First(&payment, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Payment{}, ErrPaymentNotFound
		}

		return Payment{}, result.Error
	}

	return payment, nil
}

func (d *PaymentDAO) Update(ctx context.Context, id uint, payment Payment) error {
	result := d.db.WithContext(ctx).Model(&Payment{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title":               payment.Title,
		"payment_category":    payment.PaymentCategory,
		"related_person_id":   payment.RelatedPersonID,
		"related_person_name": payment.RelatedPersonName,
		"related_org_id":      payment.RelatedOrgID,
		"related_org_name":    payment.RelatedOrgName,
		"related_event_id":    payment.RelatedEventID,
		"related_event_name":  payment.RelatedEventName,
		"payment_date":        payment.PaymentDate,
		"amount":              payment.Amount,
		"method":              payment.Method,
		"transaction_type":    payment.TransactionType,
		"payment_type":        payment.PaymentType,
		"status":              payment.Status,
		"ref_number":          payment.RefNumber,
		"notes":               payment.Notes,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPaymentNotFound
	}

	return nil
}

func (d *PaymentDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Payment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPaymentNotFound
	}

	return nil
}
