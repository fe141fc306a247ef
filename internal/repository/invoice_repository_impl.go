package repository

import (
	"context"
	"errors"
	"time"

	"pasi-clinic-backend/internal/domain/entity"
	domainRepo "pasi-clinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type invoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

// FindAll returns every invoice newest first, without line items: the
// list screen only shows header fields and the in-memory filter only
// reads them.
func (r *invoiceRepository) FindAll(ctx context.Context) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *invoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ?", id).
		First(&invoice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) FindCreatedBetween(ctx context.Context, start, end time.Time) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	err := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at < ?", start, end).
		Order("created_at DESC").
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *invoiceRepository) FindRecent(ctx context.Context, limit int) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}
