package repository

import (
	"context"
	"time"

	"pasi-clinic-backend/internal/domain/entity"

	"github.com/google/uuid"
)

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	FindAll(ctx context.Context) ([]entity.Invoice, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	FindCreatedBetween(ctx context.Context, start, end time.Time) ([]entity.Invoice, error)
	FindRecent(ctx context.Context, limit int) ([]entity.Invoice, error)
}
