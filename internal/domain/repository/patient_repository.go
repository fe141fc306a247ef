package repository

import (
	"context"

	"pasi-clinic-backend/internal/domain/entity"

	"github.com/google/uuid"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	FindAll(ctx context.Context) ([]entity.Patient, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	Update(ctx context.Context, patient *entity.Patient) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}
