package repository

import (
	"context"
	"errors"

	"pasi-clinic-backend/internal/domain/entity"
	domainRepo "pasi-clinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) domainRepo.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	return r.db.WithContext(ctx).Create(patient).Error
}

// FindAll returns every patient ordered by name, matching the list
// screen's fetch. Search narrowing happens in memory afterwards.
func (r *patientRepository) FindAll(ctx context.Context) ([]entity.Patient, error) {
	var patients []entity.Patient
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	return r.db.WithContext(ctx).Save(patient).Error
}

func (r *patientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Patient{}).Error
}

func (r *patientRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entity.Patient{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
