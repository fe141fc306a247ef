package usecase

import (
	"context"
	"errors"
	"time"

	"pasi-clinic-backend/internal/billing"
	"pasi-clinic-backend/internal/converter"
	"pasi-clinic-backend/internal/delivery/dto"
	"pasi-clinic-backend/internal/domain/entity"
	"pasi-clinic-backend/internal/domain/repository"
	"pasi-clinic-backend/pkg/code"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrPatientNotFound   = errors.New("patient not found")
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	ListPatients(ctx context.Context, search string) ([]dto.PatientResponse, int, error)
	GetPatient(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error)
	UpdatePatient(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, id uuid.UUID) error
}

type patientUsecase struct {
	log         *logrus.Logger
	patientRepo repository.PatientRepository
}

func NewPatientUsecase(log *logrus.Logger, patientRepo repository.PatientRepository) PatientUsecase {
	return &patientUsecase{
		log:         log,
		patientRepo: patientRepo,
	}
}

func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	dob, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	patient := &entity.Patient{
		PatientCode: code.NewPatientCode(time.Now()),
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		DateOfBirth: dob,
		Gender:      req.Gender,
		Notes:       req.Notes,
	}

	if err := u.patientRepo.Create(ctx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

// ListPatients fetches the whole collection ordered by name and narrows
// it in memory, the same way the list screen filters its fetched copy.
// The second return is the unfiltered collection size.
func (u *patientUsecase) ListPatients(ctx context.Context, search string) ([]dto.PatientResponse, int, error) {
	patients, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, 0, err
	}

	filtered := billing.FilterPatients(patients, search)
	return converter.PatientsToResponses(filtered), len(patients), nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	dob, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	patient.Name = req.Name
	patient.Phone = req.Phone
	patient.Email = req.Email
	patient.Address = req.Address
	patient.DateOfBirth = dob
	patient.Gender = req.Gender
	patient.Notes = req.Notes

	if err := u.patientRepo.Update(ctx, patient); err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) DeletePatient(ctx context.Context, id uuid.UUID) error {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	if err := u.patientRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}
	return nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
