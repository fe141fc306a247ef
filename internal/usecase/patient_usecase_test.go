package usecase

import (
	"context"
	"testing"

	"pasi-clinic-backend/internal/delivery/dto"
	"pasi-clinic-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCreatePatientAssignsDisplayCode(t *testing.T) {
	repo := newStubPatientRepo()
	uc := NewPatientUsecase(testLogger(), repo)

	resp, err := uc.CreatePatient(context.Background(), &dto.CreatePatientRequest{
		Name:        "Alice Wanjiru",
		Phone:       "0712345678",
		DateOfBirth: "1990-04-15",
		Gender:      entity.GenderFemale,
	})
	require.NoError(t, err)
	require.Regexp(t, `^PASI-\d{4}-\d{4}$`, resp.PatientCode)
	require.Equal(t, "1990-04-15", resp.DateOfBirth)
	require.Len(t, repo.created, 1)
}

func TestCreatePatientRejectsBadDate(t *testing.T) {
	uc := NewPatientUsecase(testLogger(), newStubPatientRepo())

	_, err := uc.CreatePatient(context.Background(), &dto.CreatePatientRequest{
		Name:        "Alice Wanjiru",
		Phone:       "0712345678",
		DateOfBirth: "15/04/1990",
	})
	require.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestListPatientsNarrowsBySearch(t *testing.T) {
	repo := newStubPatientRepo(
		&entity.Patient{ID: uuid.New(), Name: "Alice Wanjiru", PatientCode: "PASI-2024-1111"},
		&entity.Patient{ID: uuid.New(), Name: "Brian Otieno", PatientCode: "PASI-2024-2222"},
	)
	uc := NewPatientUsecase(testLogger(), repo)

	responses, total, err := uc.ListPatients(context.Background(), "brian")
	require.NoError(t, err)
	require.Equal(t, 2, total)
	require.Len(t, responses, 1)
	require.Equal(t, "Brian Otieno", responses[0].Name)
}

func TestUpdatePatientMergesEditableFields(t *testing.T) {
	patient := &entity.Patient{
		ID:          uuid.New(),
		PatientCode: "PASI-2024-1111",
		Name:        "Alice Wanjiru",
		Phone:       "0712345678",
	}
	repo := newStubPatientRepo(patient)
	uc := NewPatientUsecase(testLogger(), repo)

	resp, err := uc.UpdatePatient(context.Background(), patient.ID, &dto.UpdatePatientRequest{
		Name:  "Alice W. Kamau",
		Phone: "0798765432",
		Notes: "Allergic to penicillin",
	})
	require.NoError(t, err)
	require.Equal(t, "Alice W. Kamau", resp.Name)
	require.Equal(t, "0798765432", resp.Phone)
	// the display code survives edits
	require.Equal(t, "PASI-2024-1111", resp.PatientCode)
}

func TestUpdatePatientNotFound(t *testing.T) {
	uc := NewPatientUsecase(testLogger(), newStubPatientRepo())

	_, err := uc.UpdatePatient(context.Background(), uuid.New(), &dto.UpdatePatientRequest{
		Name:  "Nobody",
		Phone: "0700000000",
	})
	require.ErrorIs(t, err, ErrPatientNotFound)
}

func TestDeletePatient(t *testing.T) {
	patient := &entity.Patient{ID: uuid.New(), Name: "Alice Wanjiru"}
	repo := newStubPatientRepo(patient)
	uc := NewPatientUsecase(testLogger(), repo)

	require.NoError(t, uc.DeletePatient(context.Background(), patient.ID))
	require.Equal(t, []uuid.UUID{patient.ID}, repo.deleted)

	require.ErrorIs(t, uc.DeletePatient(context.Background(), patient.ID), ErrPatientNotFound)
}
