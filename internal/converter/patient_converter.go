package converter

import (
	"pasi-clinic-backend/internal/delivery/dto"
	"pasi-clinic-backend/internal/domain/entity"
)

func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	dob := ""
	if patient.DateOfBirth != nil {
		dob = patient.DateOfBirth.Format("2006-01-02")
	}

	return &dto.PatientResponse{
		ID:          patient.ID,
		PatientCode: patient.PatientCode,
		Name:        patient.Name,
		Phone:       patient.Phone,
		Email:       patient.Email,
		Address:     patient.Address,
		DateOfBirth: dob,
		Gender:      patient.Gender,
		Notes:       patient.Notes,
		CreatedAt:   patient.CreatedAt,
		UpdatedAt:   patient.UpdatedAt,
	}
}

func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		responses = append(responses, *PatientToResponse(&patients[i]))
	}
	return responses
}
