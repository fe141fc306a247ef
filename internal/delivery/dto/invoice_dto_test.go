package dto

import (
	"testing"

	"pasi-clinic-backend/pkg/validator"

	"github.com/stretchr/testify/require"
)

func validCreateInvoiceRequest() CreateInvoiceRequest {
	return CreateInvoiceRequest{
		PatientID: "0b8f6f0e-2f4b-4a8e-9c59-6a2b7a3f1d10",
		Items: []InvoiceItemRequest{
			{Description: "Teeth Cleaning", Quantity: "2", UnitPrice: "500"},
		},
		PaymentMethod: "cash",
		AmountPaid:    "1000",
	}
}

func TestCreateInvoiceRequestValidation(t *testing.T) {
	v := validator.NewValidator()

	tests := []struct {
		name    string
		mutate  func(*CreateInvoiceRequest)
		wantErr bool
	}{
		{"valid cash invoice", func(r *CreateInvoiceRequest) {}, false},
		{"mpesa with code", func(r *CreateInvoiceRequest) {
			r.PaymentMethod = "mpesa"
			r.MpesaCode = "LGR98HJK23"
		}, false},
		{"mpesa without code", func(r *CreateInvoiceRequest) {
			r.PaymentMethod = "mpesa"
		}, true},
		{"cash never needs a code", func(r *CreateInvoiceRequest) {
			r.PaymentMethod = "cash"
			r.MpesaCode = ""
		}, false},
		{"unknown payment method", func(r *CreateInvoiceRequest) {
			r.PaymentMethod = "card"
		}, true},
		{"no items", func(r *CreateInvoiceRequest) {
			r.Items = nil
		}, true},
		{"item without description", func(r *CreateInvoiceRequest) {
			r.Items[0].Description = ""
		}, true},
		{"item without unit price", func(r *CreateInvoiceRequest) {
			r.Items[0].UnitPrice = ""
		}, true},
		{"missing amount paid", func(r *CreateInvoiceRequest) {
			r.AmountPaid = ""
		}, true},
		{"malformed patient id", func(r *CreateInvoiceRequest) {
			r.PatientID = "not-a-uuid"
		}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateInvoiceRequest()
			tc.mutate(&req)
			err := v.Validate(&req)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestCreatePatientRequestValidation(t *testing.T) {
	v := validator.NewValidator()

	valid := CreatePatientRequest{Name: "Alice Wanjiru", Phone: "0712345678"}
	require.NoError(t, v.Validate(&valid))

	missingPhone := CreatePatientRequest{Name: "Alice Wanjiru"}
	require.Error(t, v.Validate(&missingPhone))

	badEmail := valid
	badEmail.Email = "not-an-email"
	require.Error(t, v.Validate(&badEmail))

	badDOB := valid
	badDOB.DateOfBirth = "15/04/1990"
	require.Error(t, v.Validate(&badDOB))
}
