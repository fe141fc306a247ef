package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceItemRequest keeps quantity and unit price as strings, exactly
// as the form submits them; parsing is lenient (invalid becomes zero).
// The unit price must at least be present.
type InvoiceItemRequest struct {
	Description string `json:"description" validate:"required,max=255"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price" validate:"required"`
}

type CreateInvoiceRequest struct {
	PatientID     string               `json:"patient_id" validate:"required,uuid"`
	Items         []InvoiceItemRequest `json:"items" validate:"required,min=1,dive"`
	Notes         string               `json:"notes"`
	PaymentMethod string               `json:"payment_method" validate:"required,oneof=cash mpesa"`
	AmountPaid    string               `json:"amount_paid" validate:"required"`
	MpesaCode     string               `json:"mpesa_code" validate:"required_if=PaymentMethod mpesa"`
}

type InvoiceItemResponse struct {
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

type InvoiceResponse struct {
	ID            uuid.UUID             `json:"id"`
	InvoiceCode   string                `json:"invoice_code"`
	PatientID     uuid.UUID             `json:"patient_id"`
	PatientName   string                `json:"patient_name"`
	Items         []InvoiceItemResponse `json:"items,omitempty"`
	Notes         string                `json:"notes,omitempty"`
	Subtotal      decimal.Decimal       `json:"subtotal"`
	Total         decimal.Decimal       `json:"total"`
	PaymentMethod string                `json:"payment_method"`
	AmountPaid    decimal.Decimal       `json:"amount_paid"`
	MpesaCode     *string               `json:"mpesa_code,omitempty"`
	Balance       decimal.Decimal       `json:"balance"`
	Status        string                `json:"status"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}
