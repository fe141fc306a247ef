package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice is immutable once written: there is no edit or delete flow,
// only create and read. PatientName is a snapshot taken at creation so
// the invoice stays intact if the patient record is later changed or
// deleted.
type Invoice struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	InvoiceCode   string          `gorm:"type:varchar(20);index;not null" json:"invoice_code"`
	PatientID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"patient_id"`
	PatientName   string          `gorm:"type:varchar(255);not null" json:"patient_name"`
	Notes         string          `gorm:"type:text" json:"notes,omitempty"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	PaymentMethod string          `gorm:"type:varchar(10);not null;index" json:"payment_method"`
	AmountPaid    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount_paid"`
	MpesaCode     *string         `gorm:"type:varchar(30)" json:"mpesa_code,omitempty"`
	Balance       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"balance"`
	Status        string          `gorm:"type:varchar(10);not null;index" json:"status"`
	CreatedAt     time.Time       `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Items []InvoiceItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceItem is one billable service line on an invoice. Position
// preserves the order the lines were entered in.
type InvoiceItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"-"`
	Position    int             `gorm:"not null" json:"position"`
	Description string          `gorm:"type:varchar(255);not null" json:"description"`
	Quantity    int64           `gorm:"not null" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
}

func (InvoiceItem) TableName() string {
	return "invoice_items"
}

// Payment status constants
const (
	InvoiceStatusPaid    = "paid"
	InvoiceStatusPartial = "partial"
	InvoiceStatusUnpaid  = "unpaid"
)

// Payment method constants
const (
	PaymentMethodCash  = "cash"
	PaymentMethodMpesa = "mpesa"
)
