package usecase

import (
	"context"
	"errors"
	"strings"
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
	ErrInvoiceNotFound    = errors.New("invoice not found")
	ErrAmountPaidRequired = errors.New("amount paid must be greater than zero")
)

type InvoiceUsecase interface {
	CreateInvoice(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	ListInvoices(ctx context.Context, filter billing.InvoiceFilter) ([]dto.InvoiceResponse, int, error)
	GetInvoice(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error)
}

type invoiceUsecase struct {
	log         *logrus.Logger
	invoiceRepo repository.InvoiceRepository
	patientRepo repository.PatientRepository
	now         func() time.Time
}

func NewInvoiceUsecase(
	log *logrus.Logger,
	invoiceRepo repository.InvoiceRepository,
	patientRepo repository.PatientRepository,
) InvoiceUsecase {
	return &invoiceUsecase{
		log:         log,
		invoiceRepo: invoiceRepo,
		patientRepo: patientRepo,
		now:         time.Now,
	}
}

// CreateInvoice writes a new immutable invoice. The patient lookup and
// the invoice write are independent store calls: if the second fails the
// first is not rolled back, the caller simply resubmits.
func (u *invoiceUsecase) CreateInvoice(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return nil, ErrPatientNotFound
	}

	patient, err := u.patientRepo.FindByID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	items := make([]billing.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, billing.LineItem{
			Description: strings.TrimSpace(item.Description),
			Quantity:    billing.ParseQuantity(item.Quantity),
			UnitPrice:   billing.ParseAmount(item.UnitPrice),
		})
	}

	amountPaid := billing.ParseAmount(req.AmountPaid)
	if !amountPaid.IsPositive() {
		return nil, ErrAmountPaidRequired
	}

	totals := billing.Calculate(items, amountPaid)

	// mpesaCode is stored only for M-Pesa payments
	var mpesaCode *string
	if req.PaymentMethod == entity.PaymentMethodMpesa {
		trimmed := strings.TrimSpace(req.MpesaCode)
		mpesaCode = &trimmed
	}

	invoice := &entity.Invoice{
		InvoiceCode:   code.NewInvoiceCode(u.now()),
		PatientID:     patient.ID,
		PatientName:   patient.Name,
		Notes:         req.Notes,
		Subtotal:      totals.Subtotal,
		Total:         totals.Total,
		PaymentMethod: req.PaymentMethod,
		AmountPaid:    amountPaid,
		MpesaCode:     mpesaCode,
		Balance:       totals.Balance,
		Status:        totals.Status,
	}
	for i, item := range items {
		invoice.Items = append(invoice.Items, entity.InvoiceItem{
			Position:    i,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	if err := u.invoiceRepo.Create(ctx, invoice); err != nil {
		u.log.Warnf("Failed to create invoice: %+v", err)
		return nil, err
	}

	return converter.InvoiceToResponse(invoice), nil
}

// ListInvoices fetches the whole collection newest first and applies
// the filter to the in-memory copy. The second return is the unfiltered
// collection size.
func (u *invoiceUsecase) ListInvoices(ctx context.Context, filter billing.InvoiceFilter) ([]dto.InvoiceResponse, int, error) {
	invoices, err := u.invoiceRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list invoices: %+v", err)
		return nil, 0, err
	}

	filtered := billing.FilterInvoices(invoices, filter, u.now())
	return converter.InvoicesToResponses(filtered), len(invoices), nil
}

func (u *invoiceUsecase) GetInvoice(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error) {
	invoice, err := u.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find invoice: %+v", err)
		return nil, err
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}

	return converter.InvoiceToResponse(invoice), nil
}
