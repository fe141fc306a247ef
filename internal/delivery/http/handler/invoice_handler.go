package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"pasi-clinic-backend/internal/billing"
	"pasi-clinic-backend/internal/delivery/dto"
	"pasi-clinic-backend/internal/usecase"
	"pasi-clinic-backend/pkg/response"
	"pasi-clinic-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type InvoiceHandler struct {
	invoiceUsecase usecase.InvoiceUsecase
	validator      *validator.CustomValidator
}

func NewInvoiceHandler(invoiceUsecase usecase.InvoiceUsecase, validator *validator.CustomValidator) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceUsecase: invoiceUsecase,
		validator:      validator,
	}
}

func (h *InvoiceHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	invoice, err := h.invoiceUsecase.CreateInvoice(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrAmountPaidRequired:
			response.Error(w, http.StatusBadRequest, "Enter amount paid", nil)
		default:
			response.InternalServerError(w, "Failed to save invoice")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Invoice saved successfully", invoice)
}

// ListInvoices maps the list screen's filter controls onto query
// parameters: status, payment_method, date, custom_date, search.
func (h *InvoiceHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := billing.InvoiceFilter{
		Status:        query.Get("status"),
		PaymentMethod: query.Get("payment_method"),
		DateWindow:    query.Get("date"),
		Search:        query.Get("search"),
	}

	if raw := query.Get("custom_date"); raw != "" {
		day, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid custom date, use YYYY-MM-DD", nil)
			return
		}
		filter.CustomDate = &day
	}

	invoices, total, err := h.invoiceUsecase.ListInvoices(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to load invoices")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "", invoices, &response.Meta{
		Total:    total,
		Filtered: len(invoices),
	})
}

func (h *InvoiceHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid invoice ID", nil)
		return
	}

	invoice, err := h.invoiceUsecase.GetInvoice(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrInvoiceNotFound:
			response.NotFound(w, "Invoice not found")
		default:
			response.InternalServerError(w, "Failed to load invoice")
		}
		return
	}

	response.Success(w, http.StatusOK, "", invoice)
}
