package converter

import (
	"pasi-clinic-backend/internal/delivery/dto"
	"pasi-clinic-backend/internal/domain/entity"
)

func InvoiceToResponse(invoice *entity.Invoice) *dto.InvoiceResponse {
	if invoice == nil {
		return nil
	}

	items := make([]dto.InvoiceItemResponse, 0, len(invoice.Items))
	for _, item := range invoice.Items {
		items = append(items, dto.InvoiceItemResponse{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	return &dto.InvoiceResponse{
		ID:            invoice.ID,
		InvoiceCode:   invoice.InvoiceCode,
		PatientID:     invoice.PatientID,
		PatientName:   invoice.PatientName,
		Items:         items,
		Notes:         invoice.Notes,
		Subtotal:      invoice.Subtotal,
		Total:         invoice.Total,
		PaymentMethod: invoice.PaymentMethod,
		AmountPaid:    invoice.AmountPaid,
		MpesaCode:     invoice.MpesaCode,
		Balance:       invoice.Balance,
		Status:        invoice.Status,
		CreatedAt:     invoice.CreatedAt,
		UpdatedAt:     invoice.UpdatedAt,
	}
}

func InvoicesToResponses(invoices []entity.Invoice) []dto.InvoiceResponse {
	responses := make([]dto.InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		responses = append(responses, *InvoiceToResponse(&invoices[i]))
	}
	return responses
}
