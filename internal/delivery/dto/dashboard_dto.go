package dto

import "github.com/shopspring/decimal"

type DashboardResponse struct {
	TotalPatients  int64             `json:"total_patients"`
	InvoicesToday  int               `json:"invoices_today"`
	RevenueToday   decimal.Decimal   `json:"revenue_today"`
	RecentInvoices []InvoiceResponse `json:"recent_invoices"`
}
