package billing

import (
	"strconv"
	"strings"

	"pasi-clinic-backend/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// LineItem is one billable service entry as captured by the invoice
// form, after lenient parsing of its numeric fields.
type LineItem struct {
	Description string
	Quantity    int64
	UnitPrice   decimal.Decimal
}

// Totals is the derived money state of an invoice.
type Totals struct {
	Subtotal decimal.Decimal
	Total    decimal.Decimal
	Balance  decimal.Decimal
	Status   string
}

// Calculate derives subtotal, total, balance and payment status from the
// line items and the amount paid. Pure: safe to call on every preview
// recomputation.
//
// Total equals subtotal until tax/discount modeling exists. Balance is
// clamped at zero; negative quantities and prices are kept as entered.
func Calculate(items []LineItem, amountPaid decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(item.Quantity)))
	}

	total := subtotal

	balance := total.Sub(amountPaid)
	if balance.IsNegative() {
		balance = decimal.Zero
	}

	status := entity.InvoiceStatusUnpaid
	switch {
	case amountPaid.GreaterThanOrEqual(total):
		status = entity.InvoiceStatusPaid
	case amountPaid.IsPositive():
		status = entity.InvoiceStatusPartial
	}

	return Totals{
		Subtotal: subtotal,
		Total:    total,
		Balance:  balance,
		Status:   status,
	}
}

// ParseAmount parses a money field leniently: whitespace is trimmed and
// anything that is not a valid number becomes zero.
func ParseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseQuantity parses a quantity field leniently: invalid input becomes
// zero, fractional input is truncated toward zero.
func ParseQuantity(s string) int64 {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f)
	}
	return 0
}
