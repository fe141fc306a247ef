package billing

import (
	"testing"
	"time"

	"pasi-clinic-backend/internal/domain/entity"

	"github.com/stretchr/testify/require"
)

// Wednesday 2024-06-12 10:30 local time.
var testNow = time.Date(2024, 6, 12, 10, 30, 0, 0, time.UTC)

func invoiceAt(code, name, status, method string, createdAt time.Time) entity.Invoice {
	return entity.Invoice{
		InvoiceCode:   code,
		PatientName:   name,
		Status:        status,
		PaymentMethod: method,
		CreatedAt:     createdAt,
	}
}

func testInvoices() []entity.Invoice {
	return []entity.Invoice{
		invoiceAt("INV-2024-0001", "Alice Wanjiru", entity.InvoiceStatusPaid, entity.PaymentMethodCash,
			time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC)),
		invoiceAt("INV-2024-0002", "Brian Otieno", entity.InvoiceStatusPartial, entity.PaymentMethodMpesa,
			time.Date(2024, 6, 11, 15, 0, 0, 0, time.UTC)),
		invoiceAt("INV-2024-0003", "Cynthia Muthoni", entity.InvoiceStatusUnpaid, entity.PaymentMethodCash,
			time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)),
		invoiceAt("INV-2024-0004", "Brian Otieno", entity.InvoiceStatusPaid, entity.PaymentMethodMpesa,
			time.Date(2024, 6, 2, 12, 0, 0, 0, time.UTC)),
	}
}

func codes(invoices []entity.Invoice) []string {
	out := make([]string, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, inv.InvoiceCode)
	}
	return out
}

func TestFilterInvoicesNoOpReturnsAllInOrder(t *testing.T) {
	input := testInvoices()
	filter := InvoiceFilter{Status: FilterAll, PaymentMethod: FilterAll, DateWindow: DateWindowAll}

	result := FilterInvoices(input, filter, testNow)
	require.Equal(t, codes(input), codes(result))
}

func TestFilterInvoicesByStatus(t *testing.T) {
	result := FilterInvoices(testInvoices(), InvoiceFilter{Status: entity.InvoiceStatusPaid}, testNow)
	require.Equal(t, []string{"INV-2024-0001", "INV-2024-0004"}, codes(result))
}

func TestFilterInvoicesByPaymentMethod(t *testing.T) {
	result := FilterInvoices(testInvoices(), InvoiceFilter{PaymentMethod: entity.PaymentMethodMpesa}, testNow)
	require.Equal(t, []string{"INV-2024-0002", "INV-2024-0004"}, codes(result))
}

func TestFilterInvoicesDateWindows(t *testing.T) {
	tests := []struct {
		name   string
		filter InvoiceFilter
		want   []string
	}{
		{"today", InvoiceFilter{DateWindow: DateWindowToday}, []string{"INV-2024-0001"}},
		{"yesterday", InvoiceFilter{DateWindow: DateWindowYesterday}, []string{"INV-2024-0002"}},
		// week of Monday 2024-06-10 through Sunday 2024-06-16
		{"this week", InvoiceFilter{DateWindow: DateWindowThisWeek},
			[]string{"INV-2024-0001", "INV-2024-0002", "INV-2024-0003"}},
		{"unknown selector is a no-op", InvoiceFilter{DateWindow: "last-month"},
			[]string{"INV-2024-0001", "INV-2024-0002", "INV-2024-0003", "INV-2024-0004"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := FilterInvoices(testInvoices(), tc.filter, testNow)
			require.Equal(t, tc.want, codes(result))
		})
	}
}

func TestFilterInvoicesCustomDate(t *testing.T) {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	result := FilterInvoices(testInvoices(), InvoiceFilter{DateWindow: DateWindowCustom, CustomDate: &day}, testNow)
	require.Equal(t, []string{"INV-2024-0003"}, codes(result))

	// custom without a date applies no date filter
	result = FilterInvoices(testInvoices(), InvoiceFilter{DateWindow: DateWindowCustom}, testNow)
	require.Len(t, result, 4)
}

func TestFilterInvoicesSearch(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"patient name, case-insensitive", "brian", []string{"INV-2024-0002", "INV-2024-0004"}},
		{"invoice code fragment", "0003", []string{"INV-2024-0003"}},
		{"no match", "zebra", []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := FilterInvoices(testInvoices(), InvoiceFilter{Search: tc.search}, testNow)
			require.Equal(t, tc.want, codes(result))
		})
	}
}

func TestFilterInvoicesCombinesWithAND(t *testing.T) {
	input := testInvoices()
	combined := FilterInvoices(input, InvoiceFilter{
		Status:        entity.InvoiceStatusPaid,
		PaymentMethod: entity.PaymentMethodMpesa,
	}, testNow)

	// sequential application of the independent predicates must agree
	sequential := FilterInvoices(
		FilterInvoices(input, InvoiceFilter{Status: entity.InvoiceStatusPaid}, testNow),
		InvoiceFilter{PaymentMethod: entity.PaymentMethodMpesa}, testNow)

	require.Equal(t, codes(sequential), codes(combined))
	require.Equal(t, []string{"INV-2024-0004"}, codes(combined))
}

func TestFilterInvoicesMissingTimestampFailsActiveWindows(t *testing.T) {
	input := []entity.Invoice{
		invoiceAt("INV-2024-0009", "Dennis Kip", entity.InvoiceStatusUnpaid, entity.PaymentMethodCash, time.Time{}),
	}

	for _, window := range []string{DateWindowToday, DateWindowYesterday, DateWindowThisWeek} {
		require.Empty(t, FilterInvoices(input, InvoiceFilter{DateWindow: window}, testNow), "window %s", window)
	}
	require.Len(t, FilterInvoices(input, InvoiceFilter{}, testNow), 1)
}

func TestFilterInvoicesDoesNotMutateInput(t *testing.T) {
	input := testInvoices()
	snapshot := codes(input)

	result := FilterInvoices(input, InvoiceFilter{Status: entity.InvoiceStatusUnpaid}, testNow)
	require.Equal(t, snapshot, codes(input))

	// the result is a fresh slice, not a view over the input
	require.NotSame(t, &input[0], &result[0])
}

func TestFilterPatients(t *testing.T) {
	patients := []entity.Patient{
		{PatientCode: "PASI-2024-1111", Name: "Alice Wanjiru"},
		{PatientCode: "PASI-2024-2222", Name: "Brian Otieno"},
		{PatientCode: "PASI-2024-3333", Name: "Cynthia Muthoni"},
	}

	require.Len(t, FilterPatients(patients, ""), 3)

	byName := FilterPatients(patients, "WANJIRU")
	require.Len(t, byName, 1)
	require.Equal(t, "Alice Wanjiru", byName[0].Name)

	byCode := FilterPatients(patients, "2222")
	require.Len(t, byCode, 1)
	require.Equal(t, "Brian Otieno", byCode[0].Name)
}
