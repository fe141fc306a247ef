package billing

import (
	"testing"

	"pasi-clinic-backend/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCalculatePartialPayment(t *testing.T) {
	items := []LineItem{
		{Description: "Teeth Cleaning", Quantity: 2, UnitPrice: dec("500")},
		{Description: "X-Ray", Quantity: 1, UnitPrice: dec("1500")},
	}

	totals := Calculate(items, dec("2000"))
	require.True(t, dec("2500").Equal(totals.Subtotal))
	require.True(t, dec("2500").Equal(totals.Total))
	require.True(t, dec("500").Equal(totals.Balance))
	require.Equal(t, entity.InvoiceStatusPartial, totals.Status)
}

func TestCalculateFullPayment(t *testing.T) {
	items := []LineItem{
		{Description: "Teeth Cleaning", Quantity: 2, UnitPrice: dec("500")},
		{Description: "X-Ray", Quantity: 1, UnitPrice: dec("1500")},
	}

	totals := Calculate(items, dec("2500"))
	require.True(t, totals.Balance.IsZero())
	require.Equal(t, entity.InvoiceStatusPaid, totals.Status)
}

func TestCalculateStatusThresholds(t *testing.T) {
	items := []LineItem{{Description: "Consultation", Quantity: 1, UnitPrice: dec("1000")}}

	tests := []struct {
		name    string
		paid    string
		balance string
		status  string
	}{
		{"nothing paid", "0", "1000", entity.InvoiceStatusUnpaid},
		{"negative paid", "-50", "1050", entity.InvoiceStatusUnpaid},
		{"one shilling", "1", "999", entity.InvoiceStatusPartial},
		{"just under total", "999.99", "0.01", entity.InvoiceStatusPartial},
		{"exact total", "1000", "0", entity.InvoiceStatusPaid},
		{"overpaid clamps balance", "1500", "0", entity.InvoiceStatusPaid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			totals := Calculate(items, dec(tc.paid))
			require.True(t, dec(tc.balance).Equal(totals.Balance), "balance %s", totals.Balance)
			require.Equal(t, tc.status, totals.Status)
		})
	}
}

func TestCalculateEmptyItems(t *testing.T) {
	totals := Calculate(nil, decimal.Zero)
	require.True(t, totals.Subtotal.IsZero())
	require.True(t, totals.Total.IsZero())
	require.True(t, totals.Balance.IsZero())
	// zero paid against zero total counts as settled
	require.Equal(t, entity.InvoiceStatusPaid, totals.Status)
}

func TestCalculateKeepsNegativeValues(t *testing.T) {
	// Negative lines are kept as entered (refund-style corrections).
	items := []LineItem{
		{Description: "Filling", Quantity: 1, UnitPrice: dec("3000")},
		{Description: "Adjustment", Quantity: 1, UnitPrice: dec("-500")},
	}

	totals := Calculate(items, dec("1000"))
	require.True(t, dec("2500").Equal(totals.Subtotal))
	require.True(t, dec("1500").Equal(totals.Balance))
	require.Equal(t, entity.InvoiceStatusPartial, totals.Status)
}

func TestCalculateIsDeterministic(t *testing.T) {
	items := []LineItem{
		{Description: "Scaling", Quantity: 3, UnitPrice: dec("750.50")},
		{Description: "Whitening", Quantity: 1, UnitPrice: dec("4999.99")},
	}
	paid := dec("5000")

	first := Calculate(items, paid)
	second := Calculate(items, paid)
	require.True(t, first.Subtotal.Equal(second.Subtotal))
	require.True(t, first.Total.Equal(second.Total))
	require.True(t, first.Balance.Equal(second.Balance))
	require.Equal(t, first.Status, second.Status)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1500", "1500"},
		{"  99.50 ", "99.5"},
		{"-250", "-250"},
		{"", "0"},
		{"abc", "0"},
		{"12,000", "0"},
	}

	for _, tc := range tests {
		require.True(t, dec(tc.want).Equal(ParseAmount(tc.in)), "input %q", tc.in)
	}
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"2", 2},
		{" 10 ", 10},
		{"1.9", 1},
		{"-3", -3},
		{"", 0},
		{"two", 0},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, ParseQuantity(tc.in), "input %q", tc.in)
	}
}
