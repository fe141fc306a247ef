package billing

import (
	"strings"
	"time"

	"pasi-clinic-backend/internal/domain/entity"
)

// Date window selectors for the invoice list.
const (
	DateWindowAll       = "all"
	DateWindowToday     = "today"
	DateWindowYesterday = "yesterday"
	DateWindowThisWeek  = "this-week"
	DateWindowCustom    = "custom"
)

// FilterAll is the no-op value for the status and payment method
// selectors.
const FilterAll = "all"

// InvoiceFilter narrows an already-fetched invoice list. Every active
// field must match (logical AND); zero values are no-ops.
type InvoiceFilter struct {
	Status        string
	PaymentMethod string
	DateWindow    string
	CustomDate    *time.Time
	Search        string
}

// FilterInvoices returns the invoices matching every active filter, in
// their original order. The input slice is never mutated; the result is
// always a fresh slice.
//
// The date window is evaluated against CreatedAt in now's location. An
// invoice with a zero CreatedAt falls outside every window, so it only
// shows up while no window is active.
func FilterInvoices(invoices []entity.Invoice, filter InvoiceFilter, now time.Time) []entity.Invoice {
	start, end, windowed := resolveWindow(filter, now)
	term := strings.ToLower(strings.TrimSpace(filter.Search))

	result := make([]entity.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if filter.Status != "" && filter.Status != FilterAll && inv.Status != filter.Status {
			continue
		}
		if filter.PaymentMethod != "" && filter.PaymentMethod != FilterAll && inv.PaymentMethod != filter.PaymentMethod {
			continue
		}
		if windowed {
			ts := inv.CreatedAt
			if ts.Before(start) || !ts.Before(end) {
				continue
			}
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(inv.PatientName), term) &&
			!strings.Contains(strings.ToLower(inv.InvoiceCode), term) {
			continue
		}
		result = append(result, inv)
	}
	return result
}

// FilterPatients narrows a patient list by a case-insensitive substring
// match on name or patient code. Empty search matches everything.
func FilterPatients(patients []entity.Patient, search string) []entity.Patient {
	term := strings.ToLower(strings.TrimSpace(search))

	result := make([]entity.Patient, 0, len(patients))
	for _, p := range patients {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.PatientCode), term) {
			continue
		}
		result = append(result, p)
	}
	return result
}

// resolveWindow maps the date window selector to a half-open interval
// [start, end). The third return is false when no window applies: the
// "all" selector, an unknown selector, or "custom" without a date.
func resolveWindow(filter InvoiceFilter, now time.Time) (time.Time, time.Time, bool) {
	switch filter.DateWindow {
	case DateWindowToday:
		start := midnight(now)
		return start, start.AddDate(0, 0, 1), true
	case DateWindowYesterday:
		end := midnight(now)
		return end.AddDate(0, 0, -1), end, true
	case DateWindowThisWeek:
		// Monday-start week containing now
		days := int(now.Weekday()) - 1
		if days < 0 {
			days = 6
		}
		start := midnight(now).AddDate(0, 0, -days)
		return start, start.AddDate(0, 0, 7), true
	case DateWindowCustom:
		if filter.CustomDate == nil {
			return time.Time{}, time.Time{}, false
		}
		start := midnight(filter.CustomDate.In(now.Location()))
		return start, start.AddDate(0, 0, 1), true
	default:
		return time.Time{}, time.Time{}, false
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
