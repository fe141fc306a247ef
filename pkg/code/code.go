// Package code generates the human-readable record labels shown on
// screens and printed invoices. Codes are display-only: they come from
// the current year plus the last four digits of a millisecond
// timestamp, so concurrent submissions can collide. The store-assigned
// uuid is the real key.
package code

import (
	"fmt"
	"time"
)

const (
	patientPrefix = "PASI"
	invoicePrefix = "INV"
)

func NewPatientCode(now time.Time) string {
	return build(patientPrefix, now)
}

func NewInvoiceCode(now time.Time) string {
	return build(invoicePrefix, now)
}

func build(prefix string, now time.Time) string {
	suffix := now.UnixMilli() % 10000
	return fmt.Sprintf("%s-%d-%04d", prefix, now.Year(), suffix)
}
