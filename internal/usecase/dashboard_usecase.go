package usecase

import (
	"context"
	"time"

	"pasi-clinic-backend/internal/converter"
	"pasi-clinic-backend/internal/delivery/dto"
	"pasi-clinic-backend/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const recentInvoiceLimit = 5

type DashboardUsecase interface {
	GetStats(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardUsecase struct {
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	invoiceRepo repository.InvoiceRepository
	now         func() time.Time
}

func NewDashboardUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	invoiceRepo repository.InvoiceRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		log:         log,
		patientRepo: patientRepo,
		invoiceRepo: invoiceRepo,
		now:         time.Now,
	}
}

// GetStats assembles the dashboard numbers: patient count, today's
// invoice count, cash actually collected today (amount paid, not
// billed totals), and the latest invoices.
func (u *dashboardUsecase) GetStats(ctx context.Context) (*dto.DashboardResponse, error) {
	totalPatients, err := u.patientRepo.Count(ctx)
	if err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, err
	}

	now := u.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todays, err := u.invoiceRepo.FindCreatedBetween(ctx, start, start.AddDate(0, 0, 1))
	if err != nil {
		u.log.Warnf("Failed to fetch today's invoices: %+v", err)
		return nil, err
	}

	revenue := decimal.Zero
	for _, inv := range todays {
		revenue = revenue.Add(inv.AmountPaid)
	}

	recent, err := u.invoiceRepo.FindRecent(ctx, recentInvoiceLimit)
	if err != nil {
		u.log.Warnf("Failed to fetch recent invoices: %+v", err)
		return nil, err
	}

	return &dto.DashboardResponse{
		TotalPatients:  totalPatients,
		InvoicesToday:  len(todays),
		RevenueToday:   revenue,
		RecentInvoices: converter.InvoicesToResponses(recent),
	}, nil
}
