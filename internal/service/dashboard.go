package service

import (
	"context"
	"time"

	"onerental-backend/internal/analytics"
	"onerental-backend/internal/domain"
	"onerental-backend/internal/logger"
	"onerental-backend/internal/repository"
)

type dashboardService struct {
	equipmentRepo repository.EquipmentRepository
	bookingRepo   repository.BookingRepository
	insightSvc    InsightService
}

func NewDashboardService(
	equipmentRepo repository.EquipmentRepository,
	bookingRepo repository.BookingRepository,
	insightSvc InsightService,
) DashboardService {
	return &dashboardService{
		equipmentRepo: equipmentRepo,
		bookingRepo:   bookingRepo,
		insightSvc:    insightSvc,
	}
}

// GetOwnerDashboard runs the whole pipeline: fetch, risk-annotate, aggregate,
// generate insights. Derived data is never stored; a mutation elsewhere is
// followed by calling this again.
func (s *dashboardService) GetOwnerDashboard(ctx context.Context, ownerID string) (*domain.DashboardData, error) {
	equipment, bookings, err := s.fetch(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	analytics.AnnotateRisk(bookings, now)

	data := &domain.DashboardData{
		Equipment:            equipment,
		Bookings:             bookings,
		TotalRevenue:         analytics.TotalRevenue(bookings),
		RentalHoursThisMonth: analytics.RentalHoursInMonth(bookings, now),
		RevenueSeries:        analytics.RevenueSeries(bookings, now, analytics.DefaultMonthsBack),
		StatusBreakdown:      analytics.StatusBreakdown(bookings),
		TopCustomers:         analytics.TopCustomers(bookings, 10),
		EquipmentPerformance: analytics.EquipmentPerformance(equipment, bookings),
		ActivityFeed:         analytics.ActivityFeed(bookings, 20),
	}

	insights, err := s.insightSvc.ListForOwner(ctx, ownerID)
	if err != nil {
		// Insights are advisory; the dashboard still renders without them.
		logger.Warn("Insight generation failed", "owner_id", ownerID, "error", err)
	} else {
		data.Insights = insights
	}

	return data, nil
}

func (s *dashboardService) RevenueCSV(ctx context.Context, ownerID string) (string, error) {
	_, bookings, err := s.fetch(ctx, ownerID)
	if err != nil {
		return "", err
	}
	series := analytics.RevenueSeries(bookings, time.Now(), analytics.DefaultMonthsBack)
	return analytics.RevenueSeriesCSV(series), nil
}

func (s *dashboardService) fetch(ctx context.Context, ownerID string) ([]domain.Equipment, []domain.Booking, error) {
	equipment, err := s.equipmentRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, nil, err
	}
	bookings, err := s.bookingRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, nil, err
	}

	// Images are non-critical to dashboard math: a failed lookup is logged
	// and the item keeps an empty image list instead of failing the fetch.
	for i := range equipment {
		images, err := s.equipmentRepo.GetImages(ctx, equipment[i].ID)
		if err != nil {
			logger.Warn("Image lookup failed", "equipment_id", equipment[i].ID, "error", err)
			continue
		}
		equipment[i].Images = images
	}

	return equipment, bookings, nil
}
