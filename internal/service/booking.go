package service

import (
	"context"
	"fmt"
	"time"

	"onerental-backend/internal/analytics"
	"onerental-backend/internal/domain"
	"onerental-backend/internal/logger"
	"onerental-backend/internal/repository"

	"github.com/google/uuid"
)

type bookingService struct {
	bookingRepo   repository.BookingRepository
	equipmentRepo repository.EquipmentRepository
	userRepo      repository.UserRepository
	emailSvc      EmailService
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	equipmentRepo repository.EquipmentRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) BookingService {
	return &bookingService{
		bookingRepo:   bookingRepo,
		equipmentRepo: equipmentRepo,
		userRepo:      userRepo,
		emailSvc:      emailSvc,
	}
}

func (s *bookingService) CreateRequest(ctx context.Context, renterID, equipmentID string, startDate, endDate time.Time, notes string) (*domain.Booking, error) {
	if endDate.Before(startDate) {
		return nil, ErrInvalidDates
	}

	eq, err := s.equipmentRepo.GetByID(ctx, equipmentID)
	if err != nil {
		return nil, fmt.Errorf("equipment lookup failed: %w", err)
	}
	if eq.Status != domain.EquipmentStatusAvailable {
		return nil, fmt.Errorf("equipment %s is not available", eq.Title)
	}

	renter, err := s.userRepo.GetByID(ctx, renterID)
	if err != nil {
		return nil, fmt.Errorf("renter lookup failed: %w", err)
	}

	days := analytics.DurationDays(startDate, endDate)
	booking := &domain.Booking{
		ID:          uuid.NewString(),
		EquipmentID: equipmentID,
		RenterID:    renterID,
		RenterEmail: renter.Email,
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      domain.BookingStatusPending,
		TotalAmount: eq.Rate * float64(days),
		Notes:       notes,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}
	booking.Equipment = eq
	booking.Renter = renter

	s.notifyOwnerOfRequest(ctx, eq, renter)
	return booking, nil
}

// transition validates and applies one single-field status update. The risk
// annotation is advisory and never consulted here.
func (s *bookingService) transition(ctx context.Context, bookingID string, from []domain.BookingStatus, to domain.BookingStatus, authorize func(*domain.Booking) bool) (*domain.Booking, error) {
	bk, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !authorize(bk) {
		return nil, ErrUnauthorized
	}
	allowed := false
	for _, f := range from {
		if bk.Status == f {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, bk.Status, to)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, to); err != nil {
		return nil, err
	}
	bk.Status = to
	return bk, nil
}

func (s *bookingService) ownedBy(ownerID string) func(*domain.Booking) bool {
	return func(bk *domain.Booking) bool {
		return bk.Equipment != nil && bk.Equipment.OwnerID == ownerID
	}
}

func (s *bookingService) Approve(ctx context.Context, ownerID, bookingID string) (*domain.Booking, error) {
	bk, err := s.transition(ctx, bookingID,
		[]domain.BookingStatus{domain.BookingStatusPending},
		domain.BookingStatusAccepted, s.ownedBy(ownerID))
	if err != nil {
		return nil, err
	}
	s.notifyRenterOfDecision(ctx, bk, true)
	return bk, nil
}

func (s *bookingService) Reject(ctx context.Context, ownerID, bookingID string) (*domain.Booking, error) {
	bk, err := s.transition(ctx, bookingID,
		[]domain.BookingStatus{domain.BookingStatusPending},
		domain.BookingStatusRejected, s.ownedBy(ownerID))
	if err != nil {
		return nil, err
	}
	s.notifyRenterOfDecision(ctx, bk, false)
	return bk, nil
}

func (s *bookingService) Deliver(ctx context.Context, ownerID, bookingID string) (*domain.Booking, error) {
	bk, err := s.transition(ctx, bookingID,
		[]domain.BookingStatus{domain.BookingStatusAccepted, domain.BookingStatusActive},
		domain.BookingStatusDelivered, s.ownedBy(ownerID))
	if err != nil {
		return nil, err
	}
	if bk.RenterEmail != "" {
		if err := s.emailSvc.SendBookingDeliveredNotification(ctx, bk.RenterEmail, equipmentTitle(bk)); err != nil {
			logger.Warn("Delivery notification failed", "booking_id", bk.ID, "error", err)
		}
	}
	return bk, nil
}

func (s *bookingService) Complete(ctx context.Context, ownerID, bookingID string) (*domain.Booking, error) {
	bk, err := s.transition(ctx, bookingID,
		[]domain.BookingStatus{domain.BookingStatusActive, domain.BookingStatusDelivered},
		domain.BookingStatusCompleted, s.ownedBy(ownerID))
	if err != nil {
		return nil, err
	}
	if bk.RenterEmail != "" {
		if err := s.emailSvc.SendBookingCompletedNotification(ctx, bk.RenterEmail, equipmentTitle(bk), bk.TotalAmount); err != nil {
			logger.Warn("Completion notification failed", "booking_id", bk.ID, "error", err)
		}
	}
	return bk, nil
}

func (s *bookingService) Cancel(ctx context.Context, renterID, bookingID string) (*domain.Booking, error) {
	return s.transition(ctx, bookingID,
		[]domain.BookingStatus{domain.BookingStatusPending, domain.BookingStatusAccepted},
		domain.BookingStatusCancelled,
		func(bk *domain.Booking) bool { return bk.RenterID == renterID })
}

func (s *bookingService) ListByRenter(ctx context.Context, renterID string) ([]domain.Booking, error) {
	return s.bookingRepo.ListByRenter(ctx, renterID)
}

func (s *bookingService) notifyOwnerOfRequest(ctx context.Context, eq *domain.Equipment, renter *domain.UserProfile) {
	owner, err := s.userRepo.GetByID(ctx, eq.OwnerID)
	if err != nil {
		logger.Warn("Owner lookup for notification failed", "owner_id", eq.OwnerID, "error", err)
		return
	}
	if err := s.emailSvc.SendBookingRequestNotification(ctx, owner.Email, renter.Name, eq.Title); err != nil {
		logger.Warn("Request notification failed", "owner_id", eq.OwnerID, "error", err)
	}
}

func (s *bookingService) notifyRenterOfDecision(ctx context.Context, bk *domain.Booking, accepted bool) {
	if bk.RenterEmail == "" {
		return
	}
	if err := s.emailSvc.SendBookingDecisionNotification(ctx, bk.RenterEmail, equipmentTitle(bk), accepted); err != nil {
		logger.Warn("Decision notification failed", "booking_id", bk.ID, "error", err)
	}
}

func equipmentTitle(bk *domain.Booking) string {
	if bk.Equipment != nil {
		return bk.Equipment.Title
	}
	return "equipment"
}
