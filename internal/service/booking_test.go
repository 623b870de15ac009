package service

import (
	"context"
	"testing"
	"time"

	"onerental-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBookingFixture() (*MockBookingRepo, *MockEquipmentRepo, *MockUserRepo, *MockEmailService, BookingService) {
	bookingRepo := new(MockBookingRepo)
	equipmentRepo := new(MockEquipmentRepo)
	userRepo := new(MockUserRepo)
	emailSvc := new(MockEmailService)
	svc := NewBookingService(bookingRepo, equipmentRepo, userRepo, emailSvc)
	return bookingRepo, equipmentRepo, userRepo, emailSvc, svc
}

func TestBookingService_CreateRequest(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		bookingRepo, equipmentRepo, userRepo, emailSvc, svc := newBookingFixture()

		eq := &domain.Equipment{ID: "e1", OwnerID: "owner", Title: "Excavator", Rate: 250, Status: domain.EquipmentStatusAvailable}
		renter := &domain.UserProfile{ID: "r1", Name: "Alice", Email: "alice@example.com"}
		owner := &domain.UserProfile{ID: "owner", Email: "owner@example.com"}

		equipmentRepo.On("GetByID", ctx, "e1").Return(eq, nil)
		userRepo.On("GetByID", ctx, "r1").Return(renter, nil)
		userRepo.On("GetByID", ctx, "owner").Return(owner, nil)
		bookingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)
		emailSvc.On("SendBookingRequestNotification", ctx, "owner@example.com", "Alice", "Excavator").Return(nil)

		// 3-day rental at 250/day
		bk, err := svc.CreateRequest(ctx, "r1", "e1", start, start.AddDate(0, 0, 3), "site work")
		require.NoError(t, err)
		assert.NotEmpty(t, bk.ID)
		assert.Equal(t, domain.BookingStatusPending, bk.Status)
		assert.Equal(t, 750.0, bk.TotalAmount)
		assert.Equal(t, "alice@example.com", bk.RenterEmail)
		emailSvc.AssertExpectations(t)
	})

	t.Run("SameDayBillsOneDay", func(t *testing.T) {
		bookingRepo, equipmentRepo, userRepo, emailSvc, svc := newBookingFixture()

		eq := &domain.Equipment{ID: "e1", OwnerID: "owner", Title: "Excavator", Rate: 250, Status: domain.EquipmentStatusAvailable}
		equipmentRepo.On("GetByID", ctx, "e1").Return(eq, nil)
		userRepo.On("GetByID", ctx, "r1").Return(&domain.UserProfile{ID: "r1"}, nil)
		userRepo.On("GetByID", ctx, "owner").Return(&domain.UserProfile{ID: "owner"}, nil)
		bookingRepo.On("Create", ctx, mock.Anything).Return(nil)
		emailSvc.On("SendBookingRequestNotification", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		bk, err := svc.CreateRequest(ctx, "r1", "e1", start, start, "")
		require.NoError(t, err)
		assert.Equal(t, 250.0, bk.TotalAmount)
	})

	t.Run("RejectsInvertedDates", func(t *testing.T) {
		_, _, _, _, svc := newBookingFixture()
		_, err := svc.CreateRequest(ctx, "r1", "e1", start, start.AddDate(0, 0, -1), "")
		assert.ErrorIs(t, err, ErrInvalidDates)
	})

	t.Run("RejectsUnavailableEquipment", func(t *testing.T) {
		_, equipmentRepo, _, _, svc := newBookingFixture()
		eq := &domain.Equipment{ID: "e1", Status: domain.EquipmentStatusMaintenance, Title: "Crane"}
		equipmentRepo.On("GetByID", ctx, "e1").Return(eq, nil)

		_, err := svc.CreateRequest(ctx, "r1", "e1", start, start.AddDate(0, 0, 1), "")
		assert.Error(t, err)
	})
}

func TestBookingService_Transitions(t *testing.T) {
	ctx := context.Background()

	pendingBooking := func() *domain.Booking {
		return &domain.Booking{
			ID:          "b1",
			RenterID:    "r1",
			RenterEmail: "alice@example.com",
			Status:      domain.BookingStatusPending,
			Equipment:   &domain.Equipment{ID: "e1", OwnerID: "owner", Title: "Excavator"},
		}
	}

	t.Run("ApprovePendingToAccepted", func(t *testing.T) {
		bookingRepo, _, _, emailSvc, svc := newBookingFixture()
		bookingRepo.On("GetByID", ctx, "b1").Return(pendingBooking(), nil)
		bookingRepo.On("UpdateStatus", ctx, "b1", domain.BookingStatusAccepted).Return(nil)
		emailSvc.On("SendBookingDecisionNotification", ctx, "alice@example.com", "Excavator", true).Return(nil)

		bk, err := svc.Approve(ctx, "owner", "b1")
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusAccepted, bk.Status)
		emailSvc.AssertExpectations(t)
	})

	t.Run("ApproveByNonOwnerFails", func(t *testing.T) {
		bookingRepo, _, _, _, svc := newBookingFixture()
		bookingRepo.On("GetByID", ctx, "b1").Return(pendingBooking(), nil)

		_, err := svc.Approve(ctx, "intruder", "b1")
		assert.ErrorIs(t, err, ErrUnauthorized)
		bookingRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ApproveNonPendingFails", func(t *testing.T) {
		bookingRepo, _, _, _, svc := newBookingFixture()
		bk := pendingBooking()
		bk.Status = domain.BookingStatusCompleted
		bookingRepo.On("GetByID", ctx, "b1").Return(bk, nil)

		_, err := svc.Approve(ctx, "owner", "b1")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("RejectSendsDecision", func(t *testing.T) {
		bookingRepo, _, _, emailSvc, svc := newBookingFixture()
		bookingRepo.On("GetByID", ctx, "b1").Return(pendingBooking(), nil)
		bookingRepo.On("UpdateStatus", ctx, "b1", domain.BookingStatusRejected).Return(nil)
		emailSvc.On("SendBookingDecisionNotification", ctx, "alice@example.com", "Excavator", false).Return(nil)

		bk, err := svc.Reject(ctx, "owner", "b1")
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusRejected, bk.Status)
	})

	t.Run("DeliverFromAccepted", func(t *testing.T) {
		bookingRepo, _, _, emailSvc, svc := newBookingFixture()
		bk := pendingBooking()
		bk.Status = domain.BookingStatusAccepted
		bookingRepo.On("GetByID", ctx, "b1").Return(bk, nil)
		bookingRepo.On("UpdateStatus", ctx, "b1", domain.BookingStatusDelivered).Return(nil)
		emailSvc.On("SendBookingDeliveredNotification", ctx, "alice@example.com", "Excavator").Return(nil)

		out, err := svc.Deliver(ctx, "owner", "b1")
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusDelivered, out.Status)
	})

	t.Run("CompleteFromDelivered", func(t *testing.T) {
		bookingRepo, _, _, emailSvc, svc := newBookingFixture()
		bk := pendingBooking()
		bk.Status = domain.BookingStatusDelivered
		bk.TotalAmount = 750
		bookingRepo.On("GetByID", ctx, "b1").Return(bk, nil)
		bookingRepo.On("UpdateStatus", ctx, "b1", domain.BookingStatusCompleted).Return(nil)
		emailSvc.On("SendBookingCompletedNotification", ctx, "alice@example.com", "Excavator", 750.0).Return(nil)

		out, err := svc.Complete(ctx, "owner", "b1")
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCompleted, out.Status)
	})

	t.Run("CancelByRenter", func(t *testing.T) {
		bookingRepo, _, _, _, svc := newBookingFixture()
		bookingRepo.On("GetByID", ctx, "b1").Return(pendingBooking(), nil)
		bookingRepo.On("UpdateStatus", ctx, "b1", domain.BookingStatusCancelled).Return(nil)

		out, err := svc.Cancel(ctx, "r1", "b1")
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCancelled, out.Status)
	})

	t.Run("CancelByOtherRenterFails", func(t *testing.T) {
		bookingRepo, _, _, _, svc := newBookingFixture()
		bookingRepo.On("GetByID", ctx, "b1").Return(pendingBooking(), nil)

		_, err := svc.Cancel(ctx, "r2", "b1")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}
