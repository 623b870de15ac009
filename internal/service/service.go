package service

import (
	"context"
	"errors"
	"time"

	"onerental-backend/internal/domain"
)

var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrInvalidDates      = errors.New("end date must be on or after start date")
)

type DashboardService interface {
	// GetOwnerDashboard fetches the owner's equipment and bookings and
	// recomputes every derived dataset from scratch.
	GetOwnerDashboard(ctx context.Context, ownerID string) (*domain.DashboardData, error)
	RevenueCSV(ctx context.Context, ownerID string) (string, error)
}

type BookingService interface {
	CreateRequest(ctx context.Context, renterID, equipmentID string, startDate, endDate time.Time, notes string) (*domain.Booking, error)
	Approve(ctx context.Context, ownerID, bookingID string) (*domain.Booking, error)
	Reject(ctx context.Context, ownerID, bookingID string) (*domain.Booking, error)
	Deliver(ctx context.Context, ownerID, bookingID string) (*domain.Booking, error)
	Complete(ctx context.Context, ownerID, bookingID string) (*domain.Booking, error)
	Cancel(ctx context.Context, renterID, bookingID string) (*domain.Booking, error)
	ListByRenter(ctx context.Context, renterID string) ([]domain.Booking, error)
}

type EquipmentService interface {
	AddEquipment(ctx context.Context, eq *domain.Equipment) error
	GetEquipment(ctx context.Context, id string) (*domain.Equipment, error)
	UpdateEquipment(ctx context.Context, ownerID string, eq *domain.Equipment) error
	SetStatus(ctx context.Context, ownerID, equipmentID string, status domain.EquipmentStatus) error
	ListMyEquipment(ctx context.Context, ownerID string) ([]domain.Equipment, error)

	RequestImageUpload(ctx context.Context, ownerID, equipmentID, fileName, contentType string, isMain bool) (*domain.EquipmentImage, string, error) // image, uploadURL
	ConfirmImageUpload(ctx context.Context, ownerID, imageID string) (*domain.EquipmentImage, error)
	SetMainImage(ctx context.Context, ownerID, equipmentID, imageID string) error
	DeleteImage(ctx context.Context, ownerID, imageID string) error
	ImageDownloadURL(ctx context.Context, equipmentID, imageID string) (string, error)
}

type InsightService interface {
	ListForOwner(ctx context.Context, ownerID string) ([]domain.Insight, error)
	Snooze(ctx context.Context, ownerID, insightID string) error
	Dismiss(ctx context.Context, ownerID, insightID string) error
}

type AuthService interface {
	Signup(ctx context.Context, name, email, phone, password string, roles []domain.UserRole) (*domain.UserProfile, string, string, error) // user, access, refresh
	Login(ctx context.Context, email, password string) (string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type EmailService interface {
	SendBookingRequestNotification(ctx context.Context, ownerEmail, renterName, equipmentTitle string) error
	SendBookingDecisionNotification(ctx context.Context, renterEmail, equipmentTitle string, accepted bool) error
	SendBookingDeliveredNotification(ctx context.Context, renterEmail, equipmentTitle string) error
	SendBookingCompletedNotification(ctx context.Context, email, equipmentTitle string, amount float64) error
	SendPickupReminder(ctx context.Context, renterEmail, equipmentTitle string, startDate time.Time) error
	SendReturnReminder(ctx context.Context, renterEmail, equipmentTitle string, endDate time.Time) error
}
