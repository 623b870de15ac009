package repository

import (
	"context"
	"time"

	"onerental-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.UserProfile) error
	GetByID(ctx context.Context, id string) (*domain.UserProfile, error)
	GetByEmail(ctx context.Context, email string) (*domain.UserProfile, error)
	Update(ctx context.Context, user *domain.UserProfile) error
}

type EquipmentRepository interface {
	Create(ctx context.Context, eq *domain.Equipment) error
	GetByID(ctx context.Context, id string) (*domain.Equipment, error)
	Update(ctx context.Context, eq *domain.Equipment) error
	UpdateStatus(ctx context.Context, id string, status domain.EquipmentStatus) error
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Equipment, error)

	// Image management (pending until upload is confirmed)
	CreateImage(ctx context.Context, image *domain.EquipmentImage) error
	GetImageByID(ctx context.Context, imageID string) (*domain.EquipmentImage, error)
	GetImages(ctx context.Context, equipmentID string) ([]domain.EquipmentImage, error)
	ConfirmImage(ctx context.Context, imageID string) error
	SetMainImage(ctx context.Context, equipmentID, imageID string) error
	DeleteImage(ctx context.Context, imageID string) error
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	// GetByID returns the booking with its equipment and renter sub-records
	// joined; a missing join leaves the sub-record nil rather than failing.
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// UpdateStatus is the only mutation the dashboard performs: a
	// single-field update on one row by id.
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Booking, error)
	ListByRenter(ctx context.Context, renterID string) ([]domain.Booking, error)
	// ListActivePastEnd returns active/delivered bookings whose end date is
	// before the cutoff; used by the overdue job.
	ListActivePastEnd(ctx context.Context, cutoff time.Time) ([]domain.Booking, error)
}

type DismissalRepository interface {
	GetUntil(ctx context.Context, ownerID, key string) (time.Time, bool, error)
	SetUntil(ctx context.Context, ownerID, key string, until time.Time) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
