package service

import (
	"context"
	"io"
	"time"

	"onerental-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockBookingRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Booking, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByRenter(ctx context.Context, renterID string) ([]domain.Booking, error) {
	args := m.Called(ctx, renterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListActivePastEnd(ctx context.Context, cutoff time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

// MockEquipmentRepo
type MockEquipmentRepo struct {
	mock.Mock
}

func (m *MockEquipmentRepo) Create(ctx context.Context, eq *domain.Equipment) error {
	args := m.Called(ctx, eq)
	return args.Error(0)
}
func (m *MockEquipmentRepo) GetByID(ctx context.Context, id string) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) Update(ctx context.Context, eq *domain.Equipment) error {
	args := m.Called(ctx, eq)
	return args.Error(0)
}
func (m *MockEquipmentRepo) UpdateStatus(ctx context.Context, id string, status domain.EquipmentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockEquipmentRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Equipment, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) CreateImage(ctx context.Context, image *domain.EquipmentImage) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}
func (m *MockEquipmentRepo) GetImageByID(ctx context.Context, imageID string) (*domain.EquipmentImage, error) {
	args := m.Called(ctx, imageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EquipmentImage), args.Error(1)
}
func (m *MockEquipmentRepo) GetImages(ctx context.Context, equipmentID string) ([]domain.EquipmentImage, error) {
	args := m.Called(ctx, equipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EquipmentImage), args.Error(1)
}
func (m *MockEquipmentRepo) ConfirmImage(ctx context.Context, imageID string) error {
	args := m.Called(ctx, imageID)
	return args.Error(0)
}
func (m *MockEquipmentRepo) SetMainImage(ctx context.Context, equipmentID, imageID string) error {
	args := m.Called(ctx, equipmentID, imageID)
	return args.Error(0)
}
func (m *MockEquipmentRepo) DeleteImage(ctx context.Context, imageID string) error {
	args := m.Called(ctx, imageID)
	return args.Error(0)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.UserProfile) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.UserProfile) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockDismissalRepo
type MockDismissalRepo struct {
	mock.Mock
}

func (m *MockDismissalRepo) GetUntil(ctx context.Context, ownerID, key string) (time.Time, bool, error) {
	args := m.Called(ctx, ownerID, key)
	return args.Get(0).(time.Time), args.Bool(1), args.Error(2)
}
func (m *MockDismissalRepo) SetUntil(ctx context.Context, ownerID, key string, until time.Time) error {
	args := m.Called(ctx, ownerID, key, until)
	return args.Error(0)
}
func (m *MockDismissalRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBookingRequestNotification(ctx context.Context, ownerEmail, renterName, equipmentTitle string) error {
	args := m.Called(ctx, ownerEmail, renterName, equipmentTitle)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingDecisionNotification(ctx context.Context, renterEmail, equipmentTitle string, accepted bool) error {
	args := m.Called(ctx, renterEmail, equipmentTitle, accepted)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingDeliveredNotification(ctx context.Context, renterEmail, equipmentTitle string) error {
	args := m.Called(ctx, renterEmail, equipmentTitle)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingCompletedNotification(ctx context.Context, email, equipmentTitle string, amount float64) error {
	args := m.Called(ctx, email, equipmentTitle, amount)
	return args.Error(0)
}
func (m *MockEmailService) SendPickupReminder(ctx context.Context, renterEmail, equipmentTitle string, startDate time.Time) error {
	args := m.Called(ctx, renterEmail, equipmentTitle, startDate)
	return args.Error(0)
}
func (m *MockEmailService) SendReturnReminder(ctx context.Context, renterEmail, equipmentTitle string, endDate time.Time) error {
	args := m.Called(ctx, renterEmail, equipmentTitle, endDate)
	return args.Error(0)
}

// MockInsightService
type MockInsightService struct {
	mock.Mock
}

func (m *MockInsightService) ListForOwner(ctx context.Context, ownerID string) ([]domain.Insight, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Insight), args.Error(1)
}
func (m *MockInsightService) Snooze(ctx context.Context, ownerID, insightID string) error {
	args := m.Called(ctx, ownerID, insightID)
	return args.Error(0)
}
func (m *MockInsightService) Dismiss(ctx context.Context, ownerID, insightID string) error {
	args := m.Called(ctx, ownerID, insightID)
	return args.Error(0)
}

// MockStorage
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) GeneratePresignedUploadURL(ctx context.Context, key string, contentType string, expiresIn time.Duration) (string, error) {
	args := m.Called(ctx, key, contentType, expiresIn)
	return args.String(0), args.Error(1)
}
func (m *MockStorage) GeneratePresignedDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	args := m.Called(ctx, key, expiresIn)
	return args.String(0), args.Error(1)
}
func (m *MockStorage) FileExists(ctx context.Context, key string) (bool, int64, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}
func (m *MockStorage) DeleteFile(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
func (m *MockStorage) SaveFile(key string, reader io.Reader) error {
	args := m.Called(key, reader)
	return args.Error(0)
}
func (m *MockStorage) ReadFile(key string) (io.ReadCloser, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}
