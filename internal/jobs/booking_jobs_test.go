package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"onerental-backend/internal/config"
	"onerental-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockEmailService struct {
	mock.Mock
}

func (m *mockEmailService) SendBookingRequestNotification(ctx context.Context, ownerEmail, renterName, equipmentTitle string) error {
	args := m.Called(ctx, ownerEmail, renterName, equipmentTitle)
	return args.Error(0)
}
func (m *mockEmailService) SendBookingDecisionNotification(ctx context.Context, renterEmail, equipmentTitle string, accepted bool) error {
	args := m.Called(ctx, renterEmail, equipmentTitle, accepted)
	return args.Error(0)
}
func (m *mockEmailService) SendBookingDeliveredNotification(ctx context.Context, renterEmail, equipmentTitle string) error {
	args := m.Called(ctx, renterEmail, equipmentTitle)
	return args.Error(0)
}
func (m *mockEmailService) SendBookingCompletedNotification(ctx context.Context, email, equipmentTitle string, amount float64) error {
	args := m.Called(ctx, email, equipmentTitle, amount)
	return args.Error(0)
}
func (m *mockEmailService) SendPickupReminder(ctx context.Context, renterEmail, equipmentTitle string, startDate time.Time) error {
	args := m.Called(ctx, renterEmail, equipmentTitle, startDate)
	return args.Error(0)
}
func (m *mockEmailService) SendReturnReminder(ctx context.Context, renterEmail, equipmentTitle string, endDate time.Time) error {
	args := m.Called(ctx, renterEmail, equipmentTitle, endDate)
	return args.Error(0)
}

func newJobFixture(t *testing.T) (*JobRunner, sqlmock.Sqlmock, *mockEmailService) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	email := new(mockEmailService)
	jr := NewJobRunner(db, postgres.NewStore(db), &Services{Email: email}, &config.Config{})
	return jr, dbMock, email
}

// The query joins the renter profile on bookings.user_id, the column the
// booking repository writes.
const pickupReminderQuery = `(?s)SELECT b\.id, b\.start_date, u\.email, e\.title` +
	`.*FROM bookings b` +
	`.*JOIN user_profiles u ON u\.id = b\.user_id` +
	`.*JOIN equipment e ON e\.id = b\.equipment_id` +
	`.*WHERE b\.status = 'accepted'`

func TestSendPickupReminders(t *testing.T) {
	t.Run("EmailsRentersStartingSoon", func(t *testing.T) {
		jr, dbMock, email := newJobFixture(t)
		start := time.Now().Add(12 * time.Hour)

		dbMock.ExpectQuery(pickupReminderQuery).
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "start_date", "email", "title"}).
				AddRow("b1", start, "renter@example.com", "Excavator"))

		email.On("SendPickupReminder", mock.Anything, "renter@example.com", "Excavator",
			mock.MatchedBy(func(ts time.Time) bool { return ts.Equal(start) })).Return(nil)

		jr.SendPickupReminders()

		assert.NoError(t, dbMock.ExpectationsWereMet())
		email.AssertExpectations(t)
	})

	t.Run("SendFailureDoesNotAbortRemaining", func(t *testing.T) {
		jr, dbMock, email := newJobFixture(t)
		start := time.Now().Add(6 * time.Hour)

		dbMock.ExpectQuery(pickupReminderQuery).
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "start_date", "email", "title"}).
				AddRow("b1", start, "first@example.com", "Crane").
				AddRow("b2", start, "second@example.com", "Loader"))

		email.On("SendPickupReminder", mock.Anything, "first@example.com", "Crane", mock.Anything).
			Return(errors.New("sendgrid down"))
		email.On("SendPickupReminder", mock.Anything, "second@example.com", "Loader", mock.Anything).
			Return(nil)

		jr.SendPickupReminders()

		assert.NoError(t, dbMock.ExpectationsWereMet())
		email.AssertExpectations(t)
	})
}
