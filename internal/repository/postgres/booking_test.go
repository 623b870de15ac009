package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"onerental-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookingRowColumns = []string{
	"id", "equipment_id", "user_id", "user_email", "start_date", "end_date",
	"status", "total_amount", "notes", "created_at", "updated_at",
	"e_id", "e_owner_id", "e_title", "e_type", "e_location", "e_rate", "e_status",
	"u_id", "u_name", "u_email", "u_phone",
}

func TestBookingRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(bookingRowColumns).
			AddRow("b1", "e1", "r1", "alice@example.com", now, now.AddDate(0, 0, 3),
				"pending", 750.0, "site work", now, now,
				"e1", "owner", "Excavator", "excavator", "Austin", 250.0, "available",
				"r1", "Alice", "alice@example.com", "555-0100")

		mock.ExpectQuery("SELECT (.+) FROM bookings b").
			WithArgs("b1").
			WillReturnRows(rows)

		bk, err := repo.GetByID(ctx, "b1")
		require.NoError(t, err)
		assert.Equal(t, "b1", bk.ID)
		assert.Equal(t, domain.BookingStatusPending, bk.Status)
		require.NotNil(t, bk.Equipment)
		assert.Equal(t, "owner", bk.Equipment.OwnerID)
		require.NotNil(t, bk.Renter)
		assert.Equal(t, "Alice", bk.Renter.Name)
	})

	t.Run("MissingJoinLeavesSubRecordsNil", func(t *testing.T) {
		rows := sqlmock.NewRows(bookingRowColumns).
			AddRow("b1", "e1", "r1", "alice@example.com", now, now.AddDate(0, 0, 3),
				"pending", 750.0, "", now, now,
				nil, nil, nil, nil, nil, nil, nil,
				nil, nil, nil, nil)

		mock.ExpectQuery("SELECT (.+) FROM bookings b").
			WithArgs("b1").
			WillReturnRows(rows)

		bk, err := repo.GetByID(ctx, "b1")
		require.NoError(t, err)
		assert.Nil(t, bk.Equipment)
		assert.Nil(t, bk.Renter)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM bookings b").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestBookingRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()

	bk := &domain.Booking{
		ID:          "b1",
		EquipmentID: "e1",
		RenterID:    "r1",
		RenterEmail: "alice@example.com",
		StartDate:   time.Now(),
		EndDate:     time.Now().AddDate(0, 0, 3),
		Status:      domain.BookingStatusPending,
		TotalAmount: 750,
	}

	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(bk.ID, bk.EquipmentID, bk.RenterID, bk.RenterEmail, bk.StartDate, bk.EndDate,
			bk.Status, bk.TotalAmount, bk.Notes, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(ctx, bk))
	assert.False(t, bk.CreatedOn.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()

	mock.ExpectExec("UPDATE bookings SET status").
		WithArgs(domain.BookingStatusAccepted, sqlmock.AnyArg(), "b1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(ctx, "b1", domain.BookingStatusAccepted))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_ListByOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows(bookingRowColumns).
		AddRow("b1", "e1", "r1", "a@example.com", now, now, "completed", 100.0, "", now, now,
			"e1", "owner", "Excavator", "excavator", "Austin", 250.0, "available",
			"r1", "Alice", "a@example.com", "").
		AddRow("b2", "e1", "r2", "b@example.com", now, now, "pending", 200.0, "", now, now,
			"e1", "owner", "Excavator", "excavator", "Austin", 250.0, "available",
			"r2", "Bob", "b@example.com", "")

	mock.ExpectQuery("SELECT (.+) FROM bookings b").
		WithArgs("owner").
		WillReturnRows(rows)

	bookings, err := repo.ListByOwner(ctx, "owner")
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "b1", bookings[0].ID)
	assert.Equal(t, "Bob", bookings[1].Renter.Name)
}
