package postgres

import (
	"context"
	"database/sql"
	"time"

	"onerental-backend/internal/domain"
	"onerental-backend/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

// bookingColumns selects booking rows with equipment and renter profile
// LEFT-joined, so a booking referencing a missing row still comes back.
const bookingColumns = `b.id, b.equipment_id, b.user_id, b.user_email, b.start_date, b.end_date,
	b.status, b.total_amount, b.notes, b.created_at, b.updated_at,
	e.id, e.owner_id, e.title, e.type, e.location, e.rate, e.status,
	u.id, u.name, u.email, u.phone`

const bookingJoins = ` FROM bookings b
	LEFT JOIN equipment e ON e.id = b.equipment_id
	LEFT JOIN user_profiles u ON u.id = b.user_id`

func (r *bookingRepository) Create(ctx context.Context, bk *domain.Booking) error {
	query := `INSERT INTO bookings (id, equipment_id, user_id, user_email, start_date, end_date, status, total_amount, notes, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	now := time.Now()
	if bk.CreatedOn.IsZero() {
		bk.CreatedOn = now
	}
	bk.UpdatedOn = now
	_, err := r.db.ExecContext(ctx, query, bk.ID, bk.EquipmentID, bk.RenterID, bk.RenterEmail, bk.StartDate, bk.EndDate, bk.Status, bk.TotalAmount, bk.Notes, bk.CreatedOn, bk.UpdatedOn)
	return err
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + bookingJoins + ` WHERE b.id = $1`
	bk, err := scanBooking(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	return bk, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	query := `UPDATE bookings SET status=$1, updated_at=$2 WHERE id=$3`
	_, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	return err
}

func (r *bookingRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + bookingJoins + ` WHERE e.owner_id = $1 ORDER BY b.created_at DESC`
	return r.list(ctx, query, ownerID)
}

func (r *bookingRepository) ListByRenter(ctx context.Context, renterID string) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + bookingJoins + ` WHERE b.user_id = $1 ORDER BY b.created_at DESC`
	return r.list(ctx, query, renterID)
}

func (r *bookingRepository) ListActivePastEnd(ctx context.Context, cutoff time.Time) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + bookingJoins + ` WHERE b.status IN ('active', 'delivered') AND b.end_date < $1 ORDER BY b.end_date ASC`
	return r.list(ctx, query, cutoff)
}

func (r *bookingRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		bk, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *bk)
	}
	return bookings, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	bk := &domain.Booking{}
	var (
		eqID, eqOwner, eqTitle, eqType, eqLocation, eqStatus sql.NullString
		eqRate                                               sql.NullFloat64
		uID, uName, uEmail, uPhone                           sql.NullString
	)
	err := row.Scan(
		&bk.ID, &bk.EquipmentID, &bk.RenterID, &bk.RenterEmail, &bk.StartDate, &bk.EndDate,
		&bk.Status, &bk.TotalAmount, &bk.Notes, &bk.CreatedOn, &bk.UpdatedOn,
		&eqID, &eqOwner, &eqTitle, &eqType, &eqLocation, &eqRate, &eqStatus,
		&uID, &uName, &uEmail, &uPhone,
	)
	if err != nil {
		return nil, err
	}
	if eqID.Valid {
		bk.Equipment = &domain.Equipment{
			ID:       eqID.String,
			OwnerID:  eqOwner.String,
			Title:    eqTitle.String,
			Type:     eqType.String,
			Location: eqLocation.String,
			Rate:     eqRate.Float64,
			Status:   domain.EquipmentStatus(eqStatus.String),
		}
	}
	if uID.Valid {
		bk.Renter = &domain.UserProfile{
			ID:    uID.String,
			Name:  uName.String,
			Email: uEmail.String,
			Phone: uPhone.String,
		}
	}
	return bk, nil
}
