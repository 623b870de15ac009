package jobs

import (
	"context"
	"time"

	"onerental-backend/internal/domain"
	"onerental-backend/internal/logger"
)

// MarkOverdueRentals moves active or delivered bookings past their end date
// to returned and reminds the renter to hand the equipment back.
func (jr *JobRunner) MarkOverdueRentals() {
	jr.runWithRecovery("MarkOverdueRentals", func() {
		ctx := context.Background()
		now := time.Now()

		overdue, err := jr.store.BookingRepository.ListActivePastEnd(ctx, now)
		if err != nil {
			logger.Error("Failed to list overdue bookings", "error", err)
			return
		}

		count := 0
		for _, bk := range overdue {
			if err := jr.store.BookingRepository.UpdateStatus(ctx, bk.ID, domain.BookingStatusReturned); err != nil {
				logger.Error("Failed to mark booking returned", "booking_id", bk.ID, "error", err)
				continue
			}
			count++

			if bk.Renter == nil || bk.Equipment == nil {
				continue
			}
			if err := jr.services.Email.SendReturnReminder(ctx, bk.Renter.Email, bk.Equipment.Title, bk.EndDate); err != nil {
				logger.Warn("Failed to send return reminder", "booking_id", bk.ID, "error", err)
			}
		}

		logger.Info("Marked bookings as returned", "count", count)
	})
}

// SendPickupReminders emails renters whose accepted booking starts within
// the next 24 hours.
func (jr *JobRunner) SendPickupReminders() {
	jr.runWithRecovery("SendPickupReminders", func() {
		ctx := context.Background()

		query := `
			SELECT b.id, b.start_date, u.email, e.title
			FROM bookings b
			JOIN user_profiles u ON u.id = b.user_id
			JOIN equipment e ON e.id = b.equipment_id
			WHERE b.status = 'accepted'
			  AND b.start_date >= $1
			  AND b.start_date < $2
		`

		now := time.Now()
		rows, err := jr.db.QueryContext(ctx, query, now, now.Add(24*time.Hour))
		if err != nil {
			logger.Error("Failed to query upcoming bookings", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				bookingID string
				startDate time.Time
				email     string
				title     string
			)
			if err := rows.Scan(&bookingID, &startDate, &email, &title); err != nil {
				logger.Error("Failed to scan upcoming booking", "error", err)
				continue
			}
			if err := jr.services.Email.SendPickupReminder(ctx, email, title, startDate); err != nil {
				logger.Warn("Failed to send pickup reminder", "booking_id", bookingID, "error", err)
				continue
			}
			count++
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating upcoming bookings", "error", err)
			return
		}

		logger.Info("Sent pickup reminders", "count", count)
	})
}
