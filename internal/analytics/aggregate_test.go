package analytics

import (
	"testing"
	"time"

	"onerental-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRevenueSeries(t *testing.T) {
	now := date(2025, time.March, 15)

	t.Run("ZeroFilledAndOrdered", func(t *testing.T) {
		series := RevenueSeries(nil, now, 6)
		assert.Len(t, series, 6)
		assert.Equal(t, "2024-10", series[0].Month)
		assert.Equal(t, "2025-03", series[5].Month)
		for _, bucket := range series {
			assert.Zero(t, bucket.Revenue)
		}
	})

	t.Run("BucketsByCreationMonth", func(t *testing.T) {
		bookings := []domain.Booking{
			{Status: domain.BookingStatusAccepted, TotalAmount: 500, CreatedOn: date(2025, time.March, 1)},
			{Status: domain.BookingStatusCompleted, TotalAmount: 250, CreatedOn: date(2025, time.March, 20)},
			{Status: domain.BookingStatusPaid, TotalAmount: 100, CreatedOn: date(2025, time.January, 5)},
			// pending is not recognized revenue
			{Status: domain.BookingStatusPending, TotalAmount: 999, CreatedOn: date(2025, time.March, 2)},
			// delivered counts toward totals but not the series
			{Status: domain.BookingStatusDelivered, TotalAmount: 999, CreatedOn: date(2025, time.March, 3)},
			// outside the window
			{Status: domain.BookingStatusAccepted, TotalAmount: 999, CreatedOn: date(2024, time.June, 1)},
		}

		series := RevenueSeries(bookings, now, 6)
		assert.Len(t, series, 6)
		assert.Equal(t, 750.0, series[5].Revenue) // 2025-03
		assert.Equal(t, 100.0, series[3].Revenue) // 2025-01
		assert.Zero(t, series[4].Revenue)         // 2025-02
	})

	t.Run("SingleBookingLandsInExactlyOneBucket", func(t *testing.T) {
		bookings := []domain.Booking{
			{Status: domain.BookingStatusAccepted, TotalAmount: 1000, CreatedOn: date(2025, time.March, 15)},
		}
		series := RevenueSeries(bookings, now, 12)
		for _, bucket := range series {
			if bucket.Month == "2025-03" {
				assert.Equal(t, 1000.0, bucket.Revenue)
			} else {
				assert.Zero(t, bucket.Revenue)
			}
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		bookings := []domain.Booking{
			{Status: domain.BookingStatusActive, TotalAmount: 42, CreatedOn: date(2025, time.February, 10)},
		}
		first := RevenueSeries(bookings, now, 12)
		second := RevenueSeries(bookings, now, 12)
		assert.Equal(t, first, second)
	})

	t.Run("DefaultsToTwelveMonths", func(t *testing.T) {
		assert.Len(t, RevenueSeries(nil, now, 0), DefaultMonthsBack)
	})
}

func TestTotalRevenue(t *testing.T) {
	bookings := []domain.Booking{
		{Status: domain.BookingStatusAccepted, TotalAmount: 100},
		{Status: domain.BookingStatusDelivered, TotalAmount: 50},
		{Status: domain.BookingStatusReturned, TotalAmount: 25},
		{Status: domain.BookingStatusPending, TotalAmount: 999},
		{Status: domain.BookingStatusRejected, TotalAmount: 999},
		{Status: domain.BookingStatusCancelled, TotalAmount: 999},
	}
	assert.Equal(t, 175.0, TotalRevenue(bookings))
}

func TestRentalHoursInMonth(t *testing.T) {
	now := date(2025, time.March, 15)

	t.Run("ClipsToMonth", func(t *testing.T) {
		bookings := []domain.Booking{
			// spans Feb 27 .. Mar 2: only 1 day falls inside March
			{
				Status:    domain.BookingStatusActive,
				StartDate: date(2025, time.February, 27),
				EndDate:   date(2025, time.March, 2),
			},
		}
		assert.Equal(t, 24, RentalHoursInMonth(bookings, now))
	})

	t.Run("IgnoresNonGoodStatuses", func(t *testing.T) {
		bookings := []domain.Booking{
			{
				Status:    domain.BookingStatusPending,
				StartDate: date(2025, time.March, 1),
				EndDate:   date(2025, time.March, 10),
			},
		}
		assert.Zero(t, RentalHoursInMonth(bookings, now))
	})

	t.Run("NoOverlapContributesNothing", func(t *testing.T) {
		bookings := []domain.Booking{
			{
				Status:    domain.BookingStatusActive,
				StartDate: date(2025, time.January, 1),
				EndDate:   date(2025, time.January, 10),
			},
		}
		assert.Zero(t, RentalHoursInMonth(bookings, now))
	})
}

func TestStatusBreakdown(t *testing.T) {
	bookings := []domain.Booking{
		{Status: domain.BookingStatusPending},
		{Status: domain.BookingStatusPending},
		{Status: domain.BookingStatusCompleted},
	}

	breakdown := StatusBreakdown(bookings)
	assert.Len(t, breakdown, len(domain.AllBookingStatuses))

	counts := make(map[string]int)
	for _, entry := range breakdown {
		counts[entry.Name] = entry.Value
	}
	assert.Equal(t, 2, counts["pending"])
	assert.Equal(t, 1, counts["completed"])
	assert.Zero(t, counts["rejected"])

	// fixed vocabulary order, zero bars included
	assert.Equal(t, string(domain.AllBookingStatuses[0]), breakdown[0].Name)
}

func TestTopCustomers(t *testing.T) {
	bookings := []domain.Booking{
		{RenterID: "r1", RenterEmail: "r1@example.com", TotalAmount: 100, CreatedOn: date(2025, time.January, 1)},
		{RenterID: "r2", RenterEmail: "r2@example.com", TotalAmount: 300, CreatedOn: date(2025, time.February, 1)},
		{RenterID: "r1", RenterEmail: "r1@example.com", TotalAmount: 50, CreatedOn: date(2025, time.March, 1),
			Renter: &domain.UserProfile{Name: "Renter One", Email: "one@example.com"}},
	}

	customers := TopCustomers(bookings, 10)
	assert.Len(t, customers, 2)

	assert.Equal(t, "r2", customers[0].RenterID)
	assert.Equal(t, 300.0, customers[0].Revenue)

	assert.Equal(t, "r1", customers[1].RenterID)
	assert.Equal(t, 2, customers[1].Bookings)
	assert.Equal(t, 150.0, customers[1].Revenue)
	assert.Equal(t, "Renter One", customers[1].Name)
	assert.Equal(t, "one@example.com", customers[1].Email)
	assert.Equal(t, date(2025, time.March, 1), customers[1].LastActivity)

	t.Run("Truncates", func(t *testing.T) {
		assert.Len(t, TopCustomers(bookings, 1), 1)
	})
}

func TestEquipmentPerformance(t *testing.T) {
	equipment := []domain.Equipment{
		{ID: "e1", Title: "Excavator"},
		{ID: "e2", Title: "Crane"},
		{ID: "e3", Title: "Loader"},
	}
	bookings := []domain.Booking{
		// 10 days booked; pending still counts toward booked time
		{EquipmentID: "e1", Status: domain.BookingStatusPending,
			StartDate: date(2025, time.March, 1), EndDate: date(2025, time.March, 11)},
		// 45 days, utilization capped at 1
		{EquipmentID: "e2", Status: domain.BookingStatusActive,
			StartDate: date(2025, time.March, 1), EndDate: date(2025, time.April, 15)},
	}

	perf := EquipmentPerformance(equipment, bookings)
	assert.Len(t, perf, 3)

	assert.Equal(t, 10, perf[0].BookedDays)
	assert.InDelta(t, 10.0/30.0, perf[0].Utilization, 1e-9)
	assert.Equal(t, "ok", perf[0].Status)

	assert.Equal(t, 1.0, perf[1].Utilization)
	assert.Equal(t, "ok", perf[1].Status)

	assert.Zero(t, perf[2].BookedDays)
	assert.Zero(t, perf[2].Utilization)
	assert.Equal(t, "idle", perf[2].Status)
}

func TestActivityFeed(t *testing.T) {
	bookings := []domain.Booking{
		{ID: "b1", Status: domain.BookingStatusPending, RenterEmail: "a@example.com", CreatedOn: date(2025, time.January, 1)},
		{ID: "b2", Status: domain.BookingStatusCompleted, CreatedOn: date(2025, time.March, 1),
			Renter:    &domain.UserProfile{Name: "Alice"},
			Equipment: &domain.Equipment{Title: "Excavator"}},
		{ID: "b3", Status: domain.BookingStatusCancelled, CreatedOn: date(2025, time.February, 1)},
	}

	feed := ActivityFeed(bookings, 2)
	assert.Len(t, feed, 2)
	assert.Equal(t, "b2", feed[0].BookingID)
	assert.Equal(t, "Alice completed a rental of Excavator", feed[0].Message)
	assert.Equal(t, "b3", feed[1].BookingID)

	// the input slice keeps its order
	assert.Equal(t, "b1", bookings[0].ID)
}

func TestDurationDays(t *testing.T) {
	t.Run("SameDayCountsAsOne", func(t *testing.T) {
		d := date(2025, time.March, 1)
		assert.Equal(t, 1, DurationDays(d, d))
	})

	t.Run("PartialDayRoundsUp", func(t *testing.T) {
		start := date(2025, time.March, 1)
		assert.Equal(t, 2, DurationDays(start, start.Add(25*time.Hour)))
	})

	t.Run("WholeDays", func(t *testing.T) {
		start := date(2025, time.March, 1)
		assert.Equal(t, 3, DurationDays(start, start.AddDate(0, 0, 3)))
	})
}

func TestElapsedDays(t *testing.T) {
	d := date(2025, time.March, 1)
	assert.Zero(t, elapsedDays(d, d))
	assert.Zero(t, elapsedDays(d, d.AddDate(0, 0, -1)))
	assert.Equal(t, 1, elapsedDays(d, d.Add(time.Hour)))
}
