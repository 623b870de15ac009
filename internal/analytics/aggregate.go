// Package analytics derives the owner-dashboard datasets from already-fetched
// equipment and booking rows. Every function is pure and single-pass: no I/O,
// no mutation of the input slices, recomputed from scratch on each fetch.
package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"onerental-backend/internal/domain"
)

// DefaultMonthsBack is the revenue series window.
const DefaultMonthsBack = 12

// utilizationWindowDays is the fixed reference window for equipment
// utilization.
const utilizationWindowDays = 30

// idleUtilizationThreshold marks equipment as idle below this utilization.
const idleUtilizationThreshold = 0.15

// revenueSeriesStatuses is the recognized-revenue set for the monthly series.
// It deliberately excludes delivered/returned while goodStatuses includes
// them; the discrepancy is inherited behavior and must not be unified without
// a product decision.
var revenueSeriesStatuses = map[domain.BookingStatus]bool{
	domain.BookingStatusAccepted:  true,
	domain.BookingStatusActive:    true,
	domain.BookingStatusCompleted: true,
	domain.BookingStatusPaid:      true,
}

// goodStatuses is the broader set counted toward all-time revenue and rental
// hours.
var goodStatuses = map[domain.BookingStatus]bool{
	domain.BookingStatusAccepted:  true,
	domain.BookingStatusActive:    true,
	domain.BookingStatusDelivered: true,
	domain.BookingStatusReturned:  true,
	domain.BookingStatusCompleted: true,
	domain.BookingStatusPaid:      true,
}

// RevenueSeries buckets recognized revenue by creation month over the
// trailing monthsBack months, current month included. The result always has
// exactly monthsBack entries, oldest first, zero-filled for empty months.
func RevenueSeries(bookings []domain.Booking, now time.Time, monthsBack int) []domain.RevenueBucket {
	if monthsBack <= 0 {
		monthsBack = DefaultMonthsBack
	}

	series := make([]domain.RevenueBucket, monthsBack)
	index := make(map[string]int, monthsBack)
	for i := 0; i < monthsBack; i++ {
		m := time.Date(now.Year(), now.Month()-time.Month(monthsBack-1-i), 1, 0, 0, 0, 0, now.Location())
		key := monthKey(m)
		series[i] = domain.RevenueBucket{Month: key}
		index[key] = i
	}

	for _, b := range bookings {
		if !revenueSeriesStatuses[b.Status] {
			continue
		}
		if i, ok := index[monthKey(b.CreatedOn)]; ok {
			series[i].Revenue += b.TotalAmount
		}
	}
	return series
}

// TotalRevenue sums total_amount across all bookings in the good status set,
// with no time window.
func TotalRevenue(bookings []domain.Booking) float64 {
	var total float64
	for _, b := range bookings {
		if goodStatuses[b.Status] {
			total += b.TotalAmount
		}
	}
	return total
}

// RentalHoursInMonth sums, over good-status bookings, the overlap in hours
// between each booking interval and the calendar month containing now. Each
// booking's overlap is ceil'd to whole hours and floored at zero.
func RentalHoursInMonth(bookings []domain.Booking, now time.Time) int {
	monthStart := startOfMonth(now)
	monthEnd := monthStart.AddDate(0, 1, 0)

	var hours int
	for _, b := range bookings {
		if !goodStatuses[b.Status] {
			continue
		}
		s := maxTime(b.StartDate, monthStart)
		e := minTime(b.EndDate, monthEnd)
		h := int(math.Ceil(e.Sub(s).Hours()))
		if h > 0 {
			hours += h
		}
	}
	return hours
}

// StatusBreakdown counts bookings per status over the full fixed vocabulary,
// so charts render zero bars for absent statuses instead of omitting them.
func StatusBreakdown(bookings []domain.Booking) []domain.StatusCount {
	counts := make(map[domain.BookingStatus]int, len(domain.AllBookingStatuses))
	for _, b := range bookings {
		counts[b.Status]++
	}

	breakdown := make([]domain.StatusCount, 0, len(domain.AllBookingStatuses))
	for _, s := range domain.AllBookingStatuses {
		breakdown = append(breakdown, domain.StatusCount{Name: string(s), Value: counts[s]})
	}
	return breakdown
}

// TopCustomers rolls bookings up by renter: booking count, revenue sum and
// most recent activity, sorted by revenue descending and truncated to limit.
func TopCustomers(bookings []domain.Booking, limit int) []domain.CustomerStat {
	byRenter := make(map[string]*domain.CustomerStat)
	order := make([]string, 0)

	for _, b := range bookings {
		stat, ok := byRenter[b.RenterID]
		if !ok {
			stat = &domain.CustomerStat{RenterID: b.RenterID, Email: b.RenterEmail}
			byRenter[b.RenterID] = stat
			order = append(order, b.RenterID)
		}
		stat.Bookings++
		stat.Revenue += b.TotalAmount
		if b.CreatedOn.After(stat.LastActivity) {
			stat.LastActivity = b.CreatedOn
		}
		if b.Renter != nil {
			stat.Name = b.Renter.Name
			if b.Renter.Email != "" {
				stat.Email = b.Renter.Email
			}
		}
	}

	customers := make([]domain.CustomerStat, 0, len(order))
	for _, id := range order {
		customers = append(customers, *byRenter[id])
	}
	sort.SliceStable(customers, func(i, j int) bool {
		return customers[i].Revenue > customers[j].Revenue
	})
	if limit > 0 && len(customers) > limit {
		customers = customers[:limit]
	}
	return customers
}

// EquipmentPerformance computes per-item utilization against a fixed 30-day
// window. Booked days count bookings of every status, pending and rejected
// included; inherited behavior, kept deliberately (see design notes).
func EquipmentPerformance(equipment []domain.Equipment, bookings []domain.Booking) []domain.EquipmentPerformance {
	bookedDays := make(map[string]int, len(equipment))
	for _, b := range bookings {
		bookedDays[b.EquipmentID] += elapsedDays(b.StartDate, b.EndDate)
	}

	perf := make([]domain.EquipmentPerformance, 0, len(equipment))
	for _, e := range equipment {
		days := bookedDays[e.ID]
		util := math.Min(1, float64(days)/utilizationWindowDays)
		status := "ok"
		if util < idleUtilizationThreshold {
			status = "idle"
		}
		perf = append(perf, domain.EquipmentPerformance{
			EquipmentID: e.ID,
			Title:       e.Title,
			BookedDays:  days,
			Utilization: util,
			Status:      status,
		})
	}
	return perf
}

// ActivityFeed returns the most recent bookings, newest first, mapped to
// one-line human-readable messages. The input slice is not reordered.
func ActivityFeed(bookings []domain.Booking, limit int) []domain.ActivityItem {
	sorted := make([]domain.Booking, len(bookings))
	copy(sorted, bookings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedOn.After(sorted[j].CreatedOn)
	})
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	feed := make([]domain.ActivityItem, 0, len(sorted))
	for _, b := range sorted {
		feed = append(feed, domain.ActivityItem{
			BookingID: b.ID,
			Message:   activityMessage(b),
			CreatedOn: b.CreatedOn,
		})
	}
	return feed
}

func activityMessage(b domain.Booking) string {
	who := "A renter"
	if b.Renter != nil && b.Renter.Name != "" {
		who = b.Renter.Name
	} else if b.RenterEmail != "" {
		who = b.RenterEmail
	}
	what := "equipment"
	if b.Equipment != nil && b.Equipment.Title != "" {
		what = b.Equipment.Title
	}

	switch b.Status {
	case domain.BookingStatusPending:
		return fmt.Sprintf("%s requested %s", who, what)
	case domain.BookingStatusRejected:
		return fmt.Sprintf("Request from %s for %s was rejected", who, what)
	case domain.BookingStatusCancelled:
		return fmt.Sprintf("%s cancelled a booking for %s", who, what)
	case domain.BookingStatusCompleted, domain.BookingStatusPaid:
		return fmt.Sprintf("%s completed a rental of %s", who, what)
	default:
		return fmt.Sprintf("Booking for %s by %s is %s", what, who, b.Status)
	}
}
