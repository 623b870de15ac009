package domain

import "time"

// RevenueBucket is a (month, revenue) pair keyed "YYYY-MM".
type RevenueBucket struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// StatusCount is one bar of the booking status breakdown chart.
type StatusCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// CustomerStat is the per-renter rollup across all of that renter's bookings
// with one owner.
type CustomerStat struct {
	RenterID     string    `json:"renter_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Bookings     int       `json:"bookings"`
	Revenue      float64   `json:"revenue"`
	LastActivity time.Time `json:"last_activity"`
}

// EquipmentPerformance reports utilization of one equipment item against a
// fixed 30-day window.
type EquipmentPerformance struct {
	EquipmentID string  `json:"equipment_id"`
	Title       string  `json:"title"`
	BookedDays  int     `json:"booked_days"`
	Utilization float64 `json:"utilization"` // clamped to [0,1]
	Status      string  `json:"status"`      // "idle" or "ok"
}

// ActivityItem is one line of the recent-activity feed.
type ActivityItem struct {
	BookingID string    `json:"booking_id"`
	Message   string    `json:"message"`
	CreatedOn time.Time `json:"created_at"`
}

// DashboardData is everything the owner dashboard renders, recomputed from
// scratch on every fetch.
type DashboardData struct {
	Equipment            []Equipment            `json:"equipment"`
	Bookings             []Booking              `json:"bookings"`
	TotalRevenue         float64                `json:"total_revenue"`
	RentalHoursThisMonth int                    `json:"rental_hours_this_month"`
	RevenueSeries        []RevenueBucket        `json:"revenue_series"`
	StatusBreakdown      []StatusCount          `json:"status_breakdown"`
	TopCustomers         []CustomerStat         `json:"top_customers"`
	EquipmentPerformance []EquipmentPerformance `json:"equipment_performance"`
	ActivityFeed         []ActivityItem         `json:"activity_feed"`
	Insights             []Insight              `json:"insights"`
}
