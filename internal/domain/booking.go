package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusAccepted  BookingStatus = "accepted"
	BookingStatusActive    BookingStatus = "active"
	BookingStatusDelivered BookingStatus = "delivered"
	BookingStatusReturned  BookingStatus = "returned"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusPaid      BookingStatus = "paid"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// AllBookingStatuses is the full status vocabulary in lifecycle order, terminal
// negative states last. Charts iterate this so absent statuses still show a
// zero bar.
var AllBookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusAccepted,
	BookingStatusActive,
	BookingStatusDelivered,
	BookingStatusReturned,
	BookingStatusCompleted,
	BookingStatusPaid,
	BookingStatusRejected,
	BookingStatusCancelled,
}

// IsTerminal reports whether the status is one of the negative terminal states.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusRejected || s == BookingStatusCancelled
}

type Booking struct {
	ID          string        `json:"id"`
	EquipmentID string        `json:"equipment_id"`
	RenterID    string        `json:"user_id"`
	RenterEmail string        `json:"user_email"`
	StartDate   time.Time     `json:"start_date"`
	EndDate     time.Time     `json:"end_date"` // inclusive, must be >= StartDate
	Status      BookingStatus `json:"status"`
	TotalAmount float64       `json:"total_amount"`
	Notes       string        `json:"notes,omitempty"`
	CreatedOn   time.Time     `json:"created_at"`
	UpdatedOn   time.Time     `json:"updated_at"`

	// Joined sub-records. Populated by list/get queries; nil when the
	// referenced row is missing. Missing joins degrade to empty fields
	// downstream, never to an error.
	Equipment *Equipment   `json:"equipment,omitempty"`
	Renter    *UserProfile `json:"user,omitempty"`

	// Risk is derived per fetch cycle, never stored.
	Risk *BookingRisk `json:"risk,omitempty"`
}

type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// BookingRisk is an advisory fraud/operational risk annotation. It never
// blocks a status transition.
type BookingRisk struct {
	Score   int       `json:"score"` // 0-100
	Level   RiskLevel `json:"level"`
	Reasons []string  `json:"reasons"`
}
