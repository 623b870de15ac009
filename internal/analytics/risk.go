package analytics

import (
	"time"

	"onerental-backend/internal/domain"
)

const (
	riskBaseScore = 50

	highValueAmount   = 100000
	mediumValueAmount = 50000

	longDurationDays   = 21
	mediumDurationDays = 10

	lastMinuteLeadTime = 48 * time.Hour
	veryNewRequestAge  = 24 * time.Hour
)

// riskInput is everything the scoring rules can look at.
type riskInput struct {
	repeatRenter bool
	amount       float64
	durationDays int
	leadTime     time.Duration // start_date - created_at
	age          time.Duration // now - created_at
}

// riskRule is one row of the scoring policy: condition, score delta, reason.
// The policy is data so each rule is testable and auditable in isolation.
type riskRule struct {
	reason string
	delta  int
	when   func(in riskInput) bool
}

var riskRules = []riskRule{
	{"Repeat customer", -10, func(in riskInput) bool { return in.repeatRenter }},
	{"New customer", 10, func(in riskInput) bool { return !in.repeatRenter }},
	{"High value booking", 20, func(in riskInput) bool { return in.amount > highValueAmount }},
	{"Medium value booking", 12, func(in riskInput) bool {
		return in.amount > mediumValueAmount && in.amount <= highValueAmount
	}},
	{"Long duration", 12, func(in riskInput) bool { return in.durationDays > longDurationDays }},
	{"Medium duration", 6, func(in riskInput) bool {
		return in.durationDays > mediumDurationDays && in.durationDays <= longDurationDays
	}},
	{"Last-minute booking", 8, func(in riskInput) bool { return in.leadTime <= lastMinuteLeadTime }},
	{"Very new request", 4, func(in riskInput) bool { return in.age <= veryNewRequestAge }},
}

// ScoreBooking computes the advisory risk annotation for one booking.
// renterBookingCount is the number of bookings the same renter has with this
// owner, the scored booking included; two or more marks a repeat customer.
// The score starts at 50, applies every matching rule and is clamped to
// [0,100]. Scoring never blocks a transition.
func ScoreBooking(b domain.Booking, renterBookingCount int, now time.Time) domain.BookingRisk {
	in := riskInput{
		repeatRenter: renterBookingCount >= 2,
		amount:       b.TotalAmount,
		durationDays: DurationDays(b.StartDate, b.EndDate),
		leadTime:     b.StartDate.Sub(b.CreatedOn),
		age:          now.Sub(b.CreatedOn),
	}

	score := riskBaseScore
	var reasons []string
	for _, rule := range riskRules {
		if rule.when(in) {
			score += rule.delta
			reasons = append(reasons, rule.reason)
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return domain.BookingRisk{Score: score, Level: riskLevel(score), Reasons: reasons}
}

func riskLevel(score int) domain.RiskLevel {
	switch {
	case score >= 70:
		return domain.RiskLevelHigh
	case score >= 50:
		return domain.RiskLevelMedium
	default:
		return domain.RiskLevelLow
	}
}

// AnnotateRisk fills the Risk field of every booking in place, counting each
// renter's bookings within the same slice for the repeat-customer rule.
func AnnotateRisk(bookings []domain.Booking, now time.Time) {
	perRenter := make(map[string]int, len(bookings))
	for _, b := range bookings {
		perRenter[b.RenterID]++
	}
	for i := range bookings {
		risk := ScoreBooking(bookings[i], perRenter[bookings[i].RenterID], now)
		bookings[i].Risk = &risk
	}
}
