// Package insights turns an owner's equipment and booking rows into a short,
// ranked list of advisory recommendations. Generation is a pure function of
// (equipment, bookings, now, dismissal state); ranking, truncation and
// dismissal filtering are the only cross-cutting steps.
package insights

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"onerental-backend/internal/domain"
)

const (
	// maxInsights caps the ranked list shown to an owner.
	maxInsights = 6

	utilizationWindowDays = 60
	priceRuleUtilization  = 0.8

	idleWarnDays = 30
	idleHighDays = 60
	// neverRentedDays is the sentinel for equipment with no bookings at all;
	// it always clears the high-impact idle threshold on purpose.
	neverRentedDays = 999

	maintenanceDueDays = 200

	demandWindowDays = 30
	demandWarnLift   = 0.30
	demandHighLift   = 0.60
)

var impactRank = map[domain.InsightImpact]int{
	domain.InsightImpactHigh:   3,
	domain.InsightImpactMedium: 2,
	domain.InsightImpactLow:    1,
}

type Generator struct {
	dismissals *Dismissals
}

func NewGenerator(store KeyValueStore) *Generator {
	return &Generator{dismissals: NewDismissals(store)}
}

// Generate evaluates every rule, drops insights inside an unexpired
// suppression window, ranks the rest by impact (stable within equal impact)
// and truncates to the cap.
func (g *Generator) Generate(ctx context.Context, equipment []domain.Equipment, bookings []domain.Booking, now time.Time) []domain.Insight {
	candidates := evaluateRules(equipment, bookings, now)

	visible := candidates[:0]
	for _, ins := range candidates {
		if !g.dismissals.Suppressed(ctx, ins.ID, now) {
			visible = append(visible, ins)
		}
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return impactRank[visible[i].Impact] > impactRank[visible[j].Impact]
	})
	if len(visible) > maxInsights {
		visible = visible[:maxInsights]
	}
	return visible
}

// Snooze suppresses an insight for seven days.
func (g *Generator) Snooze(ctx context.Context, insightID string, now time.Time) error {
	return g.dismissals.Snooze(ctx, insightID, now)
}

// Dismiss suppresses an insight permanently.
func (g *Generator) Dismiss(ctx context.Context, insightID string, now time.Time) error {
	return g.dismissals.Dismiss(ctx, insightID, now)
}

func evaluateRules(equipment []domain.Equipment, bookings []domain.Booking, now time.Time) []domain.Insight {
	byEquipment := make(map[string][]domain.Booking, len(equipment))
	for _, b := range bookings {
		byEquipment[b.EquipmentID] = append(byEquipment[b.EquipmentID], b)
	}

	var out []domain.Insight
	for _, e := range equipment {
		out = append(out, equipmentRules(e, byEquipment[e.ID], now)...)
	}
	out = append(out, demandRules(equipment, bookings, now)...)
	return out
}

// equipmentRules evaluates the per-item price, idle and maintenance rules.
func equipmentRules(e domain.Equipment, bookings []domain.Booking, now time.Time) []domain.Insight {
	var out []domain.Insight

	if trailingUtilization(bookings, now) >= priceRuleUtilization {
		out = append(out, domain.Insight{
			ID:          "price-" + e.ID,
			Type:        domain.InsightTypeOpportunity,
			Impact:      domain.InsightImpactHigh,
			Title:       fmt.Sprintf("Raise the rate on %s", e.Title),
			Description: fmt.Sprintf("%s has been booked nearly non-stop for the past %d days. Demand supports an 8-12%% rate increase.", e.Title, utilizationWindowDays),
			Action:      "Adjust pricing",
			EquipmentID: e.ID,
		})
	}

	if idle := daysSinceLastBooking(bookings, now); idle >= idleWarnDays {
		impact := domain.InsightImpactMedium
		if idle >= idleHighDays {
			impact = domain.InsightImpactHigh
		}
		out = append(out, domain.Insight{
			ID:          "idle-" + e.ID,
			Type:        domain.InsightTypeWarning,
			Impact:      impact,
			Title:       fmt.Sprintf("%s is sitting idle", e.Title),
			Description: fmt.Sprintf("No rental has ended on %s for %d days. Consider a discount or promotion to bring it back into rotation.", e.Title, idle),
			Action:      "Run a promotion",
			EquipmentID: e.ID,
		})
	}

	if totalBookedDays(bookings) >= maintenanceDueDays {
		out = append(out, domain.Insight{
			ID:          "maint-" + e.ID,
			Type:        domain.InsightTypeWarning,
			Impact:      domain.InsightImpactHigh,
			Title:       fmt.Sprintf("Maintenance due for %s", e.Title),
			Description: fmt.Sprintf("%s has accumulated over %d booked days. Schedule maintenance before wear becomes downtime.", e.Title, maintenanceDueDays),
			Action:      "Schedule maintenance",
			EquipmentID: e.ID,
		})
	}

	return out
}

// demandRules compares booking volume in the trailing 30 days against the
// prior 30 days, globally and per equipment type. The lift is only computed
// when the prior window is non-empty.
func demandRules(equipment []domain.Equipment, bookings []domain.Booking, now time.Time) []domain.Insight {
	typeOf := make(map[string]string, len(equipment))
	typeOrder := make([]string, 0)
	seenType := make(map[string]bool)
	for _, e := range equipment {
		typeOf[e.ID] = e.Type
		if e.Type != "" && !seenType[e.Type] {
			seenType[e.Type] = true
			typeOrder = append(typeOrder, e.Type)
		}
	}

	windowStart := now.AddDate(0, 0, -demandWindowDays)
	priorStart := now.AddDate(0, 0, -2*demandWindowDays)

	var curGlobal, prevGlobal int
	curByType := make(map[string]int)
	prevByType := make(map[string]int)
	for _, b := range bookings {
		switch {
		case b.CreatedOn.After(windowStart):
			curGlobal++
			curByType[typeOf[b.EquipmentID]]++
		case b.CreatedOn.After(priorStart):
			prevGlobal++
			prevByType[typeOf[b.EquipmentID]]++
		}
	}

	var out []domain.Insight
	if impact, lift, ok := demandLift(curGlobal, prevGlobal); ok {
		out = append(out, domain.Insight{
			ID:          "demand-global",
			Type:        domain.InsightTypePrediction,
			Impact:      impact,
			Title:       "Demand is picking up",
			Description: fmt.Sprintf("Booking requests are up %.0f%% over the previous %d days. Expect elevated demand across your listings.", lift*100, demandWindowDays),
		})
	}
	for _, t := range typeOrder {
		if impact, lift, ok := demandLift(curByType[t], prevByType[t]); ok {
			out = append(out, domain.Insight{
				ID:          "demand-type-" + t,
				Type:        domain.InsightTypePrediction,
				Impact:      impact,
				Title:       fmt.Sprintf("%s demand is rising", t),
				Description: fmt.Sprintf("Requests for %s equipment are up %.0f%% over the previous %d days.", t, lift*100, demandWindowDays),
			})
		}
	}
	return out
}

func demandLift(cur, prev int) (domain.InsightImpact, float64, bool) {
	if prev <= 0 {
		return "", 0, false
	}
	lift := float64(cur-prev) / float64(prev)
	switch {
	case lift >= demandHighLift:
		return domain.InsightImpactHigh, lift, true
	case lift >= demandWarnLift:
		return domain.InsightImpactMedium, lift, true
	default:
		return "", 0, false
	}
}

// trailingUtilization is the fraction of the trailing 60-day window covered
// by this equipment's booking intervals, capped at 1.
func trailingUtilization(bookings []domain.Booking, now time.Time) float64 {
	windowStart := now.AddDate(0, 0, -utilizationWindowDays)
	var days int
	for _, b := range bookings {
		s := b.StartDate
		if s.Before(windowStart) {
			s = windowStart
		}
		e := b.EndDate
		if e.After(now) {
			e = now
		}
		if d := e.Sub(s).Hours() / 24; d > 0 {
			days += int(math.Ceil(d))
		}
	}
	return math.Min(1, float64(days)/utilizationWindowDays)
}

// daysSinceLastBooking returns whole days since the most recent booking end,
// or the never-rented sentinel when the equipment has no bookings.
func daysSinceLastBooking(bookings []domain.Booking, now time.Time) int {
	if len(bookings) == 0 {
		return neverRentedDays
	}
	var last time.Time
	for _, b := range bookings {
		if b.EndDate.After(last) {
			last = b.EndDate
		}
	}
	days := int(now.Sub(last).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func totalBookedDays(bookings []domain.Booking) int {
	var days int
	for _, b := range bookings {
		if d := b.EndDate.Sub(b.StartDate).Hours() / 24; d > 0 {
			days += int(math.Ceil(d))
		}
	}
	return days
}
