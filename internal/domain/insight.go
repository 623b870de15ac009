package domain

type InsightType string

const (
	InsightTypeOpportunity InsightType = "opportunity"
	InsightTypeWarning     InsightType = "warning"
	InsightTypePrediction  InsightType = "prediction"
)

type InsightImpact string

const (
	InsightImpactLow    InsightImpact = "low"
	InsightImpactMedium InsightImpact = "medium"
	InsightImpactHigh   InsightImpact = "high"
)

// Insight is a generated, rankable, dismissible recommendation surfaced to an
// owner. Insights are ephemeral: regenerated from equipment and bookings on
// every dashboard load, identified by a stable derived key (e.g.
// "price-<equipmentID>") so dismissals survive regeneration.
type Insight struct {
	ID          string        `json:"id"`
	Type        InsightType   `json:"type"`
	Impact      InsightImpact `json:"impact"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Action      string        `json:"action,omitempty"`
	EquipmentID string        `json:"equipment_id,omitempty"`
}
