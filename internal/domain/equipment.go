package domain

import "time"

type EquipmentStatus string

const (
	EquipmentStatusAvailable   EquipmentStatus = "available"
	EquipmentStatusInactive    EquipmentStatus = "inactive"
	EquipmentStatusMaintenance EquipmentStatus = "maintenance"
)

type Equipment struct {
	ID        string           `json:"id"`
	OwnerID   string           `json:"owner_id"`
	Title     string           `json:"title"`
	Type      string           `json:"type"`
	Location  string           `json:"location"`
	Rate      float64          `json:"rate"` // daily rate, two-decimal currency
	Status    EquipmentStatus  `json:"status"`
	Images    []EquipmentImage `json:"images,omitempty"`
	CreatedOn time.Time        `json:"created_on"`
	UpdatedOn time.Time        `json:"updated_on"`
}

// MainImage returns the image flagged as main, or the first image if none is
// flagged. Returns nil when the equipment has no images.
func (e *Equipment) MainImage() *EquipmentImage {
	for i := range e.Images {
		if e.Images[i].IsMain {
			return &e.Images[i]
		}
	}
	if len(e.Images) > 0 {
		return &e.Images[0]
	}
	return nil
}

type EquipmentImage struct {
	ID          string     `json:"id"`
	EquipmentID string     `json:"equipment_id"`
	FileName    string     `json:"file_name"`
	FilePath    string     `json:"file_path"`
	MimeType    string     `json:"mime_type"`
	IsMain      bool       `json:"is_main"`
	Status      string     `json:"status"` // PENDING, CONFIRMED, DELETED
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	CreatedOn   time.Time  `json:"created_on"`
}
