package domain

import "time"

const (
	MinRatingScore = 1
	MaxRatingScore = 5
)

// Rating is one tenant's review of a property. A tenant has at most one
// rating per property.
type Rating struct {
	ID         int32     `json:"id"`
	TenantID   int32     `json:"tenant_id"`
	PropertyID int32     `json:"property_id"`
	Score      int32     `json:"score"`
	Comment    string    `json:"comment"`
	CreatedOn  time.Time `json:"created_on"`
}
