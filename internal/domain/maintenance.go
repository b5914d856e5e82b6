package domain

import "time"

type MaintenanceStatus string

const (
	MaintenanceStatusPending    MaintenanceStatus = "PENDING"
	MaintenanceStatusInProgress MaintenanceStatus = "IN_PROGRESS"
	MaintenanceStatusCompleted  MaintenanceStatus = "COMPLETED"
	MaintenanceStatusResolved   MaintenanceStatus = "RESOLVED"
)

type MaintenanceRequest struct {
	ID          int32             `json:"id"`
	TenantID    int32             `json:"tenant_id"`
	PropertyID  int32             `json:"property_id"`
	OwnerID     int32             `json:"owner_id"`
	Description string            `json:"description"`
	Status      MaintenanceStatus `json:"status"`
	CreatedOn   time.Time         `json:"created_on"`
	UpdatedOn   time.Time         `json:"updated_on"`
}

type ComplaintStatus string

const (
	ComplaintStatusOpen       ComplaintStatus = "OPEN"
	ComplaintStatusInProgress ComplaintStatus = "IN_PROGRESS"
	ComplaintStatusResolved   ComplaintStatus = "RESOLVED"
)

type Complaint struct {
	ID          int32           `json:"id"`
	TenantID    int32           `json:"tenant_id"`
	PropertyID  int32           `json:"property_id"`
	Subject     string          `json:"subject"`
	Description string          `json:"description"`
	Status      ComplaintStatus `json:"status"`
	CreatedOn   time.Time       `json:"created_on"`
}
