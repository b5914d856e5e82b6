package domain

import "time"

type PropertyStatus string

const (
	PropertyStatusPending  PropertyStatus = "PENDING"
	PropertyStatusActive   PropertyStatus = "ACTIVE"
	PropertyStatusRented   PropertyStatus = "RENTED"
	PropertyStatusRejected PropertyStatus = "REJECTED"
)

type Property struct {
	ID            int32          `json:"id"`
	OwnerID       int32          `json:"owner_id"`
	TenantID      *int32         `json:"tenant_id,omitempty"`
	Title         string         `json:"title"`
	Address       string         `json:"address"`
	Description   string         `json:"description"`
	Status        PropertyStatus `json:"status"`
	IsRented      bool           `json:"is_rented"`
	IsVerified    bool           `json:"is_verified"`
	PriceCents    int32          `json:"price_cents"`
	AverageRating float64        `json:"average_rating"`
	CreatedOn     time.Time      `json:"created_on"`
	UpdatedOn     time.Time      `json:"updated_on"`
}

// RentTo marks the property as rented by tenantID.
func (p *Property) RentTo(tenantID int32) {
	id := tenantID
	p.TenantID = &id
	p.IsRented = true
	p.Status = PropertyStatusRented
}

// Release clears the current tenant.
func (p *Property) Release() {
	p.TenantID = nil
	p.IsRented = false
	if p.Status == PropertyStatusRented {
		p.Status = PropertyStatusActive
	}
}

// HeldByOther reports whether the property is rented by someone other than tenantID.
func (p *Property) HeldByOther(tenantID int32) bool {
	return p.IsRented && p.TenantID != nil && *p.TenantID != tenantID
}

// RentalState is the part of a property the booking workflow owns.
type RentalState struct {
	TenantID *int32
	IsRented bool
	Status   PropertyStatus
}

func (p *Property) RentalState() RentalState {
	return RentalState{TenantID: p.TenantID, IsRented: p.IsRented, Status: p.Status}
}

// SetRentalState overwrites the rental fields and leaves the listing details alone.
func (p *Property) SetRentalState(st RentalState) {
	p.TenantID = st.TenantID
	p.IsRented = st.IsRented
	p.Status = st.Status
}
