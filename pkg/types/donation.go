package types

import (
	"time"
)

type DonationStatus string

const (
	DonationStatusAvailable DonationStatus = "available"
	DonationStatusMatched   DonationStatus = "matched"
	DonationStatusDelivered DonationStatus = "delivered"
)

// donationStatusRank orders the one-directional progression
// available -> matched -> delivered.
func donationStatusRank(s DonationStatus) int {
	switch s {
	case DonationStatusAvailable:
		return 0
	case DonationStatusMatched:
		return 1
	case DonationStatusDelivered:
		return 2
	}
	return -1
}

func (s DonationStatus) Valid() bool {
	return donationStatusRank(s) >= 0
}

// CanAdvanceTo reports whether moving from s to next is a forward
// transition. Equal statuses are allowed so repeated updates stay
// idempotent.
func (s DonationStatus) CanAdvanceTo(next DonationStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	return donationStatusRank(next) >= donationStatusRank(s)
}

type Donation struct {
	ID            string         `db:"id" json:"id"`
	UserID        string         `db:"user_id" json:"user_id"`
	ItemName      string         `db:"item_name" json:"item_name"`
	Description   string         `db:"description" json:"description"`
	Status        DonationStatus `db:"status" json:"status"`
	NeedRequestID *string        `db:"need_request_id" json:"need_request_id,omitempty"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at" json:"updated_at"`

	Donor *Contact `db:"-" json:"donor,omitempty"`
}

type CreateDonationRequest struct {
	ItemName    string `json:"item_name"`
	Description string `json:"description"`
}

type UpdateDonationRequest struct {
	Status        *DonationStatus `json:"status,omitempty"`
	NeedRequestID *string         `json:"need_request_id,omitempty"`
}
