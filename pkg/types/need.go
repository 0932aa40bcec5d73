package types

import (
	"time"
)

type NeedCategory string

const (
	NeedCategoryFood        NeedCategory = "food"
	NeedCategoryClothes     NeedCategory = "clothes"
	NeedCategoryEducation   NeedCategory = "education"
	NeedCategoryHealth      NeedCategory = "health"
	NeedCategoryElectronics NeedCategory = "electronics"
	NeedCategoryOthers      NeedCategory = "others"
)

func (c NeedCategory) Valid() bool {
	switch c {
	case NeedCategoryFood, NeedCategoryClothes, NeedCategoryEducation,
		NeedCategoryHealth, NeedCategoryElectronics, NeedCategoryOthers:
		return true
	}
	return false
}

type NeedRequest struct {
	ID          string       `db:"id" json:"id"`
	UserID      string       `db:"user_id" json:"user_id"`
	ItemName    string       `db:"item_name" json:"item_name"`
	Description string       `db:"description" json:"description"`
	IsUrgent    bool         `db:"is_urgent" json:"is_urgent"`
	Category    NeedCategory `db:"category" json:"category"`
	Needed      []string     `db:"needed" json:"needed,omitempty"` // jsonb array
	IsVerified  bool         `db:"is_verified" json:"is_verified"`
	IsFulfilled bool         `db:"is_fulfilled" json:"is_fulfilled"`
	CreatedAt   time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at" json:"updated_at"`

	// Populated from the users table on reads, never written back.
	Requester *Contact `db:"-" json:"requester,omitempty"`
}

// Contact is the embedded requester/donor shape returned with needs and
// donations.
type Contact struct {
	Nama        string  `db:"nama" json:"nama"`
	PhoneNumber *string `db:"phone_number" json:"phone_number,omitempty"`
	Email       *string `db:"email" json:"email,omitempty"`
}

type CreateNeedRequest struct {
	ItemName    string       `json:"item_name"`
	Description string       `json:"description"`
	IsUrgent    bool         `json:"is_urgent"`
	Category    NeedCategory `json:"category"`
	Needed      []string     `json:"needed,omitempty"`
}

type UpdateNeedRequest struct {
	IsVerified  *bool `json:"is_verified,omitempty"`
	IsFulfilled *bool `json:"is_fulfilled,omitempty"`
}
