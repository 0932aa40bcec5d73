package types

import "time"

type Role string

const (
	RoleKetua Role = "ketua"
	RoleWarga Role = "warga"
	RoleAdmin Role = "admin"
)

// CanManage reports whether the role may perform administrative mutations
// (verifying needs, advancing donations, managing stock).
func (r Role) CanManage() bool {
	return r == RoleAdmin || r == RoleKetua
}

type UserProfile struct {
	ID            string    `db:"id" json:"id"`
	Nama          string    `db:"nama" json:"nama"`
	Email         string    `db:"email" json:"email"`
	PhoneNumber   *string   `db:"phone_number" json:"phone_number,omitempty"`
	Bio           *string   `db:"bio" json:"bio,omitempty"`
	Role          Role      `db:"role" json:"role"`
	PoinKomunitas int       `db:"poin_komunitas" json:"poin_komunitas"`
	Desa          string    `db:"desa" json:"desa"`
	AvatarURL     *string   `db:"avatar_url" json:"avatar_url,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// Contact returns the embedded requester/donor shape for this user.
func (u *UserProfile) Contact() *Contact {
	if u == nil {
		return nil
	}
	return &Contact{
		Nama:        u.Nama,
		PhoneNumber: u.PhoneNumber,
		Email:       &u.Email,
	}
}

type UpdateProfileRequest struct {
	Nama        *string `json:"nama,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Bio         *string `json:"bio,omitempty"`
}

// LeaderboardEntry ranks a resident by community points plus logged habit
// points.
type LeaderboardEntry struct {
	UserID      string `db:"user_id" json:"user_id"`
	Nama        string `db:"nama" json:"nama"`
	Desa        string `db:"desa" json:"desa"`
	TotalPoints int    `db:"total_points" json:"total_points"`
}
