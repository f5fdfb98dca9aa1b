package donation

import "time"

const (
	TypeBlood = "blood"
	TypeOrgan = "organ"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Donation is a single donation request. The contact fields are snapshots of
// the owner's profile taken at creation time; later profile edits never
// change them. Only Status mutates after create.
type Donation struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	OwnerID       string    `gorm:"index;not null" json:"ownerId"`
	Type          string    `gorm:"not null" json:"type"`
	Details       string    `json:"details"`
	Status        string    `gorm:"default:'pending'" json:"status"`
	FullName      string    `json:"fullName"`
	Email         string    `json:"email"`
	Contact       string    `json:"contact"`
	Address       string    `json:"address"`
	BloodGroup    string    `json:"bloodGroup"`
	Hospital      string    `json:"hospital"`
	PreferredDate string    `json:"preferredDate"`
	Time          string    `json:"time"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (Donation) TableName() string { return "donations.requests" }

func ValidType(t string) bool {
	return t == TypeBlood || t == TypeOrgan
}

// ValidTargetStatus reports whether s is a status an admin may transition a
// pending request into.
func ValidTargetStatus(s string) bool {
	return s == StatusApproved || s == StatusRejected
}
