package auth

import "time"

const (
	RoleDonor = "donor"
	RoleAdmin = "admin"
)

// User is a registered account. HashedPassword is the bcrypt hash of the
// signup password; the plaintext is never stored or serialized.
type User struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	HashedPassword string    `json:"-"`
	Role           string    `gorm:"not null" json:"role"`
	FullName       string    `json:"fullName"`
	Telephone      string    `json:"telephone"`
	Address        string    `json:"address"`
	BloodGroup     string    `json:"bloodGroup"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (User) TableName() string { return "accounts.users" }

func ValidRole(role string) bool {
	return role == RoleDonor || role == RoleAdmin
}
