package contact

import "time"

// Message is an append-only contact-form submission. There is no update or
// delete path.
type Message struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Message   string    `gorm:"not null" json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Message) TableName() string { return "contact.messages" }
