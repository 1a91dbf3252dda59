package models

import "time"

// Contact is the persisted company/contact record. Company, ContactName,
// Email and Phone hold their storage form (sealed or legacy plaintext).
type Contact struct {
	ID          int64
	UserID      int64
	Company     string
	ContactName string
	Email       string
	EmailHash   string
	Phone       string
	CreatedAt   time.Time
}

// TableName returns the name of the database table
// associated with the Contact model.
func (c Contact) TableName() string {
	return "contacts"
}

// NewContact is the body of the create-contact request.
type NewContact struct {
	Company     string `json:"company"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
}

// ContactView is the decrypted view of a contact. Nil fields could not be
// decrypted in this session.
type ContactView struct {
	ID          int64     `json:"id"`
	Company     *string   `json:"company"`
	ContactName *string   `json:"contact_name"`
	Email       *string   `json:"email"`
	Phone       *string   `json:"phone"`
	CreatedAt   time.Time `json:"created_at"`
}
