package models

import "time"

// User is the persisted account row. PII columns hold their storage form:
// either a sealed value ("enc:v1:...") or a legacy plaintext value written
// before envelope encryption shipped. Nothing in this struct is safe to
// serialize to clients as-is.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// Email is the stored form of the login email.
	Email string `json:"-"`

	// EmailHash is the lookup hash of the normalized email. Empty for legacy
	// rows that were never upgraded.
	EmailHash string `json:"-"`

	// DisplayName, Phone and MonthlyBudget are stored PII fields.
	DisplayName   string `json:"-"`
	Phone         string `json:"-"`
	MonthlyBudget string `json:"-"`

	// PasswordHash is the bcrypt password verification material.
	PasswordHash string `json:"-"`

	// WrappedDataKey is the credential column "salt:sealed_data_key".
	// Empty for users that predate envelope encryption.
	WrappedDataKey string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the body of the register and login requests.
type Credentials struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name,omitempty"`
}

// PasswordChange is the body of the change-password request.
type PasswordChange struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// EmailExists is the response of the email availability check.
type EmailExists struct {
	Exists bool `json:"exists"`
}
