package models

// Profile is the decrypted view of a user's PII. A nil field means the value
// exists but could not be decrypted in this session (no cached key or a
// corrupted ciphertext); clients render a placeholder for it.
type Profile struct {
	Email         *string `json:"email"`
	DisplayName   *string `json:"display_name"`
	Phone         *string `json:"phone"`
	MonthlyBudget *string `json:"monthly_budget"`
}

// ProfileUpdate is a partial update of the profile. Only non-nil fields are
// written.
type ProfileUpdate struct {
	Email         *string `json:"email,omitempty"`
	DisplayName   *string `json:"display_name,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	MonthlyBudget *string `json:"monthly_budget,omitempty"`
}

// IsEmpty reports whether the update carries no fields.
func (u ProfileUpdate) IsEmpty() bool {
	return u.Email == nil && u.DisplayName == nil && u.Phone == nil && u.MonthlyBudget == nil
}
