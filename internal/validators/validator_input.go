package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pii-keeper/models"
)

const (
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldDisplayName  = "display_name"
	FieldOldPassword  = "old_password"
	FieldNewPassword  = "new_password"
	FieldPhone        = "phone"
	FieldBudget       = "monthly_budget"
	FieldCompany      = "company"
	FieldContactName  = "contact_name"
	FieldAnyName      = "any_name"
	FieldUpdateFields = "update_fields"
)

const (
	// bcrypt ignores everything past 72 bytes.
	maxPasswordBytes = 72
	maxFieldBytes    = 1024
)

type InputValidator struct{}

func NewInputValidator() Validator {
	return &InputValidator{}
}

func (v *InputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.PasswordChange:
		return v.validatePasswordChange(value, fields...)
	case *models.PasswordChange:
		return v.validatePasswordChange(*value, fields...)

	case models.ProfileUpdate:
		return v.validateProfileUpdate(value, fields...)
	case *models.ProfileUpdate:
		return v.validateProfileUpdate(*value, fields...)

	case models.NewContact:
		return v.validateContact(value, fields...)
	case *models.NewContact:
		return v.validateContact(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *InputValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldDisplayName}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldEmail:
			err = checkEmail(c.Email, true)
		case FieldPassword:
			err = checkPassword(c.Password)
		case FieldDisplayName:
			err = checkLength(FieldDisplayName, c.DisplayName)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *InputValidator) validatePasswordChange(c models.PasswordChange, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOldPassword, FieldNewPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldOldPassword:
			if c.OldPassword == "" {
				return fmt.Errorf("%s: %w", FieldOldPassword, ErrEmptyPassword)
			}
		case FieldNewPassword:
			if err := checkPassword(c.NewPassword); err != nil {
				return fmt.Errorf("%s: %w", FieldNewPassword, err)
			}
			if c.NewPassword == c.OldPassword {
				return ErrSamePasswordReused
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *InputValidator) validateProfileUpdate(u models.ProfileUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUpdateFields, FieldEmail, FieldDisplayName, FieldPhone, FieldBudget}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldUpdateFields:
			if u.IsEmpty() {
				err = ErrNoFieldsToUpdate
			}
		case FieldEmail:
			if u.Email != nil {
				err = checkEmail(*u.Email, true)
			}
		case FieldDisplayName:
			err = checkOptionalLength(FieldDisplayName, u.DisplayName)
		case FieldPhone:
			err = checkOptionalLength(FieldPhone, u.Phone)
		case FieldBudget:
			err = checkOptionalLength(FieldBudget, u.MonthlyBudget)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *InputValidator) validateContact(c models.NewContact, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAnyName, FieldCompany, FieldContactName, FieldEmail, FieldPhone}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldAnyName:
			if c.Company == "" && c.ContactName == "" {
				err = ErrContactUnnamed
			}
		case FieldCompany:
			err = checkLength(FieldCompany, c.Company)
		case FieldContactName:
			err = checkLength(FieldContactName, c.ContactName)
		case FieldEmail:
			err = checkEmail(c.Email, false)
		case FieldPhone:
			err = checkLength(FieldPhone, c.Phone)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// ValidEmail reports whether email has exactly one '@' with text on both
// sides and no whitespace.
func ValidEmail(email string) bool {
	at := strings.IndexByte(email, '@')
	return at > 0 &&
		at == strings.LastIndexByte(email, '@') &&
		at < len(email)-1 &&
		!strings.ContainsAny(email, " \t\r\n") &&
		len(email) <= maxFieldBytes
}

func checkEmail(email string, required bool) error {
	if email == "" && !required {
		return nil
	}
	if !ValidEmail(email) {
		return ErrInvalidEmail
	}
	return nil
}

func checkPassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}

func checkLength(field, value string) error {
	if len(value) > maxFieldBytes {
		return fmt.Errorf("%s: %w", field, ErrFieldTooLong)
	}
	return nil
}

func checkOptionalLength(field string, value *string) error {
	if value == nil {
		return nil
	}
	return checkLength(field, *value)
}
