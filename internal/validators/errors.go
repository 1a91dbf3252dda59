package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail       = errors.New("invalid email")
	ErrEmptyPassword      = errors.New("password is required")
	ErrPasswordTooLong    = errors.New("password is too long")
	ErrFieldTooLong       = errors.New("field value is too long")
	ErrNoFieldsToUpdate   = errors.New("at least one field must be provided for update")
	ErrContactUnnamed     = errors.New("contact needs a company or a contact name")
	ErrSamePasswordReused = errors.New("new password must differ from the old one")
)
