package httperr

import "errors"

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// FieldError is a validation failure bound to a single form field.
type FieldError struct {
	Field string
	Code  string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Code
}

func ErrField(field, code string) error {
	return FieldError{Field: field, Code: code}
}

func AsField(err error) (FieldError, bool) {
	var fe FieldError
	ok := errors.As(err, &fe)
	return fe, ok
}
