package exceptions

import "errors"

type NotFound struct {
	Msg string
}

func (e NotFound) Error() string {
	return e.Msg
}

type OutOfBounds struct {
	Msg string
}

func (e OutOfBounds) Error() string {
	return e.Msg
}

// ValidationError blocks a checkout submission. Field names the rejected
// form key, Code is a stable machine readable reason.
type ValidationError struct {
	Field string
	Code  string
	Msg   string
}

func (e ValidationError) Error() string {
	return e.Msg
}

func IsValidation(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}

func IsNotFound(err error) bool {
	var nf NotFound
	return errors.As(err, &nf)
}
