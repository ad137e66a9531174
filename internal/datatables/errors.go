package datatables

import (
	"errors"
	"fmt"
)

// MappingError reports a column whose data field is not an attribute of the
// queried entity.
type MappingError struct {
	Field string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("unable to locate attribute %q on the queried entity", e.Field)
}

// ValidationError reports request parameters the engine cannot turn into a
// query, such as a non-positive page length.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func IsMappingError(err error) bool {
	var target *MappingError
	return errors.As(err, &target)
}

func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}
