package store

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrInvalidRecord is returned when a record of a document is malformed.
	ErrInvalidRecord = errors.New("invalid record")

	// ErrUnsupportedFormat is returned for file names whose extension does not
	// map to a known document format.
	ErrUnsupportedFormat = errors.New("unsupported document format")
)

// validate is a singleton validator instance. Field names in its errors are
// the persisted (json) names.
var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// RecordError reports a malformed record of a document.
type RecordError struct {
	Kind   string // "router", "cable", "node", "connection" or "traffic_matrix"
	Index  int    // position of the record in its collection
	Reason string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s: %s #%d: %s", ErrInvalidRecord, e.Kind, e.Index, e.Reason)
}

func (e *RecordError) Is(target error) bool {
	return target == ErrInvalidRecord
}

func validateRecord(kind string, index int, rec any) error {
	if err := validate.Struct(rec); err != nil {
		return &RecordError{Kind: kind, Index: index, Reason: formatValidationError(err)}
	}
	return nil
}

// formatValidationError returns the first validation error in a readable
// format.
func formatValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err.Error()
	}

	e := validationErrs[0]
	field := e.Field()
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: field is required", field)
	case "gte":
		return fmt.Sprintf("%s: must be at least %s, got %v", field, e.Param(), e.Value())
	case "nefield":
		return fmt.Sprintf("%s: must differ from %s", field, strings.ToLower(e.Param()))
	default:
		return fmt.Sprintf("%s: validation failed (%s)", field, e.Tag())
	}
}
