package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/movie-api/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// ValidationErrors lists every rule a value violated, in rule order.
type ValidationErrors []models.FieldError

// Error joins the messages of all violated rules.
func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}

	messages := make([]string, 0, len(v))
	for _, e := range v {
		messages = append(messages, e.Msg)
	}
	return strings.Join(messages, "; ")
}
