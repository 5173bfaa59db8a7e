package validators

import (
	"sync"

	"github.com/MKhiriev/movie-api/models"
	"github.com/go-playground/validator/v10"
)

// shared validator instance; it caches struct metadata and is safe for
// concurrent use.
var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// fieldRule is one declarative (field, rule, message) triple.
type fieldRule struct {
	field   string
	tag     string
	message string
	// secret hides the offending value from the error entry.
	secret bool
}

// check evaluates every rule against the value returned by get and collects
// all failures. Rules whose field is not in fields are skipped when fields is
// non-empty.
func check(rules []fieldRule, get func(field string) any, fields ...string) ValidationErrors {
	v := getValidator()

	var errs ValidationErrors
	for _, rule := range rules {
		if !inScope(rule.field, fields) {
			continue
		}

		value := get(rule.field)
		if err := v.Var(value, rule.tag); err != nil {
			entry := models.FieldError{
				Type:     "field",
				Value:    value,
				Msg:      rule.message,
				Path:     rule.field,
				Location: "body",
			}
			if rule.secret {
				entry.Value = ""
			}
			errs = append(errs, entry)
		}
	}
	return errs
}

func inScope(field string, fields []string) bool {
	if len(fields) == 0 {
		return true
	}
	for _, f := range fields {
		if f == field {
			return true
		}
	}
	return false
}
