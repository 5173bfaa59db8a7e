package validators

import (
	"context"
	"errors"

	"github.com/MKhiriev/movie-api/models"
	"github.com/go-playground/validator/v10"
)

// MovieValidator implements [Validator] for movie creation bodies using the
// `validate` struct tags of [models.Movie].
type MovieValidator struct {
}

func NewMovieValidator() Validator {
	return &MovieValidator{}
}

func (v *MovieValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var movie models.Movie
	switch value := obj.(type) {
	case models.Movie:
		movie = value
	case *models.Movie:
		movie = *value
	default:
		return ErrUnsupportedType
	}

	var err error
	if len(fields) == 0 {
		err = getValidator().Struct(movie)
	} else {
		err = getValidator().StructPartial(movie, fields...)
	}
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, models.FieldError{
			Type:     "field",
			Value:    fe.Value(),
			Msg:      fe.Field() + " is " + fe.Tag(),
			Path:     fe.Field(),
			Location: "body",
		})
	}
	return errs
}
