package request

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"travel_backoffice/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	cpfPattern       = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
	clockTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
	monthNamePattern = regexp.MustCompile(`^[A-Za-zÀ-ÖØ-öø-ÿ]+$`)
)

// birthDateLayouts are the accepted birthDate encodings, most specific first.
var birthDateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02", "02/01/2006"}

var errUnexpectedEngine = errors.New("gin binding engine is not go-playground/validator")

// RegisterValidators adds the custom binding tags used by the request DTOs:
//
//	cpf         000.000.000-00
//	br_date     dd/mm/yyyy, valid calendar date
//	clock_time  HH:MM, 24h
//	month_name  letters only (accents allowed)
//	birth_date  ISO date, RFC3339 or dd/mm/yyyy
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errUnexpectedEngine
	}

	rules := map[string]validator.Func{
		"cpf":        matches(cpfPattern),
		"clock_time": matches(clockTimePattern),
		"month_name": matches(monthNamePattern),
		"br_date": func(fl validator.FieldLevel) bool {
			_, ok := entities.ParseTravelDate(fl.Field().String())
			return ok
		},
		"birth_date": func(fl validator.FieldLevel) bool {
			_, err := parseBirthDate(fl.Field().String())
			return err == nil
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(strings.TrimSpace(fl.Field().String()))
	}
}

func parseBirthDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range birthDateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
