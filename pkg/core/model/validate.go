package model

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jakechorley/schedule-master/pkg/core/timeutil"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate runs struct validation over a domain value. Boundary callers (CLI
// and HTTP handlers) reject bad input here so the store itself never sees it.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// ValidateAvailability checks the window invariants the struct tags cannot
// express: both clocks must parse and the window must not be empty or
// inverted.
func ValidateAvailability(w Availability) error {
	start, err := timeutil.ToMinutes(w.StartTime)
	if err != nil {
		return err
	}
	end, err := timeutil.ToMinutes(w.EndTime)
	if err != nil {
		return err
	}
	if start >= end {
		return fmt.Errorf("availability window %s-%s on day %d: start must be before end", w.StartTime, w.EndTime, w.DayOfWeek)
	}
	return nil
}

// ValidateTemplateShift applies the same start-before-end rule to a template
// shift definition.
func ValidateTemplateShift(ts TemplateShift) error {
	start, err := timeutil.ToMinutes(ts.StartTime)
	if err != nil {
		return err
	}
	end, err := timeutil.ToMinutes(ts.EndTime)
	if err != nil {
		return err
	}
	if start >= end {
		return fmt.Errorf("template shift %q %s-%s: start must be before end", ts.Title, ts.StartTime, ts.EndTime)
	}
	return nil
}
