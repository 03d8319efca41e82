// Package validation wraps go-playground/validator with the custom types
// and rules used by request payloads.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"smartspend/internal/core"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("validation failed")

// FieldError names a field that failed one rule.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

func (f FieldError) String() string {
	if f.Param != "" {
		return fmt.Sprintf("%s failed %s=%s", f.Field, f.Rule, f.Param)
	}
	return fmt.Sprintf("%s failed %s", f.Field, f.Rule)
}

// Error carries every failed field of one struct.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.String()
	}
	return ErrInvalid.Error() + ": " + strings.Join(parts, "; ")
}

func (e *Error) Unwrap() error { return ErrInvalid }

// Validator validates structs tagged with `validate:"..."`.
type Validator struct {
	validate *validator.Validate
}

var (
	instance *Validator
	once     sync.Once
)

// Default returns the shared validator.
func Default() *Validator {
	once.Do(func() { instance = New() })
	return instance
}

// New creates a validator with the custom rules registered. Field names in
// errors come from json tags.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Decimal amounts validate as float64 so numeric tags (gte, lte) apply.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("calendar_date", validateCalendarDate)
	_ = v.RegisterValidation("notblank", validateNotBlank)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates s and returns *Error listing every failed field.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
	}
	return out
}

// validateCalendarDate accepts any date layout core.ParseDate understands.
func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := core.ParseDate(fl.Field().String())
	return err == nil
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
