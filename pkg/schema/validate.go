package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func definitionValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		validate = v
	})
	return validate
}

// Validate checks a full schema: every row must be well formed, use a known
// kind, carry valid choices, and no two rows may share a key. The first
// problem found is returned.
func Validate(defs []FieldDefinition) error {
	seen := make(map[string]int, len(defs))
	for idx, def := range defs {
		if err := ValidateDefinition(def); err != nil {
			return fmt.Errorf("schema: row %d: %w", idx, err)
		}
		if first, exists := seen[def.Key]; exists {
			return fmt.Errorf("%w: %q (rows %d and %d)", ErrDuplicateKey, def.Key, first, idx)
		}
		seen[def.Key] = idx
	}
	return nil
}

// ValidateDefinition checks a single row in isolation.
func ValidateDefinition(def FieldDefinition) error {
	if err := definitionValidator().Struct(def); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("%w: field %q: %s failed %q", ErrInvalidDefinition, def.Key, fe.Field(), fe.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}
	if !def.Kind.Known() {
		return fmt.Errorf("%w: field %q has kind %q", ErrUnsupportedControlType, def.Key, string(def.Kind))
	}
	return def.ValidateChoices()
}
