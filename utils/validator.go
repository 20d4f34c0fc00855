package utils

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
	customTags   = map[string][]string{}
	customTagsMu sync.Mutex
)

// RegisterEnum adds a validation tag accepting exactly the given values.
// It must be called before the first Validate call.
func RegisterEnum(tag string, values []string) {
	customTagsMu.Lock()
	defer customTagsMu.Unlock()
	customTags[tag] = values
}

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		customTagsMu.Lock()
		defer customTagsMu.Unlock()
		for tag, values := range customTags {
			allowed := make(map[string]struct{}, len(values))
			for _, v := range values {
				allowed[v] = struct{}{}
			}
			_ = validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
				_, ok := allowed[fl.Field().String()]
				return ok
			})
		}
	})
	return validate
}

// Validate checks s against its `validate` tags and returns an InvalidInput AppError on failure.
func Validate(s any) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s %s", lowerFirst(fe.Field()), msgForTag(fe)))
		}
		return InvalidInput(strings.Join(msgs, "; "))
	}
	return InvalidInput(err.Error())
}

func msgForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	default:
		customTagsMu.Lock()
		values, ok := customTags[fe.Tag()]
		customTagsMu.Unlock()
		if ok {
			return fmt.Sprintf("must be one of: %s", strings.Join(values, ", "))
		}
		return fmt.Sprintf("failed on '%s' validation", fe.Tag())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
