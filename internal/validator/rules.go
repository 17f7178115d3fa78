package validator

import (
	"github.com/go-playground/validator/v10"
)

// Domain enum rules. The same sets are enforced at the model level; the
// validator variants exist so bad input is rejected at the boundary with a
// field-level message instead of a store error.
func registerCustomRules(v *validator.Validate) error {
	rules := map[string][]string{
		"media_type":  {"image", "video"},
		"user_role":   {"admin", "viewer"},
		"user_status": {"active", "suspended"},
	}

	for tag, allowed := range rules {
		allowed := allowed
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for _, a := range allowed {
				if value == a {
					return true
				}
			}
			return false
		})
		if err != nil {
			return err
		}
	}

	return nil
}
