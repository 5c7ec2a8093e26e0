package perudoc

import (
	"github.com/dmitrymomot/perudoc/pkg/validator"
)

// Rule adapts a document check to validator.Rule so it can be combined with
// other field rules in validator.Apply. The check runs once, when the rule is built.
func Rule(field string, t DocumentType, raw string) validator.Rule {
	return ruleFor(defaultValidator, field, t, raw)
}

// Rule is the Validator-bound variant of the package-level Rule.
func (v *Validator) Rule(field string, t DocumentType, raw string) validator.Rule {
	return ruleFor(v, field, t, raw)
}

func ValidDNI(field, raw string) validator.Rule { return Rule(field, DNI, raw) }
func ValidRUC(field, raw string) validator.Rule { return Rule(field, RUC, raw) }
func ValidCE(field, raw string) validator.Rule  { return Rule(field, CE, raw) }

func ruleFor(v *Validator, field string, t DocumentType, raw string) validator.Rule {
	res := v.Validate(t, raw)
	msg := "must be a valid " + t.String()
	if res.Reason != "" {
		msg += ": " + res.Reason
	}
	return validator.Rule{
		Check: res.Valid,
		Error: validator.ValidationError{
			Field:          field,
			Message:        msg,
			TranslationKey: res.TranslationKey(),
			TranslationValues: map[string]any{
				"field":         field,
				"document_type": t.String(),
				"status":        res.Status.String(),
			},
		},
	}
}
