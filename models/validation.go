package models

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationErrors maps a field path (e.g. "name", "variants[0].color") to the
// message of the constraint it violated. Every violated field is reported
// together, not just the first one.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for field, msg := range v {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateStruct runs the tag-based rules and translates each failure into a
// message from the model's table, falling back to a generic one.
func validateStruct(s interface{}, messages map[string]string) ValidationErrors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return ValidationErrors{"_": err.Error()}
	}

	errs := ValidationErrors{}
	for _, fe := range fieldErrs {
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("%s failed on the %s constraint", fe.Field(), fe.Tag())
		}
		errs[fieldPath(fe.Namespace())] = msg
	}
	return errs
}

// fieldPath strips the root struct name and lowercases the rest, so
// "Product.Variants[0].Color" becomes "variants[0].color".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		namespace = namespace[i+1:]
	}
	return strings.ToLower(namespace)
}
