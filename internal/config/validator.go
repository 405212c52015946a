package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	glinterrors "github.com/glintui/glint/pkg/errors"
)

// ValidateTheme checks a parsed theme file against the schema rules. The
// first violation is returned as a ValidationError naming the offending
// field.
func ValidateTheme(theme *ThemeFile) error {
	if theme == nil {
		return glinterrors.NewValidationError("theme", "theme is nil", nil)
	}

	err := validatorInstance().Struct(theme)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		return glinterrors.NewValidationError(fieldPath(first), ruleMessage(first), err)
	}
	return glinterrors.NewValidationError("theme", err.Error(), err)
}

// fieldPath strips the struct name prefix so messages read like the YAML.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return strings.ToLower(ns)
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "semver":
		return fmt.Sprintf("%q is not a valid semantic version", fe.Value())
	case "theme_name":
		return fmt.Sprintf("%q must contain only lowercase letters, digits, hyphens and underscores", fe.Value())
	case "hexcolor":
		return fmt.Sprintf("%q is not a hex colour", fe.Value())
	case "oneof":
		return fmt.Sprintf("%q must be one of: %s", fe.Value(), fe.Param())
	case "len":
		return fmt.Sprintf("must have exactly %s entries", fe.Param())
	case "min", "max":
		return fmt.Sprintf("value %v is out of range", fe.Value())
	}
	return fmt.Sprintf("failed %s validation", fe.Tag())
}
