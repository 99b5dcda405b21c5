package resource

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/crypto/bcrypt"

	"github.com/sukryu/pAdmin/pkg/errors"
)

var (
	validate = validator.New()
	ugc      = bluemonday.UGCPolicy()
)

// Assignable keeps the submitted values whose keys are declared in fields and
// normalizes them per field type. Undeclared keys are returned in dropped,
// sorted.
func Assignable(fields []FieldSpec, input map[string]any) (values map[string]any, dropped []string, err error) {
	declared := make(map[string]FieldSpec, len(fields))
	for _, f := range fields {
		declared[f.Name] = f
	}

	values = make(map[string]any, len(input))
	for key, value := range input {
		field, ok := declared[key]
		if !ok {
			dropped = append(dropped, key)
			continue
		}

		switch field.Type {
		case FieldCheckbox:
			values[key] = checked(value)
		case FieldSelect:
			if s, ok := value.(string); ok && s == "" {
				// the empty option clears the selection
				value = nil
			}
			values[key] = value
		case FieldHTML:
			if s, ok := value.(string); ok {
				value = ugc.Sanitize(s)
			}
			values[key] = value
		case FieldPassword:
			s, _ := value.(string)
			if s == "" {
				// an empty password input keeps the stored hash
				continue
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(s), bcrypt.DefaultCost)
			if err != nil {
				return nil, nil, fmt.Errorf("hash %s: %w", key, err)
			}
			values[key] = string(hash)
		default:
			values[key] = value
		}
	}

	sort.Strings(dropped)
	return values, dropped, nil
}

func checked(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "1", "on", "true", "yes":
			return true
		}
	case float64:
		return t != 0
	case int:
		return t != 0
	}
	return false
}

// Validate checks instance against the rule expressions of d
// (go-playground/validator tags, e.g. "required,max=200").
func Validate(d Descriptor, instance any) error {
	rules := d.Rules()
	attrs := make([]string, 0, len(rules))
	for attr := range rules {
		attrs = append(attrs, attr)
	}
	sort.Strings(attrs)

	var problems []string
	for _, attr := range attrs {
		value, err := Attribute(instance, attr)
		if err != nil {
			return err
		}
		if err := validate.Var(value, rules[attr]); err != nil {
			problems = append(problems, describe(attr, err))
		}
	}

	if len(problems) > 0 {
		return errors.ErrValidation.WithReason(strings.Join(problems, "; "))
	}
	return nil
}

func describe(attr string, err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return fmt.Sprintf("%s: %v", attr, err)
	}
	fe := verrs[0]
	if fe.Param() != "" {
		return fmt.Sprintf("%s: %s=%s", attr, fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s: %s", attr, fe.Tag())
}
