package config

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// flagName matches the kebab-case keys used under features.
var flagName = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// fieldMessages renders a validator tag as a sentence fragment.
var fieldMessages = map[string]func(param string) string{
	"required":      func(string) string { return "is required" },
	"required_if":   func(p string) string { return "is required when " + p },
	"required_with": func(p string) string { return "is required when " + strings.ToLower(p) + " is set" },
	"min":           func(p string) string { return "must be at least " + p },
	"max":           func(p string) string { return "must be at most " + p },
	"oneof":         func(p string) string { return "must be one of: " + p },
	"url":           func(string) string { return "must be a valid URL" },
	"timezone":      func(string) string { return "must be an IANA time zone name" },
}

// Validate checks struct tags first and then the rules tags cannot express.
// Every problem is reported at once; the service refuses to start on any.
func (c *Config) Validate() error {
	var problems []string

	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}

		for _, fe := range fieldErrs {
			problems = append(problems, formatFieldError(fe))
		}
	}

	problems = append(problems, c.crossFieldProblems()...)

	if len(problems) == 0 {
		return nil
	}

	return fmt.Errorf("config validation failed:\n  %s", strings.Join(problems, "\n  "))
}

func (c *Config) crossFieldProblems() []string {
	var out []string

	if db := c.Database; db.Driver == "postgres" && db.DSN == "" {
		for field, value := range map[string]string{"host": db.Host, "user": db.User, "name": db.Name} {
			if value == "" {
				out = append(out, fmt.Sprintf("database.%s is required for postgres without a dsn", field))
			}
		}
	}

	for name := range c.Features {
		if !flagName.MatchString(name) {
			out = append(out, fmt.Sprintf("features.%s must be a kebab-case flag name", name))
		}
	}

	// Map iteration order is random.
	slices.Sort(out)

	return out
}

func formatFieldError(e validator.FieldError) string {
	field := formatFieldPath(e.Namespace())

	if msg, ok := fieldMessages[e.Tag()]; ok {
		return field + " " + msg(e.Param())
	}

	return fmt.Sprintf("%s failed validation: %s", field, e.Tag())
}

// formatFieldPath turns "Config.Server.Port" into "server.port".
func formatFieldPath(namespace string) string {
	_, rest, found := strings.Cut(namespace, ".")
	if !found {
		rest = namespace
	}

	return strings.ToLower(rest)
}
