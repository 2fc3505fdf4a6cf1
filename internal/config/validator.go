package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/mora/internal/ui/components"
	apperrors "github.com/alexisbeaulieu97/mora/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(sf reflect.StructField) string {
			name := strings.SplitN(sf.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return strings.ToLower(sf.Name)
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks a theme configuration: struct tags first, then that every
// colour can actually be converted for the terminal.
func Validate(cfg *ThemeConfig) error {
	if cfg == nil {
		return apperrors.NewValidationError("theme", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	for _, c := range cfg.colors() {
		if _, err := components.ParseColor(c.value, "#ffffff"); err != nil {
			return apperrors.NewValidationError(c.field, fmt.Sprintf("%s: %q is not a supported colour", c.field, c.value), err)
		}
	}

	return nil
}

type colorEntry struct {
	field string
	value string
}

// colors lists every colour set in the file, keyed by its YAML path.
func (c *ThemeConfig) colors() []colorEntry {
	var out []colorEntry
	add := func(field, value string) {
		if value != "" {
			out = append(out, colorEntry{field: field, value: value})
		}
	}

	p := c.Palette
	mains := []struct {
		name string
		cfg  *ColorConfig
	}{
		{"primary", p.Primary},
		{"secondary", p.Secondary},
		{"error", p.Error},
		{"success", p.Success},
		{"warning", p.Warning},
		{"info", p.Info},
	}
	for _, m := range mains {
		if m.cfg == nil {
			continue
		}
		prefix := "palette." + m.name + "."
		add(prefix+"main", m.cfg.Main)
		add(prefix+"light", m.cfg.Light)
		add(prefix+"dark", m.cfg.Dark)
		add(prefix+"contrast_text", m.cfg.ContrastText)
	}
	if p.Text != nil {
		add("palette.text.primary", p.Text.Primary)
		add("palette.text.secondary", p.Text.Secondary)
		add("palette.text.disabled", p.Text.Disabled)
		add("palette.text.link", p.Text.Link)
	}
	if p.Background != nil {
		add("palette.background.primary", p.Background.Primary)
		add("palette.background.secondary", p.Background.Secondary)
	}
	add("palette.divider", p.Divider)
	return out
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return apperrors.NewValidationError(field, msg, err)
	}

	return apperrors.NewValidationError("theme", err.Error(), err)
}

// yamlishFieldName drops the root struct from the namespace, leaving the
// YAML path such as "palette.primary.main".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.Join(parts, ".")
}
