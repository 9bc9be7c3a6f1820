package doctor

import (
	"context"
	"errors"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/folio/internal/core/config"
)

// ConfigCheck runs deep validation and reports config warnings.
type ConfigCheck struct {
	cfg  *config.Config
	path string
}

// NewConfigCheck creates a check for the config loaded from path.
func NewConfigCheck(cfg *config.Config, path string) *ConfigCheck {
	return &ConfigCheck{cfg: cfg, path: path}
}

func (c *ConfigCheck) Name() string {
	return "Configuration"
}

func (c *ConfigCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	err := c.cfg.ValidateDeep(c.path)
	switch {
	case err == nil:
		result.Items = append(result.Items, pass("config", c.path))
	default:
		var fieldErrs criterio.FieldErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				result.Items = append(result.Items, fail(fe.Field, fe.Err.Error()))
			}
		} else {
			result.Items = append(result.Items, fail("config", err.Error()))
		}
	}

	for _, w := range c.cfg.Warnings() {
		label := w.Category
		if w.Item != "" {
			label += " " + w.Item
		}
		result.Items = append(result.Items, warn(label, w.Message))
	}

	return result
}
