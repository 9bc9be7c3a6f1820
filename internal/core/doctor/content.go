package doctor

import (
	"context"
	"fmt"

	"github.com/hay-kot/folio/internal/content"
	"github.com/hay-kot/folio/internal/core/config"
)

// ContentCheck resolves the deck and tries to load every eager panel.
// Lazy panels are only checked for existence so the check stays fast
// on large content directories.
type ContentCheck struct {
	cfg *config.Config
}

// NewContentCheck creates a content check.
func NewContentCheck(cfg *config.Config) *ContentCheck {
	return &ContentCheck{cfg: cfg}
}

func (c *ContentCheck) Name() string {
	return "Content"
}

func (c *ContentCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	sources, err := content.Resolve(ctx, c.cfg)
	if err != nil {
		result.Items = append(result.Items, fail("resolve", err.Error()))
		return result
	}

	if len(sources) == 0 {
		result.Items = append(result.Items, fail("panels", "deck is empty"))
		return result
	}

	result.Items = append(result.Items, pass("panels", fmt.Sprintf("%d in deck", len(sources))))

	for _, s := range sources {
		if s.Lazy || s.Path == "" {
			continue
		}
		if _, err := content.Load(s); err != nil {
			result.Items = append(result.Items, fail(s.Title, err.Error()))
		}
	}

	return result
}
