// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/hay-kot/criterio"
)

// PanelTitle validates a panel title is non-empty after trimming whitespace.
func PanelTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}

// PanelTitleField returns a criterio validator for panel titles.
func PanelTitleField(field, title string) error {
	return criterio.Run(field, title, PanelTitle)
}

// Email validates an optional RFC 5322 address. Empty is accepted.
func Email(addr string) error {
	if addr == "" {
		return nil
	}
	if _, err := mail.ParseAddress(addr); err != nil {
		return fmt.Errorf("invalid address %q", addr)
	}
	return nil
}
