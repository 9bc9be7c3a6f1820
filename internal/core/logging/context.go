package logging

import "context"

type contextKey string

const panelKey contextKey = "panel"

// WithPanel adds a panel title to the context.
func WithPanel(ctx context.Context, title string) context.Context {
	return context.WithValue(ctx, panelKey, title)
}

// GetPanel retrieves the panel title from the context.
// Returns empty string if not present.
func GetPanel(ctx context.Context) string {
	if title, ok := ctx.Value(panelKey).(string); ok {
		return title
	}
	return ""
}
