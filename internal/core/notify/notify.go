// Package notify defines user-facing notifications shown as toasts.
package notify

import "time"

// Level represents the severity of a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification is a single message for the user.
type Notification struct {
	Level     Level
	Message   string
	CreatedAt time.Time
}

// Expired reports whether n has been visible longer than ttl at now.
func (n Notification) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(n.CreatedAt) >= ttl
}
