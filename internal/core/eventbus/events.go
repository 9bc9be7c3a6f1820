// Package eventbus provides a typed publish/subscribe event bus that carries
// navigation and lifecycle events from the panel stack to observers.
package eventbus

import "github.com/hay-kot/folio/internal/core/notify"

// Keep list sorted A-Z
const (
	EventNotificationPublished Event = "notification.published"
	EventPanelActivated        Event = "panel.activated"
	EventPanelHydrated         Event = "panel.hydrated"
	EventTuiStarted            Event = "tui.started"
	EventTuiStopped            Event = "tui.stopped"
)

// PanelActivatedPayload is emitted once per committed index change.
type PanelActivatedPayload struct {
	Previous int
	Current  int
	Title    string
}

// PanelHydratedPayload is emitted after a lazy panel's content was loaded.
// Err is set when loading failed and a fallback was shown.
type PanelHydratedPayload struct {
	Index int
	Title string
	Err   error
}

// NotificationPublishedPayload carries a user-facing notification.
type NotificationPublishedPayload struct {
	Level   notify.Level
	Message string
}

// TUIStartedPayload is emitted when the TUI starts.
type TUIStartedPayload struct {
	Panels int
}

// TUIStoppedPayload is emitted when the TUI stops.
type TUIStoppedPayload struct {
	LastPanel int
}

// PublishPanelActivated enqueues a panel.activated event.
func (bus *EventBus) PublishPanelActivated(p PanelActivatedPayload) {
	bus.send(EventPanelActivated, p)
}

// SubscribePanelActivated registers fn for panel.activated events.
func (bus *EventBus) SubscribePanelActivated(fn func(PanelActivatedPayload)) {
	bus.subscribe(EventPanelActivated, func(v any) { fn(v.(PanelActivatedPayload)) })
}

// PublishPanelHydrated enqueues a panel.hydrated event.
func (bus *EventBus) PublishPanelHydrated(p PanelHydratedPayload) {
	bus.send(EventPanelHydrated, p)
}

// SubscribePanelHydrated registers fn for panel.hydrated events.
func (bus *EventBus) SubscribePanelHydrated(fn func(PanelHydratedPayload)) {
	bus.subscribe(EventPanelHydrated, func(v any) { fn(v.(PanelHydratedPayload)) })
}

// PublishNotificationPublished enqueues a notification.published event.
func (bus *EventBus) PublishNotificationPublished(p NotificationPublishedPayload) {
	bus.send(EventNotificationPublished, p)
}

// SubscribeNotificationPublished registers fn for notification.published events.
func (bus *EventBus) SubscribeNotificationPublished(fn func(NotificationPublishedPayload)) {
	bus.subscribe(EventNotificationPublished, func(v any) { fn(v.(NotificationPublishedPayload)) })
}

// PublishTuiStarted enqueues a tui.started event.
func (bus *EventBus) PublishTuiStarted(p TUIStartedPayload) {
	bus.send(EventTuiStarted, p)
}

// SubscribeTuiStarted registers fn for tui.started events.
func (bus *EventBus) SubscribeTuiStarted(fn func(TUIStartedPayload)) {
	bus.subscribe(EventTuiStarted, func(v any) { fn(v.(TUIStartedPayload)) })
}

// PublishTuiStopped enqueues a tui.stopped event.
func (bus *EventBus) PublishTuiStopped(p TUIStoppedPayload) {
	bus.send(EventTuiStopped, p)
}

// SubscribeTuiStopped registers fn for tui.stopped events.
func (bus *EventBus) SubscribeTuiStopped(fn func(TUIStoppedPayload)) {
	bus.subscribe(EventTuiStopped, func(v any) { fn(v.(TUIStoppedPayload)) })
}
