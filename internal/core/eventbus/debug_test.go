package eventbus_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/hay-kot/folio/internal/core/eventbus"
	"github.com/hay-kot/folio/internal/core/eventbus/testbus"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRegisterDebugLogger(t *testing.T) {
	tb := testbus.New(t)
	var out syncBuffer

	eventbus.RegisterDebugLogger(tb.EventBus, zerolog.New(&out).Level(zerolog.DebugLevel))

	tb.PublishTuiStarted(eventbus.TUIStartedPayload{Panels: 4})
	tb.PublishPanelActivated(eventbus.PanelActivatedPayload{Previous: 0, Current: 1, Title: "Projects"})

	tb.AssertPublished(t, eventbus.EventPanelActivated)

	logs := out.String()
	assert.Equal(t, 2, strings.Count(logs, "event fired"))
	assert.Contains(t, logs, `"title":"Projects"`)
}

func TestRegisterDebugLogger_Subscriptions(t *testing.T) {
	bus := eventbus.New(4)
	var out syncBuffer

	eventbus.RegisterDebugLogger(bus, zerolog.New(&out).Level(zerolog.DebugLevel))
	bus.SubscribePanelHydrated(func(eventbus.PanelHydratedPayload) {})

	logs := out.String()
	assert.Contains(t, logs, "subscriber registered")
	assert.Contains(t, logs, `"event":"panel.hydrated"`)
}
