package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/rs/zerolog"

	"github.com/hay-kot/folio/internal/content"
	"github.com/hay-kot/folio/internal/core/eventbus"
	"github.com/hay-kot/folio/internal/core/logging"
	"github.com/hay-kot/folio/internal/core/styles"
)

const loadingPlaceholder = "loading…"

// panelView is one panel's scrollable body.
type panelView struct {
	src      content.Source
	markdown string
	loaded   bool
	vp       viewport.Model
}

// PanelSet owns the viewports behind each panel. It implements
// stack.Scroller and stack.Hydrator.
type PanelSet struct {
	panels []*panelView
	md     *content.Markdown
	bus    *eventbus.EventBus
	log    zerolog.Logger
	width  int
	height int
}

// NewPanelSet loads every eager source up front. Lazy sources show a
// placeholder until hydrated.
func NewPanelSet(sources []content.Source, bus *eventbus.EventBus) *PanelSet {
	ps := &PanelSet{
		panels: make([]*panelView, len(sources)),
		md:     content.NewMarkdown(styles.GlamourStyle()),
		bus:    bus,
		log:    logging.Component("panels"),
	}

	for i, src := range sources {
		pv := &panelView{src: src, vp: viewport.New(0, 0)}
		ps.panels[i] = pv
		if src.Lazy {
			continue
		}
		if err := ps.load(i); err != nil {
			ps.log.Warn().Err(err).Str("title", src.Title).Msg("panel content unavailable")
		}
	}

	return ps
}

// Len returns the number of panels.
func (ps *PanelSet) Len() int { return len(ps.panels) }

// Title returns the title of panel i.
func (ps *PanelSet) Title(i int) string { return ps.panels[i].src.Title }

// Loaded reports whether panel i has content.
func (ps *PanelSet) Loaded(i int) bool { return ps.panels[i].loaded }

// SetSize resizes every viewport and re-renders loaded content for the new width.
func (ps *PanelSet) SetSize(width, height int) {
	ps.width = width
	ps.height = height
	for i, pv := range ps.panels {
		pv.vp.Width = width
		pv.vp.Height = height
		ps.refresh(i)
	}
}

// View returns the visible lines of panel i.
func (ps *PanelSet) View(i int) string {
	return ps.panels[i].vp.View()
}

// ScrollBy moves panel i by n lines; negative n scrolls up.
func (ps *PanelSet) ScrollBy(i, n int) {
	vp := &ps.panels[i].vp
	vp.SetYOffset(vp.YOffset + n)
}

// ScrollOffset implements stack.Scroller.
func (ps *PanelSet) ScrollOffset(i int) float64 {
	return float64(ps.panels[i].vp.YOffset)
}

// ScrollExtent implements stack.Scroller.
func (ps *PanelSet) ScrollExtent(i int) float64 {
	vp := ps.panels[i].vp
	return float64(max(vp.TotalLineCount()-vp.Height, 0))
}

// ResetScroll implements stack.Scroller.
func (ps *PanelSet) ResetScroll(i int) {
	ps.panels[i].vp.GotoTop()
}

// Hydrate implements stack.Hydrator. Failures fall back to an error message
// in the panel and are published so the user sees a notification.
func (ps *PanelSet) Hydrate(i int) {
	src := ps.panels[i].src
	err := ps.load(i)

	ctx := logging.WithPanel(context.Background(), src.Title)
	if err != nil {
		ps.log.Warn().Ctx(ctx).Err(err).Msg("hydrate failed")
	} else {
		ps.log.Debug().Ctx(ctx).Msg("hydrated")
	}

	if ps.bus != nil {
		ps.bus.PublishPanelHydrated(eventbus.PanelHydratedPayload{Index: i, Title: src.Title, Err: err})
	}
}

func (ps *PanelSet) load(i int) error {
	pv := ps.panels[i]
	md, err := content.Load(pv.src)
	if err != nil {
		md = "Could not load `" + pv.src.Path + "`.\n\n" + err.Error()
	}
	pv.markdown = md
	pv.loaded = true
	ps.refresh(i)
	return err
}

// refresh re-renders panel i at the current width. Before the first resize
// there is nothing to render into.
func (ps *PanelSet) refresh(i int) {
	pv := ps.panels[i]
	if ps.width == 0 {
		return
	}

	if !pv.loaded {
		pv.vp.SetContent(styles.PlaceholderStyle.Render(loadingPlaceholder))
		return
	}

	out, err := ps.md.Render(pv.markdown, ps.width)
	if err != nil {
		ps.log.Debug().Err(err).Int("panel", i).Msg("markdown render failed, showing raw content")
		out = pv.markdown
	}
	pv.vp.SetContent(out)
}
