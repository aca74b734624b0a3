// Package nav scrolls the page to named sections and owns the mobile menu.
package nav

import (
	"github.com/folio-tui/folio/internal/logging"
	"github.com/rs/zerolog"
)

// Width bands in pixels.
const (
	NarrowMaxPx = 640
	MediumMaxPx = 768
)

// DefaultCellHeightPx converts pixel offsets to terminal rows.
const DefaultCellHeightPx = 16

// OffsetForWidth returns the vertical offset in pixels applied to a section's
// top for a viewport of the given width.
func OffsetForWidth(widthPx int) int {
	switch {
	case widthPx < NarrowMaxPx:
		return -40
	case widthPx < MediumMaxPx:
		return -50
	default:
		return -80
	}
}

// Document resolves anchors to their top line in the rendered page.
type Document interface {
	AnchorTop(anchor string) (int, bool)
}

// Scroller animates the viewport to a line.
type Scroller interface {
	SmoothScrollTo(line int)
}

// Result describes a completed navigation.
type Result struct {
	Anchor   string
	Top      int
	OffsetPx int
	WidthPx  int
	Target   int
}

// Controller handles section navigation and the mobile menu flag.
type Controller struct {
	doc          Document
	scroller     Scroller
	widthPx      int
	cellHeightPx int
	menuOpen     bool
	onNavigate   func(Result)
	logger       zerolog.Logger
}

// New creates a controller. Either dependency may be nil; navigation then
// degrades to a no-op.
func New(doc Document, scroller Scroller, cellHeightPx int) *Controller {
	if cellHeightPx <= 0 {
		cellHeightPx = DefaultCellHeightPx
	}
	return &Controller{
		doc:          doc,
		scroller:     scroller,
		cellHeightPx: cellHeightPx,
		logger:       logging.Component("nav"),
	}
}

// SetDocument swaps the anchor source after a re-render.
func (c *Controller) SetDocument(doc Document) {
	c.doc = doc
}

// SetViewportWidth records the current viewport width in pixels.
func (c *Controller) SetViewportWidth(px int) {
	c.widthPx = px
}

// ViewportWidth returns the last recorded width in pixels.
func (c *Controller) ViewportWidth() int {
	return c.widthPx
}

// OnNavigate registers a callback for successful navigations.
func (c *Controller) OnNavigate(fn func(Result)) {
	c.onNavigate = fn
}

// NavigateTo scrolls to anchor. Unknown anchors and a missing scroller are
// silent no-ops. A successful navigation closes the menu.
func (c *Controller) NavigateTo(anchor string) (Result, bool) {
	if c.doc == nil {
		return Result{}, false
	}
	top, ok := c.doc.AnchorTop(anchor)
	if !ok {
		c.logger.Debug().Str("anchor", anchor).Msg("anchor not found")
		return Result{}, false
	}
	if c.scroller == nil {
		return Result{}, false
	}

	offset := OffsetForWidth(c.widthPx)
	target := top + offset/c.cellHeightPx
	if target < 0 {
		target = 0
	}
	c.scroller.SmoothScrollTo(target)
	c.menuOpen = false

	res := Result{Anchor: anchor, Top: top, OffsetPx: offset, WidthPx: c.widthPx, Target: target}
	c.logger.Debug().Str("anchor", anchor).Int("target", target).Int("offset_px", offset).Msg("navigate")
	if c.onNavigate != nil {
		c.onNavigate(res)
	}
	return res, true
}

// ToggleMenu flips the mobile menu and returns the new state.
func (c *Controller) ToggleMenu() bool {
	c.menuOpen = !c.menuOpen
	return c.menuOpen
}

// CloseMenu forces the mobile menu closed.
func (c *Controller) CloseMenu() {
	c.menuOpen = false
}

// MenuOpen reports the mobile menu state.
func (c *Controller) MenuOpen() bool {
	return c.menuOpen
}
