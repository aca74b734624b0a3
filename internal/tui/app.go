// Package tui implements the folio terminal user interface.
package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/folio-tui/folio/internal/cycle"
	"github.com/folio-tui/folio/internal/easteregg"
	"github.com/folio-tui/folio/internal/events"
	"github.com/folio-tui/folio/internal/logging"
	"github.com/folio-tui/folio/internal/models"
	"github.com/folio-tui/folio/internal/nav"
	"github.com/folio-tui/folio/internal/render"
	"github.com/folio-tui/folio/internal/theme"
	"github.com/folio-tui/folio/internal/tui/components"
	"github.com/folio-tui/folio/internal/tui/styles"
)

const (
	minWidth  = 40
	minHeight = 10

	// DefaultLoadingDelay is how long the loading screen stays up.
	DefaultLoadingDelay = time.Second
	// DefaultCellWidthPx converts columns to pixels for width bands.
	DefaultCellWidthPx = 8

	easterEggMessage = "🪐 Quantum Realm Unlocked! You have discovered %s's secret project lab. Let's build something wild with qubits and code! Press Esc to exit"
)

// Options wires the model to its collaborators. Only Catalog is required.
type Options struct {
	Catalog       *models.Catalog
	Theme         *theme.Controller
	Recorder      *events.Recorder
	Opener        Opener
	Downloader    Downloader
	CopyText      func(string) error
	CycleInterval time.Duration
	LoadingDelay  time.Duration
	CellWidthPx   int
	CellHeightPx  int
	EasterEggURL  string
	AltScreen     bool
}

// Run launches the TUI and blocks until it exits.
func Run(opts Options) error {
	m := New(opts)
	programOpts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	m.recorder.SessionStarted()
	_, err := tea.NewProgram(m, programOpts...).Run()
	// Covers exits that bypass the quit keys.
	m.teardown()
	return err
}

type loadedMsg struct {
	gen int
}

type openedMsg struct {
	url string
	err error
}

type downloadedMsg struct {
	link models.SocialLink
	path string
	err  error
}

// Model is the root bubbletea model. It owns all UI state.
type Model struct {
	opts     Options
	keys     keyMap
	catalog  *models.Catalog
	theme    *theme.Controller
	recorder *events.Recorder
	styles   styles.Styles
	renderer *render.Renderer
	page     render.Page

	width  int
	height int

	loading bool
	loadGen int
	spinner spinner.Model

	viewport viewport.Model
	scroll   scroller
	cycle    *cycle.Announcer
	egg      *easteregg.Listener
	nav      *nav.Controller

	toast   string
	pending []tea.Cmd

	teardownOnce sync.Once
	closed       bool
	logger       zerolog.Logger
}

// New builds the root model with defaults filled in.
func New(opts Options) *Model {
	if opts.LoadingDelay <= 0 {
		opts.LoadingDelay = DefaultLoadingDelay
	}
	if opts.CellWidthPx <= 0 {
		opts.CellWidthPx = DefaultCellWidthPx
	}
	if opts.CellHeightPx <= 0 {
		opts.CellHeightPx = nav.DefaultCellHeightPx
	}
	if opts.Theme == nil {
		opts.Theme = theme.New(nil)
	}
	if opts.Opener == nil {
		opts.Opener = BrowserOpener{}
	}
	if opts.CopyText == nil {
		opts.CopyText = clipboard.WriteAll
	}
	if opts.Catalog == nil {
		opts.Catalog = &models.Catalog{}
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		opts:     opts,
		keys:     defaultKeyMap(),
		catalog:  opts.Catalog,
		theme:    opts.Theme,
		recorder: opts.Recorder,
		styles:   styles.ForMode(opts.Theme.Get()),
		renderer: render.NewRenderer(),
		loading:  true,
		spinner:  sp,
		viewport: viewport.New(0, 0),
		cycle:    cycle.New(opts.Catalog.CycleWords, opts.CycleInterval),
		logger:   logging.Component("tui"),
	}
	m.spinner.Style = m.styles.Accent
	m.viewport.MouseWheelEnabled = true
	m.egg = easteregg.New(easteregg.DefaultPhrase, m)
	m.nav = nav.New(nil, &m.scroll, opts.CellHeightPx)
	m.nav.OnNavigate(func(r nav.Result) {
		m.recorder.Navigated(r.Anchor, r.OffsetPx, r.WidthPx)
	})
	m.egg.Attach()
	return m
}

// Init arms the loading timer, the spinner, and the cycle timer.
func (m *Model) Init() tea.Cmd {
	m.loadGen++
	gen := m.loadGen
	loading := tea.Tick(m.opts.LoadingDelay, func(time.Time) tea.Msg {
		return loadedMsg{gen: gen}
	})
	return tea.Batch(loading, m.spinner.Tick, m.cycle.Start())
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.closed {
		return m, nil
	}
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.nav.SetViewportWidth(m.width * m.opts.CellWidthPx)
		m.relayout()
	case loadedMsg:
		if msg.gen == m.loadGen && m.loading {
			m.loading = false
			m.logger.Debug().Msg("ready")
		}
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	case cycle.TickMsg:
		if cmd, changed := m.cycle.Update(msg); changed {
			cmds = append(cmds, cmd)
			m.refresh()
		}
	case scrollTickMsg:
		if msg.gen == m.scroll.gen && m.scroll.active {
			next, done := m.scroll.step(m.viewport.YOffset, m.maxYOffset())
			m.viewport.SetYOffset(next)
			if !done {
				cmds = append(cmds, m.scroll.nextFrame())
			}
		}
	case openedMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Str("url", msg.url).Msg("failed to open link")
		}
	case downloadedMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Str("url", msg.link.URL).Msg("download failed, opening link instead")
			m.toast = "Opening " + msg.link.Label
			m.openURL(msg.link.URL)
		} else {
			m.toast = fmt.Sprintf("Saved %s to %s", msg.link.Label, msg.path)
		}
		m.relayout()
	case tea.MouseMsg:
		m.scroll.cancel()
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	cmds = append(cmds, m.pending...)
	m.pending = nil
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyRunes:
		if !msg.Alt {
			m.egg.Feed(string(msg.Runes))
		}
	case tea.KeySpace:
		m.egg.Feed(" ")
	}

	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m.quit()
	case key.Matches(msg, m.keys.Escape):
		if m.toast != "" {
			m.toast = ""
			m.relayout()
			return nil
		}
		return m.quit()
	case key.Matches(msg, m.keys.Theme):
		m.theme.Toggle()
		m.styles = styles.ForMode(m.theme.Get())
		m.spinner.Style = m.styles.Accent
		m.refresh()
	case key.Matches(msg, m.keys.Menu):
		m.nav.ToggleMenu()
		m.relayout()
	case key.Matches(msg, m.keys.CopyEmail):
		m.copyEmail()
	case key.Matches(msg, m.keys.OpenLink):
		if i, ok := linkIndex(msg.String()); ok && !m.loading {
			m.openLink(i)
		}
	case key.Matches(msg, m.keys.Navigate):
		// Consumed here so the viewport never sees the key.
		if i, ok := navIndex(msg.String()); ok && i < len(models.NavItems) && !m.loading {
			menuWasOpen := m.nav.MenuOpen()
			if _, ok := m.nav.NavigateTo(models.NavItems[i].Anchor); ok && menuWasOpen {
				m.relayout()
			}
			return m.scroll.takePending()
		}
	case key.Matches(msg, m.keys.Up):
		m.scroll.cancel()
		m.viewport.LineUp(1)
	case key.Matches(msg, m.keys.Down):
		m.scroll.cancel()
		m.viewport.LineDown(1)
	case key.Matches(msg, m.keys.PageUp):
		m.scroll.cancel()
		m.viewport.ViewUp()
	case key.Matches(msg, m.keys.PageDown):
		m.scroll.cancel()
		m.viewport.ViewDown()
	case key.Matches(msg, m.keys.Top):
		m.scroll.cancel()
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.scroll.cancel()
		m.viewport.GotoBottom()
	}
	return nil
}

// EasterEggFound shows the unlock message and opens the configured link.
func (m *Model) EasterEggFound(phrase string) {
	name := m.catalog.Profile.Name
	if first, _, ok := strings.Cut(name, " "); ok {
		name = first
	}
	m.toast = fmt.Sprintf(easterEggMessage, name)
	m.relayout()
	m.recorder.EasterEggFound(phrase, m.opts.EasterEggURL)

	if m.opts.EasterEggURL != "" {
		m.openURL(m.opts.EasterEggURL)
	}
}

// openLink follows the i-th social link. Download links are saved locally
// when a Downloader is set; everything else goes to the Opener.
func (m *Model) openLink(i int) {
	if i < 0 || i >= len(m.catalog.Socials) {
		return
	}
	link := m.catalog.Socials[i]
	m.recorder.LinkOpened(link)

	if link.Download && m.opts.Downloader != nil {
		m.toast = "Downloading " + link.Label + "..."
		m.relayout()
		dl := m.opts.Downloader
		m.pending = append(m.pending, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), downloadTimeout)
			defer cancel()
			path, err := dl.Download(ctx, link)
			return downloadedMsg{link: link, path: path, err: err}
		})
		return
	}
	m.openURL(link.URL)
}

func (m *Model) openURL(url string) {
	opener := m.opts.Opener
	m.pending = append(m.pending, func() tea.Msg {
		return openedMsg{url: url, err: opener.Open(url)}
	})
}

func (m *Model) copyEmail() {
	link, ok := m.catalog.Email()
	if !ok {
		return
	}
	addr := strings.TrimPrefix(link.URL, "mailto:")
	if err := m.opts.CopyText(addr); err != nil {
		m.logger.Debug().Err(err).Msg("clipboard unavailable")
		m.toast = "Email: " + addr
	} else {
		m.toast = "Copied " + addr
	}
	m.relayout()
}

func (m *Model) quit() tea.Cmd {
	m.teardown()
	return tea.Quit
}

// teardown releases the timers and the key listener. Safe to call twice.
func (m *Model) teardown() {
	m.teardownOnce.Do(func() {
		m.closed = true
		m.cycle.Stop()
		m.loadGen++
		m.scroll.cancel()
		m.egg.Detach()
		m.recorder.SessionEnded()
		m.logger.Debug().Msg("teardown")
	})
}

func (m *Model) narrow() bool {
	return m.width < components.NarrowWidth
}

func (m *Model) navbar() string {
	return components.RenderNavbar(m.styles, components.Navbar{
		Brand:    initials(m.catalog.Profile.Name),
		Items:    models.NavItems,
		Theme:    m.theme.Get(),
		MenuOpen: m.nav.MenuOpen(),
		Narrow:   m.narrow(),
	}, m.width)
}

func (m *Model) footer() string {
	_, hasEmail := m.catalog.Email()
	out := components.RenderFooter(m.styles, components.PageQuickActions(hasEmail, len(m.catalog.Socials), m.toast != ""), m.width)
	if m.toast != "" {
		out = components.RenderToast(m.styles, m.toast, m.width) + "\n" + out
	}
	return out
}

// relayout sizes the viewport around the chrome, then re-renders.
func (m *Model) relayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	chrome := lipgloss.Height(m.navbar()) + lipgloss.Height(m.footer())
	h := m.height - chrome
	if h < 1 {
		h = 1
	}
	m.viewport.Width = m.width
	m.viewport.Height = h
	m.refresh()
}

// refresh re-renders the page for the current theme, word, and width.
func (m *Model) refresh() {
	if m.width <= 0 {
		return
	}
	m.page = m.renderer.Render(render.Input{
		Catalog:   m.catalog,
		Styles:    m.styles,
		Width:     m.width,
		CycleWord: m.cycle.Current(),
	})
	m.viewport.SetContent(m.page.Content)
	m.nav.SetDocument(m.page)
}

func (m *Model) maxYOffset() int {
	n := m.viewport.TotalLineCount() - m.viewport.Height
	if n < 0 {
		return 0
	}
	return n
}

// View renders the current state.
func (m *Model) View() string {
	if m.closed {
		return ""
	}
	if m.width > 0 && m.height > 0 && (m.width < minWidth || m.height < minHeight) {
		return strings.Join(m.smallViewLines(), "\n") + "\n"
	}
	if m.loading {
		return components.RenderLoading(m.styles, m.spinner.View(), m.width, m.height)
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.navbar(), m.viewport.View(), m.footer())
}

func (m *Model) smallViewLines() []string {
	return []string{
		m.styles.Warning.Render(fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)),
		m.styles.Muted.Render(fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)),
		m.styles.Muted.Render("Press ctrl+c to quit."),
	}
}

func initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		for _, r := range part {
			b.WriteRune(r)
			break
		}
	}
	if b.Len() == 0 {
		return "~"
	}
	return strings.ToUpper(b.String())
}
