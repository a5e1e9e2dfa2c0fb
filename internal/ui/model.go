package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/atomicstack/command-menu/internal/backend"
	"github.com/atomicstack/command-menu/internal/logging/events"
	"github.com/atomicstack/command-menu/internal/menu"
	"github.com/atomicstack/command-menu/internal/nav"
	"github.com/atomicstack/command-menu/internal/theme"
	"github.com/atomicstack/command-menu/internal/ui/command"
	uistate "github.com/atomicstack/command-menu/internal/ui/state"
)

const (
	menuHeaderSeparator = "→"
	defaultRootTitle    = "command menu"
)

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Root         menu.List
	DefaultLabel string
	Width        int
	Height       int
	ShowFooter   bool
	Verbose      bool
	StartOpen    bool
	Theme        string
	Watcher      *backend.Watcher
	// Observer is notified of every applied navigation input.
	Observer nav.Observer
	// OnAction is notified of every finished leaf action.
	OnAction func(name string, err error)
}

// Model implements the Bubble Tea model hosting the command menu overlay.
type Model struct {
	root         menu.List
	defaultLabel string

	session   *nav.Session
	sessionID string
	observer  nav.Observer
	onAction  func(string, error)

	keys     KeyMap
	help     help.Model
	styles   *theme.Styles
	viewport uistate.Viewport

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	loading       bool
	pendingAction string
	pendingLabel  string
	errMsg        string
	infoMsg       string
	infoExpire    time.Time
	href          string

	backend *backend.Watcher
	bus     *command.Bus

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state with the root menu and configuration.
func NewModel(opts Options) *Model {
	root := opts.Root
	if root == nil {
		root = menu.Default()
	}
	styles, ok := theme.Lookup(opts.Theme)
	if !ok {
		styles = theme.Default()
	}
	m := &Model{
		root:         root,
		defaultLabel: opts.DefaultLabel,
		observer:     opts.Observer,
		onAction:     opts.OnAction,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		styles:       styles,
		showFooter:   opts.ShowFooter,
		verbose:      opts.Verbose,
		backend:      opts.Watcher,
		bus:          command.New(),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	if opts.StartOpen {
		m.openOverlay()
	}
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):          m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):        m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):   m.handleWindowSizeMsg,
		reflect.TypeOf(menu.ActionResult{}):   m.handleActionResultMsg,
		reflect.TypeOf(menu.ThemeToggleMsg{}): m.handleThemeToggleMsg,
		reflect.TypeOf(backendEventMsg{}):     m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):      m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// IsOpen reports whether the overlay is showing.
func (m *Model) IsOpen() bool {
	return m.session != nil
}

// State returns the navigation state of the open overlay.
func (m *Model) State() (nav.State, bool) {
	if m.session == nil {
		return nav.State{}, false
	}
	return m.session.State(), true
}

// Href returns the link chosen before the program quit, if any.
func (m *Model) Href() string {
	return m.href
}

// Theme returns the name of the active style set.
func (m *Model) Theme() string {
	return m.styles.Name
}

// openOverlay starts a fresh session at the root list.
func (m *Model) openOverlay() {
	m.sessionID = uuid.NewString()
	m.session = nav.NewSession(m.root, m.defaultLabel, m.observe)
	m.viewport.Reset()
	m.errMsg = ""
	m.forceClearInfo()
	events.UI.Open(m.sessionID, m.session.State().ActiveLabel())
}

// closeOverlay discards the session; reopening starts from the root again.
func (m *Model) closeOverlay(reason string) {
	if m.session == nil {
		return
	}
	events.UI.Close(m.sessionID, reason)
	m.session = nil
	m.sessionID = ""
	m.loading = false
	m.pendingAction = ""
	m.pendingLabel = ""
}

func (m *Model) observe(tr nav.Transition) {
	events.Nav.Transition(tr.Cause, tr.Before.Active, tr.After.Active, tr.After.History.Depth(), tr.Changed)
	if m.observer != nil {
		m.observer(tr)
	}
}

func (m *Model) menuContext() menu.Context {
	return menu.Context{SessionID: m.sessionID, Theme: m.styles.Name}
}
