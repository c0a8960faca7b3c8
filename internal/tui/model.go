package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/closewatch/closewatch/internal/closewatch"
	"github.com/closewatch/closewatch/internal/config"
	"github.com/closewatch/closewatch/internal/errors"
	"github.com/closewatch/closewatch/internal/journal"
	"github.com/closewatch/closewatch/internal/logging"
	"github.com/closewatch/closewatch/internal/overlay"
)

const windowName = "workbench"

// Deps carries the collaborators the workbench needs. Nil fields get
// production defaults, so tests can inject only what they observe.
type Deps struct {
	Registry *closewatch.Registry
	Store    journal.Store
	Log      logging.Logger
}

// Model is the bubbletea model for the workbench. All watcher state is
// confined to the Update loop; nothing here is safe for concurrent use.
type Model struct {
	ui           *uiState
	errorHandler *errors.TUIHandler

	window *Window
	reg    *closewatch.Registry
	stack  *overlay.Stack
	store  journal.Store
	log    logging.Logger

	prompt         *overlay.Dialog
	popover        *overlay.Popover
	confirmDiscard bool

	dialogsOpened int
	quitting      bool
}

// NewModel wires a workbench around one window.
func NewModel(deps Deps) *Model {
	config.Load()

	log := deps.Log
	if log == nil {
		log = logging.GetGlobal()
	}
	store := deps.Store
	if store == nil {
		store = journal.NewMemoryStore(0)
	}
	reg := deps.Registry
	if reg == nil {
		reg = closewatch.NewRegistry(log, journal.NewRecorder(store, log))
	}

	window := NewWindow(windowName)
	m := &Model{
		ui:             newUIState(config.GetBool("debug_panel", false)),
		window:         window,
		reg:            reg,
		stack:          overlay.NewStack(reg, window, log),
		store:          store,
		log:            log,
		confirmDiscard: config.GetBool("confirm_discard", true),
	}
	m.errorHandler = errors.NewTUIHandler(func(msg errors.Message) {
		m.ui.setStatus(msg)
	})
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	case tea.WindowSizeMsg:
		m.ui.setSize(msg.Width, msg.Height)
		return m, nil
	case ConfigReloadedMsg:
		m.confirmDiscard = config.GetBool("confirm_discard", true)
		m.errorHandler.Info("configuration reloaded")
		return m, nil
	}
	return m, nil
}

// handleMouseMsg classifies pointer input. Mouse downs run through the
// activation check and are rejected there; they must not mint a group slot.
func (m *Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	m.notifyIfActivation(pointerEventFromMsg(msg))
	m.syncJournalPane()
	return m, nil
}

// dispatchDismissal routes one Escape gesture into the registry.
func (m *Model) dispatchDismissal() {
	m.reg.RequestCloseWatchers(m.window)
	if m.stack.Len() == 0 && m.prompt == nil && m.popover == nil {
		m.ui.clearStatus()
	}
}

// quit tears the workbench down: surfaces are destroyed without dismiss
// callbacks, the window goes dead, and its manager is released.
func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.stack.Clear()
	m.prompt = nil
	m.popover = nil
	m.window.Kill()
	m.reg.Release(m.window)
	return m, tea.Quit
}

// syncJournalPane refreshes the tail pane if it is showing.
func (m *Model) syncJournalPane() {
	if !m.ui.journalPane {
		return
	}
	entries, err := m.store.List(journal.Filter{Limit: journalTailLimit})
	if err != nil {
		m.errorHandler.Error("journal read failed: " + err.Error())
		return
	}
	m.ui.journalView.SetContent(journalTailView(entries))
	m.ui.journalView.GotoBottom()
}
