package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/closewatch/closewatch/internal/errors"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// journalPaneHeight is the viewport height of the journal tail pane.
	journalPaneHeight = 8
	// journalTailLimit caps how many rows the pane reads per refresh.
	journalTailLimit = 50

	promptCharLimit = 64
	promptWidth     = 32
)

// uiState holds presentation state, separate from the dismissal wiring.
type uiState struct {
	width  int
	height int

	debugPanel  bool
	journalPane bool
	journalView viewport.Model

	promptInput  textinput.Model
	confirmArmed bool

	statusMessage string
	statusType    errors.MessageType
	hasStatus     bool
}

func newUIState(debugPanel bool) *uiState {
	ti := textinput.New()
	ti.Placeholder = "session name"
	ti.CharLimit = promptCharLimit
	ti.Width = promptWidth

	return &uiState{
		width:       defaultWidth,
		height:      defaultHeight,
		debugPanel:  debugPanel,
		journalView: viewport.New(defaultWidth, journalPaneHeight),
		promptInput: ti,
	}
}

func (s *uiState) setSize(width, height int) {
	s.width = width
	s.height = height
	s.journalView.Width = width
}

func (s *uiState) setStatus(msg errors.Message) {
	s.statusMessage = msg.Text
	s.statusType = msg.Type
	s.hasStatus = msg.Text != ""
}

func (s *uiState) clearStatus() {
	s.statusMessage = ""
	s.hasStatus = false
}
