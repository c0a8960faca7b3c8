package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/closewatch/closewatch/internal/colors"
)

// ProgramRunner abstracts running a bubbletea program so commands can swap
// in a stub under test.
type ProgramRunner interface {
	Run(model tea.Model) error
}

// DefaultProgramRunner runs the workbench full screen with mouse reporting
// on, so pointer downs reach the activation classifier.
type DefaultProgramRunner struct {
	mu      sync.Mutex
	program *tea.Program
}

func NewDefaultProgramRunner() *DefaultProgramRunner {
	return &DefaultProgramRunner{}
}

func (r *DefaultProgramRunner) Run(model tea.Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
	// JSON debug lines on stderr tear up the alternate screen.
	colors.DisableStructuredLogging()
	defer colors.EnableStructuredLogging()
	_, err := p.Run()
	return err
}

// Send injects a message into the running program. Messages sent before Run
// are dropped; the config watcher only fires after startup anyway.
func (r *DefaultProgramRunner) Send(msg tea.Msg) {
	r.mu.Lock()
	p := r.program
	r.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}
