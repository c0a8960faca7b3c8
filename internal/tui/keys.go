package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/closewatch/closewatch/internal/overlay"
	"github.com/closewatch/closewatch/internal/uievent"
)

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	ev := keyEventFromMsg(msg)
	if uievent.IsDismissal(ev) {
		m.dispatchDismissal()
		m.syncJournalPane()
		return m, nil
	}

	if m.promptOpen() {
		m.notifyIfActivation(ev)
		model, cmd := m.handlePromptKey(msg)
		m.syncJournalPane()
		return model, cmd
	}

	// "n" simulates a scripted open: the keystroke is withheld from
	// activation tracking, so once the budget is spent the new watcher
	// piles into the newest group instead of minting its own.
	if msg.String() != "n" {
		m.notifyIfActivation(ev)
	}

	model, cmd := m.handleKeyBinding(msg.String())
	m.syncJournalPane()
	return model, cmd
}

func (m *Model) notifyIfActivation(ev uievent.Event) {
	if uievent.QualifiesAsUserActivation(ev) {
		m.reg.NotifyUserActivation(m.window)
	}
}

func (m *Model) handleKeyBinding(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		return m.quit()
	case "d":
		m.openDialog(false)
	case "n":
		m.openDialog(true)
	case "p":
		m.togglePopover()
	case "s":
		m.openPrompt()
	case "g":
		m.ui.debugPanel = !m.ui.debugPanel
	case "j":
		m.ui.journalPane = !m.ui.journalPane
	}
	return m, nil
}

func (m *Model) openDialog(scripted bool) {
	m.dialogsOpened++
	title := fmt.Sprintf("Dialog %d", m.dialogsOpened)
	body := "modal surface owned by a close watcher"
	if scripted {
		title = fmt.Sprintf("Scripted dialog %d", m.dialogsOpened)
		body = "opened without user activation"
	}
	if _, err := m.stack.ShowDialog(overlay.DialogOptions{Title: title, Body: body}); err != nil {
		m.errorHandler.Error("open dialog: " + err.Error())
	}
}

func (m *Model) togglePopover() {
	if m.popover != nil && m.popover.Visible() {
		m.popover.Close()
		return
	}
	p, err := m.stack.ShowPopover(overlay.PopoverOptions{
		Name:      "popover",
		Title:     "Popover",
		Body:      "transient surface; esc or p hides it",
		OnDismiss: func() { m.popover = nil },
	})
	if err != nil {
		m.errorHandler.Error("open popover: " + err.Error())
		return
	}
	m.popover = p
}

func (m *Model) openPrompt() {
	if m.promptOpen() {
		return
	}
	m.ui.promptInput.Reset()
	m.ui.promptInput.Focus()
	m.ui.confirmArmed = false

	d, err := m.stack.ShowDialog(overlay.DialogOptions{
		Name:  "prompt",
		Title: "Name this session",
		Veto:  m.vetoDirtyPrompt,
		OnDismiss: func() {
			m.prompt = nil
			m.ui.promptInput.Blur()
			m.ui.confirmArmed = false
		},
	})
	if err != nil {
		m.errorHandler.Error("open prompt: " + err.Error())
		return
	}
	m.prompt = d
	m.syncPromptBody()
}

func (m *Model) promptOpen() bool {
	return m.prompt != nil && m.prompt.Visible()
}

// vetoDirtyPrompt refuses the first dismissal of a dirty prompt when
// confirm_discard is on. The refusal arms a confirmation; the next
// dismissal goes through.
func (m *Model) vetoDirtyPrompt() bool {
	if !m.confirmDiscard || m.ui.promptInput.Value() == "" {
		return false
	}
	if m.ui.confirmArmed {
		return false
	}
	m.ui.confirmArmed = true
	m.syncPromptBody()
	return true
}

func (m *Model) syncPromptBody() {
	if m.prompt == nil {
		return
	}
	body := m.ui.promptInput.View()
	if m.ui.confirmArmed {
		body += "\nunsaved input: press esc again to discard"
	}
	m.prompt.SetBody(body)
}

func (m *Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		name := strings.TrimSpace(m.ui.promptInput.Value())
		m.prompt.Close()
		if name == "" {
			m.errorHandler.Info("prompt dismissed")
		} else {
			m.errorHandler.Success(fmt.Sprintf("session named %q", name))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.ui.promptInput, cmd = m.ui.promptInput.Update(msg)
	// Editing again withdraws a pending discard confirmation.
	m.ui.confirmArmed = false
	m.syncPromptBody()
	return m, cmd
}
