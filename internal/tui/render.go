package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/closewatch/closewatch/internal/errors"
	"github.com/closewatch/closewatch/internal/journal"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n\n")

	if m.stack.Len() == 0 {
		b.WriteString(m.instructionsView())
	} else {
		b.WriteString(m.stack.View(m.ui.width))
	}
	b.WriteString("\n")

	if m.ui.debugPanel {
		b.WriteString("\n")
		b.WriteString(m.debugPanelView())
		b.WriteString("\n")
	}

	if m.ui.journalPane {
		b.WriteString("\n")
		b.WriteString(m.journalPaneView())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.footerView())
	return b.String()
}

func (m *Model) headerView() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("62")).
		Render("closewatch workbench")
	info := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render(fmt.Sprintf("window %s, %d open", m.window, m.stack.Len()))
	return title + "  " + info
}

func (m *Model) instructionsView() string {
	text := strings.Join([]string{
		"No surfaces are open.",
		"",
		"d opens a dialog behind a close watcher; each activation-backed",
		"open earns its own dismissal slot. n opens one without activation,",
		"so it piles into the newest slot once the budget is spent.",
		"esc dismisses the newest group, last registered first.",
	}, "\n")
	return lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(text)
}

func (m *Model) debugPanelView() string {
	mgr := m.reg.ManagerFor(m.window)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("watcher groups"))
	b.WriteString("\n")

	groups := mgr.Groups()
	if len(groups) == 0 {
		b.WriteString("  (none)\n")
	}
	for i, names := range groups {
		b.WriteString(fmt.Sprintf("  group %d: %s\n", i+1, strings.Join(names, ", ")))
	}

	gate := "disarmed"
	if mgr.ActivationGateArmed() {
		gate = "armed"
	}
	b.WriteString(fmt.Sprintf("  budget %d, gate %s", mgr.AllowedNumberOfGroups(), gate))
	return b.String()
}

func (m *Model) journalPaneView() string {
	title := lipgloss.NewStyle().Bold(true).Render("journal")
	return title + "\n" + m.ui.journalView.View()
}

// journalTailView formats journal rows for the tail pane, oldest first.
func journalTailView(entries []journal.Entry) string {
	if len(entries) == 0 {
		return "(empty)"
	}
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%-14s %-20s %-12s %s", entryAge(e), e.Event, e.Watcher, e.Detail))
	}
	return b.String()
}

func entryAge(e journal.Entry) string {
	ts, err := time.Parse("2006-01-02T15:04:05Z", e.CreatedAt)
	if err != nil {
		return e.CreatedAt
	}
	return humanize.Time(ts)
}

func (m *Model) footerView() string {
	help := []string{
		"d: dialog", "n: scripted", "p: popover", "s: prompt",
		"esc: dismiss", "g: groups", "j: journal", "q: quit",
	}
	if m.promptOpen() {
		help = []string{"type to edit", "enter: save", "esc: dismiss", "ctrl+c: quit"}
	}
	line := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render(strings.Join(help, "  |  "))

	if !m.ui.hasStatus {
		return line
	}
	return line + "\n" + statusView(m.ui.statusMessage, m.ui.statusType)
}

func statusView(text string, kind errors.MessageType) string {
	color := "241"
	switch kind {
	case errors.MessageTypeError:
		color = "203"
	case errors.MessageTypeWarning:
		color = "214"
	case errors.MessageTypeInfo:
		color = "39"
	case errors.MessageTypeSuccess:
		color = "42"
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
}
