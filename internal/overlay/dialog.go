package overlay

import "github.com/charmbracelet/lipgloss"

// DialogOptions configure a modal dialog.
type DialogOptions struct {
	Name  string // watcher name; auto-assigned when empty
	Title string
	Body  string
	// Veto is consulted on each dismissal attempt; returning true keeps
	// the dialog up (e.g. unsaved input asking for confirmation).
	Veto func() bool
	// OnDismiss fires after the dialog actually closes.
	OnDismiss func()
}

// Dialog is a modal surface. Dismissal gestures reach it through its close
// watcher, and its veto may refuse them.
type Dialog struct {
	core
}

// View renders the dialog box bounded by width.
func (d *Dialog) View(width int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 2)
	if width > 4 {
		box = box.MaxWidth(width)
	}

	title := lipgloss.NewStyle().Bold(true).Render(d.title)
	hint := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("esc: dismiss")

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, title, d.body, hint))
}
