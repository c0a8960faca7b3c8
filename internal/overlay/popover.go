package overlay

import "github.com/charmbracelet/lipgloss"

// PopoverOptions configure a popover.
type PopoverOptions struct {
	Name  string // watcher name; auto-assigned when empty
	Title string
	Body  string
	// OnDismiss fires after the popover closes.
	OnDismiss func()
}

// Popover is a light surface without a veto; any dismissal gesture that
// reaches it closes it.
type Popover struct {
	core
}

// View renders the popover box bounded by width.
func (p *Popover) View(width int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("39")).
		Padding(0, 1)
	if width > 4 {
		box = box.MaxWidth(width)
	}

	title := lipgloss.NewStyle().Bold(true).Render(p.title)

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, title, p.body))
}
