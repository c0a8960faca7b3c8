package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/closewatch/closewatch/internal/config"
	"github.com/closewatch/closewatch/internal/errors"
	"github.com/closewatch/closewatch/internal/journal"
	"github.com/closewatch/closewatch/internal/overlay"
)

func newTestModel(t *testing.T) (*Model, journal.Store) {
	t.Helper()
	t.Setenv("CLOSEWATCH_CONFIG_DIR", t.TempDir())
	t.Setenv("CLOSEWATCH_STATE_DIR", t.TempDir())

	store := journal.NewMemoryStore(0)
	m := NewModel(Deps{Store: store})
	return m, store
}

func pressRune(m *Model, r rune) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func pressEsc(m *Model) {
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
}

func journalEvents(t *testing.T, store journal.Store) []string {
	t.Helper()
	entries, err := store.List(journal.Filter{})
	require.NoError(t, err)
	events := make([]string, len(entries))
	for i, e := range entries {
		events[i] = e.Event
	}
	return events
}

func TestOpenDialogThenEscapeClosesIt(t *testing.T) {
	m, store := newTestModel(t)

	pressRune(m, 'd')
	require.Equal(t, 1, m.stack.Len())
	require.Equal(t, 1, m.reg.ManagerFor(m.window).GroupCount())

	pressEsc(m)

	assert.Equal(t, 0, m.stack.Len())
	assert.Equal(t, []string{
		"activation-granted",
		"registered",
		"close",
		"dismiss-signal",
	}, journalEvents(t, store))
}

func TestEachActivatedDialogGetsItsOwnGroup(t *testing.T) {
	m, _ := newTestModel(t)

	pressRune(m, 'd')
	pressRune(m, 'd')

	mgr := m.reg.ManagerFor(m.window)
	require.Equal(t, 2, mgr.GroupCount())

	// The newest group goes first; the older dialog survives the gesture.
	pressEsc(m)
	require.Equal(t, 1, m.stack.Len())
	assert.Equal(t, "Dialog 1", m.stack.Top().Title())

	pressEsc(m)
	assert.Equal(t, 0, m.stack.Len())
}

func TestScriptedOpensPileIntoTheNewestGroup(t *testing.T) {
	m, _ := newTestModel(t)

	// No activation precedes either open, so both watchers share the one
	// free slot.
	pressRune(m, 'n')
	pressRune(m, 'n')

	mgr := m.reg.ManagerFor(m.window)
	require.Equal(t, 1, mgr.GroupCount())
	require.Len(t, mgr.Groups()[0], 2)
	assert.Equal(t, 1, mgr.AllowedNumberOfGroups())

	// One Escape flushes the whole pile, newest first.
	pressEsc(m)
	assert.Equal(t, 0, m.stack.Len())
}

func TestBankedActivationGivesScriptedOpenItsOwnGroup(t *testing.T) {
	m, _ := newTestModel(t)

	// The d keystroke banks a slot; the scripted open that follows spends
	// it without a fresh activation of its own.
	pressRune(m, 'd')
	pressRune(m, 'n')

	mgr := m.reg.ManagerFor(m.window)
	require.Equal(t, 2, mgr.GroupCount())

	pressEsc(m)
	require.Equal(t, 1, m.stack.Len())
	assert.Equal(t, "Dialog 1", m.stack.Top().Title())
}

func TestMouseClickGrantsNoSlot(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	mgr := m.reg.ManagerFor(m.window)
	assert.Equal(t, 1, mgr.AllowedNumberOfGroups())
	assert.True(t, mgr.ActivationGateArmed(), "a mouse down must not consume the gate either")

	// With no slot granted, two scripted opens still share one group.
	pressRune(m, 'n')
	pressRune(m, 'n')
	require.Equal(t, 1, mgr.GroupCount())
	require.Len(t, mgr.Groups()[0], 2)
}

func TestPromptVetoRequiresSecondEscape(t *testing.T) {
	m, store := newTestModel(t)

	pressRune(m, 's')
	require.True(t, m.promptOpen())

	pressRune(m, 'a')
	pressRune(m, 'b')
	require.Equal(t, "ab", m.ui.promptInput.Value())

	// Dirty input vetoes the first dismissal and arms the confirmation.
	pressEsc(m)
	require.True(t, m.promptOpen())
	assert.True(t, m.ui.confirmArmed)
	assert.Contains(t, journalEvents(t, store), "cancel-suppressed")

	// The second gesture goes through.
	pressEsc(m)
	assert.False(t, m.promptOpen())
	assert.Equal(t, 0, m.stack.Len())
}

func TestPromptEditWithdrawsDiscardConfirmation(t *testing.T) {
	m, _ := newTestModel(t)

	pressRune(m, 's')
	pressRune(m, 'a')
	pressEsc(m)
	require.True(t, m.ui.confirmArmed)

	pressRune(m, 'b')
	assert.False(t, m.ui.confirmArmed, "typing again should disarm the pending discard")
	require.True(t, m.promptOpen())
}

func TestCleanPromptEscapesImmediately(t *testing.T) {
	m, _ := newTestModel(t)

	pressRune(m, 's')
	require.True(t, m.promptOpen())

	pressEsc(m)
	assert.False(t, m.promptOpen())
	assert.Equal(t, 0, m.stack.Len())
}

func TestPromptEnterCommitsThroughTheWatcherPath(t *testing.T) {
	m, store := newTestModel(t)

	pressRune(m, 's')
	for _, r := range "demo" {
		pressRune(m, r)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.promptOpen())
	assert.Equal(t, 0, m.stack.Len())
	assert.Equal(t, errors.MessageTypeSuccess, m.ui.statusType)
	assert.Contains(t, m.ui.statusMessage, "demo")
	assert.Contains(t, journalEvents(t, store), "close")
}

func TestTypedKeysRouteToThePromptInput(t *testing.T) {
	m, _ := newTestModel(t)

	pressRune(m, 's')
	pressRune(m, 'd')

	assert.Equal(t, 1, m.stack.Len(), "d should edit the prompt, not open a dialog")
	assert.Equal(t, "d", m.ui.promptInput.Value())
}

func TestPopoverToggles(t *testing.T) {
	m, _ := newTestModel(t)

	pressRune(m, 'p')
	require.NotNil(t, m.popover)
	require.Equal(t, 1, m.stack.Len())
	assert.Equal(t, overlay.KindPopover, m.stack.Top().Kind())

	pressRune(m, 'p')
	assert.Nil(t, m.popover)
	assert.Equal(t, 0, m.stack.Len())
}

func TestEscapeClosesPopoverBeforeDialog(t *testing.T) {
	m, _ := newTestModel(t)

	pressRune(m, 'd')
	pressRune(m, 'p')
	require.Equal(t, 2, m.stack.Len())

	pressEsc(m)
	require.Equal(t, 1, m.stack.Len())
	assert.Equal(t, overlay.KindDialog, m.stack.Top().Kind())
	assert.Nil(t, m.popover)

	pressEsc(m)
	assert.Equal(t, 0, m.stack.Len())
}

func TestQuitReleasesTheWindow(t *testing.T) {
	m, store := newTestModel(t)

	pressRune(m, 'd')
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.False(t, m.window.Live())
	assert.Equal(t, 0, m.stack.Len())

	events := journalEvents(t, store)
	assert.Contains(t, events, "destroy")
	assert.Contains(t, events, "window-released")
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.False(t, m.window.Live())
}

func TestJournalPaneShowsRecentEvents(t *testing.T) {
	m, _ := newTestModel(t)

	pressRune(m, 'd')
	pressRune(m, 'j')

	require.True(t, m.ui.journalPane)
	assert.Contains(t, m.ui.journalView.View(), "registered")
	assert.Contains(t, m.View(), "journal")
}

func TestDebugPanelShowsGroupsAndBudget(t *testing.T) {
	m, _ := newTestModel(t)

	pressRune(m, 'd')
	pressRune(m, 'g')

	view := m.View()
	assert.Contains(t, view, "watcher groups")
	assert.Contains(t, view, "group 1: watcher-1")
	// d banked a slot (budget 2), then g consumed the re-armed gate.
	assert.Contains(t, view, "budget 3, gate disarmed")
}

func TestWindowSizeUpdatesUIState(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, m.ui.width)
	assert.Equal(t, 40, m.ui.height)
	assert.Equal(t, 120, m.ui.journalView.Width)
}

func TestInitialViewShowsInstructions(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "closewatch workbench")
	assert.Contains(t, view, "No surfaces are open.")
	assert.Contains(t, view, "esc: dismiss")
}

func TestViewAfterQuitIsEmpty(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.Equal(t, "", m.View())
}

func TestConfigReloadUpdatesConfirmDiscard(t *testing.T) {
	m, _ := newTestModel(t)
	require.True(t, m.confirmDiscard)

	t.Setenv("CLOSEWATCH_CONFIRM_DISCARD", "false")
	config.Load()
	m.Update(ConfigReloadedMsg{})

	assert.False(t, m.confirmDiscard)

	// A dirty prompt no longer vetoes once confirmation is off.
	pressRune(m, 's')
	pressRune(m, 'a')
	pressEsc(m)
	assert.False(t, m.promptOpen())
}
