package tui

// ConfigReloadedMsg tells the workbench the config file was reloaded, so
// behavior keys can be re-read mid-session. Sent from the config watcher
// goroutine via the program runner.
type ConfigReloadedMsg struct{}
