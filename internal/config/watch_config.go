package config

// setWatchDefaults installs default values for config file watching.
func setWatchDefaults() {
	setDefault("watch_config", "false")
	setDefault("watch_debounce", "200ms")
}

// registerWatchValidators registers validators for config file watching.
func registerWatchValidators() {
	RegisterValidator("watch_config", BoolValidator())
	RegisterValidator("watch_debounce", DurationValidator(false))
}
