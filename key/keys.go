// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Tour Presentation - these keys govern how catalog examples are rendered.
const (
	TourShowTopic = "tour.show_topic"
	TourWrapWidth = "tour.wrap_width"
)

// Persisted Stacks - these keys configure the named stacks managed by the stack command.
const (
	StackDefaultName = "stack.default_name"
)

// Scripting - these keys configure the Lua bridge.
const (
	ScriptTimeoutSeconds = "script.timeout_seconds"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern the non-TUI application behavior.
const (
	CliColored = "cli.colored"
)
