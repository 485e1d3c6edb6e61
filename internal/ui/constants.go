package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
)

// Text fragments
const (
	PreviewSeparator = "-----"
)

// Layout sizing
const (
	LabelColumnWidth      float32 = 110
	ConnectionsEntryWidth float32 = 60
)

// Log view limits. The log is append-only for the duration of a job; the cap
// only guards against a pathologically chatty child process.
const (
	MaxLogLines = 10000
)
