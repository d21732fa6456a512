// Package style defines the palette and status glyphs nb's log output is
// rendered with. Everything color-related lives here so the handler and any
// future command output stay visually consistent.
package style

import "github.com/charmbracelet/lipgloss"

// Log line colors: slate for plain progress messages, yellow and red for the
// warning and error levels.
var (
	Slate  = lipgloss.Color("#667085")
	Yellow = lipgloss.Color("#F59E0B")
	Red    = lipgloss.Color("#D93025")
)

// Glyphs prefixed to warning and error lines.
const (
	Cross   = "✗"
	Warning = "!"
)
