package log

import "github.com/charmbracelet/lipgloss"

// Level token styles for the color rendering mode.
var (
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")).
			Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	debugStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	traceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// styleFor returns the style applied to a level token when color is enabled.
func styleFor(level Level) lipgloss.Style {
	switch level {
	case LevelError:
		return errorStyle
	case LevelWarn:
		return warnStyle
	case LevelDebug:
		return debugStyle
	case LevelTrace:
		return traceStyle
	default:
		return infoStyle
	}
}
