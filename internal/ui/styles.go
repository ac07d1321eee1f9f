package ui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	ColorSuccess   = lipgloss.Color("#00D26A") // green  — success
	ColorWarning   = lipgloss.Color("#FFB800") // yellow — warning
	ColorError     = lipgloss.Color("#FF4444") // red    — error
	ColorAddress   = lipgloss.Color("#00B4D8") // cyan   — addresses, selectors
	ColorValue     = lipgloss.Color("#FFFFFF") // white bold — values
	ColorMeta      = lipgloss.Color("#555555") // dim gray  — param names, metadata
	ColorBorder    = lipgloss.Color("#1E3A5F") // dark blue — UI chrome
	ColorFunc      = lipgloss.Color("#9B5DE5") // purple    — function names
	ColorHighlight = lipgloss.Color("#F15BB5") // pink      — headers
)

// Base styles.
var (
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StyleAddress = lipgloss.NewStyle().Foreground(ColorAddress)
	StyleValue   = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	StyleMeta    = lipgloss.NewStyle().Foreground(ColorMeta)
	StyleFunc    = lipgloss.NewStyle().Foreground(ColorFunc).Bold(true)

	StyleBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Underline(true)

	StyleTitle = lipgloss.NewStyle().
			Foreground(ColorFunc).
			Bold(true).
			MarginBottom(1)

	StyleDim = lipgloss.NewStyle().Foreground(ColorMeta)
)

// Success formats a success message.
func Success(msg string) string { return StyleSuccess.Render("✓ " + msg) }

// Warn formats a warning message.
func Warn(msg string) string { return StyleWarning.Render("⚠ " + msg) }

// Err formats an error message.
func Err(msg string) string { return StyleError.Render("✗ " + msg) }

// Info formats an informational message.
func Info(msg string) string { return StyleAddress.Render("ℹ " + msg) }

// Hint formats a usage hint.
func Hint(msg string) string { return StyleMeta.Render("💡 " + msg) }

// Addr formats an address or selector.
func Addr(a string) string { return StyleAddress.Render(a) }

// Val formats a value.
func Val(v string) string { return StyleValue.Render(v) }

// Meta formats metadata text.
func Meta(m string) string { return StyleMeta.Render(m) }

// FuncName formats a function name.
func FuncName(f string) string { return StyleFunc.Render(f) }

// TruncateAddr shortens an address for display: 0x1234…5678.
func TruncateAddr(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:6] + "…" + addr[len(addr)-4:]
}
