package branding

import (
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/admitly/admitctl/internal/api"
)

// TerminalTheme is a Sink that renders the effective branding as lipgloss
// styles for CLI output. It is the terminal analog of the web client's
// CSS variables.
type TerminalTheme struct {
	mu      sync.RWMutex
	palette Palette

	title  lipgloss.Style
	accent lipgloss.Style
	muted  lipgloss.Style
	err    lipgloss.Style
}

// NewTerminalTheme returns a theme seeded with the platform default palette.
func NewTerminalTheme() *TerminalTheme {
	t := &TerminalTheme{}
	t.Apply(PlatformDefault())
	return t
}

// Apply merges b into the theme and rebuilds the styles.
func (t *TerminalTheme) Apply(b api.Branding) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.palette.Apply(b)
	effective := t.palette.Snapshot()

	t.title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(effective.PrimaryColor))
	t.accent = lipgloss.NewStyle().
		Foreground(lipgloss.Color(effective.SecondaryColor))
	t.muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	t.err = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("196"))
}

// Title renders s in the tenant's primary color, bold.
func (t *TerminalTheme) Title(s string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.title.Render(s)
}

// Accent renders s in the tenant's secondary color.
func (t *TerminalTheme) Accent(s string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.accent.Render(s)
}

// Muted renders s dimmed.
func (t *TerminalTheme) Muted(s string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.muted.Render(s)
}

// Error renders s as a failure.
func (t *TerminalTheme) Error(s string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.err.Render(s)
}

// Snapshot returns the theme's current effective branding.
func (t *TerminalTheme) Snapshot() api.Branding {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.palette.Snapshot()
}
