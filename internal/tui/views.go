package tui

import (
	"fmt"
	"strings"

	"github.com/admitly/admitctl/internal/api"
	"github.com/admitly/admitctl/internal/branding"
	"github.com/admitly/admitctl/internal/session"
)

// Renderer produces themed terminal output. All colors come from the
// branding theme, so tenant branding flows through every view.
type Renderer struct {
	theme *branding.TerminalTheme
}

// NewRenderer wraps theme for view rendering.
func NewRenderer(theme *branding.TerminalTheme) *Renderer {
	return &Renderer{theme: theme}
}

// Session renders the whoami view.
func (r *Renderer) Session(s session.Session) string {
	var b strings.Builder

	if !s.Authenticated() {
		b.WriteString(r.theme.Muted("Not logged in.") + "\n")
		return b.String()
	}

	b.WriteString(r.theme.Title(s.User.Name) + "\n")
	b.WriteString(r.kv("Email", s.User.Email))
	b.WriteString(r.kv("Role", string(s.User.Role)))
	if s.Tenant != nil {
		b.WriteString(r.kv("Tenant", fmt.Sprintf("%s (%s)", s.Tenant.Name, s.Tenant.Slug)))
	} else {
		b.WriteString(r.kv("Tenant", "none (platform scope)"))
	}

	return b.String()
}

// Tenant renders a tenant profile.
func (r *Renderer) Tenant(t api.Tenant) string {
	var b strings.Builder

	b.WriteString(r.theme.Title(t.Name) + "\n")
	b.WriteString(r.kv("ID", t.ID))
	b.WriteString(r.kv("Slug", t.Slug))
	if t.Plan != "" {
		b.WriteString(r.kv("Plan", t.Plan))
	}
	if t.Branding != nil {
		b.WriteString(r.Branding(*t.Branding))
	}

	return b.String()
}

// Branding renders the effective branding fields.
func (r *Renderer) Branding(br api.Branding) string {
	var b strings.Builder

	if br.PrimaryColor != "" {
		b.WriteString(r.kv("Primary color", br.PrimaryColor))
	}
	if br.SecondaryColor != "" {
		b.WriteString(r.kv("Secondary color", br.SecondaryColor))
	}
	if br.LogoURL != "" {
		b.WriteString(r.kv("Logo", br.LogoURL))
	}
	if br.Theme != "" {
		b.WriteString(r.kv("Theme", br.Theme))
	}

	return b.String()
}

// Table renders rows under a themed header line. Columns are padded to
// the widest cell.
func (r *Renderer) Table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder

	var head []string
	for i, h := range headers {
		head = append(head, pad(h, widths[i]))
	}
	b.WriteString(r.theme.Accent(strings.Join(head, "  ")) + "\n")

	for _, row := range rows {
		var cells []string
		for i, cell := range row {
			if i < len(widths) {
				cells = append(cells, pad(cell, widths[i]))
			}
		}
		b.WriteString(strings.Join(cells, "  ") + "\n")
	}

	if len(rows) == 0 {
		b.WriteString(r.theme.Muted("(none)") + "\n")
	}

	return b.String()
}

// Success renders a confirmation line.
func (r *Renderer) Success(msg string) string {
	return r.theme.Accent("✓ ") + msg + "\n"
}

// Failure renders an error line.
func (r *Renderer) Failure(msg string) string {
	return r.theme.Error("✗ "+msg) + "\n"
}

func (r *Renderer) kv(key, value string) string {
	return fmt.Sprintf("  %s %s\n", r.theme.Muted(key+":"), value)
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
