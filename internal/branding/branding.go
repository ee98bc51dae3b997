// Package branding projects a tenant's visual theme onto the presentation
// layer. Branding is derived data with no lifecycle of its own: last write
// wins, and partial updates never reset fields they do not mention.
package branding

import (
	"sync"

	"github.com/admitly/admitctl/internal/api"
)

// Sink receives branding updates. Apply is idempotent and accepts partial
// branding values; implementations leave unmentioned fields unchanged.
type Sink interface {
	Apply(api.Branding)
}

// PlatformDefault returns the fixed platform palette applied for tenant-less
// super admin sessions, where no tenant exists to supply a theme.
func PlatformDefault() api.Branding {
	return api.Branding{
		PrimaryColor:   "#0f172a",
		SecondaryColor: "#2563eb",
		Theme:          "platform",
	}
}

// Palette is the in-memory presentation state: the current effective branding.
type Palette struct {
	mu      sync.RWMutex
	current api.Branding
}

// NewPalette returns an empty palette.
func NewPalette() *Palette {
	return &Palette{}
}

// Apply merges b into the palette. Empty fields are left unchanged.
func (p *Palette) Apply(b api.Branding) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if b.LogoURL != "" {
		p.current.LogoURL = b.LogoURL
	}
	if b.PrimaryColor != "" {
		p.current.PrimaryColor = b.PrimaryColor
	}
	if b.SecondaryColor != "" {
		p.current.SecondaryColor = b.SecondaryColor
	}
	if b.Theme != "" {
		p.current.Theme = b.Theme
	}
}

// Snapshot returns the current effective branding.
func (p *Palette) Snapshot() api.Branding {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// Multi fans one Apply out to several sinks.
type Multi []Sink

// Apply forwards b to every sink.
func (m Multi) Apply(b api.Branding) {
	for _, sink := range m {
		sink.Apply(b)
	}
}
