// Package tenant resolves the active tenant identity for outbound requests.
//
// The slug resolution supports three deployment shapes at once: a slug stored
// by a previous login, a deploy-time configured default, and subdomain-per-
// tenant hosting where the leftmost host label is the slug. Exactly one source
// is used per resolution; they are never merged.
package tenant

import (
	"strings"

	"github.com/admitly/admitctl/internal/state"
)

// localHosts are development hosts that never carry a tenant subdomain.
var localHosts = map[string]bool{
	"localhost": true,
	"127.0.0.1": true,
	"::1":       true,
	"0.0.0.0":   true,
}

// Resolver derives the active tenant identifier. All reads are pure and valid
// at any time, including before authentication.
type Resolver struct {
	store       *state.Store
	defaultSlug string
	host        string
}

// NewResolver builds a resolver over the durable store, the configured
// default slug, and the API origin hostname.
func NewResolver(store *state.Store, defaultSlug, host string) *Resolver {
	return &Resolver{
		store:       store,
		defaultSlug: defaultSlug,
		host:        host,
	}
}

// Slug resolves the tenant slug. Precedence, first match wins:
// stored slug, configured default, host-derived slug. Returns "" when no
// source matches.
func (r *Resolver) Slug() string {
	if stored := r.store.Get(state.KeyTenantSlug); stored != "" {
		return stored
	}
	if r.defaultSlug != "" {
		return r.defaultSlug
	}
	return SlugFromHost(r.host)
}

// ID returns the opaque tenant id from the durable store, or "" when absent.
// The id is only obtainable through authentication and is never derived.
func (r *Resolver) ID() string {
	return r.store.Get(state.KeyTenantID)
}

// SlugFromHost derives a tenant slug from a hostname. Local hosts and hosts
// with fewer than three dot-separated labels carry no slug.
func SlugFromHost(host string) string {
	if host == "" || localHosts[host] {
		return ""
	}
	parts := strings.Split(host, ".")
	if len(parts) < 3 {
		return ""
	}
	return parts[0]
}
