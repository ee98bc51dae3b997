package api

import (
	"context"
	"net/http"
	"net/url"
)

// TenantMe returns the tenant profile for the current session.
func (c *Client) TenantMe(ctx context.Context) (*Tenant, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/tenants/me", nil)
	if err != nil {
		return nil, err
	}

	var t Tenant
	if err := decodeResponse(resp, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// TenantPublic returns the public profile for a tenant slug. Unauthenticated;
// used for pre-login branding preview.
func (c *Client) TenantPublic(ctx context.Context, slug string) (*Tenant, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/tenants/public?slug="+url.QueryEscape(slug), nil)
	if err != nil {
		return nil, err
	}

	var t Tenant
	if err := decodeResponse(resp, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTenantBranding saves the tenant's visual theme and returns the
// updated tenant record.
func (c *Client) UpdateTenantBranding(ctx context.Context, branding Branding) (*Tenant, error) {
	resp, err := c.doRequest(ctx, http.MethodPut, "/tenants/me/branding", branding)
	if err != nil {
		return nil, err
	}

	var t Tenant
	if err := decodeResponse(resp, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// AdminTenants lists all tenants on the platform (super admin only).
func (c *Client) AdminTenants(ctx context.Context) ([]Tenant, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/admin/tenants", nil)
	if err != nil {
		return nil, err
	}

	var tenants []Tenant
	if err := decodeResponse(resp, &tenants); err != nil {
		return nil, err
	}
	return tenants, nil
}

// CreateTenant provisions a new tenant (super admin only).
func (c *Client) CreateTenant(ctx context.Context, t Tenant) (*Tenant, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/admin/tenants", t)
	if err != nil {
		return nil, err
	}

	var created Tenant
	if err := decodeResponse(resp, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateTenant updates a tenant record (super admin only).
func (c *Client) UpdateTenant(ctx context.Context, id string, t Tenant) (*Tenant, error) {
	resp, err := c.doRequest(ctx, http.MethodPut, "/admin/tenants/"+id, t)
	if err != nil {
		return nil, err
	}

	var updated Tenant
	if err := decodeResponse(resp, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
