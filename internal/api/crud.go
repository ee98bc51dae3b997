package api

import (
	"context"
	"net/http"
	"net/url"
)

// The CRUD surface below is the out-of-scope consumer side of the client:
// thin typed wrappers that exist to exercise the doRequest chokepoint.

func (c *Client) getJSON(ctx context.Context, path string, target interface{}) error {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return decodeResponse(resp, target)
}

func (c *Client) postJSON(ctx context.Context, path string, body, target interface{}) error {
	resp, err := c.doRequest(ctx, http.MethodPost, path, body)
	if err != nil {
		return err
	}
	return decodeResponse(resp, target)
}

func (c *Client) putJSON(ctx context.Context, path string, body, target interface{}) error {
	resp, err := c.doRequest(ctx, http.MethodPut, path, body)
	if err != nil {
		return err
	}
	return decodeResponse(resp, target)
}

func (c *Client) delete(ctx context.Context, path string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	return decodeResponse(resp, nil)
}

// Users lists the tenant's users.
func (c *Client) Users(ctx context.Context) ([]User, error) {
	var users []User
	err := c.getJSON(ctx, "/users", &users)
	return users, err
}

// CreateUser creates a counselor or admin account.
func (c *Client) CreateUser(ctx context.Context, u User) (*User, error) {
	var created User
	if err := c.postJSON(ctx, "/users", u, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateUser updates a user record.
func (c *Client) UpdateUser(ctx context.Context, id string, u User) (*User, error) {
	var updated User
	if err := c.putJSON(ctx, "/users/"+id, u, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteUser removes a user.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.delete(ctx, "/users/"+id)
}

// Leads lists leads, optionally filtered by query parameters.
func (c *Client) Leads(ctx context.Context, query url.Values) ([]Lead, error) {
	path := "/leads"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	var leads []Lead
	err := c.getJSON(ctx, path, &leads)
	return leads, err
}

// CreateLead creates a lead.
func (c *Client) CreateLead(ctx context.Context, l Lead) (*Lead, error) {
	var created Lead
	if err := c.postJSON(ctx, "/leads", l, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateLead updates a lead.
func (c *Client) UpdateLead(ctx context.Context, id string, l Lead) (*Lead, error) {
	var updated Lead
	if err := c.putJSON(ctx, "/leads/"+id, l, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteLead removes a lead.
func (c *Client) DeleteLead(ctx context.Context, id string) error {
	return c.delete(ctx, "/leads/"+id)
}

// Activities lists activities, optionally filtered by query parameters.
func (c *Client) Activities(ctx context.Context, query url.Values) ([]Activity, error) {
	path := "/activities"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	var activities []Activity
	err := c.getJSON(ctx, path, &activities)
	return activities, err
}

// CreateActivity creates an activity.
func (c *Client) CreateActivity(ctx context.Context, a Activity) (*Activity, error) {
	var created Activity
	if err := c.postJSON(ctx, "/activities", a, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateActivity updates an activity.
func (c *Client) UpdateActivity(ctx context.Context, id string, a Activity) (*Activity, error) {
	var updated Activity
	if err := c.putJSON(ctx, "/activities/"+id, a, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteActivity removes an activity.
func (c *Client) DeleteActivity(ctx context.Context, id string) error {
	return c.delete(ctx, "/activities/"+id)
}

// Stages lists the pipeline stages.
func (c *Client) Stages(ctx context.Context) ([]Stage, error) {
	var stages []Stage
	err := c.getJSON(ctx, "/stages", &stages)
	return stages, err
}

// Templates lists message templates.
func (c *Client) Templates(ctx context.Context) ([]Template, error) {
	var templates []Template
	err := c.getJSON(ctx, "/templates", &templates)
	return templates, err
}

// Campaigns lists campaigns.
func (c *Client) Campaigns(ctx context.Context) ([]Campaign, error) {
	var campaigns []Campaign
	err := c.getJSON(ctx, "/campaigns", &campaigns)
	return campaigns, err
}

// CancelCampaign cancels a scheduled campaign.
func (c *Client) CancelCampaign(ctx context.Context, id string) (*Campaign, error) {
	var cancelled Campaign
	if err := c.postJSON(ctx, "/campaigns/"+id+"/cancel", nil, &cancelled); err != nil {
		return nil, err
	}
	return &cancelled, nil
}

// Automations lists automation rules.
func (c *Client) Automations(ctx context.Context) ([]Automation, error) {
	var automations []Automation
	err := c.getJSON(ctx, "/automations", &automations)
	return automations, err
}

// Messages lists messages.
func (c *Client) Messages(ctx context.Context) ([]Message, error) {
	var messages []Message
	err := c.getJSON(ctx, "/messages", &messages)
	return messages, err
}

// Calls lists calls.
func (c *Client) Calls(ctx context.Context) ([]Call, error) {
	var calls []Call
	err := c.getJSON(ctx, "/calls", &calls)
	return calls, err
}

// Dashboard returns the tenant dashboard report.
func (c *Client) Dashboard(ctx context.Context) (*DashboardReport, error) {
	var report DashboardReport
	if err := c.getJSON(ctx, "/reports/dashboard", &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// CustomReport runs the custom report endpoint with raw query parameters.
func (c *Client) CustomReport(ctx context.Context, query url.Values) (map[string]interface{}, error) {
	path := "/reports/custom"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	var report map[string]interface{}
	if err := c.getJSON(ctx, path, &report); err != nil {
		return nil, err
	}
	return report, nil
}
