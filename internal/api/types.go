package api

import "time"

// Role is a user's role within the CRM.
type Role string

// Roles recognized by the backend.
const (
	RoleCounselor  Role = "counselor"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// User is the authenticated identity returned by the backend.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Active bool   `json:"active"`
}

// Branding is a tenant's visual theme. Derived data; always re-derivable from
// the tenant record.
type Branding struct {
	LogoURL        string `json:"logoUrl,omitempty" yaml:"logo_url,omitempty"`
	PrimaryColor   string `json:"primaryColor,omitempty" yaml:"primary_color,omitempty"`
	SecondaryColor string `json:"secondaryColor,omitempty" yaml:"secondary_color,omitempty"`
	Theme          string `json:"theme,omitempty" yaml:"theme,omitempty"`
}

// Tenant is a business account scoping data and branding.
type Tenant struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Slug     string    `json:"slug"`
	Plan     string    `json:"plan,omitempty"`
	Branding *Branding `json:"branding,omitempty"`
}

// LoginResponse is the payload of POST /auth/login. Tenant is absent for
// platform-level (super_admin) accounts.
type LoginResponse struct {
	Token  string  `json:"token"`
	User   User    `json:"user"`
	Tenant *Tenant `json:"tenant,omitempty"`
}

// Lead is an admissions prospect.
type Lead struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Source     string    `json:"source,omitempty"`
	StageID    string    `json:"stageId,omitempty"`
	AssignedTo string    `json:"assignedTo,omitempty"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
}

// Activity is a follow-up task or interaction attached to a lead.
type Activity struct {
	ID        string     `json:"id"`
	LeadID    string     `json:"leadId"`
	Type      string     `json:"type"`
	Notes     string     `json:"notes,omitempty"`
	DueAt     *time.Time `json:"dueAt,omitempty"`
	Completed bool       `json:"completed"`
}

// Stage is a step of the admissions pipeline.
type Stage struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// Template is a reusable outbound message template.
type Template struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Channel string `json:"channel"`
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body"`
}

// Campaign is a scheduled bulk send built on a template.
type Campaign struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	TemplateID  string     `json:"templateId"`
	Status      string     `json:"status"`
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
}

// Automation is a trigger/action rule running server-side.
type Automation struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Trigger string `json:"trigger"`
	Action  string `json:"action"`
	Enabled bool   `json:"enabled"`
}

// Message is an outbound or inbound message on a lead.
type Message struct {
	ID        string    `json:"id"`
	LeadID    string    `json:"leadId"`
	Channel   string    `json:"channel"`
	Body      string    `json:"body"`
	Direction string    `json:"direction"`
	SentAt    time.Time `json:"sentAt,omitempty"`
}

// Call is a logged phone interaction.
type Call struct {
	ID       string    `json:"id"`
	LeadID   string    `json:"leadId"`
	Status   string    `json:"status"`
	Duration int       `json:"duration,omitempty"`
	At       time.Time `json:"at,omitempty"`
}

// DashboardReport is the tenant dashboard summary.
type DashboardReport struct {
	TotalLeads      int            `json:"totalLeads"`
	NewLeads        int            `json:"newLeads"`
	OpenActivities  int            `json:"openActivities"`
	ActiveCampaigns int            `json:"activeCampaigns"`
	LeadsByStage    map[string]int `json:"leadsByStage,omitempty"`
}
