// Package tui holds the interactive surfaces of the CLI: prompts,
// the bootstrap spinner, and themed view rendering.
package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
)

// Credentials is the result of the login form.
type Credentials struct {
	Email    string
	Password string
}

// LoginForm collects credentials interactively. Password input is masked.
func LoginForm() (Credentials, error) {
	var creds Credentials

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Email").
			Placeholder("you@school.edu").
			Value(&creds.Email).
			Validate(func(s string) error {
				if s == "" {
					return fmt.Errorf("email is required")
				}
				return nil
			}),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&creds.Password).
			Validate(func(s string) error {
				if s == "" {
					return fmt.Errorf("password is required")
				}
				return nil
			}),
	))

	if err := form.Run(); err != nil {
		return Credentials{}, fmt.Errorf("login prompt failed: %w", err)
	}

	return creds, nil
}

// PromptForString displays a single input prompt and returns the value.
func PromptForString(title, placeholder string) (string, error) {
	var value string

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(title).
			Placeholder(placeholder).
			Value(&value),
	))

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	return value, nil
}

// PromptForConfirmation displays a yes/no confirmation prompt.
func PromptForConfirmation(message string, defaultValue bool) (bool, error) {
	confirmed := defaultValue

	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(message).
			Value(&confirmed),
	))

	if err := form.Run(); err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}

	return confirmed, nil
}

// IsInteractive reports whether stdin is a terminal (not piped).
func IsInteractive() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
