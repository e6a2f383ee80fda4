package cli

import (
	"context"
	"fmt"
)

// RunRegister prompts for account details and registers a new user.
// A successful registration also opens the session.
func (c *Cli) RunRegister(ctx context.Context) error {
	fmt.Println("=== Register ===")
	fmt.Println()

	email, err := readInput("Email: ")
	if err != nil {
		return err
	}

	fullName, err := readInput("Full name: ")
	if err != nil {
		return err
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return err
	}

	profile, err := c.auth.Register(ctx, email, fullName, password)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("✓ Registration successful!")
	fmt.Printf("Welcome, %s <%s>\n", profile.FullName, profile.Email)
	fmt.Println("You are now logged in on this device.")

	return nil
}
