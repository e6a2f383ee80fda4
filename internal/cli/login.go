package cli

import (
	"context"
	"fmt"
)

// RunLogin prompts for credentials and opens a session
func (c *Cli) RunLogin(ctx context.Context) error {
	fmt.Println("=== Login ===")
	fmt.Println()

	email, err := readInput("Email: ")
	if err != nil {
		return err
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Authenticating...")

	profile, err := c.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("✓ Login successful!")
	fmt.Printf("Welcome back, %s\n", profile.FullName)
	fmt.Println("Your session has been saved on this device.")

	return nil
}
