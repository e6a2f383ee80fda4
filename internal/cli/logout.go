package cli

import (
	"context"
	"fmt"
)

// RunLogout clears the session. Logging out when nobody is logged in
// succeeds quietly.
func (c *Cli) RunLogout(ctx context.Context) error {
	if err := c.auth.Logout(ctx); err != nil {
		return err
	}

	fmt.Println("✓ Logged out.")

	return nil
}
