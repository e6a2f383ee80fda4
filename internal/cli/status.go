package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/pokemonapp/pokeauth/internal/auth"
)

// RunStatus resolves the persisted session the way the app would at startup
// and prints the result.
func (c *Cli) RunStatus(ctx context.Context) error {
	state := c.resolver.Resolve(ctx)

	if !state.LoggedIn {
		fmt.Println("Not logged in.")
		return nil
	}

	profile := state.Profile
	fmt.Printf("Logged in as %s <%s>\n", profile.FullName, profile.Email)
	fmt.Printf("User ID:  %s\n", profile.ID)
	fmt.Printf("Joined:   %s\n", profile.CreatedAt.Format("January 2006"))

	if profile.AccessToken != "" {
		if _, err := auth.ValidateAccessToken(c.tokens, profile.AccessToken); err != nil {
			fmt.Println("Access token: expired or invalid, log in again to refresh it")
		} else {
			fmt.Println("Access token: valid")
		}
	}

	return nil
}

// RunWhoami prints the current user's record from the credential store
func (c *Cli) RunWhoami(ctx context.Context) error {
	user, err := c.auth.CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, auth.ErrNotLoggedIn) {
			fmt.Println("Not logged in.")
			return nil
		}
		return err
	}

	fmt.Printf("%s <%s> (%s)\n", user.FullName, user.Email, user.ID)
	fmt.Printf("Registered: %s\n", user.CreatedAt.Format("2006-01-02 15:04:05 MST"))

	return nil
}
