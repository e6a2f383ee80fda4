package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/pokemonapp/pokeauth/internal/auth"
)

// Cli wires the auth service and session resolver to interactive commands
type Cli struct {
	auth     *auth.Service
	resolver *auth.Resolver
	tokens   auth.TokenConfig
}

// New creates a new CLI
func New(authService *auth.Service, resolver *auth.Resolver, tokens auth.TokenConfig) *Cli {
	return &Cli{
		auth:     authService,
		resolver: resolver,
		tokens:   tokens,
	}
}

// PrintUsage prints the list of available commands
func PrintUsage() {
	fmt.Println("Usage: pokeauth [flags] <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register   Create a new account and log in")
	fmt.Println("  login      Log in with an existing account")
	fmt.Println("  logout     Clear the current session")
	fmt.Println("  status     Show the resolved session state")
	fmt.Println("  whoami     Show the current user's stored record")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -users-db PATH     Path to the user database")
	fmt.Println("  -session-db PATH   Path to the session database")
	fmt.Println("  -version           Show version information")
}

// readInput reads a single trimmed line from stdin
func readInput(prompt string) (string, error) {
	fmt.Print(prompt)

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// readPassword reads a password from stdin without echoing it
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)

	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	return string(password), nil
}
