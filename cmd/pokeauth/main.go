package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/pokemonapp/pokeauth/internal/auth"
	"github.com/pokemonapp/pokeauth/internal/cli"
	"github.com/pokemonapp/pokeauth/internal/config"
	"github.com/pokemonapp/pokeauth/internal/storage/boltdb"
	"github.com/pokemonapp/pokeauth/internal/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	showVersion := flag.Bool("version", false, "Show version information")
	usersDBPath := flag.String("users-db", cfg.UsersDBPath, "Path to the user database")
	sessionDBPath := flag.String("session-db", cfg.SessionDBPath, "Path to the session database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]
	ctx := context.Background()

	userStorage, err := sqlite.New(ctx, *usersDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open user database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := userStorage.Close(); err != nil {
			slog.Error("failed to close user database", "error", err)
		}
	}()

	sessionStorage, err := boltdb.New(ctx, *sessionDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open session database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := sessionStorage.Close(); err != nil {
			slog.Error("failed to close session database", "error", err)
		}
	}()

	tokens := auth.TokenConfig{
		Secret: []byte(cfg.TokenSecret),
		TTL:    cfg.AccessTokenTTL,
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	authService := auth.NewService(userStorage, sessionStorage, tokens, logger)
	resolver := auth.NewResolver(sessionStorage, logger)

	app := cli.New(authService, resolver, tokens)

	switch command {
	case "register":
		err = app.RunRegister(ctx)
	case "login":
		err = app.RunLogin(ctx)
	case "logout":
		err = app.RunLogout(ctx)
	case "status":
		err = app.RunStatus(ctx)
	case "whoami":
		err = app.RunWhoami(ctx)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		cli.PrintUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("pokeauth\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
