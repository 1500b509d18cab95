// ABOUTME: Authentication CLI commands
// ABOUTME: Login, register, logout, and whoami against the session store
package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/JarvisforJira/TrailTrack/session"
)

// promptPassword reads a password without echo when stdin is a terminal,
// falling back to the --password flag value otherwise.
func promptPassword(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if !term.IsTerminal(int(syscall.Stdin)) {
		return "", fmt.Errorf("--password is required when stdin is not a terminal")
	}
	fmt.Print("Password: ")
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(raw), nil
}

// LoginCommand signs in and stores the session token.
func LoginCommand(ctx context.Context, sess *session.Store, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "Account email (required)")
	password := fs.String("password", "", "Password (prompted when omitted)")
	_ = fs.Parse(args)

	if *email == "" {
		return fmt.Errorf("--email is required")
	}
	pw, err := promptPassword(*password)
	if err != nil {
		return err
	}

	if err := sess.Login(ctx, *email, pw); err != nil {
		return err
	}

	fmt.Printf("✓ Signed in as %s\n", sess.Identity().Email)
	return nil
}

// RegisterCommand creates an account, then signs in with the new
// credentials.
func RegisterCommand(ctx context.Context, sess *session.Store, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("name", "", "Display name (required)")
	email := fs.String("email", "", "Account email (required)")
	password := fs.String("password", "", "Password (prompted when omitted)")
	_ = fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}
	if *email == "" {
		return fmt.Errorf("--email is required")
	}
	pw, err := promptPassword(*password)
	if err != nil {
		return err
	}

	if err := sess.Register(ctx, *name, *email, pw); err != nil {
		return err
	}
	fmt.Printf("✓ Account created: %s\n", *email)

	if err := sess.Login(ctx, *email, pw); err != nil {
		return fmt.Errorf("account created but sign-in failed: %w", err)
	}
	fmt.Printf("✓ Signed in as %s\n", sess.Identity().Email)
	return nil
}

// LogoutCommand discards the stored token. No server call is made; the
// token simply stops being presented.
func LogoutCommand(sess *session.Store) error {
	sess.Logout()
	fmt.Println("✓ Signed out")
	return nil
}

// WhoamiCommand validates the stored token and prints the identity.
func WhoamiCommand(ctx context.Context, sess *session.Store) error {
	if err := sess.Restore(ctx); err != nil {
		return err
	}
	if sess.State() != session.StateAuthenticated {
		return fmt.Errorf("not signed in (run 'trailtrack auth login')")
	}

	user := sess.Identity()
	fmt.Printf("%s <%s>\n", user.Name, user.Email)
	return nil
}

// RequireSession restores the stored session and fails when no valid token
// is held. CRM commands call this before touching the API.
func RequireSession(ctx context.Context, sess *session.Store) error {
	if err := sess.Restore(ctx); err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}
	if sess.State() != session.StateAuthenticated {
		return fmt.Errorf("not signed in (run 'trailtrack auth login')")
	}
	return nil
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
