// ABOUTME: Entry point for the TrailTrack CRM client
// ABOUTME: Routes to the TUI or CLI commands based on arguments
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/JarvisforJira/TrailTrack/api"
	"github.com/JarvisforJira/TrailTrack/cli"
	"github.com/JarvisforJira/TrailTrack/config"
	"github.com/JarvisforJira/TrailTrack/session"
	"github.com/JarvisforJira/TrailTrack/tui"
)

const version = "0.2.0"

func main() {
	// Global flags
	showVersion := flag.Bool("version", false, "Show version and exit")
	apiURL := flag.String("api-url", "", "Backend base URL (default: $TRAILTRACK_API_URL or http://localhost:8001)")
	verbose := flag.Bool("verbose", false, "Debug logging for CLI commands")

	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("trailtrack version %s\n", version)
		os.Exit(0)
	}

	cfg := config.Load(*apiURL)
	client := api.NewClient(cfg.APIURL)
	sess := session.NewStore(client, cfg.TokenPath)

	args := flag.Args()

	// No command launches the full-screen interface. The TUI owns the
	// terminal, so the logger stays off in that mode.
	if len(args) == 0 {
		runTUI(client, sess)
		return
	}

	logger := newLogger(*verbose)
	defer func() { _ = logger.Sync() }()
	logger.Debug("resolved configuration",
		zap.String("api_url", cfg.APIURL),
		zap.String("token_path", cfg.TokenPath))

	ctx := context.Background()
	command := args[0]
	commandArgs := args[1:]

	switch command {
	case "tui":
		runTUI(client, sess)

	case "auth":
		if len(commandArgs) == 0 {
			fmt.Println("Error: auth requires a subcommand")
			printUsage()
			os.Exit(1)
		}
		runAuthCommand(ctx, logger, sess, commandArgs[0], commandArgs[1:])

	case "crm":
		if len(commandArgs) == 0 {
			fmt.Println("Error: crm requires a subcommand")
			printUsage()
			os.Exit(1)
		}
		requireSession(ctx, logger, sess)
		runCRMCommand(ctx, logger, client, commandArgs[0], commandArgs[1:])

	case "dashboard":
		requireSession(ctx, logger, sess)
		fail(logger, cli.DashboardCommand(ctx, client, commandArgs))

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func newLogger(verbose bool) *zap.Logger {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}

func runTUI(client *api.Client, sess *session.Store) {
	p := tea.NewProgram(tui.NewModel(client, sess), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func requireSession(ctx context.Context, logger *zap.Logger, sess *session.Store) {
	if err := cli.RequireSession(ctx, sess); err != nil {
		logger.Debug("session restore failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func fail(logger *zap.Logger, err error) {
	if err == nil {
		return
	}
	logger.Debug("command failed", zap.Error(err))
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func runAuthCommand(ctx context.Context, logger *zap.Logger, sess *session.Store, command string, args []string) {
	switch command {
	case "login":
		fail(logger, cli.LoginCommand(ctx, sess, args))
	case "register":
		fail(logger, cli.RegisterCommand(ctx, sess, args))
	case "logout":
		fail(logger, cli.LogoutCommand(sess))
	case "whoami":
		fail(logger, cli.WhoamiCommand(ctx, sess))
	default:
		fmt.Printf("Unknown auth command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runCRMCommand(ctx context.Context, logger *zap.Logger, client *api.Client, command string, args []string) {
	switch command {
	// Account commands
	case "add-account":
		fail(logger, cli.AddAccountCommand(ctx, client, args))
	case "list-accounts":
		fail(logger, cli.ListAccountsCommand(ctx, client, args))
	case "update-account":
		fail(logger, cli.UpdateAccountCommand(ctx, client, args))
	case "delete-account":
		fail(logger, cli.DeleteAccountCommand(ctx, client, args))

	// Contact commands
	case "add-contact":
		fail(logger, cli.AddContactCommand(ctx, client, args))
	case "list-contacts":
		fail(logger, cli.ListContactsCommand(ctx, client, args))
	case "update-contact":
		fail(logger, cli.UpdateContactCommand(ctx, client, args))
	case "delete-contact":
		fail(logger, cli.DeleteContactCommand(ctx, client, args))

	// Lead commands
	case "add-lead":
		fail(logger, cli.AddLeadCommand(ctx, client, args))
	case "list-leads":
		fail(logger, cli.ListLeadsCommand(ctx, client, args))
	case "update-lead":
		fail(logger, cli.UpdateLeadCommand(ctx, client, args))
	case "move-lead":
		fail(logger, cli.MoveLeadCommand(ctx, client, args))
	case "delete-lead":
		fail(logger, cli.DeleteLeadCommand(ctx, client, args))

	// Activity commands
	case "log-activity":
		fail(logger, cli.LogActivityCommand(ctx, client, args))
	case "list-activities":
		fail(logger, cli.ListActivitiesCommand(ctx, client, args))

	// Task commands
	case "add-task":
		fail(logger, cli.AddTaskCommand(ctx, client, args))
	case "list-tasks":
		fail(logger, cli.ListTasksCommand(ctx, client, args))
	case "complete-task":
		fail(logger, cli.CompleteTaskCommand(ctx, client, args))
	case "delete-task":
		fail(logger, cli.DeleteTaskCommand(ctx, client, args))

	default:
		fmt.Printf("Unknown crm command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf(`trailtrack v%s - CRM client

USAGE:
  trailtrack [global flags] <command> [subcommand] [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --api-url <url>        Backend base URL (default: $TRAILTRACK_API_URL or http://localhost:8001)
  --verbose              Debug logging for CLI commands

COMMANDS:
  (none) / tui           Launch the full-screen interface
  auth                   Session commands
  crm                    Record commands
  dashboard              Render the dashboard

AUTH COMMANDS:
  trailtrack auth login      Sign in (--email, password prompted)
  trailtrack auth register   Create an account (--name, --email)
  trailtrack auth logout     Discard the stored token
  trailtrack auth whoami     Show the signed-in identity

CRM COMMANDS:
  trailtrack crm add-account       Add an account (--name required)
  trailtrack crm list-accounts     List accounts (--search, --industry, --size)
  trailtrack crm update-account    Update an account: [flags] <id>
  trailtrack crm delete-account    Delete an account: <id>

  trailtrack crm add-contact       Add a contact (--first, --last required)
  trailtrack crm list-contacts     List contacts (--search, --account; 0 = independent)
  trailtrack crm update-contact    Update a contact: [flags] <id>
  trailtrack crm delete-contact    Delete a contact: <id>

  trailtrack crm add-lead          Add a lead (--title required, --value in dollars)
  trailtrack crm list-leads        List leads (--stage, --search)
  trailtrack crm update-lead       Update a lead: [flags] <id>
  trailtrack crm move-lead         Move a lead: <id> <stage>
  trailtrack crm delete-lead       Delete a lead: <id>

  trailtrack crm log-activity      Log an interaction (--type, --subject required)
  trailtrack crm list-activities   List activities (--type, --lead, --search)

  trailtrack crm add-task          Add a task (--title, --linked-type, --linked-id)
  trailtrack crm list-tasks        List tasks (--status, --priority, --linked-type, --search, --overdue)
  trailtrack crm complete-task     Mark a task done: <id>
  trailtrack crm delete-task       Delete a task: <id>

DASHBOARD:
  trailtrack dashboard             Stats, pipeline chart, and overdue tasks
`, version)
}
