package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"selectdrop/internal/config"
	"selectdrop/internal/domain"
	"selectdrop/internal/eventbus"
	"selectdrop/internal/logger"
	"selectdrop/internal/ui"
	"selectdrop/internal/ui/logic"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newApp().Run(ctx, os.Args); err != nil {
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			if msg := err.Error(); msg != "" {
				fmt.Fprintln(os.Stderr, msg)
			}
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "selectdrop",
		Usage: "Pick one or more values from a dropdown in the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Widget definition file (.yaml, .toml or .json)",
				Sources: cli.EnvVars("SELECTDROP_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("SELECTDROP_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:  "log-file",
				Value: "selectdrop.log",
				Usage: "File the TUI logs to",
			},
			&cli.StringFlag{
				Name:  "state-file",
				Value: config.DefaultStatePath(),
				Usage: "File remembering the last value of each named widget",
			},
		},
		Action: runPick,
		Commands: []*cli.Command{
			{
				Name:   "pick",
				Usage:  "Open the dropdown and print the chosen value",
				Action: runPick,
			},
			{
				Name:      "filter",
				Usage:     "Print the options matching a search term",
				ArgsUsage: "<term>",
				Action:    runFilter,
			},
			{
				Name:      "init",
				Usage:     "Write a starter widget definition",
				ArgsUsage: "[file]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Overwrite an existing file",
					},
				},
				Action: runInit,
			},
			{
				Name:      "validate",
				Usage:     "Check a widget definition against the schema",
				ArgsUsage: "[file]",
				Action:    runValidate,
			},
		},
	}
}

// runPick runs the dropdown and prints the committed value on exit
func runPick(ctx context.Context, cmd *cli.Command) error {
	log, closeLog := openLogger(cmd)
	defer closeLog()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	formatter, err := logic.NewFormatter(cfg.Display)
	if err != nil {
		return fmt.Errorf("invalid display format: %w", err)
	}

	props := cfg.Props()
	store := config.NewStateStore(cmd.String("state-file"))
	if cfg.Name != "" && len(cfg.Value) == 0 {
		v, ok, err := store.Recall(cfg.Name, props.Multiple)
		if err != nil {
			log.Warn().Err(err).Msg("Could not read state file")
		} else if ok {
			props.Value = v
		}
	}

	bus := eventbus.New(log)
	detach := hostCallbacks(cfg.Name, store, log).Attach(bus)
	defer detach()

	model := ui.NewModel(props, bus, log, formatter)
	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr), // stdout carries the result
		tea.WithReportFocus(),
	)
	model.SetProgram(p)

	log.Info().Str("config", cmd.String("config")).Int("options", len(props.Options)).Msg("Starting dropdown")
	if os.Getenv("SELECTDROP_E2E_TEST") == "1" {
		fmt.Fprintln(os.Stderr, "__READY__")
	}
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dropdown: %w", err)
	}

	if model.Aborted() {
		return cli.Exit("", 130)
	}

	printValue(cmd.Root().Writer, model.Value())
	return nil
}

// hostCallbacks logs notifications and persists every change of a named widget
func hostCallbacks(name string, store *config.StateStore, log *logger.Logger) eventbus.Callbacks {
	return eventbus.Callbacks{
		OnChange: func(v domain.Value) {
			log.Info().Strs("value", v.List()).Msg("Value changed")
			if name == "" {
				return
			}
			if err := store.Remember(name, v); err != nil {
				log.Error().Err(err).Str("widget", name).Str("file", store.Path()).Msg("Failed to save state")
			}
		},
		OnClear:  func() { log.Info().Msg("Value cleared") },
		OnSearch: func(text string) { log.Debug().Str("text", text).Msg("Search") },
		OnOpen:   func() { log.Debug().Msg("Opened") },
		OnClose:  func() { log.Debug().Msg("Closed") },
	}
}

// runFilter prints the options visible for a search term, grouped when the definition groups
func runFilter(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	term := cmd.Args().First()
	sections, _ := logic.Arrange(cfg.Props().Options, term, cfg.GroupBy)

	out := cmd.Root().Writer
	if len(sections) == 0 {
		fmt.Fprintln(out, "No options found")
		return nil
	}

	for _, sec := range sections {
		indent := ""
		if sec.Group != "" {
			fmt.Fprintf(out, "%s:\n", sec.Group)
			indent = "  "
		}
		for _, item := range sec.Items {
			line := fmt.Sprintf("%s%s (%s)", indent, item.Option.Label, item.Option.Value)
			if item.Option.Disabled {
				line += " [disabled]"
			}
			fmt.Fprintln(out, line)
		}
	}
	return nil
}

// runInit writes the default definition, in the format the file extension names
func runInit(_ context.Context, cmd *cli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		path = cmd.String("config")
	}
	if path == "" {
		path = config.DefaultConfigPath()
	}

	if _, err := os.Stat(path); err == nil && !cmd.Bool("force") {
		return cli.Exit(fmt.Sprintf("init: %s already exists (use --force to overwrite)", path), 1)
	}

	if err := config.NewConfigServiceWithPath(path).Save(config.DefaultConfig()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(cmd.Root().Writer, "Wrote %s\n", path)
	return nil
}

// runValidate checks a definition file and reports schema errors
func runValidate(_ context.Context, cmd *cli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		path = cmd.String("config")
	}
	if path == "" {
		return cli.Exit("validate: no file given (pass a path or --config)", 2)
	}

	result, err := config.NewConfigService().ValidatePath(path)
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	if result.Valid {
		fmt.Fprintf(out, "%s: valid\n", path)
		return nil
	}

	fmt.Fprintf(out, "%s: invalid\n", path)
	for _, e := range result.Errors {
		fmt.Fprintf(out, "  - %s\n", e)
	}
	return cli.Exit("", 1)
}

func loadConfig(cmd *cli.Command) (*config.Config, error) {
	svc := config.NewConfigService()
	if path := cmd.String("config"); path != "" {
		cfg, err := svc.LoadFromPath(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		return cfg, nil
	}

	cfg, err := svc.Load()
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", config.DefaultConfigPath(), err)
	}
	return cfg, nil
}

// openLogger opens the log file; on failure logging is dropped rather than drawn over the TUI
func openLogger(cmd *cli.Command) (*logger.Logger, func()) {
	logFile, err := os.OpenFile(cmd.String("log-file"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
		return logger.Discard(), func() {}
	}
	return logger.New(cmd.String("log-level"), logFile), func() { _ = logFile.Close() }
}

func printValue(w io.Writer, v domain.Value) {
	for _, s := range v.List() {
		fmt.Fprintln(w, s)
	}
}
