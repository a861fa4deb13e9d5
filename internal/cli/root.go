// Package cli wires configuration, logging and the bubbletea program
// behind a cobra command.
package cli

import (
	"context"
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasklist/internal/model"
	"github.com/sandeepkv93/tasklist/internal/update"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "dev"

// Runner runs a program until it exits. Tests swap it for a stub.
type Runner func(ctx context.Context, m tea.Model, opts ...tea.ProgramOption) error

func runProgram(ctx context.Context, m tea.Model, opts ...tea.ProgramOption) error {
	opts = append(opts, tea.WithContext(ctx))
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}

func NewRootCommand(stdout, stderr io.Writer, run Runner) *cobra.Command {
	if run == nil {
		run = runProgram
	}
	var (
		altScreen bool
		logFile   string
		idMode    string
		charLimit int
		clipboard bool
	)

	cmd := &cobra.Command{
		Use:           "tasklist",
		Short:         "A single-screen terminal task list",
		Long:          "tasklist keeps a short in-memory list of tasks: add, check off, delete. Nothing is saved on exit.",
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())
			flags := cmd.Flags()
			if flags.Changed("alt-screen") {
				cfg.AltScreen = altScreen
			}
			if flags.Changed("log-file") {
				cfg.LogFile = logFile
			}
			if flags.Changed("id-mode") {
				mode, err := model.ParseIDMode(idMode)
				if err != nil {
					return err
				}
				cfg.IDMode = mode
			}
			if flags.Changed("char-limit") {
				if charLimit < 0 {
					return fmt.Errorf("char-limit must not be negative, got %d", charLimit)
				}
				cfg.CharLimit = charLimit
			}
			if flags.Changed("clipboard") {
				cfg.Clipboard = clipboard
			}

			closeLog, err := setupLogging(cfg.LogFile)
			if err != nil {
				return err
			}
			defer closeLog()
			log.Printf("starting tasklist id_mode=%s alt_screen=%t clipboard=%t", cfg.IDMode, cfg.AltScreen, cfg.Clipboard)

			opts := []tea.ProgramOption{tea.WithOutput(stdout)}
			if cfg.AltScreen {
				opts = append(opts, tea.WithAltScreen())
			}
			if err := run(cmd.Context(), update.NewModelWithConfig(cfg), opts...); err != nil {
				return fmt.Errorf("run program: %w", err)
			}
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.BoolVar(&altScreen, "alt-screen", false, "use the terminal's alternate screen")
	flags.StringVar(&logFile, "log-file", "", "append debug logs to this file")
	flags.StringVar(&idMode, "id-mode", string(model.IDModeUUID), "task id scheme: uuid or sequence")
	flags.IntVar(&charLimit, "char-limit", 0, "maximum length of a task, 0 for no limit")
	flags.BoolVar(&clipboard, "clipboard", true, "allow copying task text to the system clipboard")

	cmd.AddCommand(newVersionCommand(stdout))
	return cmd
}

func newVersionCommand(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the tasklist version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(stdout, "tasklist %s\n", Version)
		},
	}
}

// setupLogging points the standard logger at path. The terminal belongs to
// the program, so with no path logs are dropped.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "tasklist")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() {
		log.SetOutput(io.Discard)
		_ = f.Close()
	}, nil
}
