package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"strikethrough/app/config"
	"strikethrough/app/controllers"
	"strikethrough/app/services"

	"github.com/spf13/cobra"
)

// runtime holds the flags and loaded settings of one command tree.
type runtime struct {
	configPath string
	logLevel   string
	noClear    bool
	serveAddr  string

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCommand builds the command tree. The root command runs the
// interactive to-do list.
func NewRootCommand(version string) *cobra.Command {
	rt := &runtime{}
	root := &cobra.Command{
		Use:   "strikethrough",
		Short: "StrikeThrough - a command-line to-do list",
		Long: `StrikeThrough keeps a to-do list of tasks and subtasks in memory.

Deleted entries stay on the list, struck through. Tasks are ordered by due date.`,
		Version:           version,
		PersistentPreRunE: rt.setup,
		RunE:              rt.runConsole,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	root.PersistentFlags().StringVarP(&rt.configPath, "config", "c", "", "path to a config file (yaml, toml or json)")
	root.PersistentFlags().StringVar(&rt.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")
	root.Flags().BoolVar(&rt.noClear, "no-clear", false, "do not clear the terminal between commands")

	root.AddCommand(rt.newServeCommand())
	return root
}

// Execute runs the root command.
func Execute(version string) error {
	if err := NewRootCommand(version).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func (rt *runtime) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(rt.configPath)
	if err != nil {
		return err
	}
	if rt.logLevel != "" {
		cfg.Log.Level = rt.logLevel
	}
	logger, err := config.NewLogger(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return err
	}
	rt.cfg, rt.logger = cfg, logger
	return nil
}

func (rt *runtime) runConsole(cmd *cobra.Command, _ []string) error {
	console := controllers.NewConsoleController(
		services.NewTaskService(rt.logger),
		cmd.InOrStdin(),
		cmd.OutOrStdout(),
		controllers.ConsoleOptions{Clear: rt.cfg.Console.Clear && !rt.noClear, MOTD: rt.cfg.Console.MOTD},
		rt.logger,
	)
	return console.Run(cmd.Context())
}
