// Package cli holds the cobra commands of the gradebook binary.
package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/yigit/gradebook/internal/bootstrap"
	"github.com/yigit/gradebook/internal/config"
)

// setupFunc wires config, logger, database and services for one command
type setupFunc func(ctx context.Context, configPath string) (*config.Config, *bootstrap.Dependencies, error)

type app struct {
	configPath string
	setup      setupFunc
}

// NewRootCommand builds the gradebook command tree
func NewRootCommand() *cobra.Command {
	return newRootCommand(bootstrap.Setup)
}

func newRootCommand(setup setupFunc) *cobra.Command {
	a := &app{setup: setup}

	root := &cobra.Command{
		Use:           "gradebook",
		Short:         "Student grade book backed by PostgreSQL",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", config.DefaultPath, "path to the YAML config file")

	root.AddCommand(
		a.menuCommand(),
		a.scriptCommand(),
		a.serveCommand(),
		a.migrateCommand(),
		a.seedCommand(),
		a.resetCommand(),
		a.exportCommand(),
	)
	return root
}

// withDeps runs fn with wired dependencies and closes the pool afterwards
func (a *app) withDeps(cmd *cobra.Command, fn func(cfg *config.Config, deps *bootstrap.Dependencies) error) error {
	cfg, deps, err := a.setup(cmd.Context(), a.configPath)
	if err != nil {
		return err
	}
	defer deps.Close()
	return fn(cfg, deps)
}
