package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/yigit/gradebook/internal/app/console"
	"github.com/yigit/gradebook/internal/app/script"
	"github.com/yigit/gradebook/internal/bootstrap"
	"github.com/yigit/gradebook/internal/config"
	"github.com/yigit/gradebook/internal/db"
	"github.com/yigit/gradebook/internal/seed"
	"github.com/yigit/gradebook/internal/server"
)

func (a *app) menuCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive console menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withDeps(cmd, func(cfg *config.Config, deps *bootstrap.Dependencies) error {
				menu := console.NewMenu(deps.GradeBook, deps.Reports, cfg.Export.Dir, cmd.InOrStdin(), cmd.OutOrStdout())
				return menu.Run(cmd.Context())
			})
		},
	}
}

func (a *app) scriptCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "script [file]",
		Short: "Execute a command script and write the run log",
		Long: "Executes one ';'-separated command per line. Reports are printed to stdout,\n" +
			"the run log goes to --output (script.output_path by default).",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withDeps(cmd, func(cfg *config.Config, deps *bootstrap.Dependencies) error {
				input := cfg.Script.InputPath
				if len(args) == 1 {
					input = args[0]
				}
				if output == "" {
					output = cfg.Script.OutputPath
				}

				runner := script.NewRunner(deps.GradeBook, deps.Reports, cmd.OutOrStdout())
				summary, err := runner.RunFile(cmd.Context(), input, output)
				if err != nil {
					return err
				}
				deps.Logger.Info().
					Str("runID", summary.RunID).
					Int("commands", summary.Commands).
					Int("failed", summary.Failed).
					Int("unknown", summary.Unknown).
					Str("log", output).
					Msg("Script finished")
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "run log file")
	return cmd
}

func (a *app) serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, deps, err := a.setup(cmd.Context(), a.configPath)
			if err != nil {
				return err
			}
			// Run closes the pool on shutdown
			return server.NewServer(cfg, deps).Run(cmd.Context())
		},
	}
}

func (a *app) migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(a.configPath)
			if err != nil {
				return err
			}
			database, err := db.NewPostgresDB(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer database.Close()
			return bootstrap.Migrate(cmd.Context(), database, lgr)
		},
	}
}

func (a *app) seedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the demo group, teacher, course, student and grade",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withDeps(cmd, func(_ *config.Config, deps *bootstrap.Dependencies) error {
				_, err := seed.CreateDefaultData(cmd.Context(), deps.GradeBook, deps.Logger)
				return err
			})
		},
	}
}

func (a *app) resetCommand() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every record and restart the id sequences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("reset deletes all data, pass --yes to confirm")
			}
			return a.withDeps(cmd, func(_ *config.Config, deps *bootstrap.Dependencies) error {
				return deps.DB.Truncate(cmd.Context())
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}

func (a *app) exportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export students or grades to a .csv or .xlsx file",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "students <file>",
			Short: "Export every student",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withDeps(cmd, func(_ *config.Config, deps *bootstrap.Dependencies) error {
					return deps.Reports.ExportStudents(cmd.Context(), args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "student-grades <studentId> <file>",
			Short: "Export the grades of a student",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID("studentId", args[0])
				if err != nil {
					return err
				}
				return a.withDeps(cmd, func(_ *config.Config, deps *bootstrap.Dependencies) error {
					return deps.Reports.ExportStudentGrades(cmd.Context(), id, args[1])
				})
			},
		},
		&cobra.Command{
			Use:   "group-course-grades <groupId> <courseId> <file>",
			Short: "Export the grades of a group in a course",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				groupID, err := parseID("groupId", args[0])
				if err != nil {
					return err
				}
				courseID, err := parseID("courseId", args[1])
				if err != nil {
					return err
				}
				return a.withDeps(cmd, func(_ *config.Config, deps *bootstrap.Dependencies) error {
					return deps.Reports.ExportGroupCourseGrades(cmd.Context(), groupID, courseID, args[2])
				})
			},
		},
		&cobra.Command{
			Use:   "teacher-grades <teacherId> <file>",
			Short: "Export the grades issued by a teacher",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID("teacherId", args[0])
				if err != nil {
					return err
				}
				return a.withDeps(cmd, func(_ *config.Config, deps *bootstrap.Dependencies) error {
					return deps.Reports.ExportTeacherGrades(cmd.Context(), id, args[1])
				})
			},
		},
	)
	return cmd
}

func parseID(name, s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s must be a positive number, got %q", name, s)
	}
	return id, nil
}
