package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/classkit/gradeport"
	"github.com/classkit/gradeport/internal/cmd/output"
	"github.com/classkit/gradeport/internal/prompt"
	"github.com/classkit/gradeport/pkg/errors"
	"github.com/classkit/gradeport/pkg/grades"
	"github.com/classkit/gradeport/pkg/logging"
	"github.com/classkit/gradeport/pkg/platform"
	"github.com/classkit/gradeport/pkg/roster"
	"github.com/classkit/gradeport/pkg/tabular"
	"github.com/classkit/gradeport/pkg/validate"
)

// NewImportCommand creates the import command, the main entry point of the
// tool. Any parameter not supplied by flag, environment, or config file is
// collected interactively.
func (a *App) NewImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "import",
		GroupID: "core",
		Short:   "Build an LMS import file from a roster and a grade export",
		Long: `Import validates the roster and the grade export, selects the graded
assignment columns for the platform, and writes one CSV with the roster's
identity columns followed by the selected grades.

Missing parameters are prompted for. Pass --platform, --roster, --grades
and --out to run non-interactively.`,
		Example: `  gradeport import --platform codehs --roster students.csv --grades export.csv --out import.csv
  gradeport import -p P -r students.csv -g grades.csv --out import.csv --range 5.4-5.8
  gradeport import`,
		RunE: a.runImport,
	}

	cmd.Flags().StringP("platform", "p", "", "grade export platform: projectstem (P) or codehs (C)")
	cmd.Flags().StringP("roster", "r", "", "roster CSV exported from the LMS")
	cmd.Flags().StringP("grades", "g", "", "grade export CSV from the platform")
	cmd.Flags().String("out", "", "output CSV to write")
	cmd.Flags().String("range", "", "restrict the import to an assignment range, e.g. 5.4-5.8")
	cmd.Flags().String("profiles", "", "platform profiles YAML (overrides the built-in profiles)")

	return cmd
}

func (a *App) runImport(cmd *cobra.Command, _ []string) error {
	cfg, err := a.resolveImportConfig(cmd)
	if err != nil {
		return err
	}

	ctx := logging.WithLogger(cmd.Context(), a.logger)
	result, err := gradeport.Run(ctx, cfg)

	formatter := a.formatterFor(cmd)
	var data []output.Data
	if result != nil && err != nil {
		// Validation failures carry full reports; show them before the error.
		for _, report := range []*validate.Report{result.RosterReport, result.GradesReport} {
			if report != nil && !report.Valid() {
				data = append(data, output.FromReport(report))
			}
		}
	}
	if result != nil && result.Reconciled != nil && err == nil {
		data = append(data, output.FromStats(result.Reconciled.Stats, result.Reconciled.Unmatched, cfg.OutputPath))
	}
	for _, d := range data {
		if ferr := formatter.Format(cmd.OutOrStdout(), d); ferr != nil {
			return ferr
		}
	}

	return err
}

// resolveImportConfig merges flags over the loaded config, then prompts
// for whatever is still missing.
func (a *App) resolveImportConfig(cmd *cobra.Command) (gradeport.Config, error) {
	cfg := gradeport.Config{
		RosterPath:   firstNonEmpty(mustGetString(cmd, "roster"), a.config.RosterPath),
		GradesPath:   firstNonEmpty(mustGetString(cmd, "grades"), a.config.GradesPath),
		OutputPath:   firstNonEmpty(mustGetString(cmd, "out"), a.config.OutputPath),
		Range:        firstNonEmpty(mustGetString(cmd, "range"), a.config.Range),
		ProfilesPath: firstNonEmpty(mustGetString(cmd, "profiles"), a.config.ProfilesPath),
	}

	platformName := firstNonEmpty(mustGetString(cmd, "platform"), a.config.Platform)
	if platformName != "" {
		id, ok := platform.ParseID(platformName)
		if !ok {
			return cfg, errors.NewConfigError("platform", fmt.Sprintf("unknown platform %q", platformName), errors.ErrInvalidInput)
		}
		cfg.Platform = id
	}

	// The optional range is only asked for when the run is already a
	// conversation: a scripted run, with every required parameter coming
	// from flags, environment, or the config file, must never block on
	// stdin for an optional value.
	p := prompt.New()
	prompted := false
	var err error
	if cfg.Platform == "" {
		if cfg.Platform, err = p.Platform(); err != nil {
			return cfg, err
		}
		prompted = true
	}
	if cfg.RosterPath == "" {
		if cfg.RosterPath, err = p.ExistingFile("Enter the name of the roster file: "); err != nil {
			return cfg, err
		}
		prompted = true
	}
	if cfg.GradesPath == "" {
		if cfg.GradesPath, err = p.ExistingFile("Enter the name of the grades file: "); err != nil {
			return cfg, err
		}
		prompted = true
	}
	if cfg.OutputPath == "" {
		if cfg.OutputPath, err = p.OutputFile(); err != nil {
			return cfg, err
		}
		prompted = true
	}
	if cfg.Range == "" && prompted {
		if cfg.Range, err = p.Range(cfg.Platform); err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}

// NewValidateCommand creates the validate command with its roster and
// grades subcommands. Validation never writes anything.
func (a *App) NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "validate",
		GroupID: "core",
		Short:   "Validate input files without writing anything",
	}

	cmd.AddCommand(a.newValidateRosterCommand())
	cmd.AddCommand(a.newValidateGradesCommand())

	return cmd
}

func (a *App) newValidateRosterCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "roster <file>",
		Short:   "Check a roster's header, widths, and identity columns",
		Args:    cobra.ExactArgs(1),
		Example: `  gradeport validate roster students.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := tabular.ReadFile(args[0])
			if err != nil {
				return err
			}
			report := roster.Validate(table)
			return a.printReport(cmd, report)
		},
	}
}

func (a *App) newValidateGradesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "grades <file>",
		Short:   "Check a grade export's structure for a platform",
		Args:    cobra.ExactArgs(1),
		Example: `  gradeport validate grades export.csv --platform codehs`,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := a.resolveProfile(cmd)
			if err != nil {
				return err
			}
			table, err := tabular.ReadFile(args[0])
			if err != nil {
				return err
			}
			book, err := grades.New(table, profile)
			if err != nil {
				return err
			}
			report := grades.Validate(book)
			return a.printReport(cmd, report)
		},
	}

	cmd.Flags().StringP("platform", "p", "", "grade export platform: projectstem (P) or codehs (C)")
	cmd.Flags().String("profiles", "", "platform profiles YAML (overrides the built-in profiles)")

	return cmd
}

func (a *App) resolveProfile(cmd *cobra.Command) (*platform.Profile, error) {
	platformName := firstNonEmpty(mustGetString(cmd, "platform"), a.config.Platform)
	var id platform.ID
	if platformName != "" {
		parsed, ok := platform.ParseID(platformName)
		if !ok {
			return nil, errors.NewConfigError("platform", fmt.Sprintf("unknown platform %q", platformName), errors.ErrInvalidInput)
		}
		id = parsed
	} else {
		var err error
		if id, err = prompt.New().Platform(); err != nil {
			return nil, err
		}
	}

	profiles := platform.Default()
	if path := firstNonEmpty(mustGetString(cmd, "profiles"), a.config.ProfilesPath); path != "" {
		var err error
		if profiles, err = platform.LoadFile(path); err != nil {
			return nil, err
		}
	}
	return profiles.Lookup(id)
}

func (a *App) printReport(cmd *cobra.Command, report *validate.Report) error {
	if err := a.formatterFor(cmd).Format(cmd.OutOrStdout(), output.FromReport(report)); err != nil {
		return err
	}
	return report.Err()
}

// formatterFor builds the formatter selected by --format, falling back to
// terminal detection.
func (a *App) formatterFor(cmd *cobra.Command) output.Formatter {
	format := output.DetectFormat(firstNonEmpty(mustGetString(cmd, "format"), a.config.Format))
	return output.NewFormatter(format)
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gradeport %s\n", a.version)
			if a.commit != "" && a.commit != "none" {
				fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", a.commit)
			}
			if a.date != "" && a.date != "unknown" {
				fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", a.date)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  https://github.com/classkit/gradeport\n")
		},
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
