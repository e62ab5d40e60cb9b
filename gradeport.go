// Package gradeport turns a class roster and a course platform's grade
// export into one import-ready CSV. The pipeline reads both files, runs
// every validation before committing to anything, classifies which columns
// are graded work, joins the two tables on the student identity key, and
// only then opens the output file for writing.
package gradeport

import (
	"context"

	"github.com/classkit/gradeport/pkg/errors"
	"github.com/classkit/gradeport/pkg/grades"
	"github.com/classkit/gradeport/pkg/logging"
	"github.com/classkit/gradeport/pkg/platform"
	"github.com/classkit/gradeport/pkg/reconcile"
	"github.com/classkit/gradeport/pkg/roster"
	"github.com/classkit/gradeport/pkg/tabular"
	"github.com/classkit/gradeport/pkg/validate"
)

// Config is the resolved configuration of one run. The pipeline never
// prompts or reads flags itself; the CLI resolves those into this struct.
type Config struct {
	// Platform identifies the grade-export convention.
	Platform platform.ID

	// RosterPath, GradesPath and OutputPath are the input and output files.
	RosterPath string
	GradesPath string
	OutputPath string

	// Range optionally restricts the import to a lesson range like
	// 5.4-5.8. Empty means every graded column.
	Range string

	// ProfilesPath optionally overrides the embedded platform profiles.
	ProfilesPath string
}

// Result is the outcome of a completed run.
type Result struct {
	// Reconciled is the assembled output and its stats.
	Reconciled *reconcile.Result

	// RosterReport and GradesReport are the validation reports. Both are
	// populated even when validation fails, so every violation reaches
	// the user in one run.
	RosterReport *validate.Report
	GradesReport *validate.Report
}

// Run executes the whole pipeline. It returns the validation reports along
// with any error; when validation fails, both reports are complete and no
// output file has been touched.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	log := logging.FromContext(ctx)
	result := &Result{}

	profiles := platform.Default()
	if cfg.ProfilesPath != "" {
		var err error
		profiles, err = platform.LoadFile(cfg.ProfilesPath)
		if err != nil {
			return result, err
		}
	}
	profile, err := profiles.Lookup(cfg.Platform)
	if err != nil {
		return result, err
	}

	// The whole run logs under its platform; stage contexts below add the
	// stage name and the file under scrutiny.
	ctx = logging.WithPlatform(ctx, string(profile.ID))
	log = logging.FromContext(ctx)

	var rng *grades.Range
	if cfg.Range != "" {
		rng, err = grades.ParseRange(cfg.Range)
		if err != nil {
			return result, err
		}
	}

	// Read both inputs up front. IO failures abort before any validation.
	rosterTable, err := tabular.ReadFile(cfg.RosterPath)
	if err != nil {
		return result, err
	}
	gradesTable, err := tabular.ReadFile(cfg.GradesPath)
	if err != nil {
		return result, err
	}

	book, err := grades.New(gradesTable, profile)
	if err != nil {
		return result, err
	}

	// Validate both tables before acting on either, so one run surfaces
	// every violation in both files.
	result.RosterReport = roster.Validate(rosterTable)
	result.GradesReport = grades.Validate(book)
	result.RosterReport.Log(log)
	result.GradesReport.Log(log)
	if err := result.RosterReport.Err(); err != nil {
		return result, err
	}
	if err := result.GradesReport.Err(); err != nil {
		return result, err
	}

	classifyCtx := logging.WithFile(logging.WithStage(ctx, "classify"), cfg.GradesPath)
	sel, err := grades.Classify(classifyCtx, book)
	if err != nil {
		return result, err
	}
	if rng != nil {
		before := sel.Len()
		sel = rng.Filter(sel)
		log.Info().Str("range", rng.Raw).Int("selected", sel.Len()).Int("graded", before).Msg("Applied assignment range")
	}
	if sel.Len() == 0 {
		return result, errors.New("no graded assignment columns selected")
	}

	students, err := roster.New(rosterTable)
	if err != nil {
		return result, err
	}
	if err := book.BuildIndex(); err != nil {
		return result, err
	}

	assembleCtx := logging.WithFile(logging.WithStage(ctx, "assemble"), cfg.RosterPath)
	result.Reconciled = reconcile.Assemble(assembleCtx, students, book, sel)

	// Validation is done; only now does the output file get created.
	result.Reconciled.Output.Name = cfg.OutputPath
	if err := result.Reconciled.Output.WriteFile(cfg.OutputPath); err != nil {
		return result, err
	}

	log.Info().
		Str("output", cfg.OutputPath).
		Int("students", result.Reconciled.Stats.Students).
		Int("matched", result.Reconciled.Stats.Matched).
		Int("missing", result.Reconciled.Stats.Missing).
		Int("assignments", result.Reconciled.Stats.Assignments).
		Msg("Wrote import file")

	return result, nil
}
