// Package script runs line oriented grade book scripts and writes a run log.
//
// One command per line, fields separated by ';'. Blank lines and lines
// starting with '#' are skipped:
//
//	ADD_GROUP;IP-11;1
//	ADD_STUDENT;Maksym;Pashchenko;maks@example.com;1;2024
//	ADD_TEACHER;Ivan;Ivanenko;CS;ivan@example.com
//	ADD_COURSE;Programming 1;1;2024;1;4
//	SET_GRADE;1;1;1;95.5;2024-10-01
//	REPORT_STUDENT;1
//	REPORT_GROUP_COURSE;1;1
//	REPORT_TEACHER;1
package script

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/yigit/gradebook/internal/app/services"
	"github.com/yigit/gradebook/internal/pkg/logger"
)

// Separator splits the fields of a command line
const Separator = ";"

type handler func(ctx context.Context, args []string, log io.Writer) error

// Summary counts what a run did
type Summary struct {
	RunID    string
	Commands int
	Failed   int
	Unknown  int
}

// Runner executes scripts against the grade book. Reports requested by the
// script are printed to reportOut; the run log only records outcomes.
type Runner struct {
	gradeBook services.GradeBookService
	reports   services.ReportService
	reportOut io.Writer
	handlers  map[string]handler
}

// NewRunner creates a script runner
func NewRunner(gradeBook services.GradeBookService, reports services.ReportService, reportOut io.Writer) *Runner {
	if reportOut == nil {
		reportOut = io.Discard
	}
	r := &Runner{
		gradeBook: gradeBook,
		reports:   reports,
		reportOut: reportOut,
	}
	r.handlers = map[string]handler{
		"ADD_GROUP":           r.addGroup,
		"ADD_STUDENT":         r.addStudent,
		"ADD_TEACHER":         r.addTeacher,
		"ADD_COURSE":          r.addCourse,
		"SET_GRADE":           r.setGrade,
		"REPORT_STUDENT":      r.reportStudent,
		"REPORT_GROUP_COURSE": r.reportGroupCourse,
		"REPORT_TEACHER":      r.reportTeacher,
	}
	return r
}

// Run executes every command of in and writes the log to out. A failing
// command is logged and the run continues; only reading in or writing out
// can fail the run.
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer) (Summary, error) {
	summary := Summary{RunID: uuid.New().String()}
	log := bufio.NewWriter(out)
	runLog := logger.Component("script").With().Str("run_id", summary.RunID).Logger()

	fmt.Fprintln(log, "=== Test run log ===")
	fmt.Fprintf(log, "Run: %s\n\n", summary.RunID)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, Separator)
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		cmd := strings.ToUpper(parts[0])
		summary.Commands++

		fmt.Fprintf(log, "Command: %s\n", line)
		h, ok := r.handlers[cmd]
		if !ok {
			summary.Unknown++
			fmt.Fprintf(log, "  Unknown command: %s\n", cmd)
		} else if err := h(ctx, parts[1:], log); err != nil {
			summary.Failed++
			runLog.Warn().Err(err).Str("command", cmd).Msg("Script command failed")
			fmt.Fprintf(log, "  ERROR: %v\n", err)
		}
		fmt.Fprintln(log)
	}
	if err := scanner.Err(); err != nil {
		return summary, fmt.Errorf("reading script: %w", err)
	}

	if err := log.Flush(); err != nil {
		return summary, fmt.Errorf("writing run log: %w", err)
	}
	runLog.Info().
		Int("commands", summary.Commands).
		Int("failed", summary.Failed).
		Int("unknown", summary.Unknown).
		Msg("Script finished")
	return summary, nil
}

// RunFile executes the script at inputPath and writes the log to
// outputPath, creating its directory when needed.
func (r *Runner) RunFile(ctx context.Context, inputPath, outputPath string) (Summary, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return Summary{}, fmt.Errorf("opening script %s: %w", inputPath, err)
	}
	defer in.Close()

	if dir := filepath.Dir(outputPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Summary{}, fmt.Errorf("creating log directory %s: %w", dir, err)
		}
	}
	out, err := os.Create(outputPath)
	if err != nil {
		return Summary{}, fmt.Errorf("creating run log %s: %w", outputPath, err)
	}

	summary, err := r.Run(ctx, in, out)
	if cerr := out.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("closing run log %s: %w", outputPath, cerr)
	}
	return summary, err
}
