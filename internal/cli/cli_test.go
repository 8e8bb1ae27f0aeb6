package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/app/services"
	"github.com/yigit/gradebook/internal/bootstrap"
	"github.com/yigit/gradebook/internal/config"
)

type stubGradeBook struct {
	services.GradeBookService
	groups []string
}

func (s *stubGradeBook) CreateGroup(_ context.Context, name string, year *int) (*models.Group, error) {
	s.groups = append(s.groups, name)
	return &models.Group{ID: int64(len(s.groups)), Name: name, Year: year}, nil
}

func fakeSetup(gb services.GradeBookService, calls *int) setupFunc {
	return func(context.Context, string) (*config.Config, *bootstrap.Dependencies, error) {
		*calls++
		cfg := &config.Config{}
		cfg.Script.OutputPath = filepath.Join(os.TempDir(), "unused.txt")
		return cfg, &bootstrap.Dependencies{GradeBook: gb, Logger: zerolog.Nop()}, nil
	}
}

func run(t *testing.T, setup setupFunc, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand(setup)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCommandTree(t *testing.T) {
	root := NewRootCommand()

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"menu", "script", "serve", "migrate", "seed", "reset", "export"} {
		assert.True(t, names[want], "missing command %s", want)
	}

	flag := root.PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, config.DefaultPath, flag.DefValue)
}

func TestScriptCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "script.txt")
	output := filepath.Join(dir, "out", "result.txt")
	require.NoError(t, os.WriteFile(input, []byte("ADD_GROUP;IP-11;1\nNOPE;1\n"), 0o644))

	gb := &stubGradeBook{}
	calls := 0
	_, err := run(t, fakeSetup(gb, &calls), "script", input, "--output", output)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"IP-11"}, gb.groups)

	log, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(log), "=== Test run log ===")
	assert.Contains(t, string(log), "Command: ADD_GROUP;IP-11;1")
	assert.Contains(t, string(log), "  Unknown command: NOPE")
}

func TestResetRequiresConfirmation(t *testing.T) {
	calls := 0
	_, err := run(t, fakeSetup(&stubGradeBook{}, &calls), "reset")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")
	assert.Zero(t, calls)
}

func TestSetupFailureIsReturned(t *testing.T) {
	boom := errors.New("failed to setup database: connection refused")
	setup := func(context.Context, string) (*config.Config, *bootstrap.Dependencies, error) {
		return nil, nil, boom
	}

	_, err := run(t, setup, "seed")
	assert.ErrorIs(t, err, boom)
}

func TestExportArguments(t *testing.T) {
	calls := 0
	setup := fakeSetup(&stubGradeBook{}, &calls)

	_, err := run(t, setup, "export", "student-grades", "abc", "out.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "studentId must be a positive number")

	_, err = run(t, setup, "export", "group-course-grades", "1", "out.csv")
	require.Error(t, err)
	assert.Zero(t, calls)
}

func TestParseID(t *testing.T) {
	id, err := parseID("courseId", "42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, s := range []string{"", "0", "-3", "x"} {
		_, err := parseID("courseId", s)
		assert.Error(t, err, s)
	}
}
