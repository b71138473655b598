package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/drivercal/internal/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	err := Execute(context.Background(), args)
	return buf.String(), err
}

func TestVersionCmd(t *testing.T) {
	orig := version
	version = "test-version-1.0.0"
	defer func() { version = orig }()

	out, err := executeRoot(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "drivercal version test-version-1.0.0")
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["report"])
	assert.True(t, names["calendar"])
	assert.True(t, names["version"])

	for _, f := range []string{"config", "db", "log-level"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(f), f)
	}
}

func TestReportCmd(t *testing.T) {
	db := filepath.Join(t.TempDir(), "drivercal.db")
	stubInputs(t, "admin123", "admin")

	out, err := executeRoot(t, "report", "--date", "2024-03-01", "-d", db, "-l", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "March 01, 2024")
	assert.Contains(t, out, "No drivers registered")
}

func TestReportCmd_BadAdminPassword(t *testing.T) {
	db := filepath.Join(t.TempDir(), "drivercal.db")
	stubInputs(t, "nope", "admin")

	_, err := executeRoot(t, "report", "--date", "2024-03-01", "-d", db, "-l", "error")
	require.EqualError(t, err, "Invalid credentials")
}

func TestReportCmd_BadDate(t *testing.T) {
	db := filepath.Join(t.TempDir(), "drivercal.db")
	_, err := executeRoot(t, "report", "--date", "01/03/2024", "-d", db, "-l", "error")
	require.Error(t, err)
}

func TestCalendarCmd(t *testing.T) {
	db := filepath.Join(t.TempDir(), "drivercal.db")
	stubInputs(t, "admin123", "admin")

	out, err := executeRoot(t, "calendar", "--month", "2024-12", "-d", db, "-l", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "December 2024")
	assert.Contains(t, out, "Legend:")
}

func TestWithApp_ErrorsPropagate(t *testing.T) {
	orig := newAppFn
	newAppFn = func(context.Context, *config.Config, io.Reader, io.Writer) (*App, error) {
		return nil, errors.New("db locked")
	}
	defer func() { newAppFn = orig }()

	cmd := &cobra.Command{}
	err := withApp(cmd, func(context.Context, *App) error { return nil })
	require.EqualError(t, err, "db locked")
}

func TestConfigArgs(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().StringP("config", "c", "", "")
	cmd.Flags().StringP("db", "d", "", "")
	cmd.Flags().StringP("log-level", "l", "", "")
	require.NoError(t, cmd.Flags().Parse([]string{"-d", "x.db", "-l", "debug"}))

	assert.Equal(t, []string{"--db=x.db", "--log-level=debug"}, configArgs(cmd))
}
