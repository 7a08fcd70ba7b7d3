package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootReportsMissingFiles(t *testing.T) {
	chdir(t, t.TempDir())

	stdout, stderr, err := execute(t)
	require.NoError(t, err)

	assert.Equal(t, 4, strings.Count(stdout, "파일을 찾을 수 없습니다: raw_data"))
	assert.Contains(t, stdout, filepath.Join("raw_data", "artists.xlsx"))
	assert.Empty(t, stderr)
}

func TestRootVerboseLogsToStderr(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.Mkdir("raw_data", 0o755))

	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"id", "name"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{1, "kim"}))
	require.NoError(t, f.SaveAs(filepath.Join(dir, "raw_data", "users.xlsx")))

	quiet, _, err := execute(t)
	require.NoError(t, err)

	stdout, stderr, err := execute(t, "--verbose")
	require.NoError(t, err)

	assert.Equal(t, quiet, stdout)
	assert.Contains(t, stdout, "전체 행 수: 1")
	assert.Contains(t, stderr, "inspecting dataset")
	assert.NotContains(t, stdout, "inspecting dataset")
}

func TestRootRejectsArguments(t *testing.T) {
	_, _, err := execute(t, "raw_data/users.xlsx")
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
