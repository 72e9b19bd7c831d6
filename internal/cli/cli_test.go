package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/artic-table/internal/artic"
	ioutils "github.com/handiism/artic-table/internal/io"
	"github.com/handiism/artic-table/internal/testutil"
)

func newUpstream(t *testing.T, total int) *testutil.MockUpstream {
	t.Helper()

	mock := testutil.NewMockUpstream(total)
	t.Cleanup(mock.Close)

	t.Setenv("ARTIC_BASE_URL", mock.BaseURL())
	t.Setenv("ARTIC_LOG_LEVEL", "disabled")
	return mock
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestPageCmd_JSON(t *testing.T) {
	newUpstream(t, 40)

	out, err := execute(t, "page", "-p", "2", "-o", "json")
	require.NoError(t, err)

	var page pageJSON
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 40, page.Total)
	require.Len(t, page.Data, 12)
	assert.Equal(t, 13, page.Data[0].ID)
}

func TestPageCmd_Table(t *testing.T) {
	newUpstream(t, 40)

	out, err := execute(t, "page")
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "page 1 of 4")
}

func TestPageCmd_Errors(t *testing.T) {
	mock := newUpstream(t, 40)
	mock.FailPage(3, http.StatusInternalServerError)

	_, err := execute(t, "page", "-p", "0")
	assert.ErrorIs(t, err, artic.ErrInvalidPage)

	_, err = execute(t, "page", "-o", "xml")
	assert.Error(t, err)

	_, err = execute(t, "page", "-p", "3")
	assert.Error(t, err)
}

func TestGatherCmd(t *testing.T) {
	tests := []struct {
		name     string
		strategy string
		count    string
		want     int
	}{
		{"wave", "wave", "25", 25},
		{"sequential", "sequential", "25", 25},
		{"more than upstream", "wave", "100", 40},
		{"wave max int", "wave", "9223372036854775807", 40},
		{"sequential max int", "sequential", "9223372036854775807", 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			newUpstream(t, 40)

			out, err := execute(t, "gather", "-n", tt.count, "--strategy", tt.strategy, "-o", "json")
			require.NoError(t, err)

			var rows []ioutils.Record
			require.NoError(t, json.Unmarshal([]byte(out), &rows))
			require.Len(t, rows, tt.want)
			for i, r := range rows {
				assert.Equal(t, i+1, r.ID)
			}
		})
	}
}

func TestGatherCmd_InvalidInput(t *testing.T) {
	mock := newUpstream(t, 40)

	_, err := execute(t, "gather", "-n", "abc")
	assert.ErrorIs(t, err, artic.ErrInvalidCount)

	_, err = execute(t, "gather", "-n", "5", "--strategy", "parallel")
	assert.Error(t, err)

	assert.Zero(t, mock.RequestCount())
}

func TestGatherCmd_PartialFailure(t *testing.T) {
	mock := newUpstream(t, 40)
	mock.FailPage(3, http.StatusInternalServerError)

	out, err := execute(t, "gather", "-n", "40", "--strategy", "sequential", "-o", "json")
	require.Error(t, err)

	var rows []ioutils.Record
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	assert.Len(t, rows, 24)
}

func TestGatherCmd_Save(t *testing.T) {
	newUpstream(t, 40)
	path := filepath.Join(t.TempDir(), "selection.csv")

	_, err := execute(t, "gather", "-n", "5", "--save", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[1], "1,Artwork 1,"))
}

func TestLoadSettings_Env(t *testing.T) {
	t.Setenv("ARTIC_PAGE_SIZE", "20")
	t.Setenv("ARTIC_GATHER_STRATEGY", "sequential")

	settings, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, 20, settings.PageSize)
	assert.Equal(t, "sequential", settings.GatherStrategy)

	t.Setenv("ARTIC_PAGE_SIZE", "500")
	_, err = LoadSettings("")
	assert.Error(t, err)
}
