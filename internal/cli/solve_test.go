package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleReport = "1721\n979\n366\n299\n675\n1456\n"

func writeReport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "day1_input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// executeRoot runs the root command with args and returns stdout, stderr
// and the error.
func executeRoot(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestSolve_Example(t *testing.T) {
	path := writeReport(t, exampleReport)

	out, _, err := executeRoot(t, "", "solve", path)
	require.NoError(t, err)
	assert.Equal(t, "Part 1: 514579\nPart 2: 241861950\n", out)
}

func TestSolve_ComplementStrategy(t *testing.T) {
	path := writeReport(t, exampleReport)

	out, _, err := executeRoot(t, "", "solve", "--strategy", "complement", path)
	require.NoError(t, err)
	assert.Equal(t, "Part 1: 514579\nPart 2: 241861950\n", out)
}

func TestSolve_Stdin(t *testing.T) {
	out, _, err := executeRoot(t, "1010\n1010\n", "solve", "-")
	require.NoError(t, err)
	assert.Equal(t, "Part 1: 1020100\nPart 2: no solution found\n", out)
}

func TestSolve_NoSolutionIsNotAnError(t *testing.T) {
	path := writeReport(t, "1\n2\n3\n")

	out, _, err := executeRoot(t, "", "solve", path)
	require.NoError(t, err)
	assert.Equal(t, "Part 1: no solution found\nPart 2: no solution found\n", out)
}

func TestSolve_CustomTarget(t *testing.T) {
	path := writeReport(t, "10\n20\n10\n10\n")

	out, _, err := executeRoot(t, "", "solve", "--target", "30", path)
	require.NoError(t, err)
	assert.Equal(t, "Part 1: 200\nPart 2: 1000\n", out)
}

func TestSolve_Verbose(t *testing.T) {
	path := writeReport(t, exampleReport)

	out, errOut, err := executeRoot(t, "", "solve", "-v", path)
	require.NoError(t, err)
	assert.Equal(t, "Part 1: 514579\nPart 2: 241861950\n", out)
	assert.Contains(t, errOut, "Read 6 entries from "+path)
	assert.Contains(t, errOut, "triple search done")
	assert.Contains(t, errOut, "examined=6")
}

func TestSolve_MissingFile(t *testing.T) {
	out, errOut, err := executeRoot(t, "", "solve", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), ErrCodeNotFound)
	assert.True(t, IsReported(err))
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Error [E003]: load report")
}

func TestSolve_ParseError(t *testing.T) {
	path := writeReport(t, "1721\nabc\n")

	_, _, err := executeRoot(t, "", "solve", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), ErrCodeParse)
	assert.Contains(t, err.Error(), `"abc"`)
	assert.True(t, IsReported(err))
}

func TestSolve_UnknownStrategy(t *testing.T) {
	path := writeReport(t, exampleReport)

	_, _, err := executeRoot(t, "", "solve", "--strategy", "nested", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "unknown strategy")
}

func TestSolve_JSON(t *testing.T) {
	path := writeReport(t, exampleReport)

	buf := &bytes.Buffer{}
	opts := &SolveOptions{
		RootOptions: &RootOptions{Format: "json"},
		Target:      2020,
		Strategy:    "ascending",
		RunIDs:      NewFixedRunIDGenerator("run-fixed"),
	}
	cmd := NewSolveCommand(opts.RootOptions)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	require.NoError(t, runSolve(opts, path, cmd))

	var resp struct {
		Status string `json:"status"`
		RunID  string `json:"run_id"`
		Data   struct {
			RecordID string `json:"record_id"`
			Target   int64  `json:"target"`
			ReportID string `json:"report_id"`
			Entries  int    `json:"entries"`
			Strategy string `json:"strategy"`
			Pair     struct {
				Found   bool    `json:"found"`
				Entries []int64 `json:"entries"`
				Product int64   `json:"product"`
			} `json:"pair"`
			Triple struct {
				Found   bool    `json:"found"`
				Entries []int64 `json:"entries"`
				Product int64   `json:"product"`
			} `json:"triple"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))

	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "run-fixed", resp.RunID)
	assert.Equal(t, int64(2020), resp.Data.Target)
	assert.Len(t, resp.Data.ReportID, 64)
	assert.Len(t, resp.Data.RecordID, 64)
	assert.NotEqual(t, resp.Data.ReportID, resp.Data.RecordID)
	assert.Equal(t, 6, resp.Data.Entries)
	assert.Equal(t, "ascending", resp.Data.Strategy)
	assert.True(t, resp.Data.Pair.Found)
	assert.Equal(t, int64(514579), resp.Data.Pair.Product)
	assert.True(t, resp.Data.Triple.Found)
	assert.Equal(t, []int64{366, 675, 979}, resp.Data.Triple.Entries)
	assert.Equal(t, int64(241861950), resp.Data.Triple.Product)
}

func TestSolve_JSONNoSolution(t *testing.T) {
	out, _, err := executeRoot(t, "1 2 3", "--format", "json", "solve", "-")
	require.NoError(t, err)

	var resp map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	runID, ok := resp["run_id"].(string)
	require.True(t, ok)
	_, err = uuid.Parse(runID)
	assert.NoError(t, err)

	data := resp["data"].(map[string]any)
	pair := data["pair"].(map[string]any)
	assert.Equal(t, false, pair["found"])
	assert.NotContains(t, pair, "product")
	assert.NotContains(t, pair, "entries")
}

func TestSolve_JSONParseError(t *testing.T) {
	out, _, err := executeRoot(t, "1\nx\n", "--format", "json", "solve", "-")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeParse, resp.Error.Code)

	details, ok := resp.Error.Details.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "x", details["token"])
	assert.Equal(t, float64(2), details["line"])
	assert.Equal(t, float64(1), details["index"])
}

func TestSolve_RecordIDMatchesRecord(t *testing.T) {
	first, _, err := executeRoot(t, exampleReport, "--format", "json", "solve", "-")
	require.NoError(t, err)
	second, _, err := executeRoot(t, "1456\n675\n299\n366\n979\n1721\n", "--format", "json", "solve", "-")
	require.NoError(t, err)

	recordID := func(out string) string {
		var resp struct {
			Data SolveResult `json:"data"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		require.NotNil(t, resp.Data.Record)
		id, err := resp.Data.Record.ID()
		require.NoError(t, err)
		assert.Equal(t, id, resp.Data.RecordID)
		return resp.Data.RecordID
	}

	// Same entries in another order: same report, different examined counts.
	assert.NotEqual(t, recordID(first), recordID(second))
}
