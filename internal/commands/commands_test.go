package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ftask/internal/commands"
	"ftask/internal/config"
	"ftask/internal/exitcode"
	"ftask/internal/store"
	"ftask/internal/testutil"
)

// newTestStore creates a store on a fresh temp file.
func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(filepath.Join(t.TempDir(), "tasks.csv"))
}

// runCommand is a helper to run a command against a real store.
func runCommand(t *testing.T, cmd commands.Command, st *store.Store, args []string, quiet bool) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer

	cfg := &config.Config{
		Dir:   t.TempDir(),
		Quiet: quiet,
	}

	ctx := context.Background()
	code = cmd.Run(ctx, cfg, st, args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestVersionCommand(t *testing.T) {
	cmd := &commands.VersionCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "ftask 0.1.0\n" {
		t.Errorf("expected version output, got %q", stdout)
	}
}

func TestHelpCommand(t *testing.T) {
	cmd := &commands.HelpCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !strings.Contains(stdout, "Usage:") {
		t.Error("help output should contain 'Usage:'")
	}
}

func TestAddCommand(t *testing.T) {
	st := newTestStore(t)
	cmd := &commands.AddCmd{}
	cmd.SetNotes("urgent")

	stdout, stderr, code := runCommand(t, cmd, st, []string{"Buy", "milk"}, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	if stdout != "added task 1\n" {
		t.Errorf("expected add confirmation, got %q", stdout)
	}

	// The mutation is persisted immediately.
	data, err := os.ReadFile(st.Path())
	if err != nil {
		t.Fatalf("tasks file not written: %v", err)
	}
	if string(data) != "1,0,Buy milk,urgent\n" {
		t.Errorf("file content = %q", data)
	}
}

func TestAddCommand_TitleRequired(t *testing.T) {
	st := newTestStore(t)
	cmd := &commands.AddCmd{}

	_, stderr, code := runCommand(t, cmd, st, nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: title required\n" {
		t.Errorf("expected title-required error, got %q", stderr)
	}

	_, stderr, code = runCommand(t, cmd, st, []string{"   "}, false)
	if code != exitcode.UserError {
		t.Errorf("expected exit code %d for blank title, got %d", exitcode.UserError, code)
	}
	if stderr != "error: title required\n" {
		t.Errorf("expected title-required error, got %q", stderr)
	}
}

func TestAddCommand_Quiet(t *testing.T) {
	st := newTestStore(t)
	cmd := &commands.AddCmd{}

	stdout, _, code := runCommand(t, cmd, st, []string{"Buy milk"}, true)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout in quiet mode, got %q", stdout)
	}
}

func TestListCommand_Empty(t *testing.T) {
	st := newTestStore(t)
	cmd := &commands.ListCmd{}

	stdout, _, code := runCommand(t, cmd, st, nil, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "no tasks found\n" {
		t.Errorf("expected 'no tasks found', got %q", stdout)
	}

	stdout, _, _ = runCommand(t, cmd, st, nil, true)
	if stdout != "" {
		t.Errorf("expected no stdout in quiet mode, got %q", stdout)
	}
}

func TestListCommand_Table(t *testing.T) {
	st := newTestStore(t)
	st.Add("Buy milk", "urgent")
	id := st.Add("Clean", "")
	st.ToggleComplete(id)

	cmd := &commands.ListCmd{}
	stdout, stderr, code := runCommand(t, cmd, st, nil, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	testutil.GoldenString(t, "list", stdout)
}

func TestDoneCommand_Toggles(t *testing.T) {
	st := newTestStore(t)
	st.Add("Buy milk", "")

	cmd := &commands.DoneCmd{}
	stdout, _, code := runCommand(t, cmd, st, []string{"1"}, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "ok\n" {
		t.Errorf("expected ok, got %q", stdout)
	}
	if !st.List()[0].Completed {
		t.Error("task not completed after done")
	}

	// Second invocation reopens the task.
	_, _, code = runCommand(t, cmd, st, []string{"1"}, false)
	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if st.List()[0].Completed {
		t.Error("task still completed after second done")
	}
}

func TestDoneCommand_NotFound(t *testing.T) {
	st := newTestStore(t)

	cmd := &commands.DoneCmd{}
	_, stderr, code := runCommand(t, cmd, st, []string{"99"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task not found: 99\n" {
		t.Errorf("expected not-found error, got %q", stderr)
	}
}

func TestDoneCommand_InvalidID(t *testing.T) {
	st := newTestStore(t)

	cmd := &commands.DoneCmd{}
	_, stderr, code := runCommand(t, cmd, st, []string{"abc"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: invalid task id: abc\n" {
		t.Errorf("expected invalid-id error, got %q", stderr)
	}
}

func TestEditCommand_EmptyFlagKeepsField(t *testing.T) {
	st := newTestStore(t)
	st.Add("Original", "old notes")

	cmd := &commands.EditCmd{}
	cmd.SetNotes("new notes")
	_, stderr, code := runCommand(t, cmd, st, []string{"1"}, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	got := st.List()[0]
	if got.Title != "Original" {
		t.Errorf("title = %q, want unchanged", got.Title)
	}
	if got.Notes != "new notes" {
		t.Errorf("notes = %q, want %q", got.Notes, "new notes")
	}
}

func TestEditCommand_NotFound(t *testing.T) {
	st := newTestStore(t)

	cmd := &commands.EditCmd{}
	cmd.SetTitle("x")
	_, stderr, code := runCommand(t, cmd, st, []string{"5"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task not found: 5\n" {
		t.Errorf("expected not-found error, got %q", stderr)
	}
}

func TestRmCommand(t *testing.T) {
	st := newTestStore(t)
	st.Add("A", "")
	st.Add("B", "")

	cmd := &commands.RmCmd{}
	stdout, _, code := runCommand(t, cmd, st, []string{"1"}, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "ok\n" {
		t.Errorf("expected ok, got %q", stdout)
	}
	if st.Len() != 1 || st.List()[0].Title != "B" {
		t.Errorf("collection after rm = %+v", st.List())
	}
}

func TestRmCommand_NotFound(t *testing.T) {
	st := newTestStore(t)

	cmd := &commands.RmCmd{}
	_, stderr, code := runCommand(t, cmd, st, []string{"3"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task not found: 3\n" {
		t.Errorf("expected not-found error, got %q", stderr)
	}
}

func TestClearCommand_RequiresForce(t *testing.T) {
	st := newTestStore(t)
	st.Add("A", "")

	cmd := &commands.ClearCmd{}
	_, stderr, code := runCommand(t, cmd, st, nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if !strings.Contains(stderr, "--force") {
		t.Errorf("expected --force hint, got %q", stderr)
	}
	if st.Len() != 1 {
		t.Error("clear without --force mutated the store")
	}
}

func TestClearCommand_Force(t *testing.T) {
	st := newTestStore(t)
	st.Add("A", "")
	st.Add("B", "")

	cmd := &commands.ClearCmd{}
	cmd.SetForce(true)
	stdout, _, code := runCommand(t, cmd, st, nil, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "ok\n" {
		t.Errorf("expected ok, got %q", stdout)
	}
	if st.Len() != 0 {
		t.Errorf("len after clear = %d, want 0", st.Len())
	}

	data, err := os.ReadFile(st.Path())
	if err != nil {
		t.Fatalf("tasks file not written: %v", err)
	}
	if string(data) != "" {
		t.Errorf("file after clear = %q, want empty", data)
	}
}

func TestPathCommand(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{Dir: dir}

	var outBuf, errBuf bytes.Buffer
	cmd := &commands.PathCmd{}
	code := cmd.Run(context.Background(), cfg, nil, nil, &outBuf, &errBuf)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if outBuf.String() != cfg.TasksPath()+"\n" {
		t.Errorf("expected tasks path, got %q", outBuf.String())
	}
}
