package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"ftask/internal/config"
	"ftask/internal/exitcode"
	"ftask/internal/store"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command. An omitted or empty flag leaves
// that field unchanged; edit cannot clear a field to empty.
type EditCmd struct {
	title string
	notes string
}

// SetTitle sets the title flag value (for testing).
func (c *EditCmd) SetTitle(title string) {
	c.title = title
}

// SetNotes sets the notes flag value (for testing).
func (c *EditCmd) SetNotes(notes string) {
	c.notes = notes
}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Edit a task's title or notes" }
func (c *EditCmd) Usage() string     { return "ftask edit [--title <text>] [--notes <text>] <id>" }
func (c *EditCmd) NeedsStore() bool  { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.title, "title", "", "")
	fs.StringVar(&c.title, "t", "", "")
	fs.StringVar(&c.notes, "notes", "", "")
	fs.StringVar(&c.notes, "n", "", "")
}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	id, err := parseTaskID(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if !st.Edit(id, c.title, c.notes) {
		fmt.Fprintf(errOut, "error: task not found: %d\n", id)
		return exitcode.UserError
	}
	if !saveStore(st, errOut) {
		return exitcode.StorageError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
