package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"ftask/internal/config"
	"ftask/internal/exitcode"
	"ftask/internal/store"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	notes string
}

// SetNotes sets the notes flag value (for testing).
func (c *AddCmd) SetNotes(notes string) {
	c.notes = notes
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string     { return "ftask add [--notes <text>] <title...>" }
func (c *AddCmd) NeedsStore() bool  { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.notes, "notes", "", "")
	fs.StringVar(&c.notes, "n", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	// Empty-title rejection lives here, not in the store.
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}
	title := strings.Join(args, " ")
	if strings.TrimSpace(title) == "" {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	id := st.Add(title, c.notes)
	if !saveStore(st, errOut) {
		return exitcode.StorageError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "added task %d\n", id)
	}
	return exitcode.Success
}
