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
	Register(&ClearCmd{})
}

// ClearCmd implements the clear command. It refuses to run without
// --force, standing in for the interactive y/N confirmation.
type ClearCmd struct {
	force bool
}

// SetForce sets the force flag (for testing).
func (c *ClearCmd) SetForce(force bool) {
	c.force = force
}

func (c *ClearCmd) Name() string      { return "clear" }
func (c *ClearCmd) Aliases() []string { return nil }
func (c *ClearCmd) Synopsis() string  { return "Delete all tasks" }
func (c *ClearCmd) Usage() string     { return "ftask clear [--force]" }
func (c *ClearCmd) NeedsStore() bool  { return true }

func (c *ClearCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.force, "force", false, "")
}

func (c *ClearCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	if !c.force {
		fmt.Fprintf(errOut, "error: refusing to clear %d task(s) without --force\n", st.Len())
		return exitcode.UserError
	}

	st.Clear()
	if !saveStore(st, errOut) {
		return exitcode.StorageError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
