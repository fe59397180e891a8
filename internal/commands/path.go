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
	Register(&PathCmd{})
}

// PathCmd implements the path command. It prints the persistence target
// so the user can find (or hand-edit) the tasks file.
type PathCmd struct{}

func (c *PathCmd) Name() string      { return "path" }
func (c *PathCmd) Aliases() []string { return nil }
func (c *PathCmd) Synopsis() string  { return "Print the tasks file path" }
func (c *PathCmd) Usage() string     { return "ftask path" }
func (c *PathCmd) NeedsStore() bool  { return false }

func (c *PathCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *PathCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	fmt.Fprintln(out, cfg.TasksPath())
	return exitcode.Success
}
