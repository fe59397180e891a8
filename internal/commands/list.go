package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"ftask/internal/config"
	"ftask/internal/exitcode"
	"ftask/internal/output"
	"ftask/internal/store"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// It is also the default command when ftask runs with no arguments.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "ftask list" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	tasks := st.List()
	if len(tasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}

	output.FormatTable(out, tasks)
	return exitcode.Success
}
