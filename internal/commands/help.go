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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "ftask help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, st *store.Store, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  ftask                                            List tasks
  ftask list [common flags]                        List tasks
  ftask add [common flags] [--notes <text>] <title...>
  ftask done [common flags] <id>                   Toggle task completion
  ftask edit [common flags] [--title <text>] [--notes <text>] <id>
  ftask rm [common flags] <id>                     Delete a task
  ftask clear [common flags] [--force]             Delete all tasks
  ftask ui [common flags]                          Start the interactive mode
  ftask path [common flags]                        Print the tasks file path
  ftask help
  ftask version

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
