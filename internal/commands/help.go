package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"tarefas/internal/config"
	"tarefas/internal/exitcode"
	"tarefas/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return nil }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "tarefas help" }
func (c *HelpCmd) NeedsService() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, "Usage:\n  tarefas                List all tasks\n  tarefas <command> [flags] [args]\n\nCommands:\n")
	for _, cmd := range DefaultRegistry.All() {
		synopsis := cmd.Synopsis()
		if aliases := cmd.Aliases(); len(aliases) > 0 {
			synopsis += " (alias: " + strings.Join(aliases, ", ") + ")"
		}
		fmt.Fprintf(out, "  %-8s %s\n", cmd.Name(), synopsis)
		fmt.Fprintf(out, "           %s\n", cmd.Usage())
	}
	fmt.Fprint(out, helpFooter)
	return exitcode.Success
}

const helpFooter = `
Filters: todas (all), concluidas (done), pendentes (pending)
Sort:    id, titulo

Common flags:
  --config <dir>   Override config directory
  --url <url>      Task collection URL (absolute, or relative to the configured server)
  --quiet          Suppress informational output
  --debug          Print debug logs (to debug.log in the config directory for ui)
`
