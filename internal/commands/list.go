package commands

import (
	"context"
	"flag"
	"io"

	"tarefas/internal/config"
	"tarefas/internal/exitcode"
	"tarefas/internal/output"
	"tarefas/internal/service"
	"tarefas/internal/view"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `tarefas` (no args) and `tarefas list`.
type ListCmd struct {
	filter string
	sort   string
}

// SetFilter sets the filter (for testing).
func (c *ListCmd) SetFilter(filter string) {
	c.filter = filter
}

// SetSort sets the sort key (for testing).
func (c *ListCmd) SetSort(sort string) {
	c.sort = sort
}

func (c *ListCmd) Name() string       { return "list" }
func (c *ListCmd) Aliases() []string  { return []string{"ls"} }
func (c *ListCmd) Synopsis() string   { return "List tasks" }
func (c *ListCmd) Usage() string      { return "tarefas list [--filter todas|concluidas|pendentes] [--sort id|titulo]" }
func (c *ListCmd) NeedsService() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.filter, "filter", "todas", "")
	fs.StringVar(&c.filter, "f", "todas", "")
	fs.StringVar(&c.sort, "sort", "id", "")
	fs.StringVar(&c.sort, "s", "id", "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		output.FormatError(errOut, "unexpected argument: "+args[0])
		return exitcode.UserError
	}

	load, code := parseLoad(c.filter, c.sort, errOut)
	if code != exitcode.Success {
		return code
	}

	ctl := newController(cfg, svc)
	s := ctl.Dispatch(ctx, load)
	if s.Phase == view.PhaseError {
		return report(cfg, s, out, errOut)
	}

	page := ctl.Page()
	if len(page.Cards) == 0 && cfg.Quiet {
		return exitcode.Success
	}
	output.FormatPage(out, page)
	return exitcode.Success
}

// parseLoad builds the load command from filter and sort flag values.
func parseLoad(filter, sortKey string, errOut io.Writer) (view.LoadTasks, int) {
	f, err := view.ParseFilter(filter)
	if err != nil {
		output.FormatError(errOut, err.Error())
		return view.LoadTasks{}, exitcode.UserError
	}
	k, err := view.ParseSort(sortKey)
	if err != nil {
		output.FormatError(errOut, err.Error())
		return view.LoadTasks{}, exitcode.UserError
	}
	return view.LoadTasks{Filter: f, Sort: k}, exitcode.Success
}
