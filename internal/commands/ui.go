package commands

import (
	"context"
	"flag"
	"io"

	"tarefas/internal/config"
	"tarefas/internal/exitcode"
	"tarefas/internal/output"
	"tarefas/internal/service"
	"tarefas/internal/tui"
)

func init() {
	Register(&UICmd{})
}

// UICmd starts the interactive task view.
type UICmd struct{}

func (c *UICmd) Name() string       { return "ui" }
func (c *UICmd) Aliases() []string  { return nil }
func (c *UICmd) Synopsis() string   { return "Interactive task view" }
func (c *UICmd) Usage() string      { return "tarefas ui" }
func (c *UICmd) NeedsService() bool { return true }
func (c *UICmd) Interactive() bool  { return true }

func (c *UICmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UICmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	m := tui.New(ctx, svc, cfg.LocaleTag(), cfg.Logger())
	if err := tui.Run(ctx, m, out); err != nil {
		output.FormatError(errOut, err.Error())
		return exitcode.BackendError
	}
	return exitcode.Success
}
