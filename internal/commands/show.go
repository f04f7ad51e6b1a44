package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"tarefas/internal/config"
	"tarefas/internal/exitcode"
	"tarefas/internal/output"
	"tarefas/internal/service"
	"tarefas/internal/view"
)

func init() {
	Register(&ShowCmd{})
}

// ShowCmd implements the show command.
type ShowCmd struct{}

func (c *ShowCmd) Name() string       { return "show" }
func (c *ShowCmd) Aliases() []string  { return nil }
func (c *ShowCmd) Synopsis() string   { return "Print one task" }
func (c *ShowCmd) Usage() string      { return "tarefas show <id>" }
func (c *ShowCmd) NeedsService() bool { return true }

func (c *ShowCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ShowCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	id, err := ParseTaskID(args)
	if err != nil {
		return reportTaskIDError(errOut, err)
	}

	task, err := svc.GetTask(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			output.FormatError(errOut, fmt.Sprintf("task not found: %d", id))
			return exitcode.UserError
		}
		output.FormatError(errOut, service.MessageOf(err, view.TextFetchFailed))
		return exitcode.ForError(err)
	}

	output.FormatDetail(out, view.CardFor(task))
	return exitcode.Success
}
