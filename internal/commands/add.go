package commands

import (
	"context"
	"flag"
	"io"
	"strings"

	"tarefas/internal/config"
	"tarefas/internal/exitcode"
	"tarefas/internal/output"
	"tarefas/internal/service"
	"tarefas/internal/view"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	description string
	done        bool
}

// SetDescription sets the description (for testing).
func (c *AddCmd) SetDescription(d string) {
	c.description = d
}

// SetDone sets the completion flag (for testing).
func (c *AddCmd) SetDone(done bool) {
	c.done = done
}

func (c *AddCmd) Name() string       { return "add" }
func (c *AddCmd) Aliases() []string  { return []string{"create"} }
func (c *AddCmd) Synopsis() string   { return "Create a task" }
func (c *AddCmd) Usage() string      { return "tarefas add [--description <text>] [--done] <title...>" }
func (c *AddCmd) NeedsService() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.description, "description", "", "")
	fs.StringVar(&c.description, "d", "", "")
	fs.BoolVar(&c.done, "done", false, "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		output.FormatError(errOut, "title required")
		return exitcode.UserError
	}

	// The title is sent as typed; the server decides whether it is acceptable.
	fields := service.TaskFields{
		Title:       strings.Join(args, " "),
		Description: c.description,
		Done:        c.done,
	}

	ctl := newController(cfg, svc)
	ctl.Dispatch(ctx, view.OpenForm{Mode: view.FormCreate})
	s := ctl.Dispatch(ctx, view.SubmitForm(ctl.State().Form, fields))
	return report(cfg, s, out, errOut)
}
