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
	Register(&EditCmd{})
}

// EditCmd implements the edit command. Unset flags keep the current value;
// the task is then replaced as a whole.
type EditCmd struct {
	title       optString
	description optString
	done        optBool
	pending     optBool
}

// SetTitle sets the new title (for testing).
func (c *EditCmd) SetTitle(title string) { _ = c.title.Set(title) }

// SetDescription sets the new description (for testing).
func (c *EditCmd) SetDescription(d string) { _ = c.description.Set(d) }

// SetDone marks the task completed (true) or pending (false) (for testing).
func (c *EditCmd) SetDone(done bool) {
	if done {
		_ = c.done.Set("true")
	} else {
		_ = c.pending.Set("true")
	}
}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Edit a task" }
func (c *EditCmd) Usage() string {
	return "tarefas edit [--title <text>] [--description <text>] [--done|--pending] <id>"
}
func (c *EditCmd) NeedsService() bool { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.Var(&c.title, "title", "")
	fs.Var(&c.title, "t", "")
	fs.Var(&c.description, "description", "")
	fs.Var(&c.description, "d", "")
	fs.Var(&c.done, "done", "")
	fs.Var(&c.pending, "pending", "")
}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	id, err := ParseTaskID(args)
	if err != nil {
		return reportTaskIDError(errOut, err)
	}

	if c.done.set && c.pending.set && c.done.value && c.pending.value {
		output.FormatError(errOut, "cannot use both --done and --pending")
		return exitcode.UserError
	}

	return runEdit(ctx, cfg, svc, id, func(f *service.TaskFields) {
		if c.title.set {
			f.Title = c.title.value
		}
		if c.description.set {
			f.Description = c.description.value
		}
		if c.done.set {
			f.Done = c.done.value
		}
		if c.pending.set {
			f.Done = !c.pending.value
		}
	}, out, errOut)
}

// runEdit opens the edit form for id, applies change to the pre-filled
// fields and submits them.
func runEdit(ctx context.Context, cfg *config.Config, svc service.Service, id int, change func(*service.TaskFields), out, errOut io.Writer) int {
	ctl := newController(cfg, svc)

	s := ctl.Dispatch(ctx, view.OpenForm{Mode: view.FormEdit, ID: id})
	if s.Form.Mode != view.FormEdit {
		return reportTask(cfg, s, id, out, errOut)
	}

	fields := s.Form.Fields
	change(&fields)

	s = ctl.Dispatch(ctx, view.SubmitForm(s.Form, fields))
	return reportTask(cfg, s, id, out, errOut)
}
