package commands

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"tarefas/internal/config"
	"tarefas/internal/exitcode"
	"tarefas/internal/service"
	"tarefas/internal/view"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct {
	yes bool
	in  io.Reader
}

// SetInput sets where the confirmation answer is read from (for testing).
func (c *RmCmd) SetInput(in io.Reader) {
	c.in = in
}

// SetYes skips the confirmation prompt (for testing).
func (c *RmCmd) SetYes(yes bool) {
	c.yes = yes
}

func (c *RmCmd) Name() string       { return "rm" }
func (c *RmCmd) Aliases() []string  { return []string{"delete"} }
func (c *RmCmd) Synopsis() string   { return "Delete a task" }
func (c *RmCmd) Usage() string      { return "tarefas rm [--yes] <id>" }
func (c *RmCmd) NeedsService() bool { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.yes, "yes", false, "")
	fs.BoolVar(&c.yes, "y", false, "")
}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	id, err := ParseTaskID(args)
	if err != nil {
		return reportTaskIDError(errOut, err)
	}

	ctl := newController(cfg, svc)
	ctl.Dispatch(ctx, view.DeleteTask{ID: id})

	accept := c.yes
	if !accept {
		fmt.Fprintf(errOut, "Are you sure you want to delete task %d? [y/N] ", id)
		accept = readYes(c.input())
	}

	s := ctl.Dispatch(ctx, view.ConfirmDelete{Accept: accept})
	if !accept {
		if !cfg.Quiet {
			fmt.Fprintln(out, "cancelled")
		}
		return exitcode.Success
	}
	return reportTask(cfg, s, id, out, errOut)
}

func (c *RmCmd) input() io.Reader {
	if c.in == nil {
		return os.Stdin
	}
	return c.in
}

// readYes reads one line and reports whether it is an affirmative answer.
// EOF or a read error counts as no.
func readYes(r io.Reader) bool {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "s", "sim":
		return true
	}
	return false
}
