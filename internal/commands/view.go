package commands

import (
	"errors"
	"fmt"
	"io"

	"tarefas/internal/config"
	"tarefas/internal/exitcode"
	"tarefas/internal/output"
	"tarefas/internal/service"
	"tarefas/internal/view"
)

// newController creates a view controller for a one-shot command.
func newController(cfg *config.Config, svc service.Service) *view.Controller {
	return view.NewController(svc, cfg.LocaleTag(), cfg.Logger())
}

// report prints the outcome of the last dispatch: an error line on errOut,
// or the success message on out unless quiet. Returns the exit code.
func report(cfg *config.Config, s view.State, out, errOut io.Writer) int {
	msg := s.Message
	if msg == nil {
		return exitcode.Success
	}
	if msg.Kind == view.MessageError {
		output.FormatError(errOut, msg.Text)
		return exitcode.ForError(msg.Err)
	}
	if !cfg.Quiet {
		fmt.Fprintln(out, msg.Text)
	}
	return exitcode.Success
}

// reportTask is like report but names the task when it does not exist.
func reportTask(cfg *config.Config, s view.State, id int, out, errOut io.Writer) int {
	if err := s.Err(); errors.Is(err, service.ErrNotFound) {
		output.FormatError(errOut, fmt.Sprintf("task not found: %d", id))
		return exitcode.UserError
	}
	return report(cfg, s, out, errOut)
}

// reportTaskIDError prints a task id parsing error.
func reportTaskIDError(errOut io.Writer, err error) int {
	output.FormatError(errOut, err.Error())
	return exitcode.UserError
}
