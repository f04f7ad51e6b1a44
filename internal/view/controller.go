package view

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/text/language"

	"tarefas/internal/logging"
	"tarefas/internal/service"
)

// Controller drives the view synchronously: each Dispatch runs the
// transition and every effect it triggers until the view is quiescent.
type Controller struct {
	svc   service.Service
	log   *slog.Logger
	now   func() time.Time
	state State
}

// NewController creates a controller in the initial state.
func NewController(svc service.Service, locale language.Tag, logger *slog.Logger) *Controller {
	return &Controller{
		svc:   svc,
		log:   logging.OrDiscard(logger),
		now:   time.Now,
		state: NewState(locale),
	}
}

// SetClock replaces the time source (for testing).
func (c *Controller) SetClock(now func() time.Time) {
	c.now = now
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Page renders the current state.
func (c *Controller) Page() Page {
	return Render(c.state, c.now())
}

// Dispatch applies msg and runs the resulting effects in order.
func (c *Controller) Dispatch(ctx context.Context, msg Msg) State {
	for msg != nil {
		c.log.DebugContext(ctx, "dispatch", "msg", fmt.Sprintf("%T", msg))

		if err := resultErr(msg); err != nil {
			c.log.DebugContext(ctx, "request failed", "msg", fmt.Sprintf("%T", msg), "error", err)
		}

		var effect Effect
		c.state, effect = Update(c.state, msg, c.now())
		if effect == nil {
			break
		}
		msg = effect(ctx, c.svc)
	}
	return c.state
}

func resultErr(msg Msg) error {
	switch m := msg.(type) {
	case TasksLoaded:
		return m.Err
	case TaskFetched:
		return m.Err
	case TaskSaved:
		return m.Err
	case TaskDeleted:
		return m.Err
	}
	return nil
}
