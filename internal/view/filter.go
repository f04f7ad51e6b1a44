package view

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"tarefas/internal/service"
)

// Filter selects tasks by completion status.
type Filter int

const (
	// FilterAll keeps every task ("todas").
	FilterAll Filter = iota
	// FilterDone keeps completed tasks ("concluidas").
	FilterDone
	// FilterPending keeps pending tasks ("pendentes").
	FilterPending
)

// Filters lists the filters in selector order.
var Filters = []Filter{FilterAll, FilterDone, FilterPending}

func (f Filter) String() string {
	switch f {
	case FilterDone:
		return "concluidas"
	case FilterPending:
		return "pendentes"
	default:
		return "todas"
	}
}

// Label is the human-readable name of the filter.
func (f Filter) Label() string {
	switch f {
	case FilterDone:
		return "Completed"
	case FilterPending:
		return "Pending"
	default:
		return "All"
	}
}

// Next returns the following filter in selector order, wrapping around.
func (f Filter) Next() Filter {
	return Filters[(int(f)+1)%len(Filters)]
}

// ParseFilter accepts the selector values (todas, concluidas, pendentes)
// and their English aliases (all, done, pending). Empty means all.
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "todas", "all":
		return FilterAll, nil
	case "concluidas", "done", "completed":
		return FilterDone, nil
	case "pendentes", "pending":
		return FilterPending, nil
	}
	return FilterAll, fmt.Errorf("invalid filter: %s", s)
}

// SortKey selects the display order.
type SortKey int

const (
	// SortByID orders by ascending id.
	SortByID SortKey = iota
	// SortByTitle orders by locale-aware title collation.
	SortByTitle
)

// SortKeys lists the sort keys in selector order.
var SortKeys = []SortKey{SortByID, SortByTitle}

func (k SortKey) String() string {
	if k == SortByTitle {
		return "titulo"
	}
	return "id"
}

// Label is the human-readable name of the sort key.
func (k SortKey) Label() string {
	if k == SortByTitle {
		return "Title"
	}
	return "ID"
}

// Next returns the following sort key in selector order, wrapping around.
func (k SortKey) Next() SortKey {
	return SortKeys[(int(k)+1)%len(SortKeys)]
}

// ParseSort accepts "id" (default) and "titulo" (alias "title").
func ParseSort(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "id":
		return SortByID, nil
	case "titulo", "title":
		return SortByTitle, nil
	}
	return SortByID, fmt.Errorf("invalid sort: %s", s)
}

// FilterTasks returns the tasks matching f, in input order.
// The input slice is not modified.
func FilterTasks(tasks []service.Task, f Filter) []service.Task {
	out := make([]service.Task, 0, len(tasks))
	for _, t := range tasks {
		switch f {
		case FilterDone:
			if !t.Done {
				continue
			}
		case FilterPending:
			if t.Done {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// SortTasks sorts tasks in place. Title order uses the collation rules of
// locale; both orders are stable.
func SortTasks(tasks []service.Task, key SortKey, locale language.Tag) {
	if key == SortByTitle {
		c := collate.New(locale)
		slices.SortStableFunc(tasks, func(a, b service.Task) int {
			return c.CompareString(a.Title, b.Title)
		})
		return
	}
	slices.SortStableFunc(tasks, func(a, b service.Task) int {
		return cmp.Compare(a.ID, b.ID)
	})
}

// Apply filters then sorts, returning a new slice.
func Apply(tasks []service.Task, f Filter, key SortKey, locale language.Tag) []service.Task {
	out := FilterTasks(tasks, f)
	SortTasks(out, key, locale)
	return out
}
