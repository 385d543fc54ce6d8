// Package taskfilter narrows and orders an in-memory task set. It performs
// no I/O and keeps no state, so it is safe for concurrent use.
package taskfilter

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/chepyr/taskboard/internal/models"
)

// Criteria are the independent search and sort parameters of a request.
type Criteria struct {
	Search    SearchMode
	Sort      SortMode
	StartDate string
	EndDate   string
	Creator   string
}

// Apply runs the search stage and then the sort stage. tasks is not
// modified. Sorting is stable, so equal keys keep the order of tasks.
func Apply(tasks []models.Task, c Criteria) []models.Task {
	if tasks == nil {
		tasks = []models.Task{}
	}
	var found []models.Task
	switch c.Search {
	case SearchTimeRange:
		found = dueBetween(tasks, c.StartDate, c.EndDate)
	case SearchCreator:
		found = createdBy(tasks, c.Creator)
	case SearchNone:
		found = slices.Clone(tasks)
	default:
		found = slices.Clone(tasks)
	}
	return order(found, c.Sort)
}

var dateLayouts = []string{time.DateOnly, time.RFC3339Nano, "2006-01-02T15:04:05"}

// ParseDate parses a calendar date or timestamp as sent by clients.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// dueBetween keeps tasks due strictly after start and strictly before end.
// Both bounds empty disables the filter; any other missing or malformed
// bound matches nothing.
func dueBetween(tasks []models.Task, start, end string) []models.Task {
	if start == "" && end == "" {
		return slices.Clone(tasks)
	}
	out := make([]models.Task, 0)
	from, errFrom := ParseDate(start)
	to, errTo := ParseDate(end)
	if errFrom != nil || errTo != nil {
		return out
	}
	for _, task := range tasks {
		if task.DueDate != nil && task.DueDate.After(from) && task.DueDate.Before(to) {
			out = append(out, task)
		}
	}
	return out
}

func createdBy(tasks []models.Task, substr string) []models.Task {
	if substr == "" {
		return slices.Clone(tasks)
	}
	fold := cases.Fold()
	needle := fold.String(substr)
	out := make([]models.Task, 0)
	for _, task := range tasks {
		if strings.Contains(fold.String(task.Creator), needle) {
			out = append(out, task)
		}
	}
	return out
}

func order(tasks []models.Task, mode SortMode) []models.Task {
	switch mode {
	case SortByCreateTime:
		out := withComplete(tasks, false)
		slices.SortStableFunc(out, func(a, b models.Task) int {
			return a.CreateTime.Compare(b.CreateTime)
		})
		return out
	case SortByDueDate:
		out := withComplete(tasks, false)
		slices.SortStableFunc(out, compareDueDate)
		return out
	case SortByCreatorDesc:
		out := withComplete(tasks, false)
		collator := collate.New(language.Und)
		slices.SortStableFunc(out, func(a, b models.Task) int {
			return collator.CompareString(b.Creator, a.Creator)
		})
		return out
	case SortByID, SortByIDLegacy:
		out := withComplete(tasks, false)
		slices.SortStableFunc(out, compareID)
		return out
	case SortCompletedByID:
		out := withComplete(tasks, true)
		slices.SortStableFunc(out, compareID)
		return out
	case SortNone:
		return tasks
	default:
		return tasks
	}
}

func withComplete(tasks []models.Task, complete bool) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.Complete == complete {
			out = append(out, task)
		}
	}
	return out
}

// undated tasks go last
func compareDueDate(a, b models.Task) int {
	switch {
	case a.DueDate == nil && b.DueDate == nil:
		return 0
	case a.DueDate == nil:
		return 1
	case b.DueDate == nil:
		return -1
	default:
		return a.DueDate.Compare(*b.DueDate)
	}
}

func compareID(a, b models.Task) int {
	return cmp.Compare(a.ID, b.ID)
}
