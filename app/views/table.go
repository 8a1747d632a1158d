package views

import (
	"slices"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"strikethrough/app/models"
)

const (
	// DueDateLayout is the canonical due date format.
	DueDateLayout = "2006-01-02"
	// looseDueDateLayout also accepts one-digit months and days.
	looseDueDateLayout = "2006-1-2"
)

var headers = [3]string{"id", "task", "due date"}

// SortKey returns the parsed due date of t and whether it is valid. Deleted
// or unparsable due dates are invalid and order after every valid date.
func SortKey(t *models.Task) (time.Time, bool) {
	if t.DueDateDeleted {
		return time.Time{}, false
	}
	for _, layout := range []string{DueDateLayout, looseDueDateLayout} {
		if d, err := time.Parse(layout, t.DueDate); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// SortTasks orders tasks by due date in place, invalid dates last.
// Equal keys keep their relative order.
func SortTasks(tasks []*models.Task) {
	slices.SortStableFunc(tasks, func(a, b *models.Task) int {
		da, okA := SortKey(a)
		db, okB := SortKey(b)
		switch {
		case okA && okB:
			return da.Compare(db)
		case okA:
			return -1
		case okB:
			return 1
		default:
			return 0
		}
	})
}

// DisplayLength is the visible width of text; strike marks take no space.
func DisplayLength(text string) int {
	return lipgloss.Width(strings.ReplaceAll(text, string(models.StrikeMark), ""))
}

// Rows flattens tasks into table rows: each task followed by its subtasks,
// indented by one space with a blank due date. tasks must already be sorted.
func Rows(tasks []*models.Task) [][3]string {
	rows := make([][3]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, [3]string{t.ID, printable(t.DisplayName()), printable(t.DisplayDueDate())})
		for _, sub := range t.Subtasks {
			rows = append(rows, [3]string{sub.ID, " " + printable(sub.DisplayName()), ""})
		}
	}
	return rows
}

// printable replaces control characters, including the ESC that starts a
// terminal escape sequence, with spaces so every cell stays on one line.
func printable(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, text)
}

// RenderTable sorts a copy of tasks and renders them as an aligned table.
func RenderTable(tasks []*models.Task) string {
	sorted := slices.Clone(tasks)
	SortTasks(sorted)
	rows := Rows(sorted)

	var widths [3]int
	for i, h := range headers {
		widths[i] = DisplayLength(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], DisplayLength(cell))
		}
	}

	rule := strings.Repeat("-", widths[0]+widths[1]+widths[2]+10) + "\n"

	var b strings.Builder
	b.WriteString(rule)
	writeRow(&b, headers, widths)
	b.WriteString(rule)
	for _, row := range rows {
		writeRow(&b, row, widths)
		b.WriteString(rule)
	}
	return b.String()
}

func writeRow(b *strings.Builder, row [3]string, widths [3]int) {
	for i, cell := range row {
		b.WriteString("| ")
		b.WriteString(pad(cell, widths[i]))
		b.WriteString(" ")
	}
	b.WriteString("|\n")
}

func pad(text string, width int) string {
	if n := width - DisplayLength(text); n > 0 {
		return text + strings.Repeat(" ", n)
	}
	return text
}
