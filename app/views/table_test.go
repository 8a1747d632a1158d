package views

import (
	"strings"
	"testing"
	"time"

	"strikethrough/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(tasks []*models.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestSortTasks(t *testing.T) {
	tasks := []*models.Task{
		{ID: "t1", DueDate: "2024-01-01"},
		{ID: "t2", DueDate: "not-a-date"},
		{ID: "t3", DueDate: "2023-05-05"},
		{ID: "t4", DueDate: ""},
		{ID: "t5", DueDate: "2023-05-05"},
		{ID: "t6", DueDate: "2020-01-01", DueDateDeleted: true},
	}
	SortTasks(tasks)
	assert.Equal(t, []string{"t3", "t5", "t1", "t2", "t4", "t6"}, ids(tasks))
}

func TestSortKey(t *testing.T) {
	_, ok := SortKey(&models.Task{DueDate: "2024-02-30"})
	assert.False(t, ok)
	_, ok = SortKey(&models.Task{DueDate: "2024-02-3x"})
	assert.False(t, ok)
	for _, due := range []string{"2024-6-1", "2024-06-1", "2024-6-01"} {
		d, ok := SortKey(&models.Task{DueDate: due})
		require.True(t, ok, due)
		assert.True(t, d.Equal(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)), due)
	}
	d, ok := SortKey(&models.Task{DueDate: "2024-02-29"})
	require.True(t, ok)
	assert.Equal(t, 29, d.Day())
}

func TestSortTasksUnpaddedDates(t *testing.T) {
	tasks := []*models.Task{
		{ID: "t1", DueDate: "2024-12-01"},
		{ID: "t2", DueDate: "not-a-date"},
		{ID: "t3", DueDate: "2024-6-1"},
		{ID: "t4", DueDate: "2024-06-02"},
		{ID: "t5", DueDate: "2024-6-01"},
	}
	SortTasks(tasks)
	assert.Equal(t, []string{"t3", "t5", "t4", "t1", "t2"}, ids(tasks))
}

func TestDisplayLength(t *testing.T) {
	for _, s := range []string{"", "id", "Buy milk", " 2% milk", "2024-06-01"} {
		assert.Equal(t, len(s), DisplayLength(s), s)
		assert.Equal(t, DisplayLength(s), DisplayLength(models.Strikethrough(s)), s)
	}
}

func TestRenderTableEmpty(t *testing.T) {
	want := "" +
		"------------------------\n" +
		"| id | task | due date |\n" +
		"------------------------\n"
	assert.Equal(t, want, RenderTable(nil))
}

func TestRenderTable(t *testing.T) {
	tasks := []*models.Task{
		{ID: "t1", Name: "later", DueDate: "2024-01-01", Subtasks: []*models.Subtask{
			{ID: "s1", Name: "first step"},
		}},
		{ID: "t2", Name: "a", DueDate: "2023-05-05"},
	}
	want := "" +
		"---------------------------------\n" +
		"| id | task        | due date   |\n" +
		"---------------------------------\n" +
		"| t2 | a           | 2023-05-05 |\n" +
		"---------------------------------\n" +
		"| t1 | later       | 2024-01-01 |\n" +
		"---------------------------------\n" +
		"| s1 |  first step |            |\n" +
		"---------------------------------\n"
	assert.Equal(t, want, RenderTable(tasks))
	assert.Equal(t, "t1", tasks[0].ID, "caller's slice is not reordered")
}

func TestRenderTableControlCharacters(t *testing.T) {
	tasks := []*models.Task{
		{ID: "t1", Name: "two\nlines", DueDate: "2024-01-01", Subtasks: []*models.Subtask{
			{ID: "s1", Name: "\x1b[31mred\x1b[0m\tstep"},
		}},
	}
	out := RenderTable(tasks)
	assert.NotContains(t, out, "\x1b")
	assert.NotContains(t, out, "\t")

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 7)
	for _, line := range lines {
		assert.Equal(t, len(lines[0]), DisplayLength(line), line)
	}
	assert.Contains(t, lines[3], "| two lines ")
}

func TestRenderTableStruckAlignment(t *testing.T) {
	tasks := []*models.Task{
		{ID: "t1", Name: "Buy milk", DueDate: "2024-06-01", NameDeleted: true, Subtasks: []*models.Subtask{
			{ID: "s1", Name: "2% milk", Deleted: true},
		}},
	}
	out := RenderTable(tasks)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 7)

	for _, line := range lines {
		assert.Equal(t, 30, DisplayLength(line), line)
	}
	assert.Contains(t, lines[3], models.Strikethrough("Buy milk"))
	assert.Contains(t, lines[3], "| 2024-06-01 |")
	assert.Contains(t, lines[5], "|  "+models.Strikethrough("2% milk")+" ")
}
