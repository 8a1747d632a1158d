package controllers

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strings"

	"strikethrough/app/services"
	"strikethrough/app/views"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const clearScreen = "\033[H\033[2J"

var motds = []string{
	"Using a to-do list keeps you organized and focused!",
	"To-do lists help clear your mind and prioritize your goals.",
	"Every great achievement starts with a list of tasks!",
	"A to-do list can transform chaos into clarity.",
	"Achieve more by writing down what you need to do!",
	"Break big tasks into smaller steps with your to-do list!",
	"Every task you check off is a step closer to success!",
	"Stay on top of deadlines with your to-do list!",
	"Productivity starts with a plan. Write it down!",
	"Your to-do list is a roadmap to your goals!",
}

var commands = [][2]string{
	{"add task", "add a new task"},
	{"add subtask", "add a subtask to an existing task"},
	{"delete task", "delete a task along with its subtasks"},
	{"delete subtask", "delete a specific subtask"},
	{"exit", "exit the to-do list application"},
}

var (
	motdStyle       = lipgloss.NewStyle().Bold(true)
	cellStyle       = lipgloss.NewStyle().Padding(0, 1)
	headerCellStyle = cellStyle.Bold(true)
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// ConsoleOptions tunes the interactive loop.
type ConsoleOptions struct {
	Clear bool
	MOTD  bool
}

// ConsoleController runs the interactive command loop over a reader and writer.
type ConsoleController struct {
	Service *services.TaskService

	in     *bufio.Scanner
	out    io.Writer
	opts   ConsoleOptions
	logger *slog.Logger
}

// NewConsoleController creates a ConsoleController reading commands from in.
func NewConsoleController(service *services.TaskService, in io.Reader, out io.Writer, opts ConsoleOptions, logger *slog.Logger) *ConsoleController {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ConsoleController{
		Service: service,
		in:      bufio.NewScanner(in),
		out:     out,
		opts:    opts,
		logger:  logger,
	}
}

// Run loops until the exit command, end of input, or ctx is done.
func (c *ConsoleController) Run(ctx context.Context) error {
	c.clear()
	if c.opts.MOTD {
		fmt.Fprintln(c.out, motdStyle.Render(motds[rand.Intn(len(motds))]))
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.showTasks(ctx)
		c.showCommands()

		choice, ok := c.prompt("\nenter a command: ")
		if !ok {
			return c.in.Err()
		}
		c.logger.DebugContext(ctx, "command", "choice", choice)

		switch choice {
		case "add task":
			ok = c.addTask(ctx)
		case "add subtask":
			ok = c.addSubtask(ctx)
		case "delete task":
			ok = c.deleteTask(ctx)
		case "delete subtask":
			ok = c.deleteSubtask(ctx)
		case "exit":
			fmt.Fprintln(c.out, "come back soon to stay productive!")
			return nil
		default:
			c.fail("invalid command. please try again.")
		}
		if !ok {
			return c.in.Err()
		}

		if _, ok := c.prompt("\npress enter to continue..."); !ok {
			return c.in.Err()
		}
		c.clear()
	}
}

func (c *ConsoleController) showTasks(ctx context.Context) {
	fmt.Fprintln(c.out, "\ncurrent to-do list:")
	fmt.Fprint(c.out, views.RenderTable(c.Service.All(ctx)))
}

func (c *ConsoleController) showCommands() {
	fmt.Fprintln(c.out, "\ncommands:")
	fmt.Fprintln(c.out, commandTable())
}

// commandTable renders the command help as a bordered grid with a header row.
func commandTable() string {
	rows := make([][]string, len(commands))
	for i, cmd := range commands {
		rows[i] = []string{cmd[0], cmd[1]}
	}
	return table.New().
		Border(lipgloss.ASCIIBorder()).
		BorderRow(true).
		Headers("Command", "Action").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerCellStyle
			}
			return cellStyle
		}).
		String()
}

func (c *ConsoleController) addTask(ctx context.Context) bool {
	name, ok := c.prompt("enter the task name: ")
	if !ok {
		return false
	}
	dueDate, ok := c.prompt("enter the due date (yyyy-mm-dd): ")
	if !ok {
		return false
	}
	if _, err := c.Service.AddTask(ctx, name, dueDate); err != nil {
		c.report(ctx, err)
		return true
	}
	fmt.Fprintf(c.out, "task '%s' added.\n", name)
	return true
}

func (c *ConsoleController) addSubtask(ctx context.Context) bool {
	taskID, ok := c.prompt("enter the main task id to add a subtask: ")
	if !ok {
		return false
	}
	task, err := c.Service.Get(ctx, taskID)
	if err != nil {
		c.report(ctx, err)
		return true
	}
	name, ok := c.prompt("enter the subtask name: ")
	if !ok {
		return false
	}
	if _, err := c.Service.AddSubtask(ctx, taskID, name); err != nil {
		c.report(ctx, err)
		return true
	}
	fmt.Fprintf(c.out, "subtask '%s' added to task '%s'.\n", name, task.DisplayName())
	return true
}

func (c *ConsoleController) deleteTask(ctx context.Context) bool {
	taskID, ok := c.prompt("enter the task id to delete: ")
	if !ok {
		return false
	}
	if err := c.Service.DeleteTask(ctx, taskID); err != nil {
		c.report(ctx, err)
		return true
	}
	fmt.Fprintf(c.out, "task '%s' and its subtasks deleted.\n", taskID)
	return true
}

func (c *ConsoleController) deleteSubtask(ctx context.Context) bool {
	taskID, ok := c.prompt("enter the main task id: ")
	if !ok {
		return false
	}
	if _, err := c.Service.Get(ctx, taskID); err != nil {
		c.report(ctx, err)
		return true
	}
	subtaskID, ok := c.prompt("enter the subtask id to delete: ")
	if !ok {
		return false
	}
	res, err := c.Service.DeleteSubtask(ctx, taskID, subtaskID)
	if err != nil {
		c.report(ctx, err)
		return true
	}
	fmt.Fprintf(c.out, "subtask '%s' deleted.\n", subtaskID)
	if res.ParentDeleted {
		fmt.Fprintf(c.out, "all subtasks deleted. main task '%s' also marked as deleted.\n", taskID)
	}
	return true
}

// prompt writes msg and reads one line. It returns false at end of input.
func (c *ConsoleController) prompt(msg string) (string, bool) {
	fmt.Fprint(c.out, msg)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimRight(c.in.Text(), "\r"), true
}

func (c *ConsoleController) report(ctx context.Context, err error) {
	c.logger.DebugContext(ctx, "command failed", "error", err)
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.fail("task id not found.")
	case errors.Is(err, services.ErrSubtaskNotFound):
		c.fail("subtask id not found.")
	default:
		c.fail(err.Error())
	}
}

func (c *ConsoleController) fail(msg string) {
	fmt.Fprintln(c.out, errorStyle.Render(msg))
}

func (c *ConsoleController) clear() {
	if c.opts.Clear {
		fmt.Fprint(c.out, clearScreen)
	}
}
