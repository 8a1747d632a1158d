package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"strikethrough/app/models"
	"strikethrough/app/services"
	"strikethrough/app/views"

	"github.com/gorilla/mux"
)

// TaskController handles HTTP requests for tasks.
type TaskController struct {
	Service *services.TaskService
}

// NewTaskController creates a new TaskController.
func NewTaskController(service *services.TaskService) *TaskController {
	return &TaskController{Service: service}
}

type createTaskRequest struct {
	Name    string `json:"name"`
	DueDate string `json:"due_date"`
}

type createSubtaskRequest struct {
	Name string `json:"name"`
}

type deleteSubtaskResponse struct {
	TaskID        string `json:"task_id"`
	SubtaskID     string `json:"subtask_id"`
	ParentDeleted bool   `json:"parent_deleted"`
}

// GetTasks handles GET /tasks. Tasks are returned in display order.
func (c *TaskController) GetTasks(w http.ResponseWriter, r *http.Request) {
	tasks := c.Service.All(r.Context())
	views.SortTasks(tasks)
	writeJSON(w, http.StatusOK, tasks)
}

// GetTable handles GET /tasks/table.
func (c *TaskController) GetTable(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(views.RenderTable(c.Service.All(r.Context()))))
}

// CreateTask handles POST /tasks.
func (c *TaskController) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	id, err := c.Service.AddTask(r.Context(), req.Name, req.DueDate)
	if err != nil {
		writeError(w, err)
		return
	}
	task, err := c.Service.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

// GetTaskByID handles GET /tasks/{taskID}.
func (c *TaskController) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	task, err := c.Service.Get(r.Context(), mux.Vars(r)["taskID"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// DeleteTask handles DELETE /tasks/{taskID}.
func (c *TaskController) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteTask(r.Context(), mux.Vars(r)["taskID"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateSubtask handles POST /tasks/{taskID}/subtasks.
func (c *TaskController) CreateSubtask(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["taskID"]
	var req createSubtaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	id, err := c.Service.AddSubtask(r.Context(), taskID, req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, models.Subtask{ID: id, Name: req.Name})
}

// DeleteSubtask handles DELETE /tasks/{taskID}/subtasks/{subtaskID}.
func (c *TaskController) DeleteSubtask(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	res, err := c.Service.DeleteSubtask(r.Context(), vars["taskID"], vars["subtaskID"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, deleteSubtaskResponse{
		TaskID:        vars["taskID"],
		SubtaskID:     vars["subtaskID"],
		ParentDeleted: res.ParentDeleted,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound), errors.Is(err, services.ErrSubtaskNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
