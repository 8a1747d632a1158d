package routes

import (
	"log/slog"
	"net/http"
	"time"

	"strikethrough/app/controllers"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// RequestIDHeader carries the per-request ID on responses.
const RequestIDHeader = "X-Request-ID"

// RegisterRoutes sets up all routes for the application.
func RegisterRoutes(router *mux.Router, taskController *controllers.TaskController, logger *slog.Logger) {
	router.Use(requestLogger(logger))

	router.HandleFunc("/tasks", taskController.GetTasks).Methods(http.MethodGet)
	router.HandleFunc("/tasks", taskController.CreateTask).Methods(http.MethodPost)
	router.HandleFunc("/tasks/table", taskController.GetTable).Methods(http.MethodGet)
	router.HandleFunc("/tasks/{taskID}", taskController.GetTaskByID).Methods(http.MethodGet)
	router.HandleFunc("/tasks/{taskID}", taskController.DeleteTask).Methods(http.MethodDelete)
	router.HandleFunc("/tasks/{taskID}/subtasks", taskController.CreateSubtask).Methods(http.MethodPost)
	router.HandleFunc("/tasks/{taskID}/subtasks/{subtaskID}", taskController.DeleteSubtask).Methods(http.MethodDelete)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func requestLogger(logger *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}
			w.Header().Set(RequestIDHeader, id)

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(rec, r)

			logger.InfoContext(r.Context(), "request",
				"request_id", id,
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start))
		})
	}
}
