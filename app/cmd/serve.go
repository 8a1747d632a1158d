package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"strikethrough/app/controllers"
	"strikethrough/app/routes"
	"strikethrough/app/services"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

func (rt *runtime) newServeCommand() *cobra.Command {
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the to-do list over HTTP",
		Long:  "Serve the to-do list over HTTP. The list lives in memory and is lost when the server stops.",
		RunE:  rt.runServe,
	}
	serve.Flags().StringVar(&rt.serveAddr, "addr", "", "listen address (overrides server.addr)")
	return serve
}

// NewRouter wires the HTTP dispatcher around service.
func NewRouter(service *services.TaskService, logger *slog.Logger) *mux.Router {
	router := mux.NewRouter()
	routes.RegisterRoutes(router, controllers.NewTaskController(service), logger)
	return router
}

func (rt *runtime) runServe(cmd *cobra.Command, _ []string) error {
	logger := rt.logger
	addr := rt.cfg.Server.Addr
	if rt.serveAddr != "" {
		addr = rt.serveAddr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(services.NewTaskService(logger), logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Info("server shutting down")
	return srv.Shutdown(shutdownCtx)
}
