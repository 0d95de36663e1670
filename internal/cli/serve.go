package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/TWRT/form-integrations/internal/api"
	"github.com/TWRT/form-integrations/internal/logging"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the integration settings HTTP API",
		Long: `Run the integration settings HTTP API.

Endpoints:
  GET    /forms/{formId}/integrations/{provider}              Wizard status and settings
  DELETE /forms/{formId}/integrations/{provider}              Disconnect the form
  POST   /forms/{formId}/integrations/{provider}/steps/{step} Run a wizard step
  GET    /forms/{formId}/integrations/{provider}/lists        Refresh the list catalog
  PUT    /forms/{formId}/integrations/{provider}/account      Select the account
  POST   /providers/aweber/accounts                           Register an AWeber account
  GET    /providers/aweber/accounts                           List AWeber accounts
  DELETE /providers/aweber/accounts/{id}                      Delete an AWeber account
  GET    /providers/aweber/accounts/{id}/lists                Lists of one account
  GET    /metrics                                             Prometheus metrics
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, a)
		},
	}
}

func serve(ctx context.Context, a *app) error {
	server := &http.Server{
		Addr:              ":" + a.cfg.Port,
		Handler:           api.SetupRouter(a.services, a.logger, a.registry),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.WithFields(logging.Fields{"port": a.cfg.Port}).Info("Server listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
