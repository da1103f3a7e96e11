package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/figgrid/internal/api"
)

// defaultAddr is the listen address of the HTTP API.
const defaultAddr = "127.0.0.1:8080"

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout HTTP API",
		Long: `Serve the layout HTTP API.

Routes:
  POST /v1/layout          compute a layout from a JSON request
  GET  /v1/presets         list presets
  GET  /v1/presets/{name}  compute a preset
  GET  /healthz            liveness check`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")

	return cmd
}

// runServe serves until ctx is canceled, then shuts down gracefully.
func (c *CLI) runServe(ctx context.Context, addr string) error {
	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}

	logger := loggerFromContext(ctx)
	srv := api.New(runner, logger).HTTPServer(addr)
	prog := newProgress(logger)

	printSuccess("Serving layout API")
	printKeyValue("URL", StyleLink.Render("http://"+addr))
	printNewline()
	logger.Info("listening", "addr", addr, "presets", runner.Presets.Len())

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		printError("Server failed: %v", err)
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	prog.done("server stopped", "addr", addr)
	return nil
}
