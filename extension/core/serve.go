// serve.go implements the "mdfiles serve" command for the web interface.
//
// Separated from extension.go because serve has unique lifecycle requirements.
// Unlike other commands that run and exit, serve blocks until interrupted,
// then drains in-flight requests before returning.
//
// Design: Operational logs (one line per request, startup, shutdown) go to
// stderr through slog. Changes made through the browser also land in the
// audit log, attributed to "http", so "mdfiles log" shows them alongside
// CLI changes.

package core

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jpl-au/mdfiles/cmd"
	"github.com/jpl-au/mdfiles/extension"
	"github.com/jpl-au/mdfiles/internal/log"
	"github.com/jpl-au/mdfiles/internal/web"
	"github.com/spf13/cobra"
)

func (e *Extension) newServeCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "serve",
		Short: "Start the web file browser",
		Long: `Serve the root directory over HTTP: browse folders, read rendered
markdown, search, upload, rename and delete.

  mdfiles serve                     # listen on server.addr (127.0.0.1:8080)
  mdfiles serve --addr :9000        # listen on all interfaces, port 9000
  mdfiles serve --root ~/notes      # serve another directory

Stop with Ctrl-C; in-flight requests are given a few seconds to finish.`,
		Args: cobra.NoArgs,
		RunE: e.runServe,
	}
	c.Flags().String(extension.FlagAddr, "", "Listen address (default server.addr)")
	return c
}

func (e *Extension) runServe(c *cobra.Command, _ []string) error {
	addr, _ := c.Flags().GetString(extension.FlagAddr)
	if addr == "" {
		addr = e.ctx.Config().Addr()
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	srv, err := web.New(e.ctx.Service(), web.Options{
		Logger:  logger,
		MaxBody: e.ctx.Config().MaxContent() + 1024,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = srv.ListenAndServe(ctx, addr)
	log.Event("core:serve", "serve").Author(cmd.Author()).Detail("addr", addr).Write(err)
	if err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
