package commands

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	buylog "github.com/cleared-dev/buy/internal/log"
	"github.com/cleared-dev/buy/internal/web"
)

func newServeCommand(opts *globalOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a point-and-click entry page",
		Long: `serve starts a local web page with an amount field and one button per
category. Each click appends one entry. Stop with Ctrl-C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from settings, 127.0.0.1:8417)")

	return cmd
}

func runServe(ctx context.Context, opts *globalOptions, addr string) error {
	app, err := startup(opts)
	if err != nil {
		return err
	}
	defer app.close()

	if addr == "" {
		addr = app.cfg.UI.Addr
	}

	handler, err := web.NewHandler(app.rec, opts.logger)
	if err != nil {
		return fmt.Errorf("starting ui server: %w", err)
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("starting ui server: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := buylog.WithComponent(opts.logger, buylog.ComponentCLI)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return web.Serve(gctx, ln, handler.Router(), opts.logger)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", buylog.FieldLedger, app.cfg.LedgerPath)
		return nil
	})
	return g.Wait()
}
