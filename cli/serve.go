package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"olysched/server"
)

func serveCmd() *cobra.Command {
	var addr string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the digest over HTTP, refreshing it periodically",
		RunE: func(_ *cobra.Command, _ []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			if addr != "" {
				e.cfg.Addr = addr
			}

			srv := server.New(e.cfg, e.client, e.builder, e.loc)

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-sigChan
				fmt.Println("Shutting down...")
				srv.Stop()
				os.Exit(0)
			}()

			return srv.Run()
		},
	}

	c.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")
	return c
}
