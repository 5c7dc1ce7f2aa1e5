package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"editlens.dev/editlens/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interactive playground",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := server.Run(serveAddr)
		if err != nil {
			return err
		}
		defer s.Shutdown(context.Background())
		log.Printf("Now serving at http://%s, press Ctrl-C to shut down", serveAddr)

		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)

		select {
		case err := <-s.Error():
			return fmt.Errorf("serving: %v", err)
		case <-sigint:
			fmt.Print("\r") // remove Ctrl-C output characters
			log.Printf("Received Ctrl-C, shutting down")
			return nil
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "localhost:8080", "address to listen on")
}
