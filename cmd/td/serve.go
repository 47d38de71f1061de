package main

import (
	"log"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/taskdesk/taskdesk/internal/config"
	"github.com/taskdesk/taskdesk/task"
	"github.com/taskdesk/taskdesk/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the local web dashboard",
	RunE:  runServe,
}

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	addr := serveAddr
	if addr == "" {
		addr = cfg.Server.Addr
	}

	backend, err := cfg.OpenStorage()
	if err != nil {
		return err
	}
	defer backend.Close()

	logger := log.New(os.Stderr, "taskdesk: ", log.LstdFlags)
	store := task.Open(backend, task.Options{})
	handler := web.NewHandler(web.Options{Store: store, Logger: logger})

	logger.Printf("serving on http://%s", addr)
	return http.ListenAndServe(addr, handler)
}
