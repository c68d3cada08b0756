// Package web provides the plumbing for inboxproxy's RESTful API.
package web

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/inboxproxy/inboxproxy/pkg/config"
	"github.com/rs/zerolog/log"
)

var (
	// Router is shared with the rest package. It sends incoming requests to
	// the correct handler function.
	Router = mux.NewRouter()

	rootConfig     *config.Root
	server         *http.Server
	listener       net.Listener
	globalShutdown chan bool
)

// Initialize sets up things for unit tests or the Start() method.
func Initialize(conf *config.Root, shutdownChan chan bool) {
	rootConfig = conf
	globalShutdown = shutdownChan

	Router.NotFoundHandler = noMatchHandler(
		http.StatusNotFound, "No route matches URI path")
	Router.MethodNotAllowedHandler = noMatchHandler(
		http.StatusMethodNotAllowed, "Method not allowed for URI path")
}

// Start begins listening for HTTP requests.
func Start(ctx context.Context) {
	server = &http.Server{
		Addr:        rootConfig.Web.Addr,
		Handler:     requestLoggingWrapper(Router),
		ReadTimeout: 60 * time.Second,
		// No write timeout: wait_for_message legitimately blocks for its
		// full poll timeout before the first response byte is written.
		WriteTimeout: 0,
	}

	// We don't use ListenAndServe because it lacks a way to close the listener.
	log.Info().Str("module", "web").Str("addr", rootConfig.Web.Addr).Msg("HTTP listening")
	var err error
	listener, err = net.Listen("tcp", rootConfig.Web.Addr)
	if err != nil {
		log.Error().Str("module", "web").Err(err).Msg("HTTP failed to start TCP listener")
		emergencyShutdown()
		return
	}

	// Listener go routine.
	go serve(ctx)

	// Wait for shutdown.
	<-ctx.Done()
	log.Debug().Str("module", "web").Msg("HTTP server shutting down on request")

	// Closing the listener will cause the serve() go routine to exit.
	if err := listener.Close(); err != nil {
		log.Error().Str("module", "web").Err(err).Msg("Failed to close HTTP listener")
	}
}

// serve begins serving HTTP requests.
func serve(ctx context.Context) {
	// server.Serve blocks until we close the listener.
	err := server.Serve(listener)

	select {
	case <-ctx.Done():
		// Nop.
	default:
		log.Error().Str("module", "web").Err(err).Msg("HTTP server failed")
		emergencyShutdown()
	}
}

func emergencyShutdown() {
	select {
	case <-globalShutdown:
	default:
		close(globalShutdown)
	}
}

// ServiceName is used in the root status payload.
func ServiceName() string {
	if config.Version == "" {
		return "inboxproxy"
	}
	return fmt.Sprintf("inboxproxy %s", config.Version)
}
