// Package web exposes the intervention service over HTTP as a JSON API.
// The browser extension and desktop tracker are the intended clients.
package web

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/adaptifocus/adaptifocus/internal/focus"
)

// NewServer creates and configures the HTTP server for the API.
func NewServer(svc *focus.Service, version, bind string, port int) *http.Server {
	h := &Handlers{svc: svc, version: version}

	mux := http.NewServeMux()

	mux.HandleFunc("POST /classify", h.HandleClassify)
	mux.HandleFunc("POST /interventions/check", h.HandleCheck)
	mux.HandleFunc("POST /interventions/{id}/response", h.HandleResponse)
	mux.HandleFunc("POST /events", h.HandleIngest)
	mux.HandleFunc("GET /events/today/summary", h.HandleSummary)
	mux.HandleFunc("POST /sessions", h.HandleStartSession)
	mux.HandleFunc("POST /sessions/{id}/end", h.HandleEndSession)
	mux.HandleFunc("GET /healthz", h.HandleHealth)

	handler := securityHeaders(mux)

	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", bind, port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// securityHeaders adds security-related HTTP headers to all responses.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		next.ServeHTTP(w, r)
	})
}

// Run starts the HTTP server and handles graceful shutdown on SIGINT/SIGTERM.
func Run(srv *http.Server) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	log.Printf("adaptifocus API listening at http://%s", srv.Addr)

	if strings.Contains(srv.Addr, "0.0.0.0") || strings.Contains(srv.Addr, "::") {
		log.Printf("WARNING: Server is binding to all interfaces and may be accessible from the network")
	}

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
