package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	hwpxgen "github.com/alnah/go-hwpxgen"
	"github.com/alnah/go-hwpxgen/internal/httpapi"
)

const shutdownTimeout = 10 * time.Second

// runServe starts the HTTP generation API.
func runServe(args []string) int {
	sf, err := parseServeFlags(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitUsage
	}

	logger := loggerFor(os.Stderr, sf.verbose, false)

	apiKey := sf.apiKey
	if apiKey == "" {
		apiKey = os.Getenv("HWPXGEN_API_KEY")
	}

	var opts []hwpxgen.Option
	if sf.template != "" {
		opts = append(opts, hwpxgen.WithTemplatePath(sf.template))
	}
	svc := hwpxgen.New(opts...)

	// Fail fast on a bad template instead of on the first request.
	if _, err := svc.GenerateBytes(context.Background(), &hwpxgen.Document{
		Title: "probe", Date: "probe", Department: "probe",
		Sections: []hwpxgen.Section{{Type: hwpxgen.SectionBody}},
	}); err != nil {
		logger.Error("template check failed", "err", err)
		return exitCodeFor(err)
	}

	server := &http.Server{
		Addr:              sf.addr,
		Handler:           httpapi.NewServer(svc, logger, apiKey),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", sf.addr, "auth", apiKey != "")
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			return ExitGeneral
		}
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("shutdown failed", "err", err)
			return ExitGeneral
		}
	}
	return ExitSuccess
}
