package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"rollcall-roster-go/config"
	"rollcall-roster-go/db"
	"rollcall-roster-go/handlers"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// .env 文件是可选的
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("warning: failed to load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if err := run(ctx, cfg, os.Stdout); err != nil {
		log.Fatalf("roster error: %v", err)
	}
}

// run builds the roster, prints it to out and, if configured, serves the HTTP API until ctx is done
func run(ctx context.Context, cfg *config.Config, out io.Writer) error {
	roster := db.NewRoster()
	if cfg.Seed {
		db.Seed(roster)
	}

	service := db.NewRosterService(roster)
	if cfg.ImportFile != "" {
		importFile(service, cfg.ImportFile)
	}

	// 输出所有学生
	if _, err := io.WriteString(out, "All students:\n"); err != nil {
		return err
	}
	if err := db.WriteAll(out, roster); err != nil {
		return err
	}

	if !cfg.ServeHTTP() {
		return nil
	}

	router := gin.Default()
	handlers.NewAPIHandler(service).RegisterRoutes(router)
	return startServer(ctx, cfg.HTTPAddr, router)
}

// importFile loads an .xlsx roster; failures are logged and never fatal
func importFile(service *db.RosterService, path string) {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("warning: cannot open import file %s: %v", path, err)
		return
	}
	defer f.Close()

	count, err := service.ImportStudentsFromExcel(f)
	if err != nil {
		log.Printf("warning: import from %s incomplete (%d added): %v", path, count, err)
		return
	}
	log.Printf("Imported %d students from %s", count, path)
}

func startServer(ctx context.Context, addr string, router http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Starting server on %s", addr)
	return runServer(ctx, srv)
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
