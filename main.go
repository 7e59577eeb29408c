package main

import (
	"context"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cardiodash/internal/config"
	"cardiodash/internal/container"
	"cardiodash/internal/errors"
	"cardiodash/ui"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	gin.SetMode(appConfig.Server.GinMode)

	appContainer, err := container.New(appConfig)
	if err != nil {
		log.Fatalf("Failed to create application container: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := appContainer.Preload(ctx); err != nil {
		if errors.IsDataUnavailable(err) || errors.IsDataFormatError(err) {
			log.Fatalf("Dataset could not be loaded: %v", err)
		}
		log.Fatalf("Failed to initialize dataset: %v", err)
	}

	server, err := ui.NewServer(ui.Assets, appContainer.Service, appContainer.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	httpServer := &http.Server{
		Addr:              ":" + appConfig.Server.Port,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Starting dashboard on port %s", appConfig.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	// Start pprof server for performance profiling
	if appConfig.Profiling.Enabled {
		pprofServer := &http.Server{Addr: ":" + appConfig.Profiling.Port, ReadHeaderTimeout: 10 * time.Second}
		g.Go(func() error {
			log.Printf("Performance profiling server starting on :%s", appConfig.Profiling.Port)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("pprof server failed: %v", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			return pprofServer.Close()
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
	log.Println("Dashboard stopped")
}
