package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "travelbooking/internal/config"
	router "travelbooking/internal/http"
	h "travelbooking/internal/http/handlers"
	"travelbooking/internal/repositories"
	"travelbooking/internal/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	utils.ConfigureLogger(env.LogLevel, env.LogFormat)
	log := utils.Logger()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	intconfig.ConnectDB(env.DBDSN)
	defer intconfig.CloseDB()

	ctx, cancelSchema := context.WithTimeout(context.Background(), 15*time.Second)
	if err := (repositories.BookingRepository{}).EnsureSchema(ctx); err != nil {
		log.Fatalf("failed to prepare bookings table: %v", err)
	}
	if err := (repositories.UserRepository{}).EnsureSchema(ctx); err != nil {
		log.Fatalf("failed to prepare users table: %v", err)
	}
	cancelSchema()

	h.Configure(h.DepsFromEnv(env))

	// Router (Gin engine)
	r := router.NewRouter(env)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      env.SettleTimeout + 20*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Infof("server running at http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Info("server stopped cleanly")
}
