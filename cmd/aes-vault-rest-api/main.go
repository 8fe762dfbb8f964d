// cmd/aes-vault-rest-api/main.go
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

	v1 "github.com/MGTheTrain/aes-vault/internal/api/rest/v1"
	"github.com/MGTheTrain/aes-vault/internal/app"
	"github.com/MGTheTrain/aes-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/aes-vault/internal/domain/rijndael"
	"github.com/MGTheTrain/aes-vault/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/aes-vault/internal/pkg/config"
	"github.com/MGTheTrain/aes-vault/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	restConfig, err := loadConfig()
	if err != nil {
		return err
	}

	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	cipherService, err := initializeCipherService(&restConfig.Cipher, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	return startServerWithGracefulShutdown(restConfig, cipherService, log)
}

// loadConfig reads the file named by CONFIG_PATH, falling back to the sample config.
func loadConfig() (*config.RestConfig, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	return restConfig, nil
}

// cipherOptions turns settings into cipher options. Zero workers keeps the per-CPU default.
func cipherOptions(settings *config.CipherSettings) []rijndael.Option {
	opts := []rijndael.Option{rijndael.WithParallelThreshold(settings.ParallelThreshold)}
	if settings.Workers > 0 {
		opts = append(opts, rijndael.WithWorkers(settings.Workers))
	}
	return opts
}

func initializeCipherService(settings *config.CipherSettings, log logger.Logger) (cryptoalg.CipherService, error) {
	aesProcessor, err := cryptography.NewAESProcessor(log, cipherOptions(settings)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES processor: %w", err)
	}

	cipherService, err := app.NewCipherService(aesProcessor, log, app.WithDefaultKeySize(settings.DefaultKeySize))
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher service: %w", err)
	}

	log.Info("Cipher service initialized successfully")
	return cipherService, nil
}

func newRouter(cipherService cryptoalg.CipherService, log logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), v1.RequestLogger(log))

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", v1.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Type", v1.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	v1.SetupRoutes(r, cipherService)
	return r
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, cipherService cryptoalg.CipherService, log logger.Logger) error {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(cipherService, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
