package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"drive-relay/chat"
	"drive-relay/domain"
	"drive-relay/resolve"
	"drive-relay/runtime"
	"drive-relay/services"
	"drive-relay/storage"
	"drive-relay/transfer"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the listener lifecycle, and
// centralizes error reporting, so that defers execute before the process
// exits and the wiring stays testable.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Shared clients. Long-poll and chunk requests block for their
	// full duration; timeouts are delegated to the request contexts.
	httpClient := &http.Client{}
	chatClient := chat.NewBotClient(httpClient, config.ChatAPIBase, config.BotToken, config.PollTimeout, log)

	uploader, err := newUploader(ctx, config, log)
	if err != nil {
		return err
	}

	// 4. Pipeline wiring
	policy := domain.NewPolicy(config.AutoDelete)
	resolver := resolve.NewResolver(httpClient, log)
	orchestrator := transfer.NewOrchestrator(chatClient, uploader, resolver, httpClient, policy, config.DestDir, log)
	runner := runtime.NewRunner(orchestrator, config.MaxConcurrentJobs, log)

	guard := services.All(services.RequireGroup(), services.RequireLogin(chatClient))
	service := services.NewRelayService(chatClient, runner, guard, policy, log)

	// 5. Supervised listener
	sup := runtime.NewSupervisor(log, config.RestartInterval)
	sup.Add(runtime.NewListenerWorker(chatClient, service, log))

	log.Info("Starting relay", "backend", config.StorageBackend, "dest", config.DestDir)
	sup.Run(ctx)

	// Let in-flight jobs drain before returning.
	runner.Wait()
	return nil
}

func newUploader(ctx context.Context, config Config, log *slog.Logger) (storage.IUploader, error) {
	switch config.StorageBackend {
	case "s3":
		return storage.NewS3Uploader(ctx, storage.S3Config{
			Bucket:    config.S3Bucket,
			Region:    config.S3Region,
			Endpoint:  config.S3Endpoint,
			KeyID:     config.S3KeyID,
			KeySecret: config.S3KeySecret,
		}, log)
	case "drive":
		if config.DriveAPIBase == "" {
			return nil, fmt.Errorf("DRIVE_API_BASE is required for the drive backend")
		}
		return storage.NewDriveClient(&http.Client{}, config.DriveAPIBase, log), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", config.StorageBackend)
	}
}
