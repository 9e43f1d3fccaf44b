package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"godsendjoseph.dev/package-uploader/internal/env"
	"godsendjoseph.dev/package-uploader/internal/notification"
	"godsendjoseph.dev/package-uploader/internal/storage"
)

const version = "2.0.0"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading from environment")
	}

	cfg := loadConfig()

	// Logger
	logger := zap.Must(newLogger(cfg.env)).Sugar()
	defer logger.Sync()

	if err := cfg.storage.Validate(); err != nil {
		logger.Fatalw("invalid configuration", "error", err)
	}

	connect, err := storage.ConnectorFor(cfg.storage.Driver)
	if err != nil {
		logger.Fatalw("invalid configuration", "error", err)
	}

	// The bucket connection is opened lazily on the first upload.
	uploader := storage.NewUploader(cfg.storage, connect)
	logger.Infow("storage client configured",
		"driver", cfg.storage.Driver,
		"endpoint", cfg.storage.Endpoint,
		"bucket", cfg.storage.BucketName,
		"prefix", cfg.storage.Prefix,
		"max_upload_size", cfg.storage.MaxUploadSize,
	)

	slackNotifier := notification.NewSlackNotifier(
		cfg.slack.webhookURL,
		cfg.slack.channel,
		cfg.slack.username,
		cfg.slack.iconEmoji,
		cfg.slack.enabled,
	)

	app := &application{
		config:        cfg,
		logger:        logger,
		uploader:      uploader,
		slackNotifier: slackNotifier,
	}

	mux := app.mount()

	if err := app.run(mux); err != nil {
		logger.Fatal(err)
	}
}

func loadConfig() config {
	return config{
		addr:    env.GetString("ADDR", ":8000"),
		env:     env.GetString("ENV", "development"),
		appName: env.GetString("APP_NAME", "Android Package Uploader API"),
		storage: storage.Config{
			Driver:          env.GetString("STORAGE_DRIVER", storage.DriverS3),
			AccessKeyID:     env.GetString("OSS_ACCESS_KEY_ID", ""),
			AccessKeySecret: env.GetString("OSS_ACCESS_KEY_SECRET", ""),
			Endpoint:        env.GetString("OSS_ENDPOINT", "https://oss-ap-southeast-1.aliyuncs.com"),
			BucketName:      env.GetString("OSS_BUCKET_NAME", "macaron-system"),
			Region:          env.GetString("OSS_REGION", "ap-southeast-1"),
			Prefix:          env.GetString("OSS_PREFIX", "android-packages"),
			ForcePathStyle:  env.GetBool("OSS_FORCE_PATH_STYLE", false),
			MaxUploadSize:   env.GetInt64("MAX_UPLOAD_SIZE", storage.DefaultMaxUploadSize),
			PublicHost:      env.GetString("PUBLIC_DOWNLOAD_HOST", "download.macaron.chat"),
			AABContentType:  env.GetString("AAB_CONTENT_TYPE", "application/octet-stream"),
		},
		slack: slackConfig{
			webhookURL: env.GetString("SLACK_WEBHOOK_URL", ""),
			channel:    env.GetString("SLACK_CHANNEL", "#android-builds"),
			username:   env.GetString("SLACK_USERNAME", "Package Uploader"),
			iconEmoji:  env.GetString("SLACK_ICON_EMOJI", ":package:"),
			enabled:    env.GetBool("SLACK_ENABLED", false),
		},
	}
}

func newLogger(environment string) (*zap.Logger, error) {
	if environment == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
