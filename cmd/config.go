package main

import "time"

type Config struct {
	BotToken    string `env:"BOT_TOKEN,required=true"`
	ChatAPIBase string `env:"CHAT_API_BASE,default=https://api.telegram.org"`

	// drive or s3
	StorageBackend string `env:"STORAGE_BACKEND,default=drive"`
	DestDir        string `env:"DEST_DIR,default=/"`

	DriveAPIBase string `env:"DRIVE_API_BASE"`

	S3Bucket    string `env:"S3_BUCKET"`
	S3Region    string `env:"S3_REGION"`
	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3KeyID     string `env:"S3_KEY_ID"`
	S3KeySecret string `env:"S3_KEY_SECRET"`

	AutoDelete        bool          `env:"AUTO_DELETE,default=false"`
	MaxConcurrentJobs int           `env:"MAX_CONCURRENT_JOBS,default=4"`
	PollTimeout       time.Duration `env:"POLL_TIMEOUT,default=50s"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,default=5s"`
	LogLevel          string        `env:"LOG_LEVEL,default=info"`
}
