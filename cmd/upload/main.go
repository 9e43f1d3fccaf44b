package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"godsendjoseph.dev/package-uploader/internal/env"
	"godsendjoseph.dev/package-uploader/internal/storage"
)

func main() {
	_ = godotenv.Load()

	if err := run(context.Background(), os.Args[1:], os.Stdout, storage.ConnectorFor); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer, connectorFor func(string) (storage.Connector, error)) error {
	cfg := storage.Config{
		Driver:          env.GetString("STORAGE_DRIVER", storage.DriverS3),
		AccessKeyID:     os.Getenv("OSS_ACCESS_KEY_ID"),
		AccessKeySecret: os.Getenv("OSS_ACCESS_KEY_SECRET"),
		Endpoint:        env.GetString("OSS_ENDPOINT", "https://oss-ap-southeast-1.aliyuncs.com"),
		BucketName:      env.GetString("OSS_BUCKET_NAME", "macaron-system"),
		Region:          env.GetString("OSS_REGION", "ap-southeast-1"),
		Prefix:          env.GetString("OSS_PREFIX", "android-packages"),
		ForcePathStyle:  env.GetBool("OSS_FORCE_PATH_STYLE", false),
		MaxUploadSize:   env.GetInt64("MAX_UPLOAD_SIZE", storage.DefaultMaxUploadSize),
		PublicHost:      env.GetString("PUBLIC_DOWNLOAD_HOST", "download.macaron.chat"),
		AABContentType:  env.GetString("AAB_CONTENT_TYPE", "application/octet-stream"),
	}

	var customName string

	fs := flag.NewFlagSet("upload", flag.ContinueOnError)
	fs.SetOutput(out)
	stringFlag(fs, &cfg.AccessKeyID, "k", "access-key-id", "OSS access key ID (default $OSS_ACCESS_KEY_ID)")
	stringFlag(fs, &cfg.AccessKeySecret, "s", "access-key-secret", "OSS access key secret (default $OSS_ACCESS_KEY_SECRET)")
	stringFlag(fs, &customName, "n", "name", "custom object name; the package extension is appended")
	stringFlag(fs, &cfg.BucketName, "b", "bucket", "bucket name")
	stringFlag(fs, &cfg.Prefix, "p", "prefix", "object key prefix")
	stringFlag(fs, &cfg.Endpoint, "e", "endpoint", "store endpoint URL")
	stringFlag(fs, &cfg.Region, "r", "region", "store region")
	fs.StringVar(&cfg.Driver, "driver", cfg.Driver, "storage driver (s3 or minio)")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Upload an Android package (.apk or .aab) to object storage.\n\n")
		fmt.Fprintf(fs.Output(), "Usage:\n  upload [flags] <package-file>\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("exactly one package file is required")
	}

	if cfg.AccessKeyID == "" || cfg.AccessKeySecret == "" {
		return errors.New("OSS credentials not provided: use -k/-s or set OSS_ACCESS_KEY_ID and OSS_ACCESS_KEY_SECRET")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	path := fs.Arg(0)
	filename := filepath.Base(path)
	if _, err := storage.ParseExtension(filename); err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read package: %w", err)
	}
	if err := storage.CheckSize(int64(len(content)), cfg.MaxUploadSize); err != nil {
		return err
	}

	connect, err := connectorFor(cfg.Driver)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Uploading %s (%.2f MB) to bucket %s\n", filename, storage.MiB(int64(len(content))), cfg.BucketName)

	result, err := storage.NewUploader(cfg, connect).UploadFile(ctx, content, filename, customName)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Upload successful\n  Object: %s\n  Type:   %s\n  Size:   %.2f MB\n  URL:    %s\n",
		result.Key, result.FileType, result.SizeMB, result.URL)

	return nil
}

// stringFlag registers a short and a long name for the same value.
func stringFlag(fs *flag.FlagSet, p *string, short, long, usage string) {
	fs.StringVar(p, long, *p, usage)
	fs.StringVar(p, short, *p, "shorthand for -"+long)
}
