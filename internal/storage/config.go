package storage

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	DriverS3    = "s3"
	DriverMinio = "minio"

	DefaultMaxUploadSize = 250 * 1024 * 1024

	apkContentType     = "application/vnd.android.package-archive"
	defaultContentType = "application/octet-stream"
)

// Config is loaded once at startup and never mutated afterwards.
type Config struct {
	Driver          string `validate:"required,oneof=s3 minio"`
	AccessKeyID     string `validate:"required"`
	AccessKeySecret string `validate:"required"`
	Endpoint        string `validate:"required"`
	BucketName      string `validate:"required"`
	Region          string `validate:"required"`
	Prefix          string
	ForcePathStyle  bool
	MaxUploadSize   int64  `validate:"gt=0"`
	PublicHost      string `validate:"required"`
	AABContentType  string `validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid storage config: %w", err)
	}
	if endpoint, err := url.Parse(c.EndpointURL()); err != nil || endpoint.Host == "" {
		return fmt.Errorf("invalid storage config: Endpoint must be a host or URL, got: %q", c.Endpoint)
	}
	return nil
}

// EndpointURL returns Endpoint with https:// added when no scheme is given,
// so "oss-ap-southeast-1.aliyuncs.com" talks TLS like the full URL would.
func (c Config) EndpointURL() string {
	if strings.Contains(c.Endpoint, "://") {
		return c.Endpoint
	}
	return "https://" + c.Endpoint
}

// ContentType picks the Content-Type header stored with the object.
func (c Config) ContentType(ext Extension) string {
	switch ext {
	case ExtensionAPK:
		return apkContentType
	case ExtensionAAB:
		return c.AABContentType
	default:
		return defaultContentType
	}
}

// PublicURL is the CDN download address of key, not the store's own endpoint.
func (c Config) PublicURL(key string) string {
	return fmt.Sprintf("https://%s/%s", c.PublicHost, key)
}
