package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Bucket talks to Aliyun OSS (or any S3-compatible store) through the AWS SDK.
type S3Bucket struct {
	client     *s3.Client
	bucketName string
}

func NewS3Bucket(ctx context.Context, cfg Config) (*S3Bucket, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.AccessKeySecret, "")),
		config.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.EndpointURL())
		o.UsePathStyle = cfg.ForcePathStyle
		o.Retryer = aws.NopRetryer{}
		// OSS rejects the SDK's default trailing checksums.
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
		o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
	})

	return &S3Bucket{
		client:     client,
		bucketName: cfg.BucketName,
	}, nil
}

func ConnectS3(ctx context.Context, cfg Config) (Bucket, error) {
	bucket, err := NewS3Bucket(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return bucket, nil
}

func (b *S3Bucket) PutObject(ctx context.Context, key string, body []byte, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(b.bucketName),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	}

	_, err := b.client.PutObject(ctx, input)
	if err != nil {
		var respErr *awshttp.ResponseError
		if errors.As(err, &respErr) {
			return &StatusError{StatusCode: respErr.HTTPStatusCode(), Err: err}
		}
		return fmt.Errorf("put object %q: %w", key, err)
	}

	return nil
}
