// Package artifact writes finished documents to their destination: a local
// path or an S3 object.
package artifact

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Sink stores one document and reports where it went.
type Sink interface {
	Write(ctx context.Context, data []byte, contentType string) (string, error)
}

// NewSink picks the sink for dest. "s3://bucket/key" uploads to S3 using the
// default AWS credential chain; anything else is a local file path.
func NewSink(ctx context.Context, dest string) (Sink, error) {
	if bucket, key, ok := parseS3(dest); ok {
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		return NewS3Sink(s3.NewFromConfig(cfg), bucket, key), nil
	}
	if strings.HasPrefix(dest, "s3://") {
		return nil, fmt.Errorf("s3 destination %q needs a bucket and a key", dest)
	}
	return NewFileSink(dest), nil
}

func parseS3(dest string) (bucket, key string, ok bool) {
	rest, found := strings.CutPrefix(dest, "s3://")
	if !found {
		return "", "", false
	}
	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" || key == "" || strings.HasSuffix(key, "/") {
		return "", "", false
	}
	return bucket, key, true
}

// FileSink writes to a local path. Data goes to a temporary file in the same
// directory first, so the destination never holds a partial document.
type FileSink struct {
	path string
}

func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

func (s *FileSink) Write(ctx context.Context, data []byte, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return "", err
	}
	return s.path, nil
}

type putObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Sink uploads to a fixed bucket and key.
type S3Sink struct {
	client putObjectAPI
	bucket string
	key    string
}

func NewS3Sink(client putObjectAPI, bucket, key string) *S3Sink {
	return &S3Sink{client: client, bucket: bucket, key: key}
}

func (s *S3Sink) Write(ctx context.Context, data []byte, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("put s3://%s/%s: %w", s.bucket, s.key, err)
	}
	return "s3://" + s.bucket + "/" + s.key, nil
}
