package artifact

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockS3 struct{ mock.Mock }

func (m *mockS3) PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*s3.PutObjectOutput)
	return out, args.Error(1)
}

func TestFileSinkWritesAtomically(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "out", "resume.pdf")
	require.NoError(t, os.MkdirAll(filepath.Dir(dest), 0o755))
	require.NoError(t, os.WriteFile(dest, []byte("old"), 0o644))

	loc, err := NewFileSink(dest).Write(context.Background(), []byte("%PDF-1.4 new"), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, dest, loc)

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 new", string(got))

	entries, err := os.ReadDir(filepath.Dir(dest))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}

func TestFileSinkCreatesDirectories(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "a", "b", "resume.pdf")
	_, err := NewFileSink(dest).Write(context.Background(), []byte("x"), "")
	require.NoError(t, err)
	assert.FileExists(t, dest)
}

func TestFileSinkCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	dest := filepath.Join(t.TempDir(), "resume.pdf")

	_, err := NewFileSink(dest).Write(ctx, []byte("x"), "")
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, dest)
}

func TestS3SinkPutsObject(t *testing.T) {
	ctx := context.Background()
	client := &mockS3{}
	client.On("PutObject", ctx, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		body, _ := io.ReadAll(in.Body)
		if seeker, ok := in.Body.(io.Seeker); ok {
			_, _ = seeker.Seek(0, io.SeekStart)
		}
		return aws.ToString(in.Bucket) == "cv-bucket" &&
			aws.ToString(in.Key) == "jane/resume.pdf" &&
			aws.ToString(in.ContentType) == "application/pdf" &&
			string(body) == "%PDF"
	})).Return(&s3.PutObjectOutput{}, nil).Once()

	loc, err := NewS3Sink(client, "cv-bucket", "jane/resume.pdf").Write(ctx, []byte("%PDF"), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "s3://cv-bucket/jane/resume.pdf", loc)
	client.AssertExpectations(t)
}

func TestS3SinkError(t *testing.T) {
	client := &mockS3{}
	client.On("PutObject", mock.Anything, mock.Anything).Return(nil, errors.New("access denied"))

	_, err := NewS3Sink(client, "b", "k.pdf").Write(context.Background(), []byte("x"), "")
	assert.ErrorContains(t, err, "access denied")
	assert.ErrorContains(t, err, "s3://b/k.pdf")
}

func TestParseS3(t *testing.T) {
	tests := []struct {
		dest        string
		bucket, key string
		ok          bool
	}{
		{"s3://bucket/resume.pdf", "bucket", "resume.pdf", true},
		{"s3://bucket/a/b/resume.pdf", "bucket", "a/b/resume.pdf", true},
		{"s3://bucket", "", "", false},
		{"s3://bucket/", "", "", false},
		{"s3:///key.pdf", "", "", false},
		{"resume.pdf", "", "", false},
		{"/tmp/s3://x", "", "", false},
	}
	for _, tt := range tests {
		bucket, key, ok := parseS3(tt.dest)
		assert.Equal(t, tt.ok, ok, tt.dest)
		assert.Equal(t, tt.bucket, bucket, tt.dest)
		assert.Equal(t, tt.key, key, tt.dest)
	}
}

func TestNewSinkLocalAndInvalid(t *testing.T) {
	s, err := NewSink(context.Background(), "resume.pdf")
	require.NoError(t, err)
	assert.IsType(t, &FileSink{}, s)

	_, err = NewSink(context.Background(), "s3://only-bucket")
	assert.Error(t, err)
}
