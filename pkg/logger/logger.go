package logger

import (
	"context"
	"fitconsole/pkg/config"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Interface is the logging surface the rest of the code depends on.
type Interface interface {
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// Logger that we will use to save our logs.
type NewLogger struct {
	mu       sync.Mutex
	logFile  *os.File
	filePath string
	mirror   io.Writer
	now      func() time.Time
}

// Create the log instance with a temporary file.
func CreateLogger() (*NewLogger, error) {
	f, err := os.CreateTemp("", "log-*.log")
	if err != nil {
		return nil, err
	}

	return &NewLogger{
		logFile:  f,
		filePath: f.Name(),
		now:      time.Now,
	}, nil
}

// WithMirror copies every line to the given writer as well, usually stdout on containers.
func (l *NewLogger) WithMirror(w io.Writer) *NewLogger {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.mirror = w
	return l
}

// Path of the underlying log file.
func (l *NewLogger) Path() string {
	return l.filePath
}

// Log a simple info.
func (l *NewLogger) Infof(format string, args ...any) {
	l.write("[INFO]", format, args...)
}

// Log a error.
func (l *NewLogger) Errorf(format string, args ...any) {
	l.write("[ERROR]", format, args...)
}

// Write something to the logger.
func (l *NewLogger) write(infoType string, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := l.now().Format("2006-01-02 15:04:05")
	line := fmt.Sprintf("%-8s %s %s\n", infoType, timestamp, fmt.Sprintf(format, args...))

	l.logFile.WriteString(line)
	if l.mirror != nil {
		io.WriteString(l.mirror, line)
	}
}

// Clean the file contents.
func (l *NewLogger) CleanFile() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.cleanLocked()
}

func (l *NewLogger) cleanLocked() {
	l.logFile.Truncate(0)
	l.logFile.Seek(0, 0)
}

// Close the file and remove it from disk.
func (l *NewLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.logFile.Close(); err != nil {
		return err
	}
	return os.Remove(l.filePath)
}

// Upload the log to a s3 bucket.
// The file is only cleaned after a successful upload.
func (l *NewLogger) UploadToS3Bucket(ctx context.Context, bucket config.BucketConfiguration, objectKey string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.logFile.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to rewind file: %w", err)
	}

	// Get the config.
	cfg := aws.Config{
		Region: bucket.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(
				bucket.AccessKey,
				bucket.AccessSecret,
				"",
			),
		),
	}

	// Create the client.
	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(bucket.Endpoint)
		o.UsePathStyle = true
	})

	// Run the put.
	_, err := s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket.LogBucket),
		Key:    aws.String(objectKey),
		Body:   l.logFile,
		ACL:    types.ObjectCannedACLPrivate,
	})
	if err != nil {
		// Go back to the end so new lines are appended.
		l.logFile.Seek(0, io.SeekEnd)
		return fmt.Errorf("failed to upload %s to S3 bucket: %w", objectKey, err)
	}

	// Clean the file after sending.
	l.cleanLocked()

	return nil
}

// ObjectKey builds the bucket key for a service log at the given time.
func ObjectKey(service string, at time.Time) string {
	return fmt.Sprintf("logs/%s/%s.log", service, at.UTC().Format("2006-01-02T15-04-05"))
}

// Nop discards everything, used on tests.
type Nop struct{}

func (Nop) Infof(string, ...any) {}
func (Nop) Errorf(string, ...any) {}
