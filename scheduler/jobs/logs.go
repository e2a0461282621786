package jobs

import (
	"context"
	"fitconsole/pkg/config"
	"fitconsole/pkg/logger"
	"time"
)

// LogUploader is the log the upload job ships.
type LogUploader interface {
	UploadToS3Bucket(ctx context.Context, bucket config.BucketConfiguration, objectKey string) error
}

// LogUploadJob ships the scheduler log to the bucket.
type LogUploadJob struct {
	log     LogUploader
	bucket  config.BucketConfiguration
	service string
	now     func() time.Time
}

// NewLogUploadJob creates the upload job for the service's log.
func NewLogUploadJob(log LogUploader, bucket config.BucketConfiguration, service string) *LogUploadJob {
	return &LogUploadJob{log: log, bucket: bucket, service: service, now: time.Now}
}

// Run uploads the log, which is emptied on success.
func (j *LogUploadJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	return j.log.UploadToS3Bucket(ctx, j.bucket, logger.ObjectKey(j.service, j.now()))
}
