// Package s3archive uploads rendered reports to S3 and announces each
// upload on an SQS queue.
package s3archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/google/uuid"

	"esgtracker/internal/domain"
)

type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type messageSender interface {
	SendMessage(ctx context.Context, in *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// Archive implements ports.ReportArchive. The queue is optional.
type Archive struct {
	s3       objectPutter
	sqs      messageSender
	bucket   string
	queueURL string
	now      func() time.Time
}

type uploadNotice struct {
	Bucket     string `json:"bucket"`
	Key        string `json:"key"`
	CompanyID  int64  `json:"companyId"`
	Kind       string `json:"kind"`
	UploadedAt string `json:"uploadedAt"`
}

// New loads the default AWS configuration (env, shared files, AWS_ENDPOINT_URL)
// and resolves the queue URL when queueName is set.
func New(ctx context.Context, bucket, queueName string) (*Archive, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})
	a := &Archive{s3: s3Client, bucket: bucket, now: time.Now}

	if queueName != "" {
		sqsClient := sqs.NewFromConfig(cfg)
		resp, err := sqsClient.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{QueueName: aws.String(queueName)})
		if err != nil {
			return nil, fmt.Errorf("resolve queue %s: %w", queueName, err)
		}
		a.sqs = sqsClient
		a.queueURL = aws.ToString(resp.QueueUrl)
	}
	return a, nil
}

// Key is reports/<company>/<kind>/<uuid>.pdf.
func Key(companyID int64, kind domain.ReportKind) string {
	return fmt.Sprintf("reports/%d/%s/%s.pdf", companyID, kind, uuid.NewString())
}

func (a *Archive) Archive(ctx context.Context, companyID int64, kind domain.ReportKind, pdf []byte) (string, error) {
	key := Key(companyID, kind)
	_, err := a.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(pdf),
		ContentType: aws.String("application/pdf"),
		ACL:         types.ObjectCannedACLPrivate,
	})
	if err != nil {
		return "", fmt.Errorf("put s3://%s/%s: %w", a.bucket, key, err)
	}
	location := fmt.Sprintf("s3://%s/%s", a.bucket, key)

	if a.sqs != nil {
		body, err := json.Marshal(uploadNotice{
			Bucket:     a.bucket,
			Key:        key,
			CompanyID:  companyID,
			Kind:       string(kind),
			UploadedAt: a.now().UTC().Format(time.RFC3339),
		})
		if err != nil {
			return location, fmt.Errorf("encode upload notice: %w", err)
		}
		_, err = a.sqs.SendMessage(ctx, &sqs.SendMessageInput{
			QueueUrl:    aws.String(a.queueURL),
			MessageBody: aws.String(string(body)),
		})
		if err != nil {
			// The object is stored; only the notification was lost.
			log.Printf("sqs notify for %s: %v", location, err)
		}
	}
	return location, nil
}
