package events

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/timevault/internal/server/models"
)

// S3Config selects the archive bucket and how to reach it.
type S3Config struct {
	User         string
	Password     string
	Bucket       string
	Region       string
	BaseEndpoint string
}

type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// seams for tests
var (
	loadDefaultAWSConfig  = config.LoadDefaultConfig
	newS3ClientFromConfig = s3.NewFromConfig
)

// S3Publisher stores every event as a JSON object in the archive bucket.
type S3Publisher struct {
	client objectPutter
	bucket string
}

func NewS3Publisher(ctx context.Context, c S3Config) (*S3Publisher, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(c.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(c.User, c.Password, "")),
	)
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if c.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(c.BaseEndpoint)
		}
		o.UsePathStyle = true
	})

	return &S3Publisher{client: client, bucket: c.Bucket}, nil
}

// ObjectKey is events/<yyyy>/<mm>/<dd>/<kind>/<id>.json in UTC.
func ObjectKey(e *models.Event) string {
	d := e.CreatedAt.UTC()
	return fmt.Sprintf("events/%04d/%02d/%02d/%s/%s.json", d.Year(), d.Month(), d.Day(), e.Kind, e.ID)
}

func (p *S3Publisher) Publish(ctx context.Context, e *models.Event) error {
	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(ObjectKey(e)),
		Body:        bytes.NewReader(e.Payload),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("s3 put %s: %w", e.ID, err)
	}
	return nil
}
