package events

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	in  *s3.PutObjectInput
	err error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	return &s3.PutObjectOutput{}, f.err
}

func TestObjectKey(t *testing.T) {
	assert.Equal(t,
		"events/2026/03/07/withdraw/7d1c2f4e-0000-4000-8000-000000000001.json",
		ObjectKey(sampleEvent()))
}

func TestS3Publisher_Publish(t *testing.T) {
	fp := &fakePutter{}
	p := &S3Publisher{client: fp, bucket: "archive"}

	require.NoError(t, p.Publish(context.Background(), sampleEvent()))
	require.NotNil(t, fp.in)
	assert.Equal(t, "archive", aws.ToString(fp.in.Bucket))
	assert.Equal(t, ObjectKey(sampleEvent()), aws.ToString(fp.in.Key))
	assert.Equal(t, "application/json", aws.ToString(fp.in.ContentType))
	body, err := io.ReadAll(fp.in.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":100,"fee":5}`, string(body))

	fp.err = errors.New("denied")
	assert.ErrorContains(t, p.Publish(context.Background(), sampleEvent()), "denied")
}

func TestNewS3Publisher(t *testing.T) {
	origLoad, origNew := loadDefaultAWSConfig, newS3ClientFromConfig
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNew
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Equal(t, "eu-central-1", lo.Region)
		require.NotNil(t, lo.Credentials)
		creds, err := lo.Credentials.Retrieve(ctx)
		require.NoError(t, err)
		assert.Equal(t, "minio", creds.AccessKeyID)
		return aws.Config{}, nil
	}

	var opts s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		for _, fn := range optFns {
			fn(&opts)
		}
		return &s3.Client{}
	}

	p, err := NewS3Publisher(context.Background(), S3Config{
		User: "minio", Password: "pw", Bucket: "archive",
		Region: "eu-central-1", BaseEndpoint: "http://127.0.0.1:9000",
	})
	require.NoError(t, err)
	assert.Equal(t, "archive", p.bucket)
	assert.Equal(t, "http://127.0.0.1:9000", aws.ToString(opts.BaseEndpoint))
	assert.True(t, opts.UsePathStyle)

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}
	_, err = NewS3Publisher(context.Background(), S3Config{})
	assert.EqualError(t, err, "load-fail")
}
