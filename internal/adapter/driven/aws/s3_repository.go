package aws

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3ArchiveRepository guarda os relatórios renderizados em um bucket.
type S3ArchiveRepository struct {
	client putObjectAPI
}

// NewS3ArchiveRepository cria um novo S3ArchiveRepository.
func NewS3ArchiveRepository(client putObjectAPI) *S3ArchiveRepository {
	return &S3ArchiveRepository{client: client}
}

// PutReport uploads body and returns its s3:// location.
func (r *S3ArchiveRepository) PutReport(ctx context.Context, bucket, key string, body []byte, contentType string) (string, error) {
	_, err := r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("s3://%s/%s", bucket, key), nil
}
