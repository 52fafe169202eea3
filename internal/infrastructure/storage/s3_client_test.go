package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeS3 struct {
	in   *s3.PutObjectInput
	body []byte
	err  error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	f.body, _ = io.ReadAll(in.Body)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3ObjectStore_GenerateURL(t *testing.T) {
	s := NewS3ObjectStore(&fakeS3{}, "vandre-aws", "sa-east-1", zap.NewNop())

	assert.Equal(t, "https://vandre-aws.s3.sa-east-1.amazonaws.com/images/a.jpg", s.GenerateURL("images/a.jpg"))
	assert.Equal(t, "https://vandre-aws.s3.sa-east-1.amazonaws.com/images/a.jpg", s.GenerateURL("/images/a.jpg"))
}

func TestS3ObjectStore_Upload(t *testing.T) {
	fake := &fakeS3{}
	s := NewS3ObjectStore(fake, "bucket", "us-east-1", zap.NewNop())

	url, err := s.Upload(context.Background(), "pdfs/x.pdf", "application/pdf", []byte("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, "https://bucket.s3.us-east-1.amazonaws.com/pdfs/x.pdf", url)
	assert.Equal(t, "bucket", aws.ToString(fake.in.Bucket))
	assert.Equal(t, "application/pdf", aws.ToString(fake.in.ContentType))
	assert.Equal(t, []byte("%PDF"), fake.body)
}

func TestS3ObjectStore_UploadError(t *testing.T) {
	cause := errors.New("access denied")
	s := NewS3ObjectStore(&fakeS3{err: cause}, "bucket", "us-east-1", zap.NewNop())

	_, err := s.Upload(context.Background(), "k", "image/jpeg", nil)
	require.ErrorIs(t, err, cause)
}
