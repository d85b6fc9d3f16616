package storage

import (
	"io"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	cmap "github.com/orcaman/concurrent-map/v2"
)

const (
	presignViewURLFor      = time.Hour * 24 * 7
	presignValidAtLeastFor = time.Minute * 30
)

type presignedURL struct {
	url   string
	until time.Time
}

type S3Storage struct {
	bucket   string
	prefix   string
	s3Client *s3.S3
	uploader *s3manager.Uploader
	// Presigned GET URLs are valid for days; cache them instead of
	// re-signing on every request
	urlCache cmap.ConcurrentMap[string, presignedURL]
}

func NewS3Storage(bucket, region, endpoint, prefix string) (*S3Storage, error) {
	awsConfig := aws.Config{
		Region: aws.String(region),
	}
	if endpoint != "" {
		awsConfig.Endpoint = aws.String(endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}
	sess, err := session.NewSession(&awsConfig)
	if err != nil {
		return nil, err
	}
	client := s3.New(sess)
	return &S3Storage{
		bucket:   bucket,
		prefix:   prefix,
		s3Client: client,
		uploader: s3manager.NewUploaderWithClient(client),
		urlCache: cmap.New[presignedURL](),
	}, nil
}

func (s *S3Storage) remotePath(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + "/" + key
}

func (s *S3Storage) Put(key string, reader io.Reader, contentType string, size int64) error {
	input := s3manager.UploadInput{
		Bucket:      &s.bucket,
		Key:         aws.String(s.remotePath(key)),
		ContentType: &contentType,
		Body:        reader,
	}
	_, err := s.uploader.Upload(&input)
	return err
}

func (s *S3Storage) URL(key string) (string, error) {
	if cached, ok := s.urlCache.Get(key); ok {
		if time.Until(cached.until) > presignValidAtLeastFor {
			return cached.url, nil
		}
	}
	request, _ := s.s3Client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(s.remotePath(key)),
	})
	url, err := request.Presign(presignViewURLFor)
	if err != nil {
		return "", err
	}
	s.urlCache.Set(key, presignedURL{url: url, until: time.Now().Add(presignViewURLFor)})
	return url, nil
}

func (s *S3Storage) Open(key string) (io.ReadCloser, error) {
	resp, err := s.s3Client.GetObject(&s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(s.remotePath(key)),
	})
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

func (s *S3Storage) Delete(key string) error {
	_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(s.remotePath(key)),
	})
	s.urlCache.Remove(key)
	return err
}

func (s *S3Storage) Presigned() bool {
	return true
}
