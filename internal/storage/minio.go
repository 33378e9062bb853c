package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
)

type MinioStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

type MinioOptions struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	PublicURL string
}

func NewMinioStore(opts MinioOptions) (*MinioStore, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	s := &MinioStore{
		client:    client,
		bucket:    opts.Bucket,
		publicURL: strings.TrimRight(opts.PublicURL, "/"),
	}
	if err := s.ensureBucket(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *MinioStore) ensureBucket() error {
	ctx := context.Background()

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		log.WithField("bucket", s.bucket).Info("minio bucket created")
	}
	return nil
}

// Upload stores the file under folder/<name>_<uuid><ext> and returns the
// public URL plus the object key for later deletion.
func (s *MinioStore) Upload(ctx context.Context, file *multipart.FileHeader, folder string) (*UploadResult, error) {
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	ext := path.Ext(file.Filename)
	base := strings.TrimSuffix(path.Base(file.Filename), ext)
	objectKey := fmt.Sprintf("%s/%s_%s%s", strings.Trim(folder, "/"), base, uuid.NewString(), ext)

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = s.client.PutObject(ctx, s.bucket, objectKey, src, file.Size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload object: %w", err)
	}

	return &UploadResult{
		URL:      fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, objectKey),
		PublicID: objectKey,
	}, nil
}

func (s *MinioStore) Delete(ctx context.Context, publicID string) error {
	return s.client.RemoveObject(ctx, s.bucket, publicID, minio.RemoveObjectOptions{})
}
