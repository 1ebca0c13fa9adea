package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"edubridge_backend/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// StorageProvider persists uploaded files and hands back a public URL.
type StorageProvider interface {
	Save(ctx context.Context, file *multipart.FileHeader) (string, error)
}

// NewStorageProvider picks the backend from config; "minio" uses object
// storage, anything else falls back to the local disk provider.
func NewStorageProvider(cfg config.StorageConfig) (StorageProvider, error) {
	if cfg.Type == "minio" {
		return newMinioStorage(cfg)
	}
	return &localStorage{cfg: cfg}, nil
}

func storedName(original string) string {
	ext := filepath.Ext(original)
	return uuid.NewString() + ext
}

type localStorage struct {
	cfg config.StorageConfig
}

func (s *localStorage) Save(_ context.Context, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := storedName(file.Filename)
	path := filepath.Join(s.cfg.LocalPath, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	base := strings.TrimSuffix(s.cfg.PublicBaseURL, "/")
	return fmt.Sprintf("%s/uploads/%s", base, name), nil
}

type minioStorage struct {
	cfg    config.StorageConfig
	client *minio.Client
}

func newMinioStorage(cfg config.StorageConfig) (*minioStorage, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}

	return &minioStorage{cfg: cfg, client: client}, nil
}

func (s *minioStorage) Save(ctx context.Context, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := storedName(file.Filename)
	_, err = s.client.PutObject(ctx, s.cfg.MinioBucket, name, src, file.Size, minio.PutObjectOptions{
		ContentType: file.Header.Get("Content-Type"),
	})
	if err != nil {
		return "", err
	}

	scheme := "http"
	if s.cfg.MinioUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinioEndpoint, s.cfg.MinioBucket, name), nil
}
