package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	"github.com/feliperamosdev/portfolio-api/internal/config"
)

// MediaStorage grava mídia (capas de projeto/post) em um bucket S3 e
// devolve a URL pública.
type MediaStorage struct {
	client        *s3.Client
	bucket        string
	region        string
	publicBaseURL string
}

func NewMediaStorage(cfg *config.Config) *MediaStorage {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	// Endpoint alternativo (MinIO, R2) quando configurado
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &MediaStorage{
		client:        s3.New(opts),
		bucket:        cfg.S3Bucket,
		region:        cfg.S3Region,
		publicBaseURL: cfg.S3PublicBaseURL,
	}
}

// UploadImage converte a imagem para webp e publica no bucket.
func (m *MediaStorage) UploadImage(ctx context.Context, folder string, data []byte) (string, error) {
	converted, err := ConvertToWebP(data)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s/%s.webp", folder, uuid.NewString())

	_, err = m.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(m.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(converted),
		ContentType: aws.String("image/webp"),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		log.Printf("[storage] put object failed: %v", err)
		return "", err
	}

	return m.publicURL(key), nil
}

func (m *MediaStorage) publicURL(key string) string {
	if m.publicBaseURL != "" {
		return fmt.Sprintf("%s/%s", m.publicBaseURL, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", m.bucket, m.region, key)
}
