package media

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Uploader grava os avatares dos profissionais num bucket S3 e devolve
// a URL pública.
type Uploader struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

type UploaderConfig struct {
	Bucket        string
	Region        string
	AccessKey     string
	SecretKey     string
	Endpoint      string
	PublicBaseURL string
}

func NewUploader(cfg UploaderConfig) *Uploader {
	opts := s3.Options{
		Region: cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		),
	}

	// Endpoint custom (MinIO / R2) em dev
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}

	baseURL := cfg.PublicBaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	return &Uploader{
		client:        s3.New(opts),
		bucket:        cfg.Bucket,
		publicBaseURL: baseURL,
	}
}

// UploadAvatar processa a imagem recebida e sobe o webp resultante.
func (u *Uploader) UploadAvatar(ctx context.Context, r io.Reader) (string, error) {
	body, err := processAvatar(r)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("professionals/%s.webp", uuid.NewString())

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", err
	}

	return u.publicBaseURL + "/" + key, nil
}
