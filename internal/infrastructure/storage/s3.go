package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/jhoicas/ventas-admin-api/internal/application/export"
	"github.com/jhoicas/ventas-admin-api/internal/domain"
)

// S3Config bucket, región y prefijo opcional de las llaves.
type S3Config struct {
	Bucket string
	Region string
	Prefix string
}

// S3Storage guarda los reportes en Amazon S3.
type S3Storage struct {
	client *s3.Client
	bucket string
	prefix string
}

var _ export.ReportStorage = (*S3Storage)(nil)

// NewS3Storage carga la configuración por defecto de AWS (env, perfil o rol) para la región.
func NewS3Storage(ctx context.Context, cfg S3Config) (*S3Storage, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage: bucket es requerido para S3")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("storage: configuración AWS: %w", err)
	}
	return &S3Storage{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.Bucket,
		prefix: strings.Trim(cfg.Prefix, "/"),
	}, nil
}

// Save sube el archivo completo con su content type.
// El SDK necesita un cuerpo con Seek para firmar la petición; si no lo tiene se lee a memoria.
func (s *S3Storage) Save(ctx context.Context, key, contentType string, body io.Reader) error {
	if _, ok := body.(io.ReadSeeker); !ok {
		b, err := io.ReadAll(body)
		if err != nil {
			return fmt.Errorf("storage: leer %s: %w", key, err)
		}
		body = bytes.NewReader(b)
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key(key)),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("storage: s3 put %s: %w", key, err)
	}
	return nil
}

// Open descarga el objeto. NoSuchKey se traduce a domain.ErrNotFound.
func (s *S3Storage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(key)),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("storage: s3 get %s: %w", key, err)
	}
	return out.Body, nil
}

func (s *S3Storage) key(k string) string {
	if s.prefix == "" {
		return k
	}
	return s.prefix + "/" + k
}
