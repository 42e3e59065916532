package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/ajittgosavii/cloudidps/pkg/awsiface"
	"github.com/ajittgosavii/cloudidps/pkg/errors"
	"github.com/ajittgosavii/cloudidps/pkg/provider"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
)

// NewServiceInput are the items required to create a new artifact service
type NewServiceInput struct {
	S3Client awsiface.S3API
	Bucket   string `env:"ARTIFACT_BUCKET" envDefault:"cloudidp-artifacts"`
}

// Service stores offboarding evidence artifacts in the artifact bucket
type Service struct {
	s3     awsiface.S3API
	bucket string
}

// StoreJSON marshals the value and stores it under key. Returns the
// artifact location.
func (s *Service) StoreJSON(ctx context.Context, key string, value interface{}) (string, error) {
	body, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "", errors.NewInternalServer(fmt.Sprintf("unable to marshal artifact %q", key), err)
	}
	return s.put(ctx, key+".json", body, "application/json")
}

// RenderCostReport renders the cost report as XLSX workbook bytes.
func (s *Service) RenderCostReport(cost *provider.CostReport) ([]byte, error) {
	var buf bytes.Buffer
	if err := costWorkbook(cost).Write(&buf); err != nil {
		return nil, errors.NewInternalServer("unable to render cost workbook", err)
	}
	return buf.Bytes(), nil
}

// StoreCostReport renders the cost report as an XLSX workbook and
// stores it under key.
func (s *Service) StoreCostReport(ctx context.Context, key string, cost *provider.CostReport) (string, error) {
	body, err := s.RenderCostReport(cost)
	if err != nil {
		return "", err
	}
	return s.put(ctx, key+".xlsx", body,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

func (s *Service) put(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	_, err := s.s3.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:               aws.String(s.bucket),
		Key:                  aws.String(key),
		Body:                 bytes.NewReader(body),
		ContentType:          aws.String(contentType),
		ServerSideEncryption: aws.String("AES256"),
	})
	if err != nil {
		return "", errors.NewInternalServer(fmt.Sprintf("unable to store artifact %q", key), err)
	}
	return fmt.Sprintf("s3://%s/%s", s.bucket, key), nil
}

// NewService creates a new artifact storage service
func NewService(input NewServiceInput) *Service {
	return &Service{
		s3:     input.S3Client,
		bucket: input.Bucket,
	}
}
