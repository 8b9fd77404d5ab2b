package services

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const garmentImagePrefix = "garments"

type AWSServiceProvider interface {
	InitPresignClient(ctx context.Context) error
	PresignLink(ctx context.Context, bucketName string, fileName string) (string, error)
	GetPresignedR2FileReadURL(ctx context.Context, bucketName, fileKey string) (string, error)
}

// AWSService presigns garment image uploads and reads against Cloudflare R2.
type AWSService struct {
	S3PresignClient *s3.PresignClient
	// zero means the SDK default
	Expiration time.Duration
}

func (awsService *AWSService) InitPresignClient(ctx context.Context) error {
	var accountId = GetEnv("R2_ACCOUNT_ID", "")
	var accessKeyId = GetEnv("R2_ACCESS_KEY_ID", "")
	var accessKeySecret = GetEnv("R2_ACCESS_KEY_SECRET", "")
	r2Resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountId),
		}, nil
	})
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithEndpointResolverWithOptions(r2Resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKeyId, accessKeySecret, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		return fmt.Errorf("unable to load SDK config: %w", err)
	}

	awsService.S3PresignClient = s3.NewPresignClient(s3.NewFromConfig(cfg))
	return nil
}

func (awsService *AWSService) presignOptions(opts *s3.PresignOptions) {
	if awsService.Expiration > 0 {
		opts.Expires = awsService.Expiration
	}
}

func (awsService *AWSService) PresignLink(ctx context.Context, bucketName string, fileName string) (string, error) {
	if awsService.S3PresignClient == nil {
		return "", fmt.Errorf("presign client is not initialized")
	}
	request, err := awsService.S3PresignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(fileName),
	}, awsService.presignOptions)
	if err != nil {
		return "", fmt.Errorf("failed to presign upload for %s: %w", fileName, err)
	}
	return request.URL, nil
}

func (awsService *AWSService) GetPresignedR2FileReadURL(ctx context.Context, bucketName, fileKey string) (string, error) {
	if awsService.S3PresignClient == nil {
		return "", fmt.Errorf("presign client is not initialized")
	}
	presignedGetRequest, err := awsService.S3PresignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(fileKey),
	}, awsService.presignOptions)
	if err != nil {
		return "", fmt.Errorf("failed to presign request: %w", err)
	}
	return presignedGetRequest.URL, nil
}

// GarmentImageKey builds the storage key for an uploaded garment image. Only
// the base name of fileName is kept. Owner and garment ids are escaped so the
// key always stays under the garments prefix.
func GarmentImageKey(ownerID, garmentID, fileName string) string {
	base := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if base == "." || base == ".." || base == "/" {
		base = "image"
	}
	return path.Join(garmentImagePrefix, keySegment(ownerID), keySegment(garmentID), base)
}

func keySegment(s string) string {
	escaped := url.PathEscape(s)
	if escaped == "" || escaped == "." || escaped == ".." {
		return "_"
	}
	return escaped
}
