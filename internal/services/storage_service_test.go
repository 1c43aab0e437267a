// internal/services/storage_service_test.go
package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clothify/clothify-backend/internal/config"
)

func testStorageService() *StorageService {
	return &StorageService{
		config: &config.Config{
			AWS: config.AWSConfig{
				Region:   "us-east-1",
				S3Bucket: "clothify-media",
			},
		},
	}
}

func TestGenerateFileNameIsUnique(t *testing.T) {
	s := testStorageService()

	a := s.generateFileName("shirt.jpg", "products")
	b := s.generateFileName("shirt.jpg", "products")

	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "products/"))
	assert.True(t, strings.HasSuffix(a, ".jpg"))
}

func TestGenerateFileNameWithoutFolder(t *testing.T) {
	s := testStorageService()

	name := s.generateFileName("photo.png", "")
	assert.False(t, strings.Contains(name, "/"))
	assert.True(t, strings.HasSuffix(name, ".png"))
}

func TestGetS3URLDefaultsToBucketHost(t *testing.T) {
	s := testStorageService()

	url := s.getS3URL("products/abc.jpg")
	assert.Equal(t, "https://clothify-media.s3.us-east-1.amazonaws.com/products/abc.jpg", url)
}

func TestGetS3URLPrefersCloudFront(t *testing.T) {
	s := testStorageService()
	s.config.AWS.CloudFrontURL = "https://cdn.clothify.com"

	url := s.getS3URL("products/abc.jpg")
	assert.Equal(t, "https://cdn.clothify.com/products/abc.jpg", url)
}

func TestIsImageSignature(t *testing.T) {
	jpeg := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	gif := []byte("GIF89a......")
	webp := []byte("RIFF....WEBP")
	text := []byte("<!DOCTYPE html>")

	assert.True(t, isImageSignature(jpeg))
	assert.True(t, isImageSignature(png))
	assert.True(t, isImageSignature(gif))
	assert.True(t, isImageSignature(webp))
	assert.False(t, isImageSignature(text))
}
