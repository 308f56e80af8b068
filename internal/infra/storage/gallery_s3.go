package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/mariananails/salon-booking/internal/config"
)

const (
	maxWidth    = 1600
	webpQuality = 82
)

// GalleryStorage re-encodes uploads as webp and puts them in S3. Every image
// lands under gallery/<uuid>.webp regardless of the uploaded filename.
type GalleryStorage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewGalleryStorage(cfg *config.Config) *GalleryStorage {
	awsCfg := aws.Config{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	return &GalleryStorage{
		client:    s3.NewFromConfig(awsCfg),
		bucket:    cfg.S3Bucket,
		publicURL: strings.TrimRight(cfg.S3PublicURL, "/"),
	}
}

func (g *GalleryStorage) Enabled() bool {
	return g != nil && g.bucket != ""
}

// Upload decodes a jpeg/png, downscales to maxWidth, converts to webp and
// uploads it. Returns the object key and public URL.
func (g *GalleryStorage) Upload(ctx context.Context, r io.Reader) (string, string, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return "", "", fmt.Errorf("decode image: %w", err)
	}

	src = scaleDown(src)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: webpQuality}); err != nil {
		return "", "", fmt.Errorf("encode webp: %w", err)
	}

	key := "gallery/" + uuid.NewString() + ".webp"

	_, err = g.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(g.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", "", fmt.Errorf("put object: %w", err)
	}

	return key, g.publicURL + "/" + key, nil
}

func (g *GalleryStorage) Delete(ctx context.Context, key string) error {
	_, err := g.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
	})
	return err
}

func scaleDown(src image.Image) image.Image {
	b := src.Bounds()
	if b.Dx() <= maxWidth {
		return src
	}

	h := b.Dy() * maxWidth / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
