package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/starevents/starevents-api/internal/config"
	"github.com/starevents/starevents-api/internal/domain"
)

// maxPixels bounds the decoded bitmap; a few hundred KB of png can describe gigabytes of pixels.
const maxPixels = 40_000_000

var (
	ErrInvalidImage  = fmt.Errorf("invalid image: %w", domain.ErrValidation)
	ErrImageTooLarge = fmt.Errorf("image dimensions too large: %w", ErrInvalidImage)
)

// ImageStore keeps event images on local disk as webp, resized to fit the configured box.
type ImageStore struct {
	dir       string
	prefix    string
	maxWidth  int
	maxHeight int
	quality   float32
}

func NewImageStore(conf *config.StorageConfig) (*ImageStore, error) {
	if err := os.MkdirAll(conf.ImageDir, 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll -> %w", err)
	}

	return &ImageStore{
		dir:       conf.ImageDir,
		prefix:    strings.TrimSuffix(conf.PublicPrefix, "/"),
		maxWidth:  conf.MaxWidth,
		maxHeight: conf.MaxHeight,
		quality:   conf.Quality,
	}, nil
}

// Save decodes data (jpeg, png, gif or webp), fits it into the configured box
// and writes it as webp. It returns the public path of the stored file.
func (s *ImageStore) Save(ctx context.Context, data []byte, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	cfg, err := decodeConfig(data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, ErrInvalidImage)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > maxPixels {
		return "", fmt.Errorf("%s is %dx%d: %w", name, cfg.Width, cfg.Height, ErrImageTooLarge)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		img, err = webp.Decode(bytes.NewReader(data))
		if err != nil {
			return "", fmt.Errorf("%s: %w", name, ErrInvalidImage)
		}
	}

	b := img.Bounds()
	if b.Dx() > s.maxWidth || b.Dy() > s.maxHeight {
		img = imaging.Fit(img, s.maxWidth, s.maxHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err = webp.Encode(&buf, img, &webp.Options{Lossless: false, Quality: s.quality}); err != nil {
		return "", fmt.Errorf("webp.Encode -> %w", err)
	}

	filename := uuid.NewString() + ".webp"
	if err = os.WriteFile(filepath.Join(s.dir, filename), buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("os.WriteFile -> %w", err)
	}

	return path.Join(s.prefix, filename), nil
}

// decodeConfig reads only the image header.
func decodeConfig(data []byte) (image.Config, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err == nil {
		return cfg, nil
	}
	return webp.DecodeConfig(bytes.NewReader(data))
}

// Delete removes a file previously returned by Save. Unknown or missing files are ignored.
func (s *ImageStore) Delete(ctx context.Context, publicPath string) error {
	if publicPath == "" {
		return nil
	}
	if !strings.HasPrefix(publicPath, s.prefix+"/") {
		zap.L().Warn("refusing to delete image outside store", zap.String("path", publicPath))
		return nil
	}

	filename := path.Base(publicPath)
	err := os.Remove(filepath.Join(s.dir, filename))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("os.Remove -> %w", err)
	}

	return nil
}

// Dir is the directory served under the public prefix.
func (s *ImageStore) Dir() string {
	return s.dir
}

func (s *ImageStore) Prefix() string {
	return s.prefix
}
