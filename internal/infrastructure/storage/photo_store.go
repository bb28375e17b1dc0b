package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/shubhmangal/backend/internal/config"
)

// PhotoStore accepts an uploaded image and returns public URLs for it.
// Upload failure is tolerated by registration: the profile proceeds with an
// empty photo reference.
type PhotoStore interface {
	Save(r io.Reader) (photoURL, thumbURL string, err error)
}

const (
	maxPhotoSize  = 1024
	thumbnailSize = 256
)

type localPhotoStore struct {
	path    string
	baseURL string
}

// NewLocalPhotoStore stores photos on local disk under cfg.Path and serves
// them below cfg.BaseURL. The image is re-encoded as JPEG, bounded to
// 1024px, with a 256px thumbnail alongside.
func NewLocalPhotoStore(cfg *config.StorageConfig) (PhotoStore, error) {
	if err := os.MkdirAll(cfg.Path, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &localPhotoStore{path: cfg.Path, baseURL: cfg.BaseURL}, nil
}

func (s *localPhotoStore) Save(r io.Reader) (string, string, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return "", "", fmt.Errorf("failed to decode image: %w", err)
	}

	name := uuid.New().String()
	photoName := name + ".jpg"
	thumbName := name + "_thumb.jpg"

	photo := imaging.Fit(img, maxPhotoSize, maxPhotoSize, imaging.Lanczos)
	if err := imaging.Save(photo, filepath.Join(s.path, photoName), imaging.JPEGQuality(85)); err != nil {
		return "", "", fmt.Errorf("failed to save photo: %w", err)
	}

	thumb := imaging.Fill(img, thumbnailSize, thumbnailSize, imaging.Center, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(s.path, thumbName), imaging.JPEGQuality(80)); err != nil {
		return "", "", fmt.Errorf("failed to save thumbnail: %w", err)
	}

	return s.baseURL + "/" + photoName, s.baseURL + "/" + thumbName, nil
}
