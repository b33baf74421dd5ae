package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Upload rejection reasons, mapped to 400 responses by the handler.
var (
	ErrUnsupportedMedia = errors.New("only image files are allowed")
	ErrFileTooLarge     = errors.New("file size too large. Maximum 5MB allowed")
)

// Accepted image formats. The extension must be in the allow-list and
// the declared content type must name one of the tokens, so variants
// like image/jpg pass alongside image/jpeg.
var (
	allowedImageExts = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".gif":  true,
		".webp": true,
	}
	imageTypeTokens = []string{"jpeg", "jpg", "png", "gif", "webp"}
)

func isImageContentType(contentType string) bool {
	contentType = strings.ToLower(contentType)
	for _, token := range imageTypeTokens {
		if strings.Contains(contentType, token) {
			return true
		}
	}
	return false
}

// DiskStorage stores uploaded service images under a fixed directory that
// the server exposes read-only at /uploads.
type DiskStorage struct {
	dir     string
	maxSize int64
}

func NewDiskStorage(dir string, maxSize int64) (*DiskStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &DiskStorage{
		dir:     dir,
		maxSize: maxSize,
	}, nil
}

// SaveFile validates the upload (extension and declared content type must
// both be in the image allow-list, size under the ceiling) and writes it
// under a collision-resistant name. Returns the stored filename.
func (s *DiskStorage) SaveFile(fileData []byte, originalFilename, contentType string) (string, error) {
	if int64(len(fileData)) > s.maxSize {
		return "", ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(originalFilename))
	if !allowedImageExts[ext] {
		return "", ErrUnsupportedMedia
	}
	if !isImageContentType(contentType) {
		return "", ErrUnsupportedMedia
	}

	newFilename := fmt.Sprintf("img-%d-%s%s",
		time.Now().UnixMilli(),
		uuid.New().String()[:8],
		ext)

	path := filepath.Join(s.dir, newFilename)
	if err := os.WriteFile(path, fileData, 0o644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	logrus.Infof("File %s uploaded successfully", newFilename)
	return newFilename, nil
}

// DeleteFile removes a stored image. The reference may be a bare filename
// or a full URL, only the basename is used. A missing file is not an
// error.
func (s *DiskStorage) DeleteFile(reference string) error {
	if reference == "" {
		return nil
	}

	filename := filepath.Base(reference)
	path := filepath.Join(s.dir, filename)

	err := os.Remove(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logrus.Infof("Deleted image file: %s", filename)
	return nil
}

// FileExists reports whether a stored image is present on disk.
func (s *DiskStorage) FileExists(reference string) bool {
	if reference == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(s.dir, filepath.Base(reference)))
	return err == nil
}
