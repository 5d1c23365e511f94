package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/keerthanakottapalli/ShopSphere/pkg/errs"
)

var (
	allowedImageExtensions = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".gif":  true,
		".webp": true,
		".avif": true,
	}
	allowedImageMimeTypes = map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
		"image/avif": true,
	}
)

type UploadServiceImpl struct {
	uploadDir string
}

func CreateUploadService(uploadDir string) UploadService {
	return &UploadServiceImpl{uploadDir: uploadDir}
}

// SaveImage stores a single uploaded image under the upload directory as
// image-{epochMillis}{ext} and returns its public /uploads path. Both the
// extension and the declared MIME type must be on the allow-list.
func (s *UploadServiceImpl) SaveImage(filename string, contentType string, src io.Reader) (imagePath string, err error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExtensions[ext] || !allowedImageMimeTypes[strings.ToLower(contentType)] {
		return "", errs.ErrNotAnImage
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("image-%d%s", time.Now().UnixMilli(), ext)

	dst, err := os.Create(filepath.Join(s.uploadDir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return "/uploads/" + name, nil
}
