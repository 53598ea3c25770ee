package services

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

type StorageService interface {
	SaveFile(file *multipart.FileHeader) (string, string, error)
	GetFilePath(filename string) string
	EnsureUploadDir() error
}

type storageService struct {
	uploadPath string
}

func NewStorageService(uploadPath string) StorageService {
	return &storageService{
		uploadPath: uploadPath,
	}
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return errors.Wrap(err, "failed to create upload directory")
	}

	return nil
}

// SaveFile stores the upload under its sanitized original name. An existing
// file with the same name is replaced.
func (s *storageService) SaveFile(file *multipart.FileHeader) (string, string, error) {
	filename := SanitizeFilename(file.Filename)
	if filename == "" {
		return "", "", errors.Errorf("invalid filename: %q", file.Filename)
	}
	filePath := s.GetFilePath(filename)

	src, err := file.Open()
	if err != nil {
		return "", "", errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to create destination file")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", "", errors.Wrap(err, "failed to save file")
	}

	return filename, filePath, nil
}

func (s *storageService) GetFilePath(filename string) string {
	return filepath.Join(s.uploadPath, filename)
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeFilename keeps only the base name and replaces anything outside
// [A-Za-z0-9._-] with an underscore. Leading dots and underscores are removed.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.TrimLeft(name, "._")
	if name == "" || name == "." {
		return ""
	}
	return name
}
