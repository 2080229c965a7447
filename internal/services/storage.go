package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrInvalidBlobPath = errors.New("invalid blob path")

// BlobStore keeps uploaded resumes under slash-separated relative paths.
type BlobStore interface {
	Save(path string, data []byte) error
	Download(ctx context.Context, path string) ([]byte, error)
	Delete(path string) error
	EnsureUploadDir() error
}

type storageService struct {
	uploadPath string
}

func NewStorageService(uploadPath string) BlobStore {
	return &storageService{
		uploadPath: filepath.Clean(uploadPath),
	}
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

func (s *storageService) Save(path string, data []byte) error {
	filePath, err := s.resolve(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create blob directory: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}

	return nil
}

func (s *storageService) Download(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	filePath, err := s.resolve(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", path, err)
	}

	return data, nil
}

func (s *storageService) Delete(path string) error {
	filePath, err := s.resolve(path)
	if err != nil {
		return err
	}

	if err := os.Remove(filePath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// resolve maps a blob path onto the upload directory, refusing paths that
// would land outside it.
func (s *storageService) resolve(path string) (string, error) {
	if path == "" || filepath.IsAbs(path) || strings.HasPrefix(path, "/") {
		return "", fmt.Errorf("%w: %q", ErrInvalidBlobPath, path)
	}

	filePath := filepath.Join(s.uploadPath, filepath.FromSlash(path))
	rel, err := filepath.Rel(s.uploadPath, filePath)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrInvalidBlobPath, path)
	}

	return filePath, nil
}
