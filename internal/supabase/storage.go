package supabase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	storage "github.com/supabase-community/storage-go"
	"thumbnail-backend/internal/apperrors"
)

const DefaultUploadTimeout = time.Minute

type uploadFunc func(storagePath string, data io.Reader, contentType string) error

type removeFunc func(storagePaths []string) error

type StorageClient struct {
	upload  uploadFunc
	remove  removeFunc
	bucket  string
	baseURL string
	timeout time.Duration
}

func NewStorageClient(client *Client, bucket string, timeout time.Duration) (*StorageClient, error) {
	if client == nil || client.Supabase == nil || client.Supabase.Storage == nil {
		return nil, errors.New("supabase storage client is not configured")
	}
	objects := client.Supabase.Storage

	upload := func(storagePath string, data io.Reader, contentType string) error {
		upsert := false
		_, err := objects.UploadFile(bucket, storagePath, data, storage.FileOptions{
			ContentType: &contentType,
			Upsert:      &upsert,
		})
		return err
	}
	remove := func(storagePaths []string) error {
		_, err := objects.RemoveFile(bucket, storagePaths)
		return err
	}

	return newStorageClient(client.Config.SupabaseURL, bucket, timeout, upload, remove), nil
}

func newStorageClient(supabaseURL, bucket string, timeout time.Duration, upload uploadFunc, remove removeFunc) *StorageClient {
	if timeout <= 0 {
		timeout = DefaultUploadTimeout
	}
	return &StorageClient{
		upload:  upload,
		remove:  remove,
		bucket:  bucket,
		baseURL: strings.TrimSuffix(supabaseURL, "/"),
		timeout: timeout,
	}
}

// UploadImage uploads the file at localPath to
// users/{user_id}/thumbnails/{basename} and returns its public URL.
func (s *StorageClient) UploadImage(ctx context.Context, userID uuid.UUID, localPath string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", apperrors.New(apperrors.KindUpload, "failed to open image for upload", err)
	}
	defer f.Close()

	contentType, err := sniffImageType(f)
	if err != nil {
		return "", apperrors.New(apperrors.KindUpload, "failed to read image for upload", err)
	}

	storagePath := fmt.Sprintf("users/%s/thumbnails/%s", userID.String(), filepath.Base(localPath))

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	// storage-go takes no context, so the deadline is enforced here.
	done := make(chan error, 1)
	go func() {
		done <- s.upload(storagePath, f, contentType)
	}()

	select {
	case err := <-done:
		if err != nil {
			return "", apperrors.New(apperrors.KindUpload, "failed to upload image", err)
		}
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", apperrors.New(apperrors.KindTimeout,
				fmt.Sprintf("image upload timed out after %s", s.timeout), ctx.Err())
		}
		return "", apperrors.New(apperrors.KindUpload, "image upload cancelled", ctx.Err())
	}

	return s.GetPublicURL(storagePath), nil
}

func (s *StorageClient) GetPublicURL(storagePath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		s.baseURL, s.bucket, storagePath)
}

// StoragePath reverses GetPublicURL. It reports false for URLs that do not
// point into this bucket.
func (s *StorageClient) StoragePath(publicURL string) (string, bool) {
	prefix := fmt.Sprintf("%s/storage/v1/object/public/%s/", s.baseURL, s.bucket)
	if !strings.HasPrefix(publicURL, prefix) {
		return "", false
	}
	path := strings.TrimPrefix(publicURL, prefix)
	return path, path != ""
}

// DeleteImage removes the object behind publicURL. Foreign URLs are ignored.
func (s *StorageClient) DeleteImage(publicURL string) error {
	path, ok := s.StoragePath(publicURL)
	if !ok {
		return nil
	}
	if err := s.remove([]string{path}); err != nil {
		return apperrors.New(apperrors.KindUpload, "failed to delete stored image", err)
	}
	return nil
}

func sniffImageType(f *os.File) (string, error) {
	head := make([]byte, 512)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return "", err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	contentType := http.DetectContentType(head[:n])
	if !strings.HasPrefix(contentType, "image/") {
		contentType = "image/png"
	}
	return contentType, nil
}
