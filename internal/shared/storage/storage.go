package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/logger"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("storage: object not found")

// GeneratedFolder holds files that only live for the duration of one mail campaign
const GeneratedFolder = "generated"

// Folders that back-office uploads may target
var Folders = []string{
	"banners",
	"products",
	"spots",
	"posters",
	"agents",
	"settings",
	"documents",
}

// Object is an uploaded file
type Object struct {
	Path        string `json:"path"`
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// ObjectInfo is a listing entry
type ObjectInfo struct {
	Path    string
	Size    int64
	Updated time.Time
}

// Storage stores entity images and PDFs
type Storage interface {
	Upload(ctx context.Context, path string, r io.Reader, contentType string) (*Object, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)
}

// IsUploadFolder reports whether folder accepts back-office uploads
func IsUploadFolder(folder string) bool {
	for _, f := range Folders {
		if f == folder {
			return true
		}
	}
	return false
}

// IsManagedPath reports whether p lives under a folder this service owns
func IsManagedPath(p string) bool {
	if p == "" || strings.Contains(p, "..") || strings.HasPrefix(p, "/") {
		return false
	}
	folder, _, found := strings.Cut(p, "/")
	if !found {
		return false
	}
	return folder == GeneratedFolder || IsUploadFolder(folder)
}

// IsUploadPath reports whether an entity may reference p. Generated campaign
// files are excluded since they are deleted right after each send.
func IsUploadPath(p string) bool {
	if !IsManagedPath(p) {
		return false
	}
	folder, _, _ := strings.Cut(p, "/")
	return folder != GeneratedFolder
}

// NewObjectPath builds a collision-free path such as "banners/2026/10/<uuid>.png"
func NewObjectPath(folder, ext string, now time.Time) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return path.Join(folder, now.Format("2006"), now.Format("01"), uuid.NewString()+strings.ToLower(ext))
}

// ReadAll downloads a whole object
func ReadAll(ctx context.Context, s Storage, p string) ([]byte, error) {
	r, err := s.Open(ctx, p)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("파일 읽기 실패 path=%s: %w", p, err)
	}
	return data, nil
}

// RemoveQuietly deletes every non-empty path, logging failures instead of returning them.
// Missing objects count as deleted.
func RemoveQuietly(ctx context.Context, s Storage, paths ...string) (deleted int, failed []string) {
	log := logger.FromContext(ctx)

	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := s.Delete(ctx, p); err != nil && !errors.Is(err, ErrNotFound) {
			log.Warn("파일 삭제 실패 (무시)", "path", p, "error", err)
			failed = append(failed, p)
			continue
		}
		deleted++
	}

	if deleted > 0 || len(failed) > 0 {
		log.Debug("파일 정리 완료", "deleted", deleted, "failed", len(failed))
	}
	return deleted, failed
}

// Replaced returns the old path when a file was swapped out, or "" when it is unchanged
func Replaced(oldPath, newPath string) string {
	if oldPath == "" || oldPath == newPath {
		return ""
	}
	return oldPath
}

