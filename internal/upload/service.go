package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/activity"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/model"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/storage"
	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
)

// allowedTypes are matched against the sniffed content, never the client's header or file name
var allowedTypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
	"image/gif",
	"application/pdf",
}

type UploadService struct {
	storage  storage.Storage
	recorder activity.Recorder
	maxBytes int64
	now      func() time.Time
}

func NewUploadService(files storage.Storage, recorder activity.Recorder, maxBytes int64) *UploadService {
	return &UploadService{
		storage:  files,
		recorder: recorder,
		maxBytes: maxBytes,
		now:      time.Now,
	}
}

// MaxBytes is the largest accepted file
func (s *UploadService) MaxBytes() int64 {
	return s.maxBytes
}

// Upload stores r under folder with a generated name
func (s *UploadService) Upload(ctx context.Context, folder string, r io.Reader) (*storage.Object, error) {
	log := logger.FromContext(ctx)

	if !storage.IsUploadFolder(folder) {
		return nil, fmt.Errorf("folder=%q %w", folder, ErrInvalidFilePath)
	}

	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("업로드 파일 읽기 실패: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		log.Warn("업로드 용량 초과", "folder", folder, "max", humanize.IBytes(uint64(s.maxBytes)))
		return nil, fmt.Errorf("max=%d %w", s.maxBytes, ErrFileTooLarge)
	}

	mtype := mimetype.Detect(data)
	if !mimetype.EqualsAny(mtype.String(), allowedTypes...) {
		log.Warn("허용되지 않은 파일 형식", "folder", folder, "content_type", mtype.String())
		return nil, fmt.Errorf("content_type=%s %w", mtype.String(), ErrUnsupportedFileType)
	}

	path := storage.NewObjectPath(folder, mtype.Extension(), s.now())
	contentType, _, _ := strings.Cut(mtype.String(), ";")

	object, err := s.storage.Upload(ctx, path, bytes.NewReader(data), contentType)
	if err != nil {
		return nil, fmt.Errorf("파일 업로드 실패 path=%s: %w", path, err)
	}

	log.Info("파일 업로드 완료", "path", object.Path, "content_type", object.ContentType, "size", humanize.IBytes(uint64(object.Size)))
	return object, nil
}

// Delete removes every path best-effort. All paths are checked before anything is deleted.
func (s *UploadService) Delete(ctx context.Context, paths []string) (*DeleteFilesResponse, error) {
	for _, p := range paths {
		if !storage.IsManagedPath(p) {
			return nil, fmt.Errorf("path=%q %w", p, ErrInvalidFilePath)
		}
	}

	deleted, failed := storage.RemoveQuietly(ctx, s.storage, paths...)
	if failed == nil {
		failed = []string{}
	}

	logger.FromContext(ctx).Info("파일 정리 요청 처리", "requested", len(paths), "deleted", deleted, "failed", len(failed))
	s.recorder.Record(ctx, activity.Entry{
		Action:     model.ActionCleanup,
		EntityType: "file",
		Summary:    strings.Join(paths, ", "),
	})

	return &DeleteFilesResponse{Deleted: deleted, Failed: failed}, nil
}
