package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"

	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/config"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// downloadTokenKey is the metadata key the Firebase console and SDKs use for public download URLs
const downloadTokenKey = "firebaseStorageDownloadTokens"

// FirebaseStorage stores files in the project's Firebase Storage bucket
type FirebaseStorage struct {
	bucket     *gcs.BucketHandle
	bucketName string
}

// NewFirebaseStorage initializes the Firebase app and resolves the configured bucket.
// Without a credentials file, application default credentials are used.
func NewFirebaseStorage(ctx context.Context, cfg *config.Config) (*FirebaseStorage, error) {
	var opts []option.ClientOption
	if cfg.Firebase.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     cfg.Firebase.ProjectID,
		StorageBucket: cfg.Firebase.StorageBucket,
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("Firebase 앱 초기화 실패: %w", err)
	}

	client, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("Firebase Storage 클라이언트 생성 실패: %w", err)
	}

	bucket, err := client.DefaultBucket()
	if err != nil {
		return nil, fmt.Errorf("Firebase Storage 버킷 조회 실패: %w", err)
	}

	return &FirebaseStorage{bucket: bucket, bucketName: cfg.Firebase.StorageBucket}, nil
}

func (s *FirebaseStorage) Upload(ctx context.Context, path string, r io.Reader, contentType string) (*Object, error) {
	token := uuid.NewString()

	w := s.bucket.Object(path).NewWriter(ctx)
	w.ContentType = contentType
	w.Metadata = map[string]string{downloadTokenKey: token}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("파일 업로드 실패 path=%s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("파일 업로드 완료 실패 path=%s: %w", path, err)
	}

	var size int64
	if attrs := w.Attrs(); attrs != nil {
		size = attrs.Size
	}

	return &Object{
		Path:        path,
		URL:         s.downloadURL(path, token),
		ContentType: contentType,
		Size:        size,
	}, nil
}

func (s *FirebaseStorage) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	r, err := s.bucket.Object(path).NewReader(ctx)
	if err != nil {
		return nil, mapError(path, err)
	}
	return r, nil
}

func (s *FirebaseStorage) Delete(ctx context.Context, path string) error {
	if err := s.bucket.Object(path).Delete(ctx); err != nil {
		return mapError(path, err)
	}
	return nil
}

func (s *FirebaseStorage) List(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	it := s.bucket.Objects(ctx, &gcs.Query{Prefix: prefix})

	var objects []ObjectInfo
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("파일 목록 조회 실패 prefix=%s: %w", prefix, err)
		}
		objects = append(objects, ObjectInfo{
			Path:    attrs.Name,
			Size:    attrs.Size,
			Updated: attrs.Updated,
		})
	}
	return objects, nil
}

// downloadURL builds the tokenized URL that Firebase clients use for public reads
func (s *FirebaseStorage) downloadURL(path, token string) string {
	return fmt.Sprintf("https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media&token=%s",
		s.bucketName, url.PathEscape(path), token)
}

func mapError(path string, err error) error {
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return fmt.Errorf("path=%s: %w", path, ErrNotFound)
	}
	return fmt.Errorf("Firebase Storage 오류 path=%s: %w", path, err)
}
