package service

import (
	"context"
	"errors"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/d60-Lab/food-share-server/internal/storage"
)

var ErrUploadDisabled = errors.New("object storage not configured")

// UploadService 上传文件到对象存储，返回访问地址
type UploadService interface {
	Upload(ctx context.Context, filename string, r io.Reader, contentType string) (string, error)
}

type uploadService struct {
	store  storage.ObjectStore
	prefix string
	now    func() time.Time
}

// NewUploadService store 为 nil 时上传返回 ErrUploadDisabled
func NewUploadService(store storage.ObjectStore, prefix string) UploadService {
	return &uploadService{store: store, prefix: strings.Trim(prefix, "/"), now: time.Now}
}

func (s *uploadService) Upload(ctx context.Context, filename string, r io.Reader, contentType string) (string, error) {
	if s.store == nil {
		return "", ErrUploadDisabled
	}
	return s.store.Put(ctx, s.objectKey(filename), r, contentType)
}

// objectKey <prefix>/yyyy/mm/dd/<uuid><ext>
func (s *uploadService) objectKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return path.Join(s.prefix, s.now().Format("2006/01/02"), uuid.NewString()+ext)
}
