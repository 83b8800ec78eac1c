// Package storage 对象存储（腾讯云 COS）
package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tencentyun/cos-go-sdk-v5"

	"github.com/d60-Lab/food-share-server/config"
)

// ObjectStore 上传对象并返回可访问的 URL
type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
}

var _ ObjectStore = (*COSStore)(nil)

type COSStore struct {
	client *cos.Client
}

func NewCOSStore(cfg config.COSConfig) (*COSStore, error) {
	u, err := url.Parse(cfg.BucketURL)
	if err != nil {
		return nil, fmt.Errorf("parse bucket url: %w", err)
	}
	// 独立的 http 客户端，由 AuthorizationTransport 给每个请求签名
	hc := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &cos.AuthorizationTransport{
			SecretID:  cfg.SecretID,
			SecretKey: cfg.SecretKey,
		},
	}
	return &COSStore{client: cos.NewClient(&cos.BaseURL{BucketURL: u}, hc)}, nil
}

func (s *COSStore) Put(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	opt := &cos.ObjectPutOptions{
		ObjectPutHeaderOptions: &cos.ObjectPutHeaderOptions{ContentType: contentType},
	}
	if _, err := s.client.Object.Put(ctx, key, r, opt); err != nil {
		return "", fmt.Errorf("cos put %s: %w", key, err)
	}
	return s.client.Object.GetObjectURL(key).String(), nil
}
