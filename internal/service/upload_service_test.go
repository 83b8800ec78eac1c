package service

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	key, body, contentType string
}

func (m *memStore) Put(_ context.Context, key string, r io.Reader, contentType string) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.key, m.body, m.contentType = key, string(b), contentType
	return "https://bucket.example.com/" + key, nil
}

func TestUploadService(t *testing.T) {
	store := &memStore{}
	svc := NewUploadService(store, "/images/").(*uploadService)
	svc.now = func() time.Time { return time.Date(2024, 3, 9, 10, 0, 0, 0, time.Local) }

	url, err := svc.Upload(context.Background(), "cake.PNG", strings.NewReader("data"), "image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(store.key, "images/2024/03/09/"), store.key)
	assert.True(t, strings.HasSuffix(store.key, ".png"))
	assert.Equal(t, "https://bucket.example.com/"+store.key, url)
	assert.Equal(t, "data", store.body)
	assert.Equal(t, "image/png", store.contentType)
}

func TestUploadService_Disabled(t *testing.T) {
	_, err := NewUploadService(nil, "").Upload(context.Background(), "a.png", strings.NewReader(""), "")
	assert.ErrorIs(t, err, ErrUploadDisabled)
}
