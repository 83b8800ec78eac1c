package storage

import (
	"context"
	"hash/crc64"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/food-share-server/config"
)

func TestCOSStore_Put(t *testing.T) {
	var (
		gotMethod, gotPath, gotType, gotAuth string
		gotBody                              []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		gotType = r.Header.Get("Content-Type")
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		crc := crc64.Checksum(gotBody, crc64.MakeTable(crc64.ECMA))
		w.Header().Set("x-cos-hash-crc64ecma", strconv.FormatUint(crc, 10))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	store, err := NewCOSStore(config.COSConfig{BucketURL: srv.URL, SecretID: "id", SecretKey: "key"})
	require.NoError(t, err)

	u, err := store.Put(context.Background(), "food-share/2026/10/15/a.png", strings.NewReader("png-bytes"), "image/png")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/food-share/2026/10/15/a.png", gotPath)
	assert.Equal(t, "image/png", gotType)
	assert.NotEmpty(t, gotAuth)
	assert.Equal(t, "png-bytes", string(gotBody))
	assert.Equal(t, srv.URL+"/food-share/2026/10/15/a.png", u)
}

func TestCOSStore_PutError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`<Error><Code>AccessDenied</Code></Error>`))
	}))
	defer srv.Close()

	store, err := NewCOSStore(config.COSConfig{BucketURL: srv.URL})
	require.NoError(t, err)

	_, err = store.Put(context.Background(), "k", strings.NewReader("x"), "text/plain")
	assert.ErrorContains(t, err, "cos put k")
}
