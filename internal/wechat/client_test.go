package wechat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "wx-app", "wx-secret", nil)
}

func TestCode2Session(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sns/jscode2session", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "wx-app", q.Get("appid"))
		assert.Equal(t, "wx-secret", q.Get("secret"))
		assert.Equal(t, "code-1", q.Get("js_code"))
		assert.Equal(t, "authorization_code", q.Get("grant_type"))
		// 微信这里返回 text/plain
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(`{"openid":"o-1","session_key":"sk"}`))
	})

	s, err := c.Code2Session(context.Background(), "code-1")
	require.NoError(t, err)
	assert.Equal(t, "o-1", s.OpenID)
	assert.Equal(t, "sk", s.SessionKey)
}

func TestCode2Session_Errors(t *testing.T) {
	t.Run("errcode", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"errcode":40029,"errmsg":"invalid code"}`))
		})
		_, err := c.Code2Session(context.Background(), "bad")
		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, 40029, apiErr.Code)
	})

	t.Run("no openid", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"session_key":"sk"}`))
		})
		_, err := c.Code2Session(context.Background(), "x")
		assert.ErrorIs(t, err, ErrNoOpenID)
	})

	t.Run("http status", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		_, err := c.Code2Session(context.Background(), "x")
		assert.Error(t, err)
	})
}

func TestAccessToken_Cached(t *testing.T) {
	var hits atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "/cgi-bin/token", r.URL.Path)
		assert.Equal(t, "client_credential", r.URL.Query().Get("grant_type"))
		_, _ = w.Write([]byte(`{"access_token":"tok-1","expires_in":7200}`))
	})

	for i := 0; i < 3; i++ {
		tok, err := c.AccessToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "tok-1", tok)
	}
	assert.Equal(t, int32(1), hits.Load())
}

func TestAccessToken_RetriesWhenBusy(t *testing.T) {
	var hits atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			_, _ = w.Write([]byte(`{"errcode":-1,"errmsg":"system busy"}`))
			return
		}
		_, _ = w.Write([]byte(`{"access_token":"tok-2","expires_in":7200}`))
	})

	tok, err := c.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-2", tok)
	assert.Equal(t, int32(2), hits.Load())
}

func TestAccessToken_BadSecretIsPermanent(t *testing.T) {
	var hits atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"errcode":40125,"errmsg":"invalid appsecret"}`))
	})

	_, err := c.AccessToken(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 40125, apiErr.Code)
	assert.Equal(t, int32(1), hits.Load())
}

func TestMsgSecCheck(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/cgi-bin/token":
			_, _ = w.Write([]byte(`{"access_token":"tok","expires_in":7200}`))
		case "/wxa/msg_sec_check":
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "tok", r.URL.Query().Get("access_token"))
			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, float64(2), body["version"])
			assert.Equal(t, float64(SceneComment), body["scene"])
			assert.Equal(t, "o-1", body["openid"])
			_, _ = w.Write([]byte(`{"errcode":0,"result":{"suggest":"risky","label":20001}}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	res, err := c.MsgSecCheck(context.Background(), "o-1", "bad words", SceneComment)
	require.NoError(t, err)
	assert.True(t, res.Risky())
	assert.Equal(t, 20001, res.Label)
}

func TestMsgSecCheck_RefreshesRejectedToken(t *testing.T) {
	for _, code := range []int{40001, 42001} {
		var tokenHits, checkHits atomic.Int32
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/cgi-bin/token":
				n := tokenHits.Add(1)
				_, _ = fmt.Fprintf(w, `{"access_token":"tok-%d","expires_in":7200}`, n)
			case "/wxa/msg_sec_check":
				if checkHits.Add(1) == 1 {
					assert.Equal(t, "tok-1", r.URL.Query().Get("access_token"))
					_ = json.NewEncoder(w).Encode(map[string]interface{}{"errcode": code, "errmsg": "invalid credential"})
					return
				}
				assert.Equal(t, "tok-2", r.URL.Query().Get("access_token"))
				_, _ = w.Write([]byte(`{"errcode":0,"result":{"suggest":"pass","label":100}}`))
			}
		})

		res, err := c.MsgSecCheck(context.Background(), "o-1", "你好", SceneComment)
		require.NoError(t, err)
		assert.False(t, res.Risky())
		assert.Equal(t, int32(2), tokenHits.Load())
		assert.Equal(t, int32(2), checkHits.Load())

		tok, ok := c.tokens.Get(context.Background())
		assert.True(t, ok)
		assert.Equal(t, "tok-2", tok)
	}
}

func TestMsgSecCheck_RetriesOnlyOnce(t *testing.T) {
	var tokenHits, checkHits atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/cgi-bin/token":
			tokenHits.Add(1)
			_, _ = w.Write([]byte(`{"access_token":"tok","expires_in":7200}`))
		case "/wxa/msg_sec_check":
			checkHits.Add(1)
			_, _ = w.Write([]byte(`{"errcode":40001,"errmsg":"invalid credential"}`))
		}
	})

	_, err := c.MsgSecCheck(context.Background(), "o-1", "你好", SceneComment)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 40001, apiErr.Code)
	assert.Equal(t, int32(2), tokenHits.Load())
	assert.Equal(t, int32(2), checkHits.Load())
}

func TestMsgSecCheck_OtherErrorsNotRetried(t *testing.T) {
	var checkHits atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/cgi-bin/token":
			_, _ = w.Write([]byte(`{"access_token":"tok","expires_in":7200}`))
		case "/wxa/msg_sec_check":
			checkHits.Add(1)
			_, _ = w.Write([]byte(`{"errcode":87014,"errmsg":"risky content"}`))
		}
	})

	_, err := c.MsgSecCheck(context.Background(), "o-1", "x", SceneComment)
	require.Error(t, err)
	assert.Equal(t, int32(1), checkHits.Load())
}

func TestTokenStores(t *testing.T) {
	ctx := context.Background()

	mem := NewMemoryTokenStore()
	_, ok := mem.Get(ctx)
	assert.False(t, ok)
	require.NoError(t, mem.Set(ctx, "a", time.Hour))
	tok, ok := mem.Get(ctx)
	assert.True(t, ok)
	assert.Equal(t, "a", tok)
	require.NoError(t, mem.Set(ctx, "b", -time.Second))
	_, ok = mem.Get(ctx)
	assert.False(t, ok)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	rs := NewRedisTokenStore(rdb)
	require.NoError(t, rs.Set(ctx, "r", 10*time.Minute))
	tok, ok = rs.Get(ctx)
	assert.True(t, ok)
	assert.Equal(t, "r", tok)
	assert.Equal(t, 10*time.Minute, mr.TTL(accessTokenKey))

	mr.FastForward(11 * time.Minute)
	_, ok = rs.Get(ctx)
	assert.False(t, ok)

	require.NoError(t, rs.Set(ctx, "r2", time.Hour))
	require.NoError(t, rs.Delete(ctx))
	assert.False(t, mr.Exists(accessTokenKey))
	require.NoError(t, mem.Set(ctx, "c", time.Hour))
	require.NoError(t, mem.Delete(ctx))
	_, ok = mem.Get(ctx)
	assert.False(t, ok)
}
