// Package wechat 小程序服务端接口：登录凭证校验、access_token、文本内容安全检测
package wechat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"

	"github.com/d60-Lab/food-share-server/pkg/logger"
)

const DefaultBaseURL = "https://api.weixin.qq.com"

// 内容检测场景
const (
	SceneProfile = 1
	SceneComment = 2
)

// 检测建议
const (
	SuggestPass   = "pass"
	SuggestReview = "review"
	SuggestRisky  = "risky"
)

var ErrNoOpenID = errors.New("wechat: no openid in response")

// access_token 无效或已过期
const (
	codeInvalidToken = 40001
	codeExpiredToken = 42001
)

// APIError 微信接口返回的非零 errcode
type APIError struct {
	Code int    `json:"errcode"`
	Msg  string `json:"errmsg"`
}

func (e *APIError) Error() string { return fmt.Sprintf("wechat: errcode %d: %s", e.Code, e.Msg) }

func (e *APIError) tokenRejected() bool {
	return e.Code == codeInvalidToken || e.Code == codeExpiredToken
}

// Session jscode2session 结果
type Session struct {
	OpenID     string `json:"openid"`
	SessionKey string `json:"session_key"`
	UnionID    string `json:"unionid"`
}

// CheckResult msg_sec_check 结果
type CheckResult struct {
	Suggest string `json:"suggest"`
	Label   int    `json:"label"`
}

func (r CheckResult) Risky() bool { return r.Suggest == SuggestRisky }

type Client struct {
	baseURL string
	appID   string
	secret  string
	http    *http.Client
	tokens  TokenStore
}

func NewClient(baseURL, appID, secret string, tokens TokenStore) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if tokens == nil {
		tokens = NewMemoryTokenStore()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		appID:   appID,
		secret:  secret,
		http:    &http.Client{Timeout: 5 * time.Second},
		tokens:  tokens,
	}
}

func (c *Client) Code2Session(ctx context.Context, code string) (*Session, error) {
	q := url.Values{}
	q.Set("appid", c.appID)
	q.Set("secret", c.secret)
	q.Set("js_code", code)
	q.Set("grant_type", "authorization_code")

	var resp struct {
		Session
		APIError
	}
	if err := c.do(ctx, http.MethodGet, "/sns/jscode2session?"+q.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	if resp.Code != 0 {
		return nil, &resp.APIError
	}
	if resp.OpenID == "" {
		return nil, ErrNoOpenID
	}
	return &resp.Session, nil
}

// AccessToken 优先取缓存，过期前 5 分钟刷新
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	if tok, ok := c.tokens.Get(ctx); ok {
		return tok, nil
	}

	type tokenResp struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
		APIError
	}
	q := url.Values{}
	q.Set("grant_type", "client_credential")
	q.Set("appid", c.appID)
	q.Set("secret", c.secret)

	resp, err := backoff.Retry(ctx, func() (*tokenResp, error) {
		var r tokenResp
		if err := c.do(ctx, http.MethodGet, "/cgi-bin/token?"+q.Encode(), nil, &r); err != nil {
			return nil, err
		}
		if r.Code != 0 {
			// appid/secret 错误重试无意义；-1 为微信系统繁忙
			if r.Code != -1 {
				return nil, backoff.Permanent(&r.APIError)
			}
			return nil, &r.APIError
		}
		return &r, nil
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(3))
	if err != nil {
		logger.Error("wechat access_token failed", zap.Error(err))
		return "", err
	}

	ttl := time.Duration(resp.ExpiresIn)*time.Second - 5*time.Minute
	if ttl <= 0 {
		ttl = time.Minute
	}
	if err := c.tokens.Set(ctx, resp.AccessToken, ttl); err != nil {
		logger.Warn("cache access_token failed", zap.Error(err))
	}
	return resp.AccessToken, nil
}

// MsgSecCheck 文本内容安全检测（v2）。缓存的 token 被微信拒绝时换新 token 重试一次
func (c *Client) MsgSecCheck(ctx context.Context, openID, content string, scene int) (*CheckResult, error) {
	res, err := c.msgSecCheck(ctx, openID, content, scene)
	var apiErr *APIError
	if err == nil || !errors.As(err, &apiErr) || !apiErr.tokenRejected() {
		return res, err
	}
	logger.Warn("wechat access_token rejected, refreshing", zap.Int("errcode", apiErr.Code))
	if dErr := c.tokens.Delete(ctx); dErr != nil {
		logger.Warn("drop cached access_token failed", zap.Error(dErr))
	}
	return c.msgSecCheck(ctx, openID, content, scene)
}

func (c *Client) msgSecCheck(ctx context.Context, openID, content string, scene int) (*CheckResult, error) {
	token, err := c.AccessToken(ctx)
	if err != nil {
		return nil, err
	}
	body := map[string]interface{}{
		"content": content,
		"version": 2,
		"scene":   scene,
		"openid":  openID,
	}
	var resp struct {
		Result CheckResult `json:"result"`
		APIError
	}
	if err := c.do(ctx, http.MethodPost, "/wxa/msg_sec_check?access_token="+url.QueryEscape(token), body, &resp); err != nil {
		return nil, err
	}
	if resp.Code != 0 {
		return nil, &resp.APIError
	}
	return &resp.Result, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("wechat request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("wechat: http status %d", resp.StatusCode)
	}
	// jscode2session 返回 text/plain，按 JSON 解析即可
	return json.NewDecoder(resp.Body).Decode(out)
}
