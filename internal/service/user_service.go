package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/d60-Lab/food-share-server/internal/auth"
	"github.com/d60-Lab/food-share-server/internal/model"
	"github.com/d60-Lab/food-share-server/internal/repository"
	"github.com/d60-Lab/food-share-server/internal/wechat"
	"github.com/d60-Lab/food-share-server/pkg/logger"
)

var (
	ErrLoginFailed  = errors.New("wechat login failed")
	ErrUserNotFound = errors.New("user not found")
	ErrUserDisabled = errors.New("user disabled")
	// ErrInvalidStatus 账号状态只能是 0 或 1
	ErrInvalidStatus = errors.New("invalid user status")
)

// SessionResolver 小程序登录凭证换 openid
type SessionResolver interface {
	Code2Session(ctx context.Context, code string) (*wechat.Session, error)
}

// LoginResult 登录结果
type LoginResult struct {
	User  interface{} `json:"user"`
	Token string      `json:"token"`
}

// UserService 小程序用户
type UserService interface {
	// WxLogin 首次登录自动注册
	WxLogin(ctx context.Context, code string) (*LoginResult, error)
	Info(ctx context.Context, id int64) (*model.ClientUser, error)
	// Update 只能修改当前用户自己的资料；昵称会做内容检测
	Update(ctx context.Context, u *model.ClientUser) error

	// 后台管理
	Page(ctx context.Context, nickName string, page, pageSize int) (*PageResult, error)
	// AdminUpdate 后台修改任意用户资料与状态，不改 openid，不做内容检测
	AdminUpdate(ctx context.Context, u *model.ClientUser) error
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	users    repository.ClientUserRepository
	sessions SessionResolver
	checker  ContentChecker
	signer   *auth.Signer
	now      func() time.Time
}

func NewUserService(users repository.ClientUserRepository, sessions SessionResolver, checker ContentChecker, signer *auth.Signer) UserService {
	return &userService{users: users, sessions: sessions, checker: checker, signer: signer, now: time.Now}
}

func (s *userService) WxLogin(ctx context.Context, code string) (*LoginResult, error) {
	sess, err := s.sessions.Code2Session(ctx, code)
	if err != nil {
		logger.Warn("code2session failed", zap.Error(err))
		return nil, ErrLoginFailed
	}

	u, err := s.users.GetByOpenID(ctx, sess.OpenID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		u = &model.ClientUser{
			OpenID:   sess.OpenID,
			NickName: fmt.Sprintf("微信用户%d", s.now().UnixMilli()),
			Status:   model.StatusEnabled,
			GetMsg:   "1",
		}
		if err := s.users.Create(ctx, u); err != nil {
			return nil, err
		}
		logger.Info("client user registered", zap.Int64("user_id", u.ID))
	case err != nil:
		return nil, err
	}
	if u.Status != "" && u.Status != model.StatusEnabled {
		return nil, ErrUserDisabled
	}

	token, err := s.signer.Issue(u.ID, u.NickName)
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: u, Token: token}, nil
}

func (s *userService) Info(ctx context.Context, id int64) (*model.ClientUser, error) {
	u, err := s.users.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}

func (s *userService) Update(ctx context.Context, u *model.ClientUser) error {
	id, ok := auth.FromContext(ctx)
	if !ok {
		return ErrUserNotFound
	}
	u.ID = id.UserID
	if u.NickName != "" {
		if u.OpenID == "" {
			cur, err := s.Info(ctx, u.ID)
			if err != nil {
				return err
			}
			u.OpenID = cur.OpenID
		}
		if err := checkContent(ctx, s.checker, u.OpenID, u.NickName, wechat.SceneProfile); err != nil {
			return err
		}
	}
	err := s.users.UpdateProfile(ctx, u)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

func (s *userService) Page(ctx context.Context, nickName string, page, pageSize int) (*PageResult, error) {
	page, pageSize = normalizePage(page, pageSize)
	items, total, err := s.users.Page(ctx, nickName, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	return newPageResult(page, pageSize, total, items), nil
}

func (s *userService) AdminUpdate(ctx context.Context, u *model.ClientUser) error {
	if !validStatus(u.Status, true) {
		return ErrInvalidStatus
	}
	u.OpenID = ""
	err := s.users.AdminUpdate(ctx, u)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}

// validStatus allowEmpty 为真时空串表示不修改
func validStatus(status string, allowEmpty bool) bool {
	switch status {
	case model.StatusEnabled, model.StatusDisabled:
		return true
	case "":
		return allowEmpty
	}
	return false
}
