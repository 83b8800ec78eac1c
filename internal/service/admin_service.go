package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/d60-Lab/food-share-server/internal/auth"
	"github.com/d60-Lab/food-share-server/internal/model"
	"github.com/d60-Lab/food-share-server/internal/repository"
)

var ErrBadCredentials = errors.New("invalid username or password")

// AdminService 后台用户
type AdminService interface {
	Login(ctx context.Context, userName, password string) (*LoginResult, error)
	// Create 重复用户名返回 *repository.DuplicateError
	Create(ctx context.Context, u *model.EndUser, password string) error

	List(ctx context.Context) ([]*model.EndUser, error)
	Page(ctx context.Context, nickName string, page, pageSize int) (*PageResult, error)
	Detail(ctx context.Context, id int64) (*model.EndUser, error)
	// Update 修改资料；password 非空时一并重置密码
	Update(ctx context.Context, u *model.EndUser, password string) error
	// SetStatus 启用或禁用，禁用后无法登录
	SetStatus(ctx context.Context, id int64, status string) error
}

type adminService struct {
	users  repository.EndUserRepository
	signer *auth.Signer
}

func NewAdminService(users repository.EndUserRepository, signer *auth.Signer) AdminService {
	return &adminService{users: users, signer: signer}
}

func (s *adminService) Login(ctx context.Context, userName, password string) (*LoginResult, error) {
	u, err := s.users.GetByUserName(ctx, userName)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrBadCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrBadCredentials
	}
	if u.Status != model.StatusEnabled {
		return nil, ErrUserDisabled
	}

	name := u.NickName
	if name == "" {
		name = u.UserName
	}
	token, err := s.signer.Issue(u.ID, name)
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: u, Token: token}, nil
}

func (s *adminService) Create(ctx context.Context, u *model.EndUser, password string) error {
	if !validStatus(u.Status, true) {
		return ErrInvalidStatus
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	if u.Status == "" {
		u.Status = model.StatusEnabled
	}
	return s.users.Create(ctx, u)
}

func (s *adminService) List(ctx context.Context) ([]*model.EndUser, error) {
	return s.users.List(ctx)
}

func (s *adminService) Page(ctx context.Context, nickName string, page, pageSize int) (*PageResult, error) {
	page, pageSize = normalizePage(page, pageSize)
	items, total, err := s.users.Page(ctx, nickName, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	return newPageResult(page, pageSize, total, items), nil
}

func (s *adminService) Detail(ctx context.Context, id int64) (*model.EndUser, error) {
	u, err := s.users.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}

func (s *adminService) Update(ctx context.Context, u *model.EndUser, password string) error {
	u.UserName, u.Status, u.Password = "", "", ""
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hash)
	}
	err := s.users.Update(ctx, u)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

func (s *adminService) SetStatus(ctx context.Context, id int64, status string) error {
	if !validStatus(status, false) {
		return ErrInvalidStatus
	}
	err := s.users.SetStatus(ctx, id, status)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}
