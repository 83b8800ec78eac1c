package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"

	"github.com/d60-Lab/food-share-server/internal/model"
	"github.com/d60-Lab/food-share-server/pkg/response"
)

type wxLoginRequest struct {
	Code string `json:"code" binding:"required"`
}

type profileRequest struct {
	OpenID   string `json:"openId"`
	NickName string `json:"nickName" binding:"max=64"`
	Avatar   string `json:"avatar"`
	Phone    string `json:"phone" binding:"max=32"`
	Sex      string `json:"sex" binding:"max=8"`
	Location string `json:"location" binding:"max=128"`
	Tags     string `json:"tags" binding:"max=255"`
	GetMsg   string `json:"getMsg" binding:"omitempty,oneof=0 1"`
}

type adminLoginRequest struct {
	UserName string `json:"userName" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type clientAdminRequest struct {
	ID       int64  `json:"id" binding:"required,gt=0"`
	NickName string `json:"nickName" binding:"max=64"`
	Avatar   string `json:"avatar"`
	Phone    string `json:"phone" binding:"max=32"`
	Sex      string `json:"sex" binding:"max=8"`
	Location string `json:"location" binding:"max=128"`
	Tags     string `json:"tags" binding:"max=255"`
	Status   string `json:"status" binding:"omitempty,oneof=0 1"`
	GetMsg   string `json:"getMsg" binding:"omitempty,oneof=0 1"`
}

type adminUpdateRequest struct {
	ID       int64  `json:"id" binding:"required,gt=0"`
	NickName string `json:"nickName" binding:"max=64"`
	Avatar   string `json:"avatar"`
	Phone    string `json:"phone" binding:"max=32"`
	Sex      string `json:"sex" binding:"max=8"`
	Password string `json:"password" binding:"omitempty,min=6"`
}

type statusRequest struct {
	Status string `json:"status" binding:"required,oneof=0 1"`
}

type adminCreateRequest struct {
	UserName string `json:"userName" binding:"required,max=64"`
	Password string `json:"password" binding:"required,min=6"`
	NickName string `json:"nickName"`
	Phone    string `json:"phone"`
}

// WxLogin 小程序登录，首次登录自动注册
// @Summary 微信登录
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body wxLoginRequest true "登录凭证"
// @Success 200 {object} response.Response{data=service.LoginResult}
// @Router /client/user/login [post]
func (h *Handler) WxLogin(c *gin.Context) {
	var req wxLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	res, err := h.svc.Users.WxLogin(c.Request.Context(), req.Code)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, res)
}

// UserInfo 用户信息
// @Summary 用户信息
// @Tags 用户
// @Produce json
// @Security ClientAuth
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response{data=model.ClientUser}
// @Router /client/user/info/{id} [get]
func (h *Handler) UserInfo(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	u, err := h.svc.Users.Info(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, u)
}

// UpdateProfile 修改当前用户资料
// @Summary 修改资料
// @Tags 用户
// @Accept json
// @Security ClientAuth
// @Param request body profileRequest true "资料"
// @Success 200 {object} response.Response
// @Router /client/user/update [post]
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	var u model.ClientUser
	if err := copier.Copy(&u, &req); err != nil {
		response.InternalError(c, err)
		return
	}
	if err := h.svc.Users.Update(c.Request.Context(), &u); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, nil)
}

// AdminLogin 后台登录
// @Summary 后台登录
// @Tags 后台-用户
// @Accept json
// @Produce json
// @Param request body adminLoginRequest true "账号密码"
// @Success 200 {object} response.Response{data=service.LoginResult}
// @Router /admin/login [post]
func (h *Handler) AdminLogin(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	res, err := h.svc.Admins.Login(c.Request.Context(), req.UserName, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, res)
}

// CreateAdmin 新增后台用户
// @Summary 新增后台用户
// @Tags 后台-用户
// @Accept json
// @Security AdminAuth
// @Param request body adminCreateRequest true "用户"
// @Success 200 {object} response.Response{data=model.EndUser}
// @Router /admin/users [post]
func (h *Handler) CreateAdmin(c *gin.Context) {
	var req adminCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	u := model.EndUser{UserName: req.UserName, NickName: req.NickName, Phone: req.Phone}
	if err := h.svc.Admins.Create(c.Request.Context(), &u, req.Password); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, u)
}

// PageClientUsers 小程序用户分页
// @Summary 小程序用户分页
// @Tags 后台-小程序用户
// @Security AdminAuth
// @Param nickName query string false "昵称"
// @Param page query int false "页码" default(1)
// @Param pageSize query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=service.PageResult}
// @Router /admin/clients/page [get]
func (h *Handler) PageClientUsers(c *gin.Context) {
	page, pageSize := pageQuery(c)
	res, err := h.svc.Users.Page(c.Request.Context(), c.Query("nickName"), page, pageSize)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, res)
}

// UpdateClientUser 后台修改小程序用户资料与状态
// @Summary 修改小程序用户
// @Tags 后台-小程序用户
// @Accept json
// @Security AdminAuth
// @Param request body clientAdminRequest true "用户"
// @Success 200 {object} response.Response
// @Router /admin/clients/update [post]
func (h *Handler) UpdateClientUser(c *gin.Context) {
	var req clientAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	var u model.ClientUser
	if err := copier.Copy(&u, &req); err != nil {
		response.InternalError(c, err)
		return
	}
	if err := h.svc.Users.AdminUpdate(c.Request.Context(), &u); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, nil)
}

// DeleteClientUser 删除小程序用户
// @Summary 删除小程序用户
// @Tags 后台-小程序用户
// @Security AdminAuth
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response
// @Router /admin/clients/{id} [delete]
func (h *Handler) DeleteClientUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Users.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, nil)
}

// ListAdmins 后台用户列表
// @Summary 后台用户列表
// @Tags 后台-用户
// @Security AdminAuth
// @Success 200 {object} response.Response{data=[]model.EndUser}
// @Router /admin/users [get]
func (h *Handler) ListAdmins(c *gin.Context) {
	list, err := h.svc.Admins.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, list)
}

// PageAdmins 后台用户分页
// @Summary 后台用户分页
// @Tags 后台-用户
// @Security AdminAuth
// @Param nickName query string false "昵称"
// @Param page query int false "页码" default(1)
// @Param pageSize query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=service.PageResult}
// @Router /admin/users/page [get]
func (h *Handler) PageAdmins(c *gin.Context) {
	page, pageSize := pageQuery(c)
	res, err := h.svc.Admins.Page(c.Request.Context(), c.Query("nickName"), page, pageSize)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, res)
}

// AdminDetail 后台用户详情
// @Summary 后台用户详情
// @Tags 后台-用户
// @Security AdminAuth
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response{data=model.EndUser}
// @Router /admin/users/detail/{id} [get]
func (h *Handler) AdminDetail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	u, err := h.svc.Admins.Detail(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, u)
}

// UpdateAdmin 修改后台用户，password 非空时重置密码
// @Summary 修改后台用户
// @Tags 后台-用户
// @Accept json
// @Security AdminAuth
// @Param request body adminUpdateRequest true "用户"
// @Success 200 {object} response.Response
// @Router /admin/users [put]
func (h *Handler) UpdateAdmin(c *gin.Context) {
	var req adminUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	u := model.EndUser{ID: req.ID, NickName: req.NickName, Avatar: req.Avatar, Phone: req.Phone, Sex: req.Sex}
	if err := h.svc.Admins.Update(c.Request.Context(), &u, req.Password); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, nil)
}

// SetAdminStatus 启用（1）或禁用（0）后台用户
// @Summary 修改后台用户状态
// @Tags 后台-用户
// @Accept json
// @Security AdminAuth
// @Param id path int true "用户ID"
// @Param request body statusRequest true "状态"
// @Success 200 {object} response.Response
// @Router /admin/users/status/{id} [post]
func (h *Handler) SetAdminStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if err := h.svc.Admins.SetStatus(c.Request.Context(), id, req.Status); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, nil)
}
