package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"

	"github.com/d60-Lab/food-share-server/internal/model"
	"github.com/d60-Lab/food-share-server/internal/service"
	"github.com/d60-Lab/food-share-server/pkg/response"
)

type activityRequest struct {
	ID            int64      `json:"id"`
	Title         string     `json:"actTitle" binding:"required,max=255"`
	Type          string     `json:"actType" binding:"max=64"`
	Location      string     `json:"actLocation"`
	LocationCode  string     `json:"actLocationCode"`
	Img           string     `json:"actImg"`
	Describe      string     `json:"actDescribe"`
	StartDate     *time.Time `json:"actStartDate"`
	EndDate       *time.Time `json:"actEndDate"`
	JoinCondition string     `json:"joinCondition"`
}

type joinRequest struct {
	ActID    int64  `json:"actId" binding:"required,gt=0"`
	ActTitle string `json:"actTitle"`
	GetMsg   bool   `json:"getMsg"`
}

// PageActivities 活动分页
// @Summary 活动分页
// @Tags 活动
// @Produce json
// @Param actType query string false "活动类型"
// @Param page query int false "页码" default(1)
// @Param pageSize query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=service.PageResult}
// @Router /client/activity/page [get]
// @Router /admin/activities [get]
func (h *Handler) PageActivities(c *gin.Context) {
	page, pageSize := pageQuery(c)
	res, err := h.svc.Activities.Page(c.Request.Context(), c.Query("actType"), page, pageSize)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, res)
}

// ActivityDetail 活动详情
// @Summary 活动详情
// @Tags 活动
// @Produce json
// @Param id path int true "活动ID"
// @Success 200 {object} response.Response{data=model.Activity}
// @Router /client/activity/detail/{id} [get]
// @Router /admin/activities/detail/{id} [get]
func (h *Handler) ActivityDetail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	a, err := h.svc.Activities.Detail(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, a)
}

// SaveActivity 新增或修改活动
// @Summary 保存活动
// @Tags 后台-活动
// @Accept json
// @Security AdminAuth
// @Param request body activityRequest true "活动"
// @Success 200 {object} response.Response{data=model.Activity}
// @Router /admin/activities [post]
func (h *Handler) SaveActivity(c *gin.Context) {
	var req activityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	var a model.Activity
	if err := copier.Copy(&a, &req); err != nil {
		response.InternalError(c, err)
		return
	}
	if err := h.svc.Activities.Save(c.Request.Context(), &a); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, a)
}

// DeleteActivity 删除活动及其参与记录
// @Summary 删除活动
// @Tags 后台-活动
// @Security AdminAuth
// @Param id path int true "活动ID"
// @Success 200 {object} response.Response
// @Router /admin/activities/{id} [delete]
func (h *Handler) DeleteActivity(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Activities.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, nil)
}

// JoinActivity 参与活动
// @Summary 参与活动
// @Tags 活动
// @Accept json
// @Security ClientAuth
// @Param request body joinRequest true "活动"
// @Success 200 {object} response.Response
// @Router /client/activity/join [post]
func (h *Handler) JoinActivity(c *gin.Context) {
	var req joinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	err := h.svc.Activities.Join(c.Request.Context(), service.JoinInput{
		UserID:     currentUser(c),
		ActivityID: req.ActID,
		Title:      req.ActTitle,
		GetMsg:     req.GetMsg,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, nil)
}

// JoinedActivityIDs 当前用户参与过的活动 id
// @Summary 已参与活动 id
// @Tags 活动
// @Security ClientAuth
// @Success 200 {object} response.Response{data=[]int64}
// @Router /client/activity/joined/ids [get]
func (h *Handler) JoinedActivityIDs(c *gin.Context) {
	ids, err := h.svc.Activities.JoinedIDs(c.Request.Context(), currentUser(c))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, ids)
}

// JoinedActivities 当前用户参与过的活动
// @Summary 已参与活动
// @Tags 活动
// @Security ClientAuth
// @Success 200 {object} response.Response{data=[]model.Activity}
// @Router /client/activity/joined [get]
func (h *Handler) JoinedActivities(c *gin.Context) {
	list, err := h.svc.Activities.Joined(c.Request.Context(), currentUser(c))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, list)
}

// Messages 当前用户的消息
// @Summary 我的消息
// @Tags 活动
// @Security ClientAuth
// @Success 200 {object} response.Response{data=[]model.ClientMessage}
// @Router /client/activity/messages [get]
func (h *Handler) Messages(c *gin.Context) {
	list, err := h.svc.Activities.Messages(c.Request.Context(), currentUser(c))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, list)
}
