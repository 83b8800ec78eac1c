package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/food-share-server/internal/service"
	"github.com/d60-Lab/food-share-server/pkg/response"
)

type likeCollectRequest struct {
	TweetsID int64  `json:"tweetsId" binding:"required,gt=0"`
	Type     string `json:"type" binding:"required,oneof=like collect"`
	Action   string `json:"action" binding:"required,oneof=add remove"`
}

type commentRequest struct {
	TweetsID        int64  `json:"tweetsId" binding:"required,gt=0"`
	EvaluateContent string `json:"evaluateContent" binding:"max=1000"`
	EvaluateImg     string `json:"evaluateImg"`
	OpenID          string `json:"openId"`
}

// LikeCollect 点赞/收藏与取消
// @Summary 点赞或收藏
// @Tags 互动
// @Accept json
// @Security ClientAuth
// @Param request body likeCollectRequest true "操作"
// @Success 200 {object} response.Response
// @Router /client/tweets/like-collect [post]
func (h *Handler) LikeCollect(c *gin.Context) {
	var req likeCollectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if err := h.svc.Interactions.Toggle(c.Request.Context(), currentUser(c), req.TweetsID, req.Type, req.Action); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, nil)
}

// Browse 记录浏览，浏览数 +1
// @Summary 浏览推文
// @Tags 互动
// @Security ClientAuth
// @Param id path int true "推文ID"
// @Success 200 {object} response.Response
// @Router /client/tweets/browse/{id} [post]
func (h *Handler) Browse(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Interactions.Browse(c.Request.Context(), currentUser(c), id); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, nil)
}

// InteractionStatus 当前用户对推文的点赞/收藏状态
// @Summary 点赞收藏状态
// @Tags 互动
// @Produce json
// @Security ClientAuth
// @Param id path int true "推文ID"
// @Success 200 {object} response.Response{data=service.InteractionStatus}
// @Router /client/tweets/status/{id} [get]
func (h *Handler) InteractionStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	st, err := h.svc.Interactions.Status(c.Request.Context(), currentUser(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, st)
}

// Records 我的点赞/收藏/浏览记录
// @Summary 互动记录
// @Tags 互动
// @Produce json
// @Security ClientAuth
// @Param type query string true "like / collect / browse"
// @Param page query int false "页码" default(1)
// @Param pageSize query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=service.PageResult}
// @Router /client/tweets/records [get]
func (h *Handler) Records(c *gin.Context) {
	page, pageSize := pageQuery(c)
	res, err := h.svc.Interactions.Records(c.Request.Context(), currentUser(c), c.Query("type"), page, pageSize)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, res)
}

// PostComment 发表评论，带 openId 时做内容安全检测
// @Summary 发表评论
// @Tags 互动
// @Accept json
// @Security ClientAuth
// @Param request body commentRequest true "评论"
// @Success 200 {object} response.Response
// @Router /client/tweets/comments [post]
func (h *Handler) PostComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	err := h.svc.Comments.Post(c.Request.Context(), service.CommentInput{
		UserID:  currentUser(c),
		TweetID: req.TweetsID,
		Content: req.EvaluateContent,
		Img:     req.EvaluateImg,
		OpenID:  req.OpenID,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, nil)
}

// ListComments 推文评论列表
// @Summary 评论列表
// @Tags 互动
// @Produce json
// @Param id path int true "推文ID"
// @Success 200 {object} response.Response{data=[]model.TweetComment}
// @Router /client/tweets/comments/{id} [get]
func (h *Handler) ListComments(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	list, err := h.svc.Comments.List(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, list)
}
