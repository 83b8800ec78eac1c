package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"

	"github.com/d60-Lab/food-share-server/internal/model"
	"github.com/d60-Lab/food-share-server/internal/service"
	"github.com/d60-Lab/food-share-server/pkg/response"
)

type tweetRequest struct {
	ID       int64  `json:"id"`
	TypePID  int64  `json:"tweetsTypePid" binding:"required"`
	TypeCIDs string `json:"tweetsTypeCid"`
	Title    string `json:"tweetsTitle" binding:"required,max=255"`
	Author   string `json:"tweetsUser"`
	Describe string `json:"tweetsDescribe"`
	Img      string `json:"tweetsImg"`
	Content  string `json:"tweetsContent"`
}

// PageTweets 推文分页
// @Summary 推文分页
// @Tags 推文
// @Produce json
// @Param page query int false "页码" default(1)
// @Param pageSize query int false "每页数量" default(10)
// @Param typePid query int false "一级类目"
// @Param orderBy query string false "hot 或 new"
// @Success 200 {object} response.Response{data=service.PageResult}
// @Router /client/tweets/page [get]
// @Router /admin/tweets [get]
func (h *Handler) PageTweets(c *gin.Context) {
	page, pageSize := pageQuery(c)
	q := service.TweetPageQuery{Page: page, PageSize: pageSize, OrderBy: c.Query("orderBy")}
	if v := c.Query("typePid"); v != "" {
		pid, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.BadRequest(c, "invalid typePid")
			return
		}
		q.TypePID = &pid
	}
	res, err := h.svc.Tweets.Page(c.Request.Context(), q)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, res)
}

// TweetDetail 推文详情（含类目名称）
// @Summary 推文详情
// @Tags 推文
// @Produce json
// @Param id path int true "推文ID"
// @Success 200 {object} response.Response{data=model.TweetView}
// @Router /client/tweets/detail/{id} [get]
// @Router /admin/tweets/detail/{id} [get]
func (h *Handler) TweetDetail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.svc.Tweets.Detail(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, view)
}

// SaveTweet 新增或修改推文
// @Summary 保存推文
// @Tags 后台-推文
// @Accept json
// @Produce json
// @Param request body tweetRequest true "推文"
// @Success 200 {object} response.Response{data=model.Tweet}
// @Failure 400 {object} response.Response
// @Router /admin/tweets [post]
func (h *Handler) SaveTweet(c *gin.Context) {
	var req tweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	var t model.Tweet
	if err := copier.Copy(&t, &req); err != nil {
		response.InternalError(c, err)
		return
	}
	if err := h.svc.Tweets.Save(c.Request.Context(), &t); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, t)
}

// DeleteTweet 删除推文
// @Summary 删除推文
// @Tags 后台-推文
// @Param id path int true "推文ID"
// @Success 200 {object} response.Response
// @Router /admin/tweets/{id} [delete]
func (h *Handler) DeleteTweet(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Tweets.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, nil)
}

type typeRequest struct {
	ID       int64  `json:"id"`
	Name     string `json:"name" binding:"required,max=64"`
	ParentID *int64 `json:"parentId"`
}

// TypeTree 两级类目树
// @Summary 类目树
// @Tags 推文
// @Produce json
// @Success 200 {object} response.Response{data=[]model.TweetTypeNode}
// @Router /client/tweets/types [get]
// @Router /admin/tweets/types [get]
func (h *Handler) TypeTree(c *gin.Context) {
	tree, err := h.svc.Types.Tree(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, tree)
}

// SaveType 新增或修改类目
// @Summary 保存类目
// @Tags 后台-推文
// @Accept json
// @Param request body typeRequest true "类目"
// @Success 200 {object} response.Response{data=model.TweetType}
// @Router /admin/tweets/types [post]
func (h *Handler) SaveType(c *gin.Context) {
	var req typeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	t := model.TweetType{ID: req.ID, Name: req.Name, ParentID: req.ParentID}
	if err := h.svc.Types.Save(c.Request.Context(), &t); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, t)
}

// DeleteType 删除类目，被推文使用时拒绝
// @Summary 删除类目
// @Tags 后台-推文
// @Param id path int true "类目ID"
// @Success 200 {object} response.Response
// @Router /admin/tweets/types/{id} [delete]
func (h *Handler) DeleteType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Types.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, nil)
}
