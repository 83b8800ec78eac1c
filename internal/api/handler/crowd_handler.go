package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"

	"github.com/d60-Lab/food-share-server/internal/model"
	"github.com/d60-Lab/food-share-server/internal/service"
	"github.com/d60-Lab/food-share-server/pkg/response"
)

type crowdRequest struct {
	ID       int64  `json:"id"`
	Title    string `json:"crowdTitle" binding:"required,min=3,max=16"`
	Type     string `json:"crowdType" binding:"max=64"`
	Img      string `json:"crowdImg" binding:"required"`
	Describe string `json:"crowdDescribe" binding:"required"`
}

// ListCrowds 人群列表
// @Summary 人群列表
// @Tags 后台-人群
// @Security AdminAuth
// @Success 200 {object} response.Response{data=[]model.Crowd}
// @Router /admin/crowds [get]
func (h *Handler) ListCrowds(c *gin.Context) {
	list, err := h.svc.Crowds.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, list)
}

// PageCrowds 人群分页，标题与描述模糊匹配
// @Summary 人群分页
// @Tags 后台-人群
// @Security AdminAuth
// @Param crowdTitle query string false "标题"
// @Param crowdDescribe query string false "描述"
// @Param page query int false "页码" default(1)
// @Param pageSize query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=service.PageResult}
// @Router /admin/crowds/page [get]
func (h *Handler) PageCrowds(c *gin.Context) {
	page, pageSize := pageQuery(c)
	res, err := h.svc.Crowds.Page(c.Request.Context(), service.CrowdPageQuery{
		Page:     page,
		PageSize: pageSize,
		Title:    c.Query("crowdTitle"),
		Describe: c.Query("crowdDescribe"),
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, res)
}

// SaveCrowd 新增或修改人群
// @Summary 保存人群
// @Tags 后台-人群
// @Accept json
// @Security AdminAuth
// @Param request body crowdRequest true "人群"
// @Success 200 {object} response.Response{data=model.Crowd}
// @Router /admin/crowds [post]
func (h *Handler) SaveCrowd(c *gin.Context) {
	var req crowdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	var cr model.Crowd
	if err := copier.Copy(&cr, &req); err != nil {
		response.InternalError(c, err)
		return
	}
	if err := h.svc.Crowds.Save(c.Request.Context(), &cr); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, cr)
}

// DeleteCrowd 删除人群
// @Summary 删除人群
// @Tags 后台-人群
// @Security AdminAuth
// @Param id path int true "人群ID"
// @Success 200 {object} response.Response
// @Router /admin/crowds/{id} [delete]
func (h *Handler) DeleteCrowd(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Crowds.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, nil)
}
