package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/food-share-server/internal/model"
	"github.com/d60-Lab/food-share-server/pkg/response"
)

type dictRequest struct {
	ID        int64  `json:"id"`
	DictName  string `json:"dictName" binding:"required,max=64"`
	DictValue string `json:"dictValue"`
}

// ListDicts 字典列表
// @Summary 字典列表
// @Tags 后台-字典
// @Security AdminAuth
// @Success 200 {object} response.Response{data=[]model.SysDict}
// @Router /admin/dicts [get]
func (h *Handler) ListDicts(c *gin.Context) {
	list, err := h.svc.Dicts.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, list)
}

// GetDict 按名称取字典
// @Summary 字典
// @Tags 字典
// @Param name path string true "字典名"
// @Success 200 {object} response.Response{data=model.SysDict}
// @Router /client/dicts/{name} [get]
func (h *Handler) GetDict(c *gin.Context) {
	d, err := h.svc.Dicts.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, d)
}

// SaveDict 新增或修改字典，重名返回 "<name> 已存在"
// @Summary 保存字典
// @Tags 后台-字典
// @Accept json
// @Security AdminAuth
// @Param request body dictRequest true "字典"
// @Success 200 {object} response.Response{data=model.SysDict}
// @Router /admin/dicts [post]
func (h *Handler) SaveDict(c *gin.Context) {
	var req dictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	d := model.SysDict{ID: req.ID, DictName: req.DictName, DictValue: req.DictValue}
	if err := h.svc.Dicts.Save(c.Request.Context(), &d); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, d)
}

// DeleteDict 删除字典
// @Summary 删除字典
// @Tags 后台-字典
// @Security AdminAuth
// @Param id path int true "字典ID"
// @Success 200 {object} response.Response
// @Router /admin/dicts/{id} [delete]
func (h *Handler) DeleteDict(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Dicts.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, nil)
}
