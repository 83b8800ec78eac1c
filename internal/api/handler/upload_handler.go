package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/food-share-server/pkg/response"
)

const maxUploadSize = 10 << 20

// Upload 上传图片到对象存储
// @Summary 上传文件
// @Tags 公共
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "文件"
// @Success 200 {object} response.Response{data=string}
// @Router /client/upload [post]
// @Router /admin/common/upload [post]
func (h *Handler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}
	if fh.Size > maxUploadSize {
		response.BadRequest(c, "file too large")
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	defer f.Close()

	url, err := h.svc.Uploads.Upload(c.Request.Context(), fh.Filename, f, fh.Header.Get("Content-Type"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, url)
}
