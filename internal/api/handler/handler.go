package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/food-share-server/internal/auth"
	"github.com/d60-Lab/food-share-server/internal/repository"
	"github.com/d60-Lab/food-share-server/internal/service"
	"github.com/d60-Lab/food-share-server/pkg/response"
)

// Services 处理器依赖的全部服务
type Services struct {
	Tweets         service.TweetService
	Types          service.TweetTypeService
	RandTweets     service.RandTweetService
	Recommendation service.RecommendationService
	Feedback       service.FeedbackService
	Interactions   service.InteractionService
	Comments       service.CommentService
	Users          service.UserService
	Admins         service.AdminService
	Activities     service.ActivityService
	Dicts          service.DictService
	Crowds         service.CrowdService
	Uploads        service.UploadService
}

type Handler struct {
	svc Services
}

func New(s Services) *Handler {
	return &Handler{svc: s}
}

// businessMessages 业务错误对应的提示，HTTP 200 + 错误码返回
var businessMessages = []struct {
	err error
	msg string
}{
	{service.ErrTweetNotFound, "推文不存在"},
	{service.ErrTweetTypeInUse, "该类型已被推文使用，无法删除"},
	{service.ErrTweetTypeNotFound, "类型不存在"},
	{service.ErrInvalidRecordType, "操作类型错误"},
	{service.ErrEmptyComment, "评论内容不能为空"},
	{service.ErrContentRisky, "内容违规，请检查"},
	{service.ErrLoginFailed, "微信登录失败"},
	{service.ErrUserNotFound, "用户不存在"},
	{service.ErrUserDisabled, "账号已被禁用"},
	{service.ErrBadCredentials, "用户名或密码错误"},
	{service.ErrAlreadyJoined, "您已参加该活动"},
	{service.ErrActivityNotFound, "活动不存在"},
	{service.ErrDictNotFound, "字典不存在"},
	{service.ErrCrowdNotFound, "人群不存在"},
	{service.ErrInvalidStatus, "状态错误"},
	{service.ErrUploadDisabled, "未配置对象存储"},
}

// fail 业务错误转为提示，其余按内部错误处理
func fail(c *gin.Context, err error) {
	var dup *repository.DuplicateError
	if errors.As(err, &dup) {
		response.Fail(c, dup.Value+" 已存在")
		return
	}
	for _, m := range businessMessages {
		if errors.Is(err, m.err) {
			response.Fail(c, m.msg)
			return
		}
	}
	response.InternalError(c, err)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}

func pageQuery(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	return page, pageSize
}

// currentUser 认证中间件写入的当前用户
func currentUser(c *gin.Context) int64 {
	id, _ := auth.FromContext(c.Request.Context())
	return id.UserID
}
