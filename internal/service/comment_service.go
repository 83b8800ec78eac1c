package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/d60-Lab/food-share-server/internal/model"
	"github.com/d60-Lab/food-share-server/internal/repository"
	"github.com/d60-Lab/food-share-server/internal/wechat"
	"github.com/d60-Lab/food-share-server/pkg/logger"
)

var (
	ErrEmptyComment = errors.New("comment content is empty")
	ErrContentRisky = errors.New("content rejected by security check")
)

// ContentChecker 文本内容安全检测
type ContentChecker interface {
	MsgSecCheck(ctx context.Context, openID, content string, scene int) (*wechat.CheckResult, error)
}

// CommentInput 发表评论参数；OpenID 非空时先做内容检测
type CommentInput struct {
	UserID  int64
	TweetID int64
	Content string
	Img     string
	OpenID  string
}

type CommentService interface {
	Post(ctx context.Context, in CommentInput) error
	List(ctx context.Context, tweetID int64) ([]*model.TweetComment, error)
}

type commentService struct {
	comments repository.CommentRepository
	tweets   repository.TweetRepository
	checker  ContentChecker
}

func NewCommentService(comments repository.CommentRepository, tweets repository.TweetRepository, checker ContentChecker) CommentService {
	return &commentService{comments: comments, tweets: tweets, checker: checker}
}

func (s *commentService) Post(ctx context.Context, in CommentInput) error {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return ErrEmptyComment
	}
	if _, err := s.tweets.GetByID(ctx, in.TweetID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTweetNotFound
		}
		return err
	}
	if err := checkContent(ctx, s.checker, in.OpenID, content, wechat.SceneComment); err != nil {
		return err
	}
	return s.comments.Create(ctx, &model.TweetComment{
		TweetsID:     in.TweetID,
		ClientUserID: in.UserID,
		Content:      content,
		Img:          in.Img,
	})
}

func (s *commentService) List(ctx context.Context, tweetID int64) ([]*model.TweetComment, error) {
	return s.comments.ListByTweet(ctx, tweetID)
}

// checkContent 检测接口不可用时放行，只拦截明确判定为 risky 的内容
func checkContent(ctx context.Context, checker ContentChecker, openID, content string, scene int) error {
	if checker == nil || openID == "" {
		return nil
	}
	res, err := checker.MsgSecCheck(ctx, openID, content, scene)
	if err != nil {
		logger.Warn("msg_sec_check failed, skip", zap.Int("scene", scene), zap.Error(err))
		return nil
	}
	if res.Risky() {
		return ErrContentRisky
	}
	return nil
}
