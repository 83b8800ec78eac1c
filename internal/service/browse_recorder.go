package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/d60-Lab/food-share-server/internal/model"
	"github.com/d60-Lab/food-share-server/internal/repository"
	"github.com/d60-Lab/food-share-server/pkg/logger"
)

type browseJob struct {
	userID  int64
	tweetID int64
	enqAt   time.Time
}

// BrowseRecorder 浏览记录异步落库，队列满时丢弃并告警
type BrowseRecorder struct {
	records   repository.RecordRepository
	ch        chan browseJob
	metricsCh chan time.Duration
}

func NewBrowseRecorder(records repository.RecordRepository, queueSize int) *BrowseRecorder {
	if queueSize <= 0 {
		queueSize = 10000
	}
	return &BrowseRecorder{
		records:   records,
		ch:        make(chan browseJob, queueSize),
		metricsCh: make(chan time.Duration, 1024),
	}
}

// Start 启动 workers 个消费者，返回停止函数；停止时先处理完队列中剩余的记录
func (r *BrowseRecorder) Start(workers int) func(context.Context) error {
	if workers <= 0 {
		workers = 2
	}
	stopCh := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case job := <-r.ch:
					r.handle(job)
				case <-stopCh:
					for {
						select {
						case job := <-r.ch:
							r.handle(job)
						default:
							return
						}
					}
				}
			}
		}()
	}

	var once sync.Once
	return func(ctx context.Context) error {
		once.Do(func() { close(stopCh) })
		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			logger.Warn("browse recorder stop timeout", zap.Int("pending", len(r.ch)))
			return ctx.Err()
		}
	}
}

func (r *BrowseRecorder) handle(job browseJob) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.records.Touch(ctx, job.userID, job.tweetID, model.RecordBrowse); err != nil {
		logger.Error("record browse failed",
			zap.Int64("user_id", job.userID), zap.Int64("tweet_id", job.tweetID), zap.Error(err))
	}
	select {
	case r.metricsCh <- time.Since(job.enqAt):
	default:
	}
}

// Enqueue 非阻塞入队，返回是否成功
func (r *BrowseRecorder) Enqueue(userID, tweetID int64) bool {
	select {
	case r.ch <- browseJob{userID: userID, tweetID: tweetID, enqAt: time.Now()}:
		return true
	default:
		logger.Warn("browse queue full, drop",
			zap.Int64("user_id", userID), zap.Int64("tweet_id", tweetID))
		return false
	}
}

// Metrics 每落库一条发送一次入队到落库的耗时
func (r *BrowseRecorder) Metrics() <-chan time.Duration { return r.metricsCh }

// QueueLen 当前队列长度（采样值）
func (r *BrowseRecorder) QueueLen() int { return len(r.ch) }
