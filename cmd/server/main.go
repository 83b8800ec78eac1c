package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/d60-Lab/food-share-server/config"
	"github.com/d60-Lab/food-share-server/internal/api"
	"github.com/d60-Lab/food-share-server/internal/api/handler"
	"github.com/d60-Lab/food-share-server/internal/api/middleware"
	"github.com/d60-Lab/food-share-server/internal/auth"
	"github.com/d60-Lab/food-share-server/internal/model"
	"github.com/d60-Lab/food-share-server/internal/recommend"
	"github.com/d60-Lab/food-share-server/internal/repository"
	"github.com/d60-Lab/food-share-server/internal/service"
	"github.com/d60-Lab/food-share-server/internal/storage"
	"github.com/d60-Lab/food-share-server/internal/wechat"
	"github.com/d60-Lab/food-share-server/pkg/database"
	"github.com/d60-Lab/food-share-server/pkg/logger"
	"github.com/d60-Lab/food-share-server/pkg/tracing"
)

// @title Food Share API
// @version 1.0
// @description 美食分享小程序后端：推文、推荐、互动、活动
// @BasePath /
// @securityDefinitions.apikey AdminAuth
// @in header
// @name token
// @securityDefinitions.apikey ClientAuth
// @in header
// @name authentication
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
		}); err != nil {
			return fmt.Errorf("init sentry: %w", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	shutdownTracing, err := tracing.Init(ctx, cfg.Tracing)
	if err != nil {
		return err
	}
	defer func() { _ = shutdownTracing(context.Background()) }()

	db, err := database.InitDB(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close(db) }()
	if err := database.Migrate(db, model.All()...); err != nil {
		return err
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unavailable, continuing without cache", zap.Error(err))
		}
	}

	// repositories
	tweetRepo := repository.NewTweetRepository(db)
	typeRepo := repository.NewTweetTypeRepository(db)
	content := repository.NewContentStore(db)
	records := repository.NewRecordRepository(db)

	// recommendation engine
	engine, breaker := buildRecommender(cfg.Recommendation, db, content)
	var popularCache service.PopularInvalidator
	if rdb != nil {
		cached := recommend.NewPopularCache(engine, rdb, cfg.Recommendation.PopularCacheTTL)
		engine, popularCache = cached, cached
	}

	// wechat
	var tokens wechat.TokenStore = wechat.NewMemoryTokenStore()
	if rdb != nil {
		tokens = wechat.NewRedisTokenStore(rdb)
	}
	wx := wechat.NewClient(cfg.WeChat.BaseURL, cfg.WeChat.AppID, cfg.WeChat.Secret, tokens)

	var objects storage.ObjectStore
	if cfg.COS.BucketURL != "" {
		cos, err := storage.NewCOSStore(cfg.COS)
		if err != nil {
			return err
		}
		objects = cos
	}

	var recorder *service.BrowseRecorder
	if cfg.Browse.Async {
		recorder = service.NewBrowseRecorder(records, cfg.Browse.QueueSize)
		stopRecorder := recorder.Start(cfg.Browse.Workers)
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := stopRecorder(stopCtx); err != nil {
				logger.Warn("browse recorder stop", zap.Error(err))
			}
		}()
		go drainMetrics(recorder)
	}

	adminSigner := auth.NewSigner(cfg.JWT.AdminSecret, cfg.JWT.AdminTTL, auth.KindAdmin)
	clientSigner := auth.NewSigner(cfg.JWT.ClientSecret, cfg.JWT.ClientTTL, auth.KindClient)

	h := handler.New(handler.Services{
		Tweets:         service.NewTweetService(tweetRepo, typeRepo, popularCache),
		Types:          service.NewTweetTypeService(typeRepo, tweetRepo),
		RandTweets:     service.NewRandTweetService(content),
		Recommendation: service.NewRecommendationService(engine, tweetRepo, cfg.Recommendation.Method, cfg.Recommendation.Count),
		Feedback:       service.NewFeedbackService(repository.NewFeedbackRepository(db)),
		Interactions:   service.NewInteractionService(records, tweetRepo, recorder),
		Comments:       service.NewCommentService(repository.NewCommentRepository(db), tweetRepo, wx),
		Users:          service.NewUserService(repository.NewClientUserRepository(db), wx, wx, clientSigner),
		Admins:         service.NewAdminService(repository.NewEndUserRepository(db), adminSigner),
		Activities:     service.NewActivityService(repository.NewActivityRepository(db)),
		Dicts:          service.NewDictService(repository.NewDictRepository(db)),
		Crowds:         service.NewCrowdService(repository.NewCrowdRepository(db)),
		Uploads:        service.NewUploadService(objects, cfg.COS.Prefix),
	})

	limiter := middleware.NewIPLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	stopSweep := limiter.Start(time.Minute)
	defer stopSweep()

	gin.SetMode(cfg.Server.Mode)
	tracingService := ""
	if cfg.Tracing.Enabled {
		tracingService = cfg.Tracing.ServiceName
	}
	router := api.NewRouter(api.Options{
		Handler:        h,
		AdminSigner:    adminSigner,
		ClientSigner:   clientSigner,
		AdminHeader:    cfg.JWT.AdminTokenName,
		ClientHeader:   cfg.JWT.ClientTokenName,
		Limiter:        limiter,
		Health:         healthCheck(db, rdb, breaker, recorder),
		Sentry:         cfg.Sentry.DSN != "",
		TracingService: tracingService,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// buildRecommender 按配置选择推荐实现；外部进程模式下套一层熔断
func buildRecommender(cfg config.RecommendationConfig, db *gorm.DB, content repository.ContentStore) (recommend.Recommender, *recommend.Breaker) {
	switch cfg.Engine {
	case "local":
		logger.Info("recommendation engine: local")
		return recommend.NewLocalRecommender(db, content), nil
	default:
		logger.Info("recommendation engine: process",
			zap.String("command", cfg.Command), zap.String("path", cfg.Path), zap.Duration("timeout", cfg.Timeout))
		b := recommend.NewBreaker(
			recommend.NewProcessRecommender(cfg.Command, cfg.Path, cfg.Timeout),
			recommend.BreakerConfig{FailureThreshold: cfg.BreakerFailures, Timeout: cfg.BreakerTimeout},
		)
		return b, b
	}
}

func healthCheck(db *gorm.DB, rdb *redis.Client, breaker *recommend.Breaker, recorder *service.BrowseRecorder) api.HealthFunc {
	return func(ctx context.Context) (gin.H, error) {
		details := gin.H{}
		if breaker != nil {
			details["recommendation_breaker"] = breaker.State()
		}
		if recorder != nil {
			details["browse_queue"] = recorder.QueueLen()
		}
		if rdb != nil {
			if err := rdb.Ping(ctx).Err(); err != nil {
				details["redis"] = "down"
			} else {
				details["redis"] = "up"
			}
		}
		sqlDB, err := db.DB()
		if err != nil {
			return details, err
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			return details, fmt.Errorf("database: %w", err)
		}
		return details, nil
	}
}

// drainMetrics 每分钟输出一次浏览记录落库延迟
func drainMetrics(r *service.BrowseRecorder) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	var (
		count int
		total time.Duration
		peak  time.Duration
	)
	for {
		select {
		case d := <-r.Metrics():
			count++
			total += d
			if d > peak {
				peak = d
			}
		case <-ticker.C:
			if count > 0 {
				logger.Info("browse recorder landing",
					zap.Int("samples", count),
					zap.Duration("avg", total/time.Duration(count)),
					zap.Duration("max", peak),
					zap.Int("queue", r.QueueLen()))
			}
			count, total, peak = 0, 0, 0
		}
	}
}
