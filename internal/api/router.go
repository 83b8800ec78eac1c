package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	sentrygin "github.com/getsentry/sentry-go/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	_ "github.com/d60-Lab/food-share-server/docs"
	"github.com/d60-Lab/food-share-server/internal/api/handler"
	"github.com/d60-Lab/food-share-server/internal/api/middleware"
	"github.com/d60-Lab/food-share-server/internal/auth"
)

// HealthFunc 返回健康检查详情，error 非空时返回 503
type HealthFunc func(ctx context.Context) (gin.H, error)

// Options 路由依赖
type Options struct {
	Handler      *handler.Handler
	AdminSigner  *auth.Signer
	ClientSigner *auth.Signer
	AdminHeader  string
	ClientHeader string
	Limiter      *middleware.IPLimiter
	Health       HealthFunc
	// Sentry 为 true 时挂载 sentrygin
	Sentry bool
	// TracingService 非空时挂载 otelgin
	TracingService string
}

func NewRouter(o Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if o.Sentry {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	if o.TracingService != "" {
		r.Use(otelgin.Middleware(o.TracingService))
	}
	r.Use(middleware.RequestID(), middleware.Logger())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader,
			o.AdminHeader, o.ClientHeader, "Authorization"},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	r.GET("/health", health(o.Health))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	limit := func(c *gin.Context) { c.Next() }
	if o.Limiter != nil {
		limit = o.Limiter.Handler()
	}
	h := o.Handler

	admin := r.Group("/admin")
	admin.POST("/login", limit, h.AdminLogin)
	{
		authed := admin.Group("", middleware.RequireAuth(o.AdminSigner, o.AdminHeader))

		authed.GET("/tweets", h.PageTweets)
		authed.GET("/tweets/detail/:id", h.TweetDetail)
		authed.POST("/tweets", h.SaveTweet)
		authed.DELETE("/tweets/:id", h.DeleteTweet)
		authed.GET("/tweets/types", h.TypeTree)
		authed.POST("/tweets/types", h.SaveType)
		authed.DELETE("/tweets/types/:id", h.DeleteType)

		authed.GET("/activities", h.PageActivities)
		authed.GET("/activities/detail/:id", h.ActivityDetail)
		authed.POST("/activities", h.SaveActivity)
		authed.DELETE("/activities/:id", h.DeleteActivity)

		authed.GET("/dicts", h.ListDicts)
		authed.POST("/dicts", h.SaveDict)
		authed.DELETE("/dicts/:id", h.DeleteDict)

		authed.GET("/crowds", h.ListCrowds)
		authed.GET("/crowds/page", h.PageCrowds)
		authed.POST("/crowds", h.SaveCrowd)
		authed.DELETE("/crowds/:id", h.DeleteCrowd)

		authed.GET("/clients/page", h.PageClientUsers)
		authed.POST("/clients/update", h.UpdateClientUser)
		authed.DELETE("/clients/:id", h.DeleteClientUser)

		authed.GET("/users", h.ListAdmins)
		authed.GET("/users/page", h.PageAdmins)
		authed.GET("/users/detail/:id", h.AdminDetail)
		authed.POST("/users", h.CreateAdmin)
		authed.PUT("/users", h.UpdateAdmin)
		authed.POST("/users/status/:id", h.SetAdminStatus)
		authed.POST("/common/upload", h.Upload)
	}

	client := r.Group("/client")
	{
		// 未登录也可访问
		public := client.Group("", middleware.OptionalAuth(o.ClientSigner, o.ClientHeader))
		public.POST("/user/login", limit, h.WxLogin)
		public.POST("/tweets/rand", limit, h.RandTweets)
		public.POST("/tweets/popular", limit, h.PopularTweets)
		public.GET("/dicts/:name", h.GetDict)

		authed := client.Group("", middleware.RequireAuth(o.ClientSigner, o.ClientHeader))
		authed.GET("/user/info/:id", h.UserInfo)
		authed.POST("/user/update", h.UpdateProfile)

		authed.GET("/tweets/types", h.TypeTree)
		authed.GET("/tweets/page", h.PageTweets)
		authed.GET("/tweets/detail/:id", h.TweetDetail)
		authed.POST("/tweets/like-collect", h.LikeCollect)
		authed.POST("/tweets/browse/:id", h.Browse)
		authed.GET("/tweets/status/:id", h.InteractionStatus)
		authed.GET("/tweets/records", h.Records)
		authed.POST("/tweets/comments", h.PostComment)
		authed.GET("/tweets/comments/:id", h.ListComments)
		authed.POST("/tweets/recommendations", limit, h.Recommendations)
		authed.POST("/tweets/recommendations/feedback", h.RecommendationFeedback)

		authed.GET("/activity/page", h.PageActivities)
		authed.GET("/activity/detail/:id", h.ActivityDetail)
		authed.POST("/activity/join", h.JoinActivity)
		authed.GET("/activity/joined/ids", h.JoinedActivityIDs)
		authed.GET("/activity/joined", h.JoinedActivities)
		authed.GET("/activity/messages", h.Messages)

		authed.POST("/upload", h.Upload)
	}
	return r
}

func health(fn HealthFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		body := gin.H{"status": "ok"}
		if fn != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			details, err := fn(ctx)
			for k, v := range details {
				body[k] = v
			}
			if err != nil {
				body["status"] = "unavailable"
				body["error"] = err.Error()
				c.JSON(http.StatusServiceUnavailable, body)
				return
			}
		}
		c.JSON(http.StatusOK, body)
	}
}
