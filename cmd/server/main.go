package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	v1 "newsapi/api/v1"
	"newsapi/config"
	"newsapi/dao"
	"newsapi/internal/auth"
	"newsapi/internal/logger"
	myvalidator "newsapi/internal/validator"
	"newsapi/middleware"
	"newsapi/service"
)

func main() {
	// 初始化配置
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "."
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Load config failed: %v", err)
	}

	zlog, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Init logger failed: %v", err)
	}
	defer zlog.Sync()

	// 初始化文档库
	db, err := dao.Connect(context.Background(), cfg.Mongo)
	if err != nil {
		log.Fatalf("Connect mongo failed: %v", err)
	}
	if err := dao.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatalf("Ensure indexes failed: %v", err)
	}
	colls := dao.NewCollections(db)

	rdb := config.NewRedis(cfg.Redis)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Connect redis failed: %v", err)
	}

	// 初始化服务层和 API 层
	userAPI := v1.NewUserAPI(service.NewUserService(colls.Users, zlog))
	articleAPI := v1.NewArticleAPI(service.NewArticleService(colls.Articles, cfg.Server.Timezone, zlog))
	tagAPI := v1.NewTagAPI(service.NewTagService(colls.Tags, zlog))

	// 注册自定义校验器
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("mobile", myvalidator.IsMobile); err != nil {
			log.Fatalf("Register validator failed: %v", err)
		}
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(""),
		middleware.RequestLogger(zlog),
		middleware.ErrorHandler(zlog),
	)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/")
	if cfg.Auth.Enabled {
		tm := auth.NewTokenManager(cfg.JWT)
		api.Use(middleware.AuthMiddleware(tm, auth.NewBlacklist(rdb)))
	}
	{
		api.GET("/queryUsers", userAPI.Query)
		api.POST("/queryUsers", userAPI.Query)
		registerLimiter := middleware.RegisterRateLimiter(rdb,
			cfg.RateLimit.RegisterLimit, time.Duration(cfg.RateLimit.RegisterWindow)*time.Second)
		api.POST("/createUser", registerLimiter, userAPI.Create)
		api.POST("/updateUser", userAPI.Update)

		api.POST("/queryArticles", articleAPI.Query)
		api.POST("/createArticle", articleAPI.Create)
		api.POST("/updateArticle", articleAPI.Update)
		api.POST("/deleteArticle", articleAPI.Delete)

		api.POST("/queryTags", tagAPI.Query)
		api.POST("/createTag", tagAPI.Create)
		api.POST("/updateTag", tagAPI.Update)
		api.POST("/deleteTag", tagAPI.Delete)
	}

	// 启动服务
	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
