package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jsenjoyer123/T-NEWS/config"
	"github.com/jsenjoyer123/T-NEWS/internal/api/auth"
	"github.com/jsenjoyer123/T-NEWS/internal/api/feed"
	"github.com/jsenjoyer123/T-NEWS/internal/middleware"
	"github.com/jsenjoyer123/T-NEWS/internal/repository/memory"
	"github.com/jsenjoyer123/T-NEWS/internal/service"
	"github.com/jsenjoyer123/T-NEWS/internal/storage"
	"github.com/jsenjoyer123/T-NEWS/internal/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			util.Logger.Error("程序发生严重错误", zap.Any("error", r))
		}
	}()

	// 初始化配置
	config.Init()

	// 初始化日志
	util.InitLogger(config.AppConfig.LogLevel)
	defer util.Logger.Sync()

	util.Logger.Info("应用程序启动")

	// 注册自定义验证器
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("username", util.ValidateUsername)
	}

	// 初始化本地照片存储
	localStorage, err := storage.NewLocalStorage(config.AppConfig.LocalStoragePath)
	if err != nil {
		util.Logger.Fatal("初始化本地存储失败", zap.Error(err))
	}

	// 初始化内存仓库、服务和处理器。
	// 评论仓库先于帖子仓库创建：帖子删除时通过注入的级联能力清理评论
	userRepo := memory.NewUserRepository()
	commentRepo := memory.NewCommentRepository()
	postRepo := memory.NewPostRepository(commentRepo)
	profileRepo := memory.NewProfileRepository()

	userService := service.NewUserService(userRepo)
	feedService := service.NewFeedService(postRepo, commentRepo, profileRepo)

	// 插入种子用户，在开始处理请求之前完成
	if err := userService.SeedDefaultUser(config.AppConfig.SeedUser, config.AppConfig.SeedPass); err != nil {
		util.Logger.Fatal("创建种子用户失败", zap.Error(err))
	}

	authHandler := auth.NewAuthHandler(userService)
	postHandler := feed.NewPostHandler(feedService)
	commentHandler := feed.NewCommentHandler(feedService)
	profileHandler := feed.NewProfileHandler(feedService, localStorage)

	// 初始化错误监控
	errorMonitor := middleware.NewErrorMonitor()

	// 设置 Gin 路由
	r := gin.Default()

	// 添加中间件
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.ErrorMonitorMiddleware(errorMonitor))

	// 配置 CORS，前端携带Cookie跨域访问
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{config.AppConfig.FrontendURL}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	r.Use(cors.New(corsConfig))

	// 上传的照片走静态路由对外提供
	r.Static("/uploads", config.AppConfig.LocalStoragePath)

	// 认证相关路由
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.GET("/hello", middleware.AuthMiddleware(), authHandler.Hello)

	// 帖子相关路由
	r.GET("/posts", postHandler.ListPosts)
	r.GET("/posts/:id", postHandler.GetPost)
	r.POST("/posts", postHandler.CreatePost)
	r.PUT("/posts/:id", postHandler.UpdatePost)
	r.DELETE("/posts/:id", postHandler.DeletePost)

	// 评论相关路由
	r.GET("/comments", commentHandler.ListComments)
	r.GET("/comments/:id", commentHandler.GetComment)
	r.POST("/comments", commentHandler.CreateComment)
	r.PUT("/comments/:id", commentHandler.UpdateComment)
	r.DELETE("/comments/:id", commentHandler.DeleteComment)

	// 资料相关路由
	r.GET("/profiles", profileHandler.ListProfiles)
	r.GET("/profiles/:id", profileHandler.GetProfile)
	r.POST("/profiles", profileHandler.CreateProfile)
	r.PUT("/profiles/:id", profileHandler.UpdateProfile)
	r.DELETE("/profiles/:id", profileHandler.DeleteProfile)
	r.POST("/profiles/:id/photo", middleware.AuthMiddleware(), profileHandler.UploadPhoto)

	// 配置了前端目录时，未匹配的路径按静态文件处理
	if config.AppConfig.StaticDir != "" {
		r.NoRoute(gin.WrapH(http.FileServer(http.Dir(config.AppConfig.StaticDir))))
	}

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.Port,
		Handler: r,
	}

	// 在一个新的 goroutine 中启动服务器
	go func() {
		util.Logger.Info("服务器正在启动", zap.String("port", config.AppConfig.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			util.Logger.Fatal("启动服务器失败", zap.Error(err))
		}
	}()

	// 等待中断信号以优雅地关闭服务器（设置 5 秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	util.Logger.Info("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		util.Logger.Fatal("服务器强制关闭", zap.Error(err))
	}

	util.Logger.Info("服务器已优雅关闭")
}
