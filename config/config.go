package config

import (
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// Config 结构体用于存储应用程序的配置信息
type Config struct {
	Port             string
	CookieSecret     string
	SeedUser         string
	SeedPass         string
	LogLevel         string
	FrontendURL      string
	StaticDir        string
	LocalStoragePath string
	Debug            bool // 是否开启调试模式
}

// AppConfig 是全局配置变量
var AppConfig Config

// Init 函数用于初始化配置
func Init() {
	// 加载 .env 文件
	err := godotenv.Load()
	if err != nil {
		log.Printf("警告：无法加载 .env 文件: %v", err)
	}

	// 从环境变量中读取配置，进程启动时读取一次，不支持运行时重载
	AppConfig = Config{
		Port:             getEnv("PORT", "3000"),
		CookieSecret:     getEnv("COOKIE_SECRET", ""),
		SeedUser:         getEnv("SEED_USER", "test"),
		SeedPass:         getEnv("SEED_PASS", "test"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		FrontendURL:      getEnv("FRONTEND_URL", "http://localhost:8080"),
		StaticDir:        getEnv("STATIC_DIR", ""),
		LocalStoragePath: getEnv("LOCAL_STORAGE_PATH", "./uploads"),
		Debug:            getEnvAsBool("DEBUG", true),
	}

	validateConfig()

	if AppConfig.Debug {
		gin.SetMode(gin.DebugMode)
		log.Println("应用程序运行在调试模式")
	} else {
		gin.SetMode(gin.ReleaseMode)
		log.Println("应用程序运行在生产模式")
	}

	log.Printf("配置加载完成。监听端口：%s", AppConfig.Port)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultVal bool) bool {
	valStr := getEnv(key, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return defaultVal
}

func validateConfig() {
	if AppConfig.CookieSecret == "" {
		log.Fatal("错误：Cookie签名密钥未设置")
	}
	if AppConfig.SeedUser == "" || AppConfig.SeedPass == "" {
		log.Fatal("错误：种子用户配置不完整")
	}
}
