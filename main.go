// @title 字数限制解析服务 API
// @version 1.0
// @description 为编辑器字数统计插件解析当前页面的字数限制。

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"log"
	"wordlimit_backend/internal/app"
	"wordlimit_backend/internal/config"
	"wordlimit_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
