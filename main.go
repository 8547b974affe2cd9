package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "AMS-backend/docs"
	"AMS-backend/internal/asset_mgmt/assets"
	"AMS-backend/internal/asset_mgmt/borrows"
	"AMS-backend/internal/asset_mgmt/dashboard"
	"AMS-backend/internal/asset_mgmt/employees"
	"AMS-backend/internal/platform/auth"
	"AMS-backend/internal/platform/config"
	"AMS-backend/internal/platform/upstream"
)

// @title AMS-backend API
// @version 1.0
// @description 資産・貸出の正規化とレポート/ダッシュボード集計を提供する BFF
// @BasePath /api/v1
func main() {
	// .env はあれば読む（トークン類をファイルに書かない運用）
	_ = godotenv.Load()

	// 設定読み込み
	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		panic(err)
	}

	// 動作モード取得
	mode := cfg.Mode
	log.Printf("[INFO] mode:%s\n", mode)

	if mode != "dev" && mode != "release" {
		fmt.Println("Usage: go run main.go [dev|release]")
		return
	}

	// upstream クライアントとサービス群
	client := upstream.NewClient(
		upstream.Endpoint{URL: cfg.Upstream.Asset.URL, Token: cfg.Upstream.Asset.Token},
		upstream.Endpoint{URL: cfg.Upstream.Borrow.URL, Token: cfg.Upstream.Borrow.Token},
		upstream.Endpoint{URL: cfg.Upstream.Employee.URL, Token: cfg.Upstream.Employee.Token},
	)
	assetSvc := assets.NewService(client)
	borrowSvc := borrows.NewService(client)
	dashboardSvc := dashboard.NewService(assetSvc, borrowSvc)
	employeeSvc := employees.NewService(client)
	authSvc := auth.NewService(cfg.Auth.Secret, cfg.Auth.Email, cfg.Auth.PasswordHash)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	_ = r.SetTrustedProxies(nil)

	if mode == "dev" {
		// CORS（開発中のみ必要）
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Idempotency-Key"},
			ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowCredentials: true,
		}))
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// ヘルス
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	// /api/v1
	api := r.Group("/api/v1")
	auth.RegisterRoutes(api, authSvc)

	protected := api.Group("")
	protected.Use(auth.RequireAuth(authSvc.Secret()))
	assets.RegisterRoutes(protected, assetSvc)
	borrows.RegisterRoutes(protected, borrowSvc)
	dashboard.RegisterRoutes(protected, dashboardSvc)
	employees.RegisterRoutes(protected, employeeSvc)

	srv := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: r,
	}

	go func() {
		if cfg.Certificate.Cert != "" && cfg.Certificate.Key != "" {
			certFile := fmt.Sprintf("config/tls/%s/%s", mode, cfg.Certificate.Cert)
			keyFile := fmt.Sprintf("config/tls/%s/%s", mode, cfg.Certificate.Key)
			log.Printf("[INFO] listening on https://%s", cfg.HTTP.Addr)
			if err := srv.ListenAndServeTLS(certFile, keyFile); err != nil && err != http.ErrServerClosed {
				log.Fatal(err)
			}
			return
		}
		log.Printf("[INFO] listening on http://%s", cfg.HTTP.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Println("[INFO] shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
