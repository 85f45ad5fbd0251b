package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	gormlogger "gorm.io/gorm/logger"

	"github.com/vnkhanh/study-assistant-backend/config"
	"github.com/vnkhanh/study-assistant-backend/controllers"
	"github.com/vnkhanh/study-assistant-backend/logger"
	"github.com/vnkhanh/study-assistant-backend/middleware"
	"github.com/vnkhanh/study-assistant-backend/routes"
	"github.com/vnkhanh/study-assistant-backend/store"
	"github.com/vnkhanh/study-assistant-backend/utils"
	"github.com/vnkhanh/study-assistant-backend/ws"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()

	appLog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatal("cannot build logger: ", err)
	}
	defer appLog.Sync()
	if envErr != nil {
		appLog.Info("no .env file found, using process environment")
	}

	gormLevel := gormlogger.Info
	if cfg.Env == "production" {
		gormLevel = gormlogger.Warn
		gin.SetMode(gin.ReleaseMode)
	}

	hub := ws.NewHub(appLog.With("component", "ws"))

	var st store.Store
	if cfg.DB.UsesGorm() {
		db, err := config.OpenDB(cfg.DB, gormLevel)
		if err != nil {
			appLog.Fatal("database init failed", "driver", cfg.DB.Driver, "error", err)
		}
		appLog.Info("database connected & migrated", "driver", cfg.DB.Driver)
		st = store.NewGormStore(db, hub.RecordCreated)
	} else {
		bs, err := store.OpenBoltStore(cfg.DB.BoltPath, hub.RecordCreated)
		if err != nil {
			appLog.Fatal("database init failed", "driver", cfg.DB.Driver, "error", err)
		}
		defer bs.Close()
		appLog.Info("bolt store opened", "path", cfg.DB.BoltPath)
		st = bs
	}

	h := controllers.NewHandler(st, appLog)
	h.MaxUpload = cfg.MaxUploadMB << 20
	h.WSClients = hub.ClientCount
	if cfg.Supabase.Enabled() {
		h.Archiver = utils.NewSupabaseArchiver(cfg.Supabase.URL, cfg.Supabase.Key, cfg.Supabase.Bucket)
		appLog.Info("upload archive enabled", "bucket", cfg.Supabase.Bucket)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(appLog), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))
	r = routes.SetupRouter(r, h, hub)

	appLog.Info("server running", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		appLog.Fatal("server stopped", "error", err)
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
