package main

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/diaandrei/Flexiro-sub000/cache"
	"github.com/diaandrei/Flexiro-sub000/config"
	notificationControllers "github.com/diaandrei/Flexiro-sub000/controllers/notification"
	paymentControllers "github.com/diaandrei/Flexiro-sub000/controllers/payment"
	"github.com/diaandrei/Flexiro-sub000/logger"
	"github.com/diaandrei/Flexiro-sub000/models"
	"github.com/diaandrei/Flexiro-sub000/routes"
)

func main() {
	log := logger.New("marketplace-api")
	log.Info().Msg("starting application")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	db := initDatabase(cfg, log)

	if err := db.AutoMigrate(
		&models.User{},
		&models.GuestUser{},
		&models.Shop{},
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderDetail{},
		&models.ShippingAddress{},
		&models.Review{},
		&models.UserWishlist{},
		&models.Notification{},
		&models.Payment{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate failed")
	}

	catalog := initCatalogCache(cfg, log)
	hub := notificationControllers.NewHub(log)
	gateway := paymentControllers.NewGatewayClient(cfg.Gateway)

	r := gin.Default()
	r.MaxMultipartMemory = 32 << 20 // 32 MB

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded shop logos and product images
	r.Static("/uploads", cfg.UploadDir)

	routes.SetupRoutes(r, routes.Deps{
		DB:      db,
		Cfg:     cfg,
		Catalog: catalog,
		Hub:     hub,
		Gateway: gateway,
		Log:     log,
	})

	// Back up uploads at 2 AM daily, keep 4 days of backups
	go startDailyBackupAtFixedTime(log, cfg.UploadDir, cfg.BackupDir, 4*24*time.Hour, 2, 0)

	log.Info().Str("port", cfg.Port).Msg("server listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

// initDatabase sets up the GORM connection to PostgreSQL.
func initDatabase(cfg *config.Config, log zerolog.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("db connection failed")
	}
	return db
}

// initCatalogCache connects to Redis when configured, otherwise the
// catalog cache is a no-op.
func initCatalogCache(cfg *config.Config, log zerolog.Logger) cache.Cache {
	if cfg.RedisAddr == "" {
		return cache.Noop{}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	log.Info().Str("addr", cfg.RedisAddr).Msg("catalog cache enabled")
	return cache.NewRedisCache(client, "flexiro")
}

// startDailyBackupAtFixedTime copies the uploads folder daily at a
// fixed hour and prunes backups older than the retention window.
func startDailyBackupAtFixedTime(log zerolog.Logger, srcDir, backupDir string, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		log.Info().Time("next_run", next).Msg("upload backup scheduled")
		time.Sleep(next.Sub(now))

		timestamp := time.Now().Format("2006-01-02_15-04-05")
		destDir := filepath.Join(backupDir, timestamp)

		if err := copyDir(srcDir, destDir); err != nil {
			log.Error().Err(err).Msg("upload backup failed")
		} else {
			log.Info().Str("dest", destDir).Msg("uploads backed up")
		}

		cleanupOldBackups(log, backupDir, retention)
	}
}

// copyDir recursively copies a folder.
func copyDir(src, dest string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0755); err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		destPath := filepath.Join(dest, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, destPath); err != nil {
				return err
			}
		} else {
			if err := copyFile(srcPath, destPath); err != nil {
				return err
			}
		}
	}
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// cleanupOldBackups removes backup folders older than the retention window.
func cleanupOldBackups(log zerolog.Logger, backupDir string, retention time.Duration) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		log.Error().Err(err).Msg("failed to read backup directory")
		return
	}

	cutoff := time.Now().Add(-retention)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folderPath := filepath.Join(backupDir, entry.Name())
		info, err := os.Stat(folderPath)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.RemoveAll(folderPath); err != nil {
				log.Error().Err(err).Str("path", folderPath).Msg("failed to remove old backup")
			} else {
				log.Info().Str("path", folderPath).Msg("removed old backup")
			}
		}
	}
}
