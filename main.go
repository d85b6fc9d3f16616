package main

import (
	"log"
	"strings"
	"time"

	"photoserver/auth"
	"photoserver/config"
	"photoserver/db"
	"photoserver/handlers"
	"photoserver/models"
	"photoserver/repo"
	"photoserver/services"
	"photoserver/storage"
	"photoserver/vision"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const (
	sessionCookieName     = "token"
	sessionExpirationTime = 30 * 86400 // 30 days
)

func main() {
	if err := godotenv.Load(); err == nil {
		config.Load()
	}
	db.Init()
	models.Init()

	store, err := storage.NewFromConfig()
	if err != nil {
		log.Fatalf("Storage init failed: %v", err)
	}
	var detector vision.Provider = vision.Disabled{}
	if config.LABEL_DETECT && config.S3_BUCKET != "" {
		detector, err = vision.NewRekognition(config.S3_BUCKET, config.S3_REGION, config.S3_PREFIX)
		if err != nil {
			log.Fatalf("Rekognition init failed: %v", err)
		}
	}

	users := repo.NewUsers(db.Instance)
	photos := repo.NewPhotos(db.Instance)
	albums := repo.NewAlbums(db.Instance)
	photoService := services.NewPhotoService(users, photos, store, detector)
	photoService.MaxLabels = int64(config.LABEL_MAX)
	photoService.MinLabelConfidence = config.LABEL_MIN_CONFIDENCE
	handlers.Init(
		services.NewUserService(users),
		photoService,
		services.NewAlbumService(users, photos, albums),
	)

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "PUT", "POST", "DELETE"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))

	sessionKey := config.SESSION_KEY
	if sessionKey == "" {
		if !config.DEBUG_MODE {
			log.Fatal("SESSION_KEY must be configured")
		}
		sessionKey = "insecure-dev-session-key"
	}
	cookieStore := gormsessions.NewStore(db.Instance, true, []byte(sessionKey))
	cookieStore.Options(sessions.Options{MaxAge: sessionExpirationTime})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/api/photos/fetch"})))
	}

	// Custom Auth Router
	authRouter := &auth.Router{Base: router}
	// Auth handlers
	router.POST("/api/auth/register", handlers.UserRegister)
	router.POST("/api/auth/login", handlers.UserLogin)
	authRouter.POST("/api/auth/logout", handlers.UserLogout)
	authRouter.GET("/api/auth/status", handlers.UserGetStatus)
	authRouter.DELETE("/api/account", handlers.UserDelete)
	// Photo handlers
	authRouter.POST("/api/photos", handlers.PhotoUpload)
	authRouter.GET("/api/photos", handlers.PhotoList)
	authRouter.GET("/api/photos/fetch", handlers.PhotoFetch)
	authRouter.GET("/api/photos/search/bytag", handlers.PhotoSearchByTag)
	authRouter.GET("/api/photos/search/bylabel", handlers.PhotoSearchByLabel)
	authRouter.GET("/api/photos/:id", handlers.PhotoGet)
	authRouter.POST("/api/photos/:id/tags", handlers.PhotoAddTag)
	authRouter.DELETE("/api/photos/:id", handlers.PhotoDelete)
	// Album handlers
	authRouter.POST("/api/albums", handlers.AlbumCreate)
	authRouter.GET("/api/albums", handlers.AlbumList)
	authRouter.GET("/api/albums/search", handlers.AlbumSearch)
	authRouter.GET("/api/albums/:id", handlers.AlbumGet)
	authRouter.GET("/api/albums/:id/photos", handlers.AlbumPhotos)
	authRouter.POST("/api/albums/:id/photos/:photoId", handlers.AlbumAddPhoto)

	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}
