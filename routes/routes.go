package routes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eagleboard/eagleboard-backend/config"
	"github.com/eagleboard/eagleboard-backend/internal/event"
	"github.com/eagleboard/eagleboard-backend/internal/upload"

	_ "github.com/eagleboard/eagleboard-backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const Version = "1.0.0"

func Setup(r *gin.Engine, cfg *config.Config) error {
	sink, err := upload.NewSink(cfg.UploadDir, "/uploads")
	if err != nil {
		return err
	}

	var repo event.Repository
	switch cfg.StoreBackend {
	case "badger":
		badgerRepo, err := event.NewBadgerRepository(cfg.BadgerPath)
		if err != nil {
			return err
		}
		repo = badgerRepo
	default:
		repo = event.NewFileRepository(cfg.DataFile)
	}

	eventService := event.NewService(repo, sink, cfg.RequireFutureDate)
	eventHandler := event.NewHandler(eventService)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "EagleBoard", "version": Version})
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ========== Events ==========
	r.GET("/events", eventHandler.ListEvents)
	r.POST("/events", eventHandler.CreateEvent)

	// ========== Poster files ==========
	r.GET("/uploads/:filename", func(c *gin.Context) {
		serveUpload(c, sink)
	})

	return nil
}

// serveUpload hands back a stored poster. The sink rejects any name that
// resolves outside the upload directory.
func serveUpload(c *gin.Context, sink *upload.Sink) {
	filename := c.Param("filename")

	path, err := sink.Resolve(filename)
	if err != nil {
		if errors.Is(err, upload.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "File not found",
				"message": "The requested file does not exist or has been moved",
				"path":    "/uploads/" + filename,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "File access error"})
		return
	}

	c.File(path)
}
