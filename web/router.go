// Package web assembles the gin engine from the injected collaborators.
package web

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"retailpulse.com/retailpulse/config"
	"retailpulse.com/retailpulse/session"
	"retailpulse.com/retailpulse/storage"
	"retailpulse.com/retailpulse/web/handlers"
)

func NewRouter(cfg *config.Config, store storage.Storage, sessions *session.Manager, logger *logrus.Logger) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	if cfg.AllowOrigins == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = strings.Split(cfg.AllowOrigins, ",")
		corsCfg.AllowCredentials = true
	}
	r.Use(cors.New(corsCfg))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	api := r.Group("/api")
	handlers.Register(api, &handlers.Endpoint{
		Cfg:      cfg,
		Store:    store,
		Sessions: sessions,
		Logger:   logger,
	})

	return r
}
