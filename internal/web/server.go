package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Server struct {
	router    *gin.Engine
	log       *logrus.Logger
	generator Generator
	platform  VKGateway
	users     UserStorage
	sessions  SessionStorage
}

func NewServer(log *logrus.Logger, generator Generator, platform VKGateway, users UserStorage, sessions SessionStorage) *Server {
	s := &Server{
		router:    gin.New(),
		log:       log,
		generator: generator,
		platform:  platform,
		users:     users,
		sessions:  sessions,
	}

	s.router.Use(gin.Recovery())

	s.router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	s.router.POST("/register", s.handleRegister)
	s.router.POST("/login", s.handleLogin)

	authorized := s.router.Group("/", s.requireAuth)
	authorized.POST("/logout", s.handleLogout)
	authorized.GET("/settings", s.handleGetSettings)
	authorized.POST("/settings", s.handleUpdateSettings)
	authorized.POST("/post-generator", s.handlePostGenerator)
	authorized.GET("/vk-stats", s.handleVKStats)
	authorized.GET("/vk-stats/summary", s.handleVKStatsSummary)

	return s
}

func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Run(port string) error {
	s.log.WithField("port", port).Info("starting web server")
	return s.router.Run(":" + port)
}
