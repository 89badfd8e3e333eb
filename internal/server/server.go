package server

import (
	"log/slog"
	"net/http"

	"textmud/internal/config"
	"textmud/internal/db"

	"github.com/gin-gonic/gin"
)

type Server struct {
	gateway    *db.Gateway
	cfg        config.Config
	log        *slog.Logger
	engine     *gin.Engine
	routeNames map[string]string
}

func New(gateway *db.Gateway, cfg config.Config, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	registerValidators()
	s := &Server{
		gateway:    gateway,
		cfg:        cfg,
		log:        log,
		engine:     gin.New(),
		routeNames: make(map[string]string),
	}
	// Match on the escaped path so %2F stays inside a single parameter.
	s.engine.UseRawPath = true
	s.engine.UnescapePathValues = true
	s.engine.Use(s.requestLogger(), gin.CustomRecovery(s.recoverPanic))
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}
