package server

import (
	"net/http"
	"sort"

	"textmud/internal/db"

	"github.com/gin-gonic/gin"
)

type routeInfo struct {
	Method string `json:"method"`
	Path   string `json:"path"`
	Name   string `json:"name"`
}

func (s *Server) routes() {
	s.handle(http.MethodPost, "/player/create/:name", "create_player", s.handleCreatePlayer)
	s.handle(http.MethodPost, "/player/create/:name/:location", "create_player_at", s.handleCreatePlayer)
	s.entityRoutes("player", getEntity[db.Player], listEntities[db.Player], deleteEntity[db.Player])

	s.handle(http.MethodPost, "/thing/create/:name", "create_thing", s.handleCreateThing)
	s.handle(http.MethodPost, "/thing/create/:name/:location", "create_thing_at", s.handleCreateThing)
	s.entityRoutes("thing", getEntity[db.Thing], listEntities[db.Thing], deleteEntity[db.Thing])

	s.handle(http.MethodPost, "/location/create/:name/:description", "create_location", s.handleCreateLocation)
	s.entityRoutes("location", getEntity[db.Location], listEntities[db.Location], deleteEntity[db.Location])

	s.handle(http.MethodPost, "/playerlocation/create/:player/:location", "create_playerlocation", s.handleCreatePlayerLocation)
	s.handle(http.MethodPost, "/playerlocation/create/:player/:location/:description", "create_playerlocation_described", s.handleCreatePlayerLocation)
	s.entityRoutes("playerlocation", getEntity[db.PlayerLocation], listEntities[db.PlayerLocation], deleteEntity[db.PlayerLocation])

	s.handle(http.MethodGet, "/listroutes", "list_routes", s.handleListRoutes)
	s.handle(http.MethodGet, "/healthz", "health", s.handleHealth)
}

type entityHandler func(s *Server, entity string) gin.HandlerFunc

func (s *Server) entityRoutes(entity string, get, list, remove entityHandler) {
	s.handle(http.MethodGet, "/"+entity+"/get/:id", "get_"+entity, get(s, entity))
	s.handle(http.MethodGet, "/"+entity+"/list", "list_"+entity, list(s, entity))
	s.handle(http.MethodDelete, "/"+entity+"/delete/:id", "delete_"+entity, remove(s, entity))
}

func (s *Server) handle(method, path, name string, handler gin.HandlerFunc) {
	s.engine.Handle(method, path, handler)
	s.routeNames[method+" "+path] = name
}

func (s *Server) handleListRoutes(c *gin.Context) {
	registered := s.engine.Routes()
	routes := make([]routeInfo, 0, len(registered))
	for _, route := range registered {
		routes = append(routes, routeInfo{
			Method: route.Method,
			Path:   route.Path,
			Name:   s.routeNames[route.Method+" "+route.Path],
		})
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return routes[i].Method < routes[j].Method
	})
	c.JSON(http.StatusOK, routes)
}

func (s *Server) handleHealth(c *gin.Context) {
	if err := s.gateway.Ping(c.Request.Context()); err != nil {
		s.requestLog(c).Error("health check failed", "error", err)
		writeError(c, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
