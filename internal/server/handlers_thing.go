package server

import (
	"textmud/internal/db"

	"github.com/gin-gonic/gin"
)

type createThingURI struct {
	Name     string `uri:"name" binding:"required"`
	Location string `uri:"location"`
}

func (s *Server) handleCreateThing(c *gin.Context) {
	var req createThingURI
	if !bindURI(c, &req, bindMessages{"Name": {"required": "name is required"}}, "invalid thing") {
		return
	}
	var location *string
	if req.Location != "" {
		location = &req.Location
	}
	s.create(c, "thing", db.NewThing(req.Name, location), nil)
}
