package server

import (
	"textmud/internal/db"

	"github.com/gin-gonic/gin"
)

type createLocationURI struct {
	Name        string `uri:"name" binding:"required"`
	Description string `uri:"description" binding:"required"`
}

var createLocationMessages = bindMessages{
	"Name":        {"required": "name is required"},
	"Description": {"required": "description is required"},
}

func (s *Server) handleCreateLocation(c *gin.Context) {
	var req createLocationURI
	if !bindURI(c, &req, createLocationMessages, "invalid location") {
		return
	}
	s.create(c, "location", db.NewLocation(req.Name, req.Description), nil)
}
