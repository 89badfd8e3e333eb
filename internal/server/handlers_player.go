package server

import (
	"net/http"

	"textmud/internal/db"

	"github.com/gin-gonic/gin"
)

type createPlayerURI struct {
	Name     string `uri:"name" binding:"required"`
	Location string `uri:"location"`
}

var createPlayerMessages = bindMessages{
	"Name": {"required": "name is required"},
}

func (s *Server) handleCreatePlayer(c *gin.Context) {
	var req createPlayerURI
	if !bindURI(c, &req, createPlayerMessages, "invalid player") {
		return
	}
	location, err := parseOptionalID(req.Location)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid location identifier")
		return
	}
	player := db.NewPlayer(req.Name, location)
	s.create(c, "player", player, func(sess *db.Session) error {
		if location == nil {
			return nil
		}
		return db.RequireExisting[db.Location](sess, *location)
	})
}
