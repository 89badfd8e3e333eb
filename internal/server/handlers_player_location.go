package server

import (
	"textmud/internal/db"

	"github.com/gin-gonic/gin"
)

type createPlayerLocationURI struct {
	Player      string `uri:"player" binding:"required"`
	Location    string `uri:"location" binding:"required"`
	Description string `uri:"description"`
}

var createPlayerLocationMessages = bindMessages{
	"Player":   {"required": "invalid player identifier"},
	"Location": {"required": "invalid location identifier"},
}

// handleCreatePlayerLocation links a player to a location. The referenced
// rows are only checked when ENFORCE_REFERENCES is set.
func (s *Server) handleCreatePlayerLocation(c *gin.Context) {
	var req createPlayerLocationURI
	if !bindURI(c, &req, createPlayerLocationMessages, "invalid player location") {
		return
	}
	player, ok := parseID(c, req.Player, "invalid player identifier")
	if !ok {
		return
	}
	location, ok := parseID(c, req.Location, "invalid location identifier")
	if !ok {
		return
	}
	link := db.NewPlayerLocation(player, location, req.Description)
	s.create(c, "playerlocation", link, func(sess *db.Session) error {
		if err := db.RequireExisting[db.Player](sess, player); err != nil {
			return err
		}
		return db.RequireExisting[db.Location](sess, location)
	})
}
