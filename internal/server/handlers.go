package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"truth-or-dare/internal/game"
	"truth-or-dare/internal/web"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleCatalog(c *gin.Context) {
	var uri guildURI
	if !bindURI(c, &uri) {
		return
	}
	var query catalogQuery
	if !bindQuery(c, &query, catalogMessages, "invalid catalog query") {
		return
	}

	guildID := uri.GuildID
	scope := requestedScope(query.Scope)
	catalog, err := game.Catalog(c.Request.Context(), s.questions, scope, &guildID)
	if err != nil {
		s.log.Error("load catalog failed", zap.Int64("guild_id", guildID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load questions"})
		return
	}

	view := game.RenderPage(requestedPage(query.Page), catalog, scope)
	basePath := "/guilds/" + strconv.FormatInt(guildID, 10) + "/questions"
	templ.Handler(web.CatalogPage(web.NewCatalogData(guildID, basePath, view))).ServeHTTP(c.Writer, c.Request)
}

func (s *Server) handleSettings(c *gin.Context) {
	var uri guildURI
	if !bindURI(c, &uri) {
		return
	}
	settings, err := s.settings.Settings(c.Request.Context(), uri.GuildID)
	if err != nil {
		s.log.Error("load settings failed", zap.Int64("guild_id", uri.GuildID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"guild_id":   uri.GuildID,
		"rating":     settings.Rating,
		"admin_only": settings.AdminOnly,
	})
}

type eventResponse struct {
	ID        uint            `json:"id"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

func (s *Server) handleEvents(c *gin.Context) {
	var uri guildURI
	if !bindURI(c, &uri) {
		return
	}
	var query eventsQuery
	if !bindQuery(c, &query, eventsMessages, "invalid events query") {
		return
	}
	events, err := s.events.Recent(c.Request.Context(), uri.GuildID, requestedLimit(query.Limit))
	if err != nil {
		s.log.Error("load events failed", zap.Int64("guild_id", uri.GuildID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load events"})
		return
	}
	out := make([]eventResponse, 0, len(events))
	for _, event := range events {
		out = append(out, eventResponse{
			ID:        event.ID,
			Type:      event.Type,
			Payload:   json.RawMessage(event.Payload),
			CreatedAt: event.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"events": out})
}
