package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type bindMessages map[string]map[string]string

type guildURI struct {
	GuildID int64 `uri:"guild_id" binding:"required"`
}

type catalogQuery struct {
	Page  *int   `form:"page"`
	Scope string `form:"scope" binding:"omitempty,scope"`
}

var catalogMessages = bindMessages{
	"Scope": {"scope": "scope must be DEFAULT or CUSTOM"},
}

type eventsQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

var eventsMessages = bindMessages{
	"Limit": {"min": "limit must be at least 1", "max": "limit must be 100 or fewer"},
}

func bindURI(c *gin.Context, req any) bool {
	if err := c.ShouldBindUri(req); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown guild"})
		return false
	}
	return true
}

func bindQuery(c *gin.Context, req any, messages bindMessages, fallback string) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": resolveBindError(err, messages, fallback)})
		return false
	}
	return true
}

func resolveBindError(err error, messages bindMessages, fallback string) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, verr := range verrs {
			if fieldMsgs, ok := messages[verr.Field()]; ok {
				if msg, ok := fieldMsgs[verr.Tag()]; ok {
					return msg
				}
			}
		}
	}
	if fallback != "" {
		return fallback
	}
	return "invalid request"
}
