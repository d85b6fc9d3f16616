package auth

import (
	"net/http"

	"photoserver/models"

	"github.com/gin-gonic/gin"
)

// HandlerFunc receives the authenticated session user.
type HandlerFunc func(c *gin.Context, user *models.User)

// Router is a wrapper that adds the auth check + User pre-loading
type Router struct {
	Base *gin.Engine
}

func (cr *Router) baseExec(c *gin.Context, handler HandlerFunc) {
	session := LoadSession(c)
	user := session.User()
	if user.ID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "access denied"})
		return
	}
	handler(c, &user)
}

func (cr *Router) GET(path string, handler HandlerFunc) {
	cr.Base.GET(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

func (cr *Router) POST(path string, handler HandlerFunc) {
	cr.Base.POST(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

func (cr *Router) DELETE(path string, handler HandlerFunc) {
	cr.Base.DELETE(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}
