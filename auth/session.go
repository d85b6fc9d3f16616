package auth

import (
	"photoserver/db"
	"photoserver/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const userIdKey = "id"

type Session struct {
	sessions.Session
}

func LoadSession(c *gin.Context) *Session {
	return &Session{
		Session: sessions.Default(c),
	}
}

func (s *Session) LoginUser(id string) {
	s.Set(userIdKey, id)
	_ = s.Save()
}

func (s *Session) LogoutUser() {
	s.Delete(userIdKey)
	s.Clear()
	s.Options(sessions.Options{Path: "/", MaxAge: -1})
	_ = s.Save()
}

func (s *Session) User() (user models.User) {
	id := s.Get(userIdKey)
	if id == nil {
		return
	}
	userID, ok := id.(string)
	if !ok {
		return
	}
	if db.Instance.First(&user, "id = ?", userID).Error != nil {
		user.ID = ""
	}
	return
}
