package handlers

import (
	"net/http"

	"photoserver/auth"
	"photoserver/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type UserRegisterRequest struct {
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=8"`
}

type UserLoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func UserRegister(c *gin.Context) {
	r := UserRegisterRequest{}
	err := c.ShouldBindWith(&r, binding.Form)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	user, err := userService.Register(r.Username, r.Email, r.Password)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func UserLogin(c *gin.Context) {
	r := UserLoginRequest{}
	err := c.ShouldBindWith(&r, binding.Form)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	user, err := userService.Authenticate(r.Username, r.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, Response{"invalid credentials"})
		return
	}
	auth.LoadSession(c).LoginUser(user.ID)
	c.JSON(http.StatusOK, gin.H{
		"error":    "",
		"user_id":  user.ID,
		"username": user.Username,
		"email":    user.Email,
	})
}

func UserLogout(c *gin.Context, user *models.User) {
	auth.LoadSession(c).LogoutUser()
	c.JSON(http.StatusOK, OKResponse)
}

func UserGetStatus(c *gin.Context, user *models.User) {
	c.JSON(http.StatusOK, user)
}

func UserDelete(c *gin.Context, user *models.User) {
	if err := userService.Delete(user.ID); err != nil {
		serviceError(c, err)
		return
	}
	auth.LoadSession(c).LogoutUser()
	c.JSON(http.StatusOK, OKResponse)
}
