package handlers

import (
	"net/http"

	"photoserver/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type AlbumCreateRequest struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description"`
}

type AlbumSearchRequest struct {
	Name string `form:"name" binding:"required"`
}

func AlbumCreate(c *gin.Context, user *models.User) {
	r := AlbumCreateRequest{}
	err := c.ShouldBindWith(&r, binding.Form)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	album, err := albumService.Create(user.ID, r.Name, r.Description)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, album)
}

func AlbumList(c *gin.Context, user *models.User) {
	albums, err := albumService.ListForUser(user.ID)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, albums)
}

func AlbumSearch(c *gin.Context, user *models.User) {
	r := AlbumSearchRequest{}
	if err := c.ShouldBindQuery(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	albums, err := albumService.Search(user.ID, r.Name)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, albums)
}

func AlbumGet(c *gin.Context, user *models.User) {
	album, err := albumService.Get(c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, album)
}

func AlbumPhotos(c *gin.Context, user *models.User) {
	photos, err := albumService.Photos(user.ID, c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, photos)
}

func AlbumAddPhoto(c *gin.Context, user *models.User) {
	// The album must be the caller's; the photo owner check happens in the
	// service
	album, err := albumService.Get(c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	if album.UserID != user.ID {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	album, err = albumService.AddPhoto(c.Param("id"), c.Param("photoId"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, album)
}
