package handlers

import (
	"bytes"
	"net/http"
	"strings"

	"photoserver/models"
	"photoserver/repo"
	"photoserver/utils"

	"github.com/gin-gonic/gin"
)

type PhotoListRequest struct {
	Page      int    `form:"page"`
	Size      int    `form:"size"`
	Sort      string `form:"sort"`
	Direction string `form:"direction"`
}

type PhotoTagRequest struct {
	Tag string `form:"tag" binding:"required"`
}

type PhotoSearchByTagRequest struct {
	Tag string `form:"tag" binding:"required"`
}

type PhotoSearchByLabelRequest struct {
	Label         string  `form:"label" binding:"required"`
	MinConfidence float64 `form:"min_confidence,default=75.0"`
}

type PhotoFetchRequest struct {
	Key  string `form:"key" binding:"required"`
	Size uint   `form:"size"`
}

func PhotoUpload(c *gin.Context, user *models.User) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	content, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	defer content.Close()
	contentType := file.Header.Get("Content-Type")
	photo, err := photoService.Ingest(user.ID, content, file.Filename, contentType, file.Size)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, photo)
}

func PhotoList(c *gin.Context, user *models.User) {
	r := PhotoListRequest{}
	if err := c.ShouldBindQuery(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	page := repo.Page{
		Number: r.Page,
		Size:   r.Size,
		SortBy: r.Sort,
		Desc:   !strings.EqualFold(r.Direction, "asc"),
	}
	photos, err := photoService.ListOwned(user.ID, page)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, photos)
}

func PhotoGet(c *gin.Context, user *models.User) {
	photo, err := photoService.GetOwned(user.ID, c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, photo)
}

func PhotoAddTag(c *gin.Context, user *models.User) {
	r := PhotoTagRequest{}
	if err := c.ShouldBind(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	photo, err := photoService.AddTag(user.ID, c.Param("id"), r.Tag)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, photo)
}

func PhotoDelete(c *gin.Context, user *models.User) {
	if err := photoService.Delete(user.ID, c.Param("id")); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}

func PhotoSearchByTag(c *gin.Context, user *models.User) {
	r := PhotoSearchByTagRequest{}
	if err := c.ShouldBindQuery(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	photos, err := photoService.FindByTag(user.ID, r.Tag)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, photos)
}

func PhotoSearchByLabel(c *gin.Context, user *models.User) {
	r := PhotoSearchByLabelRequest{}
	if err := c.ShouldBindQuery(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	photos, err := photoService.FindByLabel(user.ID, r.Label, r.MinConfidence)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, photos)
}

// PhotoFetch serves stored photo bytes for disk-backed storage (S3-backed
// photos carry presigned URLs instead). An optional size parameter returns
// a downscaled JPEG.
func PhotoFetch(c *gin.Context, user *models.User) {
	r := PhotoFetchRequest{}
	if err := c.ShouldBindQuery(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	photo, content, err := photoService.OpenOwned(user.ID, r.Key)
	if err != nil {
		serviceError(c, err)
		return
	}
	defer content.Close()
	c.Header("cache-control", "private, max-age=604800")
	if r.Size > 0 && photo.IsImage() {
		var buf bytes.Buffer
		if _, err := utils.CreateThumb(r.Size, content, &buf); err != nil {
			c.JSON(http.StatusInternalServerError, Response{err.Error()})
			return
		}
		c.Data(http.StatusOK, "image/jpeg", buf.Bytes())
		return
	}
	c.DataFromReader(http.StatusOK, photo.Size, photo.ContentType, content, nil)
}
