package handlers

import (
	"errors"
	"net/http"

	"photoserver/services"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Error string `json:"error"`
}

var (
	OKResponse       = Response{}
	NotFoundResponse = Response{"not found"}
)

// serviceError maps the service error taxonomy onto HTTP statuses.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, NotFoundResponse)
	case errors.Is(err, services.ErrAlreadyExists):
		c.JSON(http.StatusConflict, Response{err.Error()})
	case errors.Is(err, services.ErrOwnershipMismatch):
		c.JSON(http.StatusBadRequest, Response{err.Error()})
	case errors.Is(err, services.ErrPhotosRemain):
		c.JSON(http.StatusConflict, Response{err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
	}
}
