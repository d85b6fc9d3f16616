package handlers

import (
	"photoserver/services"
)

var (
	userService  *services.UserService
	photoService *services.PhotoService
	albumService *services.AlbumService
)

// Init wires the services the handlers dispatch to.
func Init(users *services.UserService, photos *services.PhotoService, albums *services.AlbumService) {
	userService = users
	photoService = photos
	albumService = albums
}
