package controllers

import (
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"

	"stayhub/response"
)

type UploadController struct {
	cld *cloudinary.Cloudinary
}

func NewUploadController(cld *cloudinary.Cloudinary) *UploadController {
	return &UploadController{cld: cld}
}

// UploadImage uploads a room image and returns its URL; admin-only
// via route middleware.
func (ctl *UploadController) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "no file")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.BadRequest(c, "failed to open file")
		return
	}
	defer src.Close()

	resp, err := ctl.cld.Upload.Upload(c.Request.Context(), src, uploader.UploadParams{Folder: "rooms"})
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"url": resp.SecureURL})
}
