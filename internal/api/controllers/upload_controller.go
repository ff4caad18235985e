package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"urbanscribe/internal/models/request_models"
	"urbanscribe/internal/services"
	"urbanscribe/pkg/utils"
)

type UploadController struct {
	uploadService services.UploadServiceInterface
}

func NewUploadController(uploadService services.UploadServiceInterface) *UploadController {
	return &UploadController{
		uploadService: uploadService,
	}
}

// UploadImage godoc
// @Summary Upload an image
// @Description Accept a JPEG/PNG/WEBP/GIF image up to 10 MiB as the multipart field "image"
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Success 200 {object} response_models.UploadResult
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /api/upload-image [post]
func (u *UploadController) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.ErrNoImageFile.Error())
		return
	}

	// Type and size are judged from the part header; the service owns the
	// allow-list and the ceiling, so a bad file is rejected before any read.
	file := request_models.ImageFile{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
	}

	result, err := u.uploadService.UploadImage(c.Request.Context(), file)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
