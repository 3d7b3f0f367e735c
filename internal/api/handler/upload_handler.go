package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/user-service/internal/api/metrics"
	"github.com/99minutos/user-service/internal/core/ports"
	"github.com/99minutos/user-service/internal/core/upload"
)

// UploadHandler handles POST /user/uploadImage.
type UploadHandler struct {
	service ports.ImageService
}

func NewUploadHandler(service ports.ImageService) *UploadHandler {
	return &UploadHandler{service: service}
}

// UploadImage attaches a profile image to an account. An account holds at
// most one image and it cannot be replaced.
//
// @Summary      Upload a profile image
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Param        email  formData  string  true  "Account email"
// @Param        image  formData  file    true  "JPEG, PNG or GIF image"
// @Success      201    {object}  uploadImageResponse
// @Failure      400    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Failure      413    {object}  errorResponse
// @Failure      500    {object}  errorResponse
// @Router       /user/uploadImage [post]
func (h *UploadHandler) UploadImage(c echo.Context) error {
	email := c.FormValue(emailFormField)

	fh, err := c.FormFile(upload.FieldName)
	if err != nil && !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
		return invalidPayload(err)
	}

	var file *ports.ImageFile
	if fh != nil {
		src, err := fh.Open()
		if err != nil {
			return err
		}
		defer src.Close()
		file = imageFile(fh, src)
	}

	path, err := h.service.Upload(c.Request().Context(), email, file)
	metrics.ImageUploadsTotal.WithLabelValues(result(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, uploadImageResponse{
		Message:  msgImageUploaded,
		FilePath: path,
	})
}

func imageFile(fh *multipart.FileHeader, src multipart.File) *ports.ImageFile {
	return &ports.ImageFile{
		Filename:  fh.Filename,
		MediaType: fh.Header.Get(echo.HeaderContentType),
		Size:      fh.Size,
		Content:   src,
	}
}
