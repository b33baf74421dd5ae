package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"novitatravel/internal/app/dto"
	"novitatravel/internal/app/storage"

	"github.com/gin-gonic/gin"
)

// UploadImage stores a service image
// @Summary Upload image
// @Description Accepts a multipart "image" field (jpeg/png/gif/webp, max 5 MiB) and returns its public URL
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image file"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/upload [post]
func (h *APIHandler) UploadImage(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, "No file uploaded")
		return
	}

	// Checked here too so an oversized body is never buffered.
	if fileHeader.Size > h.Config.Upload.MaxSize {
		h.errorResponse(ctx, http.StatusBadRequest, storage.ErrFileTooLarge.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.internalError(ctx, err)
		return
	}
	defer file.Close()

	fileData, err := io.ReadAll(file)
	if err != nil {
		h.internalError(ctx, err)
		return
	}

	filename, err := h.Storage.SaveFile(fileData, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedMedia) || errors.Is(err, storage.ErrFileTooLarge) {
			h.errorResponse(ctx, http.StatusBadRequest, err.Error())
			return
		}
		h.internalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UploadResponse{
		ImageURL: fmt.Sprintf("%s/uploads/%s", h.Config.PublicBaseURL, filename),
		Filename: filename,
	})
}
