package handlers

import (
	"github.com/expostands/expostands-api/internal/storage"
	"github.com/expostands/expostands-api/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// UploadHandler handles bucket uploads and deletions.
type UploadHandler struct {
	Store *storage.Store
}

// Upload handles POST /api/contact/images/upload
// @Summary Upload an image to a bucket
// @Description Accepts a multipart file plus a target bucket name; validates
// @Description size and MIME type against the bucket policy.
// @Tags Storage
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Param bucket formData string false "Target bucket (default contact-images)"
// @Success 200 {object} utils.EnvelopeStruct
// @Failure 400 {object} utils.EnvelopeStruct
// @Security CookieAuth
// @Router /contact/images/upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return utils.ValidationErrorResponse(c, "File is required")
	}

	bucket := c.FormValue("bucket")
	if bucket == "" {
		bucket = "contact-images"
	}

	obj, err := h.Store.Upload(bucket, file)
	if err != nil {
		return respondServiceError(c, "upload", err, "Bucket not found")
	}

	return utils.SuccessResponse(c, obj)
}

// List handles GET /api/storage/:bucket
// @Summary List the objects of a bucket
// @Tags Storage
// @Produce json
// @Param bucket path string true "Bucket name"
// @Success 200 {object} utils.EnvelopeStruct
// @Failure 404 {object} utils.EnvelopeStruct
// @Security CookieAuth
// @Router /storage/{bucket} [get]
func (h *UploadHandler) List(c *fiber.Ctx) error {
	bucket := c.Params("bucket")

	objects, err := h.Store.List(bucket)
	if err != nil {
		return respondServiceError(c, "listStorage", err, "Bucket not found")
	}

	return utils.SuccessResponse(c, objects)
}

// Remove handles DELETE /api/storage/:bucket/:filename
// @Summary Delete an object by stored path
// @Tags Storage
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param filename path string true "Object filename"
// @Success 200 {object} utils.EnvelopeStruct
// @Failure 404 {object} utils.EnvelopeStruct
// @Security CookieAuth
// @Router /storage/{bucket}/{filename} [delete]
func (h *UploadHandler) Remove(c *fiber.Ctx) error {
	bucket := c.Params("bucket")
	filename := c.Params("filename")

	if err := h.Store.Remove(bucket, filename); err != nil {
		return respondServiceError(c, "removeStorage", err, "Object not found")
	}

	return utils.SuccessResponse(c, fiber.Map{"deleted": bucket + "/" + filename})
}
