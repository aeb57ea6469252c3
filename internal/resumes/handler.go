package resumes

import (
	"bytes"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/pdfinfo"
	"resume-builder-backend/internal/shared/server/respond"
	"resume-builder-backend/internal/shared/telemetry"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires the resume endpoints to the service.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resumes", h.list)
	rg.POST("/upload-resume", h.upload)
	rg.POST("/save-resume-from-builder", h.saveFromBuilder)
}

func (h *Handler) list(c *gin.Context) {
	userID, ok := parseUserID(c.Query("userId"))
	if !ok {
		respond.Error(c, http.StatusBadRequest, "User ID is required")
		return
	}
	c.Set("userId", userID)

	links, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Error fetching resumes")
		return
	}
	respond.OK(c, links)
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	userID, okUser := parseUserID(c.PostForm("userId"))
	fileHeader, err := c.FormFile("resume")
	if !okUser || err != nil {
		respond.Error(c, http.StatusBadRequest, "User ID and resume file are required")
		return
	}
	c.Set("userId", userID)

	data, err := readMultipartFile(fileHeader)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "User ID and resume file are required")
		return
	}

	telemetry.Info("resume.upload.received", map[string]any{
		"request_id": c.GetString("requestId"),
		"user_id":    userID,
		"file_name":  fileHeader.Filename,
		"size_bytes": len(data),
		"pdf_pages":  pdfinfo.PageCount(data),
	})

	rec, err := h.Svc.Upload(c.Request.Context(), userID, fileHeader.Filename, bytes.NewReader(data))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "User ID and resume file are required")
		case errors.Is(err, ErrMetadataSave):
			respond.Error(c, http.StatusInternalServerError, "Error saving resume metadata")
		default:
			respond.Error(c, http.StatusInternalServerError, "Resume upload failed")
		}
		return
	}

	c.Set("resumeId", rec.ID)
	respond.OK(c, gin.H{
		"message":  "Resume uploaded successfully",
		"resumeId": rec.ID,
	})
}

func (h *Handler) saveFromBuilder(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	userID, okUser := parseUserID(c.PostForm("userId"))
	fileHeader, err := c.FormFile("resumePdf")
	if !okUser || err != nil {
		respond.Error(c, http.StatusBadRequest, "User ID and resume PDF are required")
		return
	}
	c.Set("userId", userID)

	data, err := readMultipartFile(fileHeader)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "User ID and resume PDF are required")
		return
	}

	rec, err := h.Svc.SaveFromBuilder(c.Request.Context(), userID, []byte(c.PostForm("resumeData")), bytes.NewReader(data))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "User ID and resume PDF are required")
		case errors.Is(err, ErrMetadataSave):
			respond.Error(c, http.StatusInternalServerError, "Error saving resume metadata")
		default:
			respond.Error(c, http.StatusInternalServerError, "Resume save failed")
		}
		return
	}

	c.Set("resumeId", rec.ID)
	respond.OK(c, gin.H{
		"message":  "Resume saved successfully to S3",
		"resumeId": rec.ID,
		"fileName": rec.FileName,
	})
}

func parseUserID(raw string) (int64, bool) {
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func readMultipartFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
