package http

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pricelens/backend/internal/domain"
)

// AppraisalService is the usecase surface the delivery layer depends on.
type AppraisalService interface {
	Analyze(ctx context.Context, images []domain.Image) (*domain.MergedResult, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	appraisal AppraisalService
	catalog   domain.CatalogRepository
}

// NewHandler creates a new HTTP handler
func NewHandler(appraisal AppraisalService, catalog domain.CatalogRepository) *Handler {
	return &Handler{
		appraisal: appraisal,
		catalog:   catalog,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "pricelens-backend",
		"version": "1.0.0",
	})
}

// AnalyzeProduct handles multipart photo submissions. Images arrive under
// the repeated "images" field; a legacy singular "image" field is accepted
// when the plural one is empty.
func (h *Handler) AnalyzeProduct(c *gin.Context) {
	if h.appraisal == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "appraisal service not configured",
		})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid multipart form: " + err.Error(),
		})
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		files = form.File["image"]
	}
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image required"})
		return
	}
	if len(files) > maxImagesPerRequest {
		files = files[:maxImagesPerRequest]
	}

	images, err := readImages(files)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to read uploaded image: " + err.Error(),
		})
		return
	}

	result, err := h.appraisal.Analyze(c.Request.Context(), images)
	if err != nil {
		if errors.Is(err, domain.ErrImageRequired) || errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// LookupCatalog exposes the static catalog directly, queried by jan, upc,
// name or model query parameters.
func (h *Handler) LookupCatalog(c *gin.Context) {
	if h.catalog == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "catalog not configured",
		})
		return
	}

	q := domain.LookupQuery{
		JAN:   c.Query("jan"),
		UPC:   c.Query("upc"),
		Name:  c.Query("name"),
		Model: c.Query("model"),
	}
	if q == (domain.LookupQuery{}) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "at least one of jan, upc, name, model is required",
		})
		return
	}

	entry, ok := h.catalog.Lookup(q)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrNoCatalogMatch.Error()})
		return
	}

	c.JSON(http.StatusOK, entry)
}

// maxImagesPerRequest mirrors the orchestrator's cap so oversized uploads
// are trimmed before the bytes are even read.
const maxImagesPerRequest = 5

// readImages loads each uploaded part into memory with its MIME type,
// sniffing the content when the part header does not declare one.
func readImages(files []*multipart.FileHeader) ([]domain.Image, error) {
	images := make([]domain.Image, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}

		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}

		mimeType := fh.Header.Get("Content-Type")
		if mimeType == "" || mimeType == "application/octet-stream" {
			mimeType = http.DetectContentType(data)
		}

		images = append(images, domain.Image{Data: data, MIMEType: mimeType})
	}
	return images, nil
}
