package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brightline/internal/models"
	"brightline/internal/service"
)

type SLAHandler struct {
	service service.SLAService
}

func NewSLAHandler(service service.SLAService) *SLAHandler {
	return &SLAHandler{service: service}
}

// Submit handles POST /api/sla. Form fields: effectiveDate (YYYY-MM-DD),
// clientName, clientSignature, providerSignature.
func (h *SLAHandler) Submit(c *gin.Context) {
	form := service.SLAForm{
		EffectiveDate:     c.PostForm("effectiveDate"),
		ClientName:        c.PostForm("clientName"),
		ClientSignature:   c.PostForm("clientSignature"),
		ProviderSignature: c.PostForm("providerSignature"),
	}

	result := h.service.Create(c.Request.Context(), form)

	switch result.Status {
	case service.SLACreated:
		c.JSON(http.StatusOK, gin.H{"ok": true, "id": result.ID})
	case service.SLAInvalid:
		c.JSON(http.StatusBadRequest, gin.H{"errors": result.FieldErrors})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to save agreement. Please try again.",
		})
	}
}

// List handles GET /api/sla: the 50 most recent agreements, newest first.
func (h *SLAHandler) List(c *gin.Context) {
	slas, err := h.service.ListRecent(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load agreements. Please try again.",
		})
		return
	}

	if slas == nil {
		slas = []models.SLA{}
	}

	c.JSON(http.StatusOK, gin.H{"slas": slas})
}
