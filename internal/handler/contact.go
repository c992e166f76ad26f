package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"brightline/internal/ratelimit"
	"brightline/internal/service"
)

type ContactHandler struct {
	service service.ContactService
}

func NewContactHandler(service service.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// Submit handles POST /api/contact. Form fields: name, email, message,
// company (honeypot, hidden in the rendered form).
func (h *ContactHandler) Submit(c *gin.Context) {
	form := service.ContactForm{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Message: c.PostForm("message"),
		Company: c.PostForm("company"),
	}

	result := h.service.Submit(c.Request.Context(), form, c.ClientIP())

	if result.RateLimit.Limit > 0 {
		setRateLimitHeaders(c, result.RateLimit)
	}

	switch result.Status {
	case service.ContactSent:
		c.JSON(http.StatusOK, gin.H{
			"ok":      true,
			"message": "Your message has been sent! We'll get back to you within 24 hours.",
		})
	case service.ContactSpam:
		// Same shape as a validation failure on an empty form, so automated
		// submitters can't tell they were detected.
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{}})
	case service.ContactInvalid:
		c.JSON(http.StatusBadRequest, gin.H{"errors": result.FieldErrors})
	case service.ContactRateLimited:
		retryAfter := int(time.Until(result.RateLimit.ResetAt).Seconds())
		if retryAfter < 0 {
			retryAfter = 0
		}
		c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error": "Too many submissions from this address today. Try again tomorrow.",
		})
	case service.ContactMailFailed:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "We could not send your message right now. Please try again later.",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Rate limiter error. Please try again later.",
		})
	}
}

func setRateLimitHeaders(c *gin.Context, rl ratelimit.Result) {
	c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", rl.Limit))
	c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", rl.Remaining))
	c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", rl.ResetAt.Unix()))
}
