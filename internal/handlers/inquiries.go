package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"industrial-catalog/internal/catalog"
	"industrial-catalog/internal/inquiry"
	"industrial-catalog/internal/models"
)

type InquiryHandler struct {
	service *inquiry.Service
	logger  *zap.Logger
}

func NewInquiryHandler(service *inquiry.Service, logger *zap.Logger) *InquiryHandler {
	return &InquiryHandler{service: service, logger: logger}
}

// POST /v1/inquiries
func (h *InquiryHandler) Create(c *gin.Context) {
	var inq models.Inquiry
	if err := c.ShouldBindJSON(&inq); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	accepted, err := h.service.Submit(c.Request.Context(), inq)
	if err != nil {
		var validationErr *catalog.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationErr.Error()})
			return
		}
		h.logger.Error("inquiry publish failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "could not submit inquiry"})
		return
	}

	message := "Thank you for your inquiry! We will get back to you soon."
	if accepted.Kind == models.InquiryQuote {
		message = "Quote request submitted successfully! We'll contact you within 24 hours."
	}
	c.JSON(http.StatusCreated, gin.H{"id": accepted.ID, "message": message})
}
