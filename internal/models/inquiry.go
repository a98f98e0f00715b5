package models

import (
	"slices"
	"time"

	"industrial-catalog/internal/catalog"
)

const (
	InquiryContact = "contact"
	InquiryQuote   = "quote"
)

var (
	InquiryTypes = []string{"quote", "product", "partnership", "support", "other"}
	ServiceTypes = []string{
		"custom-manufacturing",
		"precision-machining",
		"quality-inspection",
		"prototyping",
		"consulting",
		"other",
	}
)

// Inquiry es un formulario de contacto o una solicitud de cotización.
// Topic guarda el tipo de consulta (contacto) o el tipo de servicio (cotización).
type Inquiry struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind" binding:"required,oneof=contact quote"`
	Name        string    `json:"name" binding:"required"`
	Email       string    `json:"email" binding:"required,email"`
	Company     string    `json:"company" binding:"required"`
	Phone       string    `json:"phone" binding:"required_if=Kind quote,phone"`
	Topic       string    `json:"topic" binding:"required"`
	Message     string    `json:"message" binding:"required"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Validate aplica las reglas de etiquetas y verifica el topic según el tipo
func (i Inquiry) Validate() error {
	if err := Validate(i); err != nil {
		return err
	}
	topics := InquiryTypes
	if i.Kind == InquiryQuote {
		topics = ServiceTypes
	}
	if !slices.Contains(topics, i.Topic) {
		return &catalog.ValidationError{Field: "topic", Message: "unknown topic " + i.Topic}
	}
	return nil
}
