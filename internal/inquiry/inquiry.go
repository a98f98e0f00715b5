// Package inquiry recibe los formularios de contacto y cotización y los
// entrega al equipo comercial.
package inquiry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"industrial-catalog/internal/metrics"
	"industrial-catalog/internal/models"
)

//go:generate mockgen -destination=mock_publisher_test.go -package=inquiry . Publisher

// Publisher entrega una consulta aceptada
type Publisher interface {
	Publish(ctx context.Context, inq models.Inquiry) error
	Close() error
}

type Service struct {
	publisher Publisher
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(publisher Publisher, logger *zap.Logger) *Service {
	return &Service{publisher: publisher, logger: logger, now: time.Now}
}

// Submit valida la consulta, le asigna id y fecha y la publica
func (s *Service) Submit(ctx context.Context, inq models.Inquiry) (models.Inquiry, error) {
	inq.Name = strings.TrimSpace(inq.Name)
	inq.Email = strings.TrimSpace(inq.Email)
	inq.Company = strings.TrimSpace(inq.Company)
	inq.Message = strings.TrimSpace(inq.Message)
	if err := inq.Validate(); err != nil {
		return inq, err
	}

	inq.ID = uuid.NewString()
	inq.SubmittedAt = s.now().UTC()

	if err := s.publisher.Publish(ctx, inq); err != nil {
		return inq, fmt.Errorf("publish inquiry: %w", err)
	}
	metrics.Inquiries.WithLabelValues(inq.Kind).Inc()
	s.logger.Info("inquiry accepted",
		zap.String("id", inq.ID),
		zap.String("kind", inq.Kind),
		zap.String("topic", inq.Topic))
	return inq, nil
}

// LogPublisher solo registra la consulta; se usa cuando no hay AMQP_URL
type LogPublisher struct {
	Logger *zap.Logger
}

func (p LogPublisher) Publish(_ context.Context, inq models.Inquiry) error {
	p.Logger.Info("inquiry received",
		zap.String("id", inq.ID),
		zap.String("kind", inq.Kind),
		zap.String("company", inq.Company),
		zap.String("email", inq.Email))
	return nil
}

func (p LogPublisher) Close() error { return nil }
