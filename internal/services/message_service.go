package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"portfolio-api/internal/models"
	"portfolio-api/internal/repositories"
	"portfolio-api/internal/validation"
)

// Notifier sends the two contact-form emails. Implementations must be safe
// for concurrent use.
type Notifier interface {
	SendContactNotification(msg models.Message) error
	SendAcknowledgment(msg models.Message) error
}

// MessageStore is the persistence contract the message service needs.
// *repositories.MessageRepository is the production implementation.
type MessageStore interface {
	List(ctx context.Context, filter repositories.MessageFilter) ([]models.Message, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Message, error)
	Create(ctx context.Context, msg *models.Message) error
	MarkRead(ctx context.Context, id uuid.UUID) (*models.Message, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type MessageService struct {
	store    MessageStore
	notifier Notifier
}

// NewMessageService creates a MessageService. notifier may be nil when mail
// is not configured; creation then skips the notification step.
func NewMessageService(store MessageStore, notifier Notifier) *MessageService {
	return &MessageService{store: store, notifier: notifier}
}

func (s *MessageService) List(ctx context.Context, filter repositories.MessageFilter) ([]models.Message, error) {
	return s.store.List(ctx, filter)
}

func (s *MessageService) Get(ctx context.Context, id uuid.UUID) (*models.Message, error) {
	return s.store.FindByID(ctx, id)
}

// Create validates and persists a contact form submission, then dispatches
// the owner notification and the submitter acknowledgment in the background.
// The emails are best-effort: the caller sees success as soon as the record
// is stored.
func (s *MessageService) Create(ctx context.Context, req CreateMessageRequest) (*models.Message, error) {
	msg := &models.Message{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Message,
	}
	msg.Prepare()

	if err := validation.Struct(msg); err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, msg); err != nil {
		return nil, err
	}

	go s.notify(*msg)

	return msg, nil
}

// MarkRead flips the is_read flag. Repeated calls are idempotent.
func (s *MessageService) MarkRead(ctx context.Context, id uuid.UUID) (*models.Message, error) {
	return s.store.MarkRead(ctx, id)
}

func (s *MessageService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.Delete(ctx, id)
}

// notify runs both sends independently. Failures are logged, never retried
// and never surfaced to the submitter.
func (s *MessageService) notify(msg models.Message) {
	if s.notifier == nil {
		slog.Debug("mailer not configured, skipping contact notification", "message_id", msg.ID)
		return
	}

	if err := s.notifier.SendContactNotification(msg); err != nil {
		slog.Warn("failed to send contact notification", "message_id", msg.ID, "error", err)
	}
	if err := s.notifier.SendAcknowledgment(msg); err != nil {
		slog.Warn("failed to send acknowledgment email", "message_id", msg.ID, "email", msg.Email, "error", err)
	}
}
