package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/legal-case-service/internal/config"
	"github.com/spec-kit/legal-case-service/internal/domain"
	"github.com/spec-kit/legal-case-service/internal/events"
	"github.com/spec-kit/legal-case-service/internal/repository"
)

// MailSender delivers a rendered notification.
type MailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// logMailSender is the default transport: it logs instead of delivering.
// Real SMTP settings live in config.SMTPConfig for a production transport.
type logMailSender struct {
	logger *zap.Logger
	cfg    config.SMTPConfig
}

// NewLogMailSender builds the logging transport.
func NewLogMailSender(logger *zap.Logger, cfg config.SMTPConfig) MailSender {
	return &logMailSender{logger: logger, cfg: cfg}
}

func (m *logMailSender) Send(_ context.Context, to, subject, body string) error {
	m.logger.Info("mail queued",
		zap.String("from", m.cfg.From),
		zap.String("to", to),
		zap.String("subject", subject),
		zap.Int("body_bytes", len(body)))
	return nil
}

// NotificationService turns domain events into reminder mails for the lawyer
// responsible for the affected process.
type NotificationService struct {
	dispatcher events.Dispatcher
	processes  repository.ProcessRepository
	users      repository.UserRepository
	sender     MailSender
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, processes repository.ProcessRepository, users repository.UserRepository, sender MailSender, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		processes:  processes,
		users:      users,
		sender:     sender,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to the events that produce notifications.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventAudienceScheduled, n.handleAudienceScheduled)
	n.dispatcher.Subscribe(events.EventDeadlineApproaching, n.handleDeadlineApproaching)
	n.dispatcher.Subscribe(events.EventTaskAssigned, n.handleTaskAssigned)
}

func (n *NotificationService) handleAudienceScheduled(ctx context.Context, event events.Event) error {
	user, err := n.responsibleFor(ctx, event.ProcessID)
	if err != nil {
		n.logger.Warn("audience notification skipped", zap.Error(err))
		return nil
	}
	title, _ := event.Payload["title"].(string)
	subject := fmt.Sprintf("Lembrete: audiência - %s", title)
	body := fmt.Sprintf("Olá, %s. Uma audiência foi agendada no processo sob sua responsabilidade.", user.Name)
	return n.sender.Send(ctx, user.Email, subject, body)
}

func (n *NotificationService) handleDeadlineApproaching(ctx context.Context, event events.Event) error {
	user, err := n.responsibleFor(ctx, event.ProcessID)
	if err != nil {
		n.logger.Warn("deadline notification skipped", zap.Error(err))
		return nil
	}
	title, _ := event.Payload["title"].(string)
	subject := fmt.Sprintf("Prazo vencendo: %s", title)
	body := fmt.Sprintf("Olá, %s. Um prazo do seu processo está próximo do vencimento. Tome as ações necessárias.", user.Name)
	return n.sender.Send(ctx, user.Email, subject, body)
}

func (n *NotificationService) handleTaskAssigned(ctx context.Context, event events.Event) error {
	assignedID, _ := event.Payload["assignedId"].(string)
	if assignedID == "" {
		return nil
	}
	user, err := n.users.GetActiveByID(ctx, assignedID)
	if err != nil {
		n.logger.Warn("task notification skipped", zap.Error(err))
		return nil
	}
	title, _ := event.Payload["title"].(string)
	subject := fmt.Sprintf("Nova tarefa atribuída: %s", title)
	body := fmt.Sprintf("Olá, %s. Uma nova tarefa foi atribuída a você.", user.Name)
	return n.sender.Send(ctx, user.Email, subject, body)
}

func (n *NotificationService) responsibleFor(ctx context.Context, processID string) (*domain.User, error) {
	process, err := n.processes.GetActiveByID(ctx, processID)
	if err != nil {
		return nil, err
	}
	return n.users.GetActiveByID(ctx, process.ResponsibleID)
}
