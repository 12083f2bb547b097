package services

import (
	"context"
	"fmt"
	"strings"

	"campusride/internal/models"
	"campusride/internal/repositories/interfaces"
	"campusride/internal/utils"
	"campusride/internal/validators"
	"campusride/pkg/logger"
	"campusride/pkg/pubsub"

	"github.com/google/uuid"
)

type ChatService interface {
	// Threads
	CreateThread(ctx context.Context, userA, userB string) (*models.Thread, error)
	GetOrCreateThreadForUsers(ctx context.Context, userA, userB string) (*models.Thread, error)
	GetThread(ctx context.Context, threadID string) (*models.Thread, error)
	GetThreadsForUser(ctx context.Context, userID string) ([]*models.Thread, error)

	// Messages
	SendMessage(ctx context.Context, threadID, senderID, content string) (*models.Message, error)
	GetMessages(ctx context.Context, threadID string) ([]*models.Message, error)
	MarkThreadAsRead(ctx context.Context, threadID, readerID string) (*models.Thread, error)
}

type chatService struct {
	chatRepo  interfaces.ChatRepository
	notifier  Notifier
	publisher pubsub.Publisher
	logger    *logger.Logger
	clock     utils.Clock
	newID     func() string
}

func NewChatService(
	chatRepo interfaces.ChatRepository,
	notifier Notifier,
	publisher pubsub.Publisher,
	log *logger.Logger,
) ChatService {
	return &chatService{
		chatRepo:  chatRepo,
		notifier:  notifier,
		publisher: publisher,
		logger:    log,
		clock:     utils.SystemClock,
		newID:     uuid.NewString,
	}
}

// CreateThread always stores a new thread, even when the pair already talks.
func (s *chatService) CreateThread(ctx context.Context, userA, userB string) (*models.Thread, error) {
	thread, err := s.newThread(userA, userB)
	if err != nil {
		return nil, err
	}

	if err := s.chatRepo.CreateThread(ctx, thread); err != nil {
		s.logger.WithContext(ctx).WithError(err).Error("Failed to create thread")
		return nil, fmt.Errorf("failed to create thread: %w", err)
	}

	s.threadCreated(ctx, thread)
	return thread, nil
}

func (s *chatService) GetOrCreateThreadForUsers(ctx context.Context, userA, userB string) (*models.Thread, error) {
	candidate, err := s.newThread(userA, userB)
	if err != nil {
		return nil, err
	}

	thread, created, err := s.chatRepo.FindOrCreateThread(ctx, candidate)
	if err != nil {
		s.logger.WithContext(ctx).WithError(err).Error("Failed to find or create thread")
		return nil, fmt.Errorf("failed to find or create thread: %w", err)
	}

	if created {
		s.threadCreated(ctx, thread)
	}
	return thread, nil
}

func (s *chatService) newThread(userA, userB string) (*models.Thread, error) {
	errs := append(validators.ValidateIdentity("user_a", userA), validators.ValidateIdentity("user_b", userB)...)
	if err := errs.AsAppError("thread"); err != nil {
		return nil, err
	}

	now := s.clock()
	return &models.Thread{
		ID:           s.newID(),
		Participants: [2]string{strings.TrimSpace(userA), strings.TrimSpace(userB)},
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func (s *chatService) threadCreated(ctx context.Context, thread *models.Thread) {
	s.logger.WithContext(ctx).LogChatEvent(thread.ID, utils.EventThreadCreated, map[string]interface{}{
		"participants": thread.Participants,
	})
	s.publish(utils.EventThreadCreated, thread, nil)
}

func (s *chatService) GetThread(ctx context.Context, threadID string) (*models.Thread, error) {
	return s.chatRepo.GetThreadByID(ctx, threadID)
}

func (s *chatService) GetThreadsForUser(ctx context.Context, userID string) ([]*models.Thread, error) {
	if err := validators.ValidateIdentity("user", userID).AsAppError("thread"); err != nil {
		return nil, err
	}
	return s.chatRepo.GetThreadsByParticipant(ctx, strings.TrimSpace(userID))
}

// SendMessage appends a message from senderID to the other participant. A
// thread without a second identity has no receiver and fails as not found.
func (s *chatService) SendMessage(ctx context.Context, threadID, senderID, content string) (*models.Message, error) {
	if err := validators.ValidateIdentity("sender_id", senderID).AsAppError("message"); err != nil {
		return nil, err
	}
	if err := validators.ValidateMessageContent(strings.TrimSpace(content)).AsAppError("message"); err != nil {
		return nil, err
	}
	senderID = strings.TrimSpace(senderID)

	thread, err := s.chatRepo.GetThreadByID(ctx, threadID)
	if err != nil {
		return nil, err
	}
	if !thread.HasParticipant(senderID) {
		return nil, utils.ValidationError("message", senderID+" is not a participant of thread "+threadID, nil)
	}

	receiverID := thread.Other(senderID)
	if receiverID == "" {
		return nil, &utils.AppError{Kind: utils.ErrNotFound, Resource: "thread", ID: threadID, Message: utils.ErrReceiverNotFound}
	}

	message := &models.Message{
		ID:         s.newID(),
		ThreadID:   thread.ID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		Timestamp:  s.clock(),
	}

	updated, err := s.chatRepo.AppendMessage(ctx, message)
	if err != nil {
		s.logger.WithContext(ctx).WithThreadID(threadID).WithError(err).Error("Failed to append message")
		return nil, err
	}

	s.logger.WithContext(ctx).LogChatEvent(thread.ID, utils.EventMessageSent, map[string]interface{}{
		"sender":   senderID,
		"receiver": receiverID,
		"unread":   updated.UnreadCount,
	})
	s.notifier.Notify(ctx, models.Notification{
		UserID:      senderID,
		Kind:        models.NotificationKindChat,
		Title:       "Message Sent",
		Description: "Your message has been sent.",
		CreatedAt:   s.clock(),
	})
	s.publish(utils.EventMessageSent, updated, message)

	sent := *message
	return &sent, nil
}

func (s *chatService) GetMessages(ctx context.Context, threadID string) ([]*models.Message, error) {
	return s.chatRepo.GetMessagesByThreadID(ctx, threadID)
}

func (s *chatService) MarkThreadAsRead(ctx context.Context, threadID, readerID string) (*models.Thread, error) {
	if err := validators.ValidateIdentity("reader_id", readerID).AsAppError("thread"); err != nil {
		return nil, err
	}

	thread, marked, err := s.chatRepo.MarkThreadAsRead(ctx, threadID, strings.TrimSpace(readerID))
	if err != nil {
		return nil, err
	}

	s.logger.WithContext(ctx).LogChatEvent(thread.ID, utils.EventThreadRead, map[string]interface{}{
		"reader": readerID,
		"marked": marked,
	})
	s.publish(utils.EventThreadRead, thread, nil)
	return thread, nil
}

func (s *chatService) publish(eventType string, thread *models.Thread, message *models.Message) {
	update := models.ThreadUpdate{Thread: thread.Clone()}
	if message != nil {
		m := *message
		update.Message = &m
	}
	s.publisher.Publish(pubsub.Event{
		Topic:   utils.TopicChat,
		Type:    eventType,
		Payload: update,
		At:      s.clock(),
	})
}
