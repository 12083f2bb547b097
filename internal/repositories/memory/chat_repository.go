package memory

import (
	"context"
	"fmt"
	"sync"

	"campusride/internal/models"
	"campusride/internal/repositories/interfaces"
	"campusride/internal/utils"

	"github.com/samber/lo"
)

type chatRepository struct {
	mu       sync.RWMutex
	threads  []*models.Thread
	index    map[string]int
	messages map[string][]*models.Message
}

func NewChatRepository() interfaces.ChatRepository {
	return &chatRepository{
		index:    make(map[string]int),
		messages: make(map[string][]*models.Message),
	}
}

// Thread operations
func (r *chatRepository) CreateThread(ctx context.Context, thread *models.Thread) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.insertThread(thread)
}

func (r *chatRepository) insertThread(thread *models.Thread) error {
	if thread.ID == "" {
		return fmt.Errorf("failed to create thread: empty id")
	}
	if _, exists := r.index[thread.ID]; exists {
		return utils.ConflictError("thread", thread.ID, "thread already exists")
	}

	r.index[thread.ID] = len(r.threads)
	r.threads = append(r.threads, thread.Clone())
	r.messages[thread.ID] = nil
	return nil
}

func (r *chatRepository) GetThreadByID(ctx context.Context, id string) (*models.Thread, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	thread, err := r.thread(id)
	if err != nil {
		return nil, err
	}
	return thread.Clone(), nil
}

func (r *chatRepository) thread(id string) (*models.Thread, error) {
	i, ok := r.index[id]
	if !ok {
		return nil, utils.NotFoundError("thread", id)
	}
	return r.threads[i], nil
}

func (r *chatRepository) GetThreadsByParticipant(ctx context.Context, userID string) ([]*models.Thread, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := lo.Filter(r.threads, func(t *models.Thread, _ int) bool {
		return t.HasParticipant(userID)
	})
	return lo.Map(matched, func(t *models.Thread, _ int) *models.Thread {
		return t.Clone()
	}), nil
}

func (r *chatRepository) FindOrCreateThread(ctx context.Context, candidate *models.Thread) (*models.Thread, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, b := candidate.Participants[0], candidate.Participants[1]
	existing, found := lo.Find(r.threads, func(t *models.Thread) bool {
		return t.IsBetween(a, b)
	})
	if found {
		return existing.Clone(), false, nil
	}

	if err := r.insertThread(candidate); err != nil {
		return nil, false, err
	}
	return candidate.Clone(), true, nil
}

// Message operations
func (r *chatRepository) AppendMessage(ctx context.Context, message *models.Message) (*models.Thread, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	thread, err := r.thread(message.ThreadID)
	if err != nil {
		return nil, err
	}

	stored := *message
	r.messages[thread.ID] = append(r.messages[thread.ID], &stored)

	last := stored
	thread.LastMessage = &last
	thread.UnreadCount++
	thread.UpdatedAt = stored.Timestamp

	return thread.Clone(), nil
}

func (r *chatRepository) GetMessagesByThreadID(ctx context.Context, threadID string) ([]*models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	messages := make([]*models.Message, 0, len(r.messages[threadID]))
	for _, m := range r.messages[threadID] {
		c := *m
		messages = append(messages, &c)
	}
	return messages, nil
}

func (r *chatRepository) MarkThreadAsRead(ctx context.Context, threadID, readerID string) (*models.Thread, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	thread, err := r.thread(threadID)
	if err != nil {
		return nil, 0, err
	}

	marked := 0
	for _, m := range r.messages[threadID] {
		if m.ReceiverID == readerID && !m.Read {
			m.Read = true
			marked++
		}
	}
	if thread.LastMessage != nil && thread.LastMessage.ReceiverID == readerID {
		thread.LastMessage.Read = true
	}

	// The count is reset even when the other side still has unread messages
	thread.UnreadCount = 0

	return thread.Clone(), marked, nil
}
