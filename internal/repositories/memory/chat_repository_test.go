package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"campusride/internal/models"
	"campusride/internal/utils"

	"github.com/stretchr/testify/require"
)

func newThread(id, a, b string) *models.Thread {
	return &models.Thread{ID: id, Participants: [2]string{a, b}}
}

func TestChatRepository_FindOrCreateThread_IsOrderInsensitive(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := NewChatRepository()

	first, created, err := repo.FindOrCreateThread(ctx, newThread("t1", "Alice", "Bob"))
	req.NoError(err)
	req.True(created)

	second, created, err := repo.FindOrCreateThread(ctx, newThread("t2", "Bob", "Alice"))
	req.NoError(err)
	req.False(created)
	req.Equal(first.ID, second.ID)

	threads, err := repo.GetThreadsByParticipant(ctx, "Alice")
	req.NoError(err)
	req.Len(threads, 1)
}

func TestChatRepository_FindOrCreateThread_Concurrent(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := NewChatRepository()

	var wg sync.WaitGroup
	ids := make(chan string, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			thread, _, err := repo.FindOrCreateThread(ctx, newThread(string(rune('a'+i)), "Alice", "Bob"))
			if err == nil {
				ids <- thread.ID
			}
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := map[string]bool{}
	for id := range ids {
		seen[id] = true
	}
	req.Len(seen, 1)
}

func TestChatRepository_CreateThread_AlwaysCreates(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := NewChatRepository()

	req.NoError(repo.CreateThread(ctx, newThread("t1", "Alice", "Bob")))
	req.NoError(repo.CreateThread(ctx, newThread("t2", "Alice", "Bob")))

	threads, err := repo.GetThreadsByParticipant(ctx, "Bob")
	req.NoError(err)
	req.Len(threads, 2)
}

func TestChatRepository_AppendMessage(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := NewChatRepository()
	req.NoError(repo.CreateThread(ctx, newThread("t1", "Alice", "Bob")))

	at := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	thread, err := repo.AppendMessage(ctx, &models.Message{ID: "m1", ThreadID: "t1", SenderID: "Alice", ReceiverID: "Bob", Content: "x", Timestamp: at})
	req.NoError(err)
	req.Equal(1, thread.UnreadCount)
	req.Equal("x", thread.LastMessage.Content)
	req.Equal(at, thread.UpdatedAt)

	thread, err = repo.AppendMessage(ctx, &models.Message{ID: "m2", ThreadID: "t1", SenderID: "Alice", ReceiverID: "Bob", Content: "y", Timestamp: at})
	req.NoError(err)
	req.Equal(2, thread.UnreadCount)

	messages, err := repo.GetMessagesByThreadID(ctx, "t1")
	req.NoError(err)
	req.Len(messages, 2)
	req.Equal("m1", messages[0].ID)
	req.Equal("m2", messages[1].ID)

	_, err = repo.AppendMessage(ctx, &models.Message{ID: "m3", ThreadID: "nope"})
	req.ErrorIs(err, utils.ErrNotFound)
}

func TestChatRepository_GetMessages_UnknownThreadIsEmpty(t *testing.T) {
	req := require.New(t)
	repo := NewChatRepository()

	messages, err := repo.GetMessagesByThreadID(context.Background(), "missing")
	req.NoError(err)
	req.NotNil(messages)
	req.Empty(messages)
}

func TestChatRepository_MarkThreadAsRead(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := NewChatRepository()
	req.NoError(repo.CreateThread(ctx, newThread("t1", "Alice", "Bob")))

	_, err := repo.AppendMessage(ctx, &models.Message{ID: "m1", ThreadID: "t1", SenderID: "Alice", ReceiverID: "Bob", Content: "hi"})
	req.NoError(err)
	_, err = repo.AppendMessage(ctx, &models.Message{ID: "m2", ThreadID: "t1", SenderID: "Bob", ReceiverID: "Alice", Content: "hey"})
	req.NoError(err)

	thread, marked, err := repo.MarkThreadAsRead(ctx, "t1", "Bob")
	req.NoError(err)
	req.Equal(1, marked)
	req.Equal(0, thread.UnreadCount)

	messages, err := repo.GetMessagesByThreadID(ctx, "t1")
	req.NoError(err)
	req.True(messages[0].Read)
	req.False(messages[1].Read)

	_, _, err = repo.MarkThreadAsRead(ctx, "missing", "Bob")
	req.ErrorIs(err, utils.ErrNotFound)
}
