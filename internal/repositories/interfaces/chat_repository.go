package interfaces

import (
	"context"

	"campusride/internal/models"
)

type ChatRepository interface {
	// Thread operations
	CreateThread(ctx context.Context, thread *models.Thread) error
	GetThreadByID(ctx context.Context, id string) (*models.Thread, error)
	GetThreadsByParticipant(ctx context.Context, userID string) ([]*models.Thread, error)

	// FindOrCreateThread returns the thread whose participant set equals the
	// candidate's, or stores the candidate. created reports which happened.
	FindOrCreateThread(ctx context.Context, candidate *models.Thread) (thread *models.Thread, created bool, err error)

	// Message operations
	AppendMessage(ctx context.Context, message *models.Message) (*models.Thread, error)
	GetMessagesByThreadID(ctx context.Context, threadID string) ([]*models.Message, error)
	MarkThreadAsRead(ctx context.Context, threadID, readerID string) (*models.Thread, int, error)
}
