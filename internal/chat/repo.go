package chat

import (
	"context"

	"gorm.io/gorm"
)

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) CreateChat(ctx context.Context, c *Chat) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// GetChat loads a chat scoped to its owner. A chat belonging to another user
// is indistinguishable from a missing one (gorm.ErrRecordNotFound).
func (r *Repo) GetChat(ctx context.Context, userID uint64, chatID string) (*Chat, error) {
	var c Chat
	if err := r.db.WithContext(ctx).
		Where("chat_id = ? AND user_id = ?", chatID, userID).
		First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// ListChats returns the owner's chats, pinned first, then newest first.
func (r *Repo) ListChats(ctx context.Context, userID uint64) ([]Chat, error) {
	var chats []Chat
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_pinned DESC, created_at DESC").
		Find(&chats).Error; err != nil {
		return nil, err
	}
	return chats, nil
}

func (r *Repo) SaveChat(ctx context.Context, c *Chat) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// DeleteChat removes the chat row and cascades to its messages. Ownership must
// already be verified in the same request; the message delete is by chat id
// only, matching the chat row just removed.
func (r *Repo) DeleteChat(ctx context.Context, c *Chat) error {
	if err := r.db.WithContext(ctx).Delete(c).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Where("chat_id = ?", c.ChatID).Delete(&Message{}).Error
}

func (r *Repo) InsertMessage(ctx context.Context, m *Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// ListMessages returns a chat's messages in creation order.
func (r *Repo) ListMessages(ctx context.Context, chatID string) ([]Message, error) {
	var msgs []Message
	if err := r.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("id ASC").
		Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

// ClearMessages deletes all of a chat's messages, leaving the chat row alone.
func (r *Repo) ClearMessages(ctx context.Context, chatID string) error {
	return r.db.WithContext(ctx).Where("chat_id = ?", chatID).Delete(&Message{}).Error
}
