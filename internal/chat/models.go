package chat

import "time"

// DefaultTitle is the sentinel used to detect chats eligible for auto-titling.
const DefaultTitle = "New Chat"

const DefaultMode = "chat"

type Chat struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"-"`
	ChatID    string    `gorm:"type:varchar(26);uniqueIndex;not null" json:"id"`
	UserID    uint64    `gorm:"index:idx_chats_user_created,priority:1;not null" json:"-"`
	Title     string    `gorm:"type:varchar(200);not null" json:"title"`
	Mode      string    `gorm:"type:varchar(16);not null" json:"mode"`
	IsPinned  bool      `gorm:"not null;default:false" json:"isPinned"`
	CreatedAt time.Time `gorm:"index:idx_chats_user_created,priority:2" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Chat) TableName() string { return "chats" }

type Message struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ChatID    string    `gorm:"type:varchar(26);index;not null" json:"chatId"`
	Role      string    `gorm:"type:varchar(16);not null" json:"role"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Message) TableName() string { return "chat_messages" }
