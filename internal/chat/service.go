package chat

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/axiomai/axiom-server/internal/ai"
	"github.com/axiomai/axiom-server/internal/common"
)

// Completer issues a single completion for a mode. Satisfied by *ai.Router.
type Completer interface {
	Complete(ctx context.Context, mode, userText string) (string, error)
}

type Service struct {
	repo *Repo
	ai   Completer
}

func NewService(repo *Repo, completer Completer) *Service {
	return &Service{repo: repo, ai: completer}
}

func (s *Service) CreateChat(ctx context.Context, userID uint64, title, mode string) (*Chat, error) {
	if title == "" {
		title = DefaultTitle
	}
	if mode == "" {
		mode = DefaultMode
	}
	if !ai.KnownMode(mode) {
		return nil, ErrInvalidMode
	}

	cid, err := common.NewULID()
	if err != nil {
		return nil, err
	}

	c := &Chat{
		ChatID: cid,
		UserID: userID,
		Title:  title,
		Mode:   mode,
	}
	if err := s.repo.CreateChat(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) ListChats(ctx context.Context, userID uint64) ([]Chat, error) {
	return s.repo.ListChats(ctx, userID)
}

func (s *Service) GetChat(ctx context.Context, userID uint64, chatID string) (*Chat, error) {
	return s.repo.GetChat(ctx, userID, chatID)
}

// ChatUpdate is a partial update; nil fields are left untouched.
type ChatUpdate struct {
	Title    *string
	Mode     *string
	IsPinned *bool
}

func (s *Service) UpdateChat(ctx context.Context, userID uint64, chatID string, upd ChatUpdate) (*Chat, error) {
	c, err := s.repo.GetChat(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		c.Title = *upd.Title
	}
	if upd.Mode != nil {
		if !ai.KnownMode(*upd.Mode) {
			return nil, ErrInvalidMode
		}
		c.Mode = *upd.Mode
	}
	if upd.IsPinned != nil {
		c.IsPinned = *upd.IsPinned
	}

	if err := s.repo.SaveChat(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteChat removes a chat and all its messages. Pinned chats must be
// unpinned first.
func (s *Service) DeleteChat(ctx context.Context, userID uint64, chatID string) error {
	c, err := s.repo.GetChat(ctx, userID, chatID)
	if err != nil {
		return err
	}
	if c.IsPinned {
		return ErrChatPinned
	}
	return s.repo.DeleteChat(ctx, c)
}

func (s *Service) ListMessages(ctx context.Context, userID uint64, chatID string) ([]Message, error) {
	if _, err := s.repo.GetChat(ctx, userID, chatID); err != nil {
		return nil, err
	}
	return s.repo.ListMessages(ctx, chatID)
}

// AddMessage appends a message directly, without a provider round trip.
func (s *Service) AddMessage(ctx context.Context, userID uint64, chatID, role, content string) (*Message, error) {
	if role != "user" && role != "assistant" {
		return nil, ErrInvalidRole
	}
	c, err := s.repo.GetChat(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	m := &Message{ChatID: c.ChatID, Role: role, Content: content}
	if err := s.repo.InsertMessage(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) ClearMessages(ctx context.Context, userID uint64, chatID string) error {
	if _, err := s.repo.GetChat(ctx, userID, chatID); err != nil {
		return err
	}
	return s.repo.ClearMessages(ctx, chatID)
}

// SendMessage runs the full send workflow: verify ownership, persist the user
// turn, ask the provider for a reply, persist the assistant turn, and
// auto-title the chat on its first exchange. A mode supplied on the request
// wins over the chat's stored mode for this call only.
func (s *Service) SendMessage(ctx context.Context, userID uint64, chatID, content, modeOverride string) (*Message, *Message, error) {
	c, err := s.repo.GetChat(ctx, userID, chatID)
	if err != nil {
		return nil, nil, err
	}

	activeMode := modeOverride
	if activeMode == "" {
		activeMode = c.Mode
	}
	if activeMode == "" {
		activeMode = DefaultMode
	}

	userMsg := &Message{ChatID: c.ChatID, Role: "user", Content: content}
	if err := s.repo.InsertMessage(ctx, userMsg); err != nil {
		return nil, nil, err
	}

	reply, err := s.ai.Complete(ctx, activeMode, content)
	if err != nil {
		if activeMode == ai.ModeReasoning || activeMode == ai.ModeCode {
			return nil, nil, &EngineUnresponsiveError{Mode: activeMode, Err: err}
		}
		return nil, nil, &UpstreamError{Err: err}
	}

	assistantMsg := &Message{ChatID: c.ChatID, Role: "assistant", Content: reply}
	if err := s.repo.InsertMessage(ctx, assistantMsg); err != nil {
		return nil, nil, err
	}

	if c.Title == DefaultTitle {
		s.autoTitle(ctx, c, content)
	}

	return userMsg, assistantMsg, nil
}

// autoTitle derives a short title from the first user message. Best effort:
// failures are logged and never surfaced to the caller. Title generation
// always uses the default mode, whatever the conversation's mode is.
func (s *Service) autoTitle(ctx context.Context, c *Chat, firstMessage string) {
	prompt := fmt.Sprintf(
		"Generate a concise, 3-5 word title for a conversation that starts with: %q. Avoid quotes and punctuation.",
		firstMessage,
	)

	generated, err := s.ai.Complete(ctx, DefaultMode, prompt)
	if err != nil {
		log.Printf("chat: title generation failed chat_id=%s err=%v", c.ChatID, err)
		return
	}

	title := strings.TrimSpace(strings.NewReplacer(`"`, "", "'", "").Replace(generated))
	if title == "" {
		return
	}

	c.Title = title
	if err := s.repo.SaveChat(ctx, c); err != nil {
		log.Printf("chat: title save failed chat_id=%s err=%v", c.ChatID, err)
	}
}
