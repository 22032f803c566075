package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/axiomai/axiom-server/internal/chat"
	"github.com/axiomai/axiom-server/internal/common"
	"github.com/axiomai/axiom-server/internal/httpapi/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// chatError translates service errors to the envelope.
func chatError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		common.Fail(c, http.StatusNotFound, "Chat not found")
	case errors.Is(err, chat.ErrChatPinned):
		common.Fail(c, http.StatusBadRequest, "Pinned sessions cannot be purged. Unpin this session first.")
	case errors.Is(err, chat.ErrInvalidMode):
		common.Fail(c, http.StatusBadRequest, "Invalid chat mode")
	case errors.Is(err, chat.ErrInvalidRole):
		common.Fail(c, http.StatusBadRequest, "Role must be user or assistant")
	default:
		common.Fail(c, http.StatusInternalServerError, "Internal Server Error")
	}
}

type createChatReq struct {
	Title string `json:"title"`
	Mode  string `json:"mode"`
}

func (h *Handler) CreateChat(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req createChatReq
	_ = c.ShouldBindJSON(&req) // empty body is a valid "defaults" request

	created, err := h.ChatSvc.CreateChat(c.Request.Context(), user.ID, req.Title, req.Mode)
	if err != nil {
		chatError(c, err)
		return
	}

	common.OK(c, http.StatusCreated, "Chat created successfully", gin.H{"chat": created})
}

func (h *Handler) ListChats(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	chats, err := h.ChatSvc.ListChats(c.Request.Context(), user.ID)
	if err != nil {
		chatError(c, err)
		return
	}

	common.OK(c, http.StatusOK, "", gin.H{"chats": chats})
}

func (h *Handler) GetChat(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	found, err := h.ChatSvc.GetChat(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		chatError(c, err)
		return
	}

	common.OK(c, http.StatusOK, "", gin.H{"chat": found})
}

type updateChatReq struct {
	Title    *string `json:"title"`
	Mode     *string `json:"mode"`
	IsPinned *bool   `json:"isPinned"`
}

func (h *Handler) UpdateChat(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req updateChatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.ChatSvc.UpdateChat(c.Request.Context(), user.ID, c.Param("id"), chat.ChatUpdate{
		Title:    req.Title,
		Mode:     req.Mode,
		IsPinned: req.IsPinned,
	})
	if err != nil {
		chatError(c, err)
		return
	}

	common.OK(c, http.StatusOK, "Chat updated successfully", gin.H{"chat": updated})
}

func (h *Handler) DeleteChat(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	if err := h.ChatSvc.DeleteChat(c.Request.Context(), user.ID, c.Param("id")); err != nil {
		chatError(c, err)
		return
	}

	common.OK(c, http.StatusOK, "Chat and messages deleted successfully", nil)
}

func (h *Handler) ListMessages(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	msgs, err := h.ChatSvc.ListMessages(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		chatError(c, err)
		return
	}

	common.OK(c, http.StatusOK, "", gin.H{"messages": msgs})
}

type addMessageReq struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (h *Handler) AddMessage(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req addMessageReq
	_ = c.ShouldBindJSON(&req)

	if req.Role == "" || req.Content == "" {
		common.Fail(c, http.StatusBadRequest, "Role and content are required")
		return
	}

	msg, err := h.ChatSvc.AddMessage(c.Request.Context(), user.ID, c.Param("id"), req.Role, req.Content)
	if err != nil {
		chatError(c, err)
		return
	}

	common.OK(c, http.StatusCreated, "", gin.H{"message": msg})
}

func (h *Handler) ClearMessages(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	if err := h.ChatSvc.ClearMessages(c.Request.Context(), user.ID, c.Param("id")); err != nil {
		chatError(c, err)
		return
	}

	common.OK(c, http.StatusOK, "Messages cleared successfully", nil)
}

type sendMessageReq struct {
	ChatID  string `json:"chatId"`
	Message string `json:"message"`
	Mode    string `json:"mode"`
}

func (h *Handler) SendMessage(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req sendMessageReq
	_ = c.ShouldBindJSON(&req)

	if req.ChatID == "" || req.Message == "" {
		common.Fail(c, http.StatusBadRequest, "Chat ID and message are required")
		return
	}

	userMsg, assistantMsg, err := h.ChatSvc.SendMessage(c.Request.Context(), user.ID, req.ChatID, req.Message, req.Mode)
	if err != nil {
		var engineErr *chat.EngineUnresponsiveError
		var upstreamErr *chat.UpstreamError
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			common.Fail(c, http.StatusNotFound, "Chat not found or access denied")
		case errors.As(err, &engineErr):
			log.Printf("chat send failed chat_id=%s mode=%s err=%v", req.ChatID, engineErr.Mode, err)
			body := gin.H{"success": false, "message": engineErr.UserMessage()}
			if !h.Cfg.IsProduction() {
				body["error"] = engineErr.Err.Error()
			}
			c.JSON(http.StatusBadGateway, body)
		case errors.As(err, &upstreamErr):
			log.Printf("chat send failed chat_id=%s err=%v", req.ChatID, err)
			msg := "Error processing chat message"
			if upstreamErr.Err != nil && upstreamErr.Err.Error() != "" {
				msg = upstreamErr.Err.Error()
			}
			common.Fail(c, http.StatusInternalServerError, msg)
		default:
			common.Fail(c, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	common.OK(c, http.StatusOK, "", gin.H{
		"userMessage":      userMsg,
		"assistantMessage": assistantMsg,
	})
}
