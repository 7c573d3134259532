package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"webchat/internal/api/middleware"
	"webchat/internal/models"
	"webchat/internal/services"
)

func (h *Handler) ListChats(c *gin.Context) {
	user := middleware.CurrentUser(c)

	chats, err := h.chats.ListChats(user.ID)
	if err != nil {
		h.log.Error().Err(err).Uint("user_id", user.ID).Msg("listing chats failed")
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	c.HTML(http.StatusOK, "chats.html", gin.H{
		"UserEmail": user.Email,
		"UserID":    user.ID,
		"Chats":     chats,
	})
}

func (h *Handler) CreateChat(c *gin.Context) {
	user := middleware.CurrentUser(c)

	chat, err := h.chats.CreateChat(user.ID, c.PostForm("name"))
	if err != nil {
		h.log.Error().Err(err).Uint("user_id", user.ID).Msg("creating chat failed")
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/chats/%d", chat.ID))
}

func (h *Handler) ChatDetail(c *gin.Context) {
	user := middleware.CurrentUser(c)

	chat, ok := h.loadChat(c)
	if !ok {
		return
	}
	if !h.guardAccess(c, chat, user) {
		return
	}

	h.renderDetail(c, chat, user, "", http.StatusOK)
}

// SendMessage shares the detail guards. Whitespace-only content is a silent
// no-op; the redirect happens either way.
func (h *Handler) SendMessage(c *gin.Context) {
	user := middleware.CurrentUser(c)

	chat, ok := h.loadChat(c)
	if !ok {
		return
	}
	if !h.guardAccess(c, chat, user) {
		return
	}

	if err := h.messages.Send(chat.ID, user.ID, c.PostForm("content")); err != nil {
		h.log.Error().Err(err).Uint("chat_id", chat.ID).Msg("sending message failed")
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/chats/%d", chat.ID))
}

// JoinChat is open to any authenticated user; joining twice is a no-op.
func (h *Handler) JoinChat(c *gin.Context) {
	user := middleware.CurrentUser(c)

	chat, ok := h.loadChat(c)
	if !ok {
		return
	}

	if err := h.chats.Join(chat.ID, user.ID); err != nil {
		h.log.Error().Err(err).Uint("chat_id", chat.ID).Msg("joining chat failed")
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/chats/%d", chat.ID))
}

func (h *Handler) InviteUser(c *gin.Context) {
	user := middleware.CurrentUser(c)

	chat, ok := h.loadChat(c)
	if !ok {
		return
	}
	if !h.guardAccess(c, chat, user) {
		return
	}

	if err := h.chats.Invite(chat.ID, c.PostForm("email")); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			h.renderDetail(c, chat, user, "No user with that email", http.StatusBadRequest)
			return
		}
		h.log.Error().Err(err).Uint("chat_id", chat.ID).Msg("inviting user failed")
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/chats/%d", chat.ID))
}

func (h *Handler) DeleteChat(c *gin.Context) {
	user := middleware.CurrentUser(c)

	chat, ok := h.loadChat(c)
	if !ok {
		return
	}

	if err := h.chats.DeleteChat(chat, user.ID); err != nil {
		if errors.Is(err, services.ErrNotOwner) {
			c.String(http.StatusForbidden, "only the owner may delete the chat")
			return
		}
		h.log.Error().Err(err).Uint("chat_id", chat.ID).Msg("deleting chat failed")
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	c.Redirect(http.StatusSeeOther, "/chats")
}

// loadChat parses the id parameter and loads the chat. A malformed or
// unknown id is a hard 404, unlike the membership guard which redirects.
func (h *Handler) loadChat(c *gin.Context) (*models.Chat, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "chat not found")
		return nil, false
	}

	chat, err := h.chats.GetChat(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrChatNotFound) {
			c.String(http.StatusNotFound, "chat not found")
		} else {
			h.log.Error().Err(err).Uint64("chat_id", id).Msg("loading chat failed")
			c.String(http.StatusInternalServerError, "something went wrong")
		}
		return nil, false
	}
	return chat, true
}

// guardAccess enforces the member-or-owner rule. Failing the guard sends the
// user back to their chat list instead of leaking that the chat exists.
func (h *Handler) guardAccess(c *gin.Context, chat *models.Chat, user *models.User) bool {
	allowed, err := h.chats.CanAccess(chat, user.ID)
	if err != nil {
		h.log.Error().Err(err).Uint("chat_id", chat.ID).Msg("membership check failed")
		c.String(http.StatusInternalServerError, "something went wrong")
		return false
	}
	if !allowed {
		c.Redirect(http.StatusSeeOther, "/chats")
		return false
	}
	return true
}

func (h *Handler) renderDetail(c *gin.Context, chat *models.Chat, user *models.User, errMsg string, status int) {
	messages, err := h.messages.ListByChat(chat.ID)
	if err != nil {
		h.log.Error().Err(err).Uint("chat_id", chat.ID).Msg("loading messages failed")
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}
	participants, err := h.chats.ListParticipants(chat.ID)
	if err != nil {
		h.log.Error().Err(err).Uint("chat_id", chat.ID).Msg("loading participants failed")
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	c.HTML(status, "chat_detail.html", gin.H{
		"UserEmail":    user.Email,
		"UserID":       user.ID,
		"Chat":         chat,
		"Messages":     messages,
		"Participants": participants,
		"IsOwner":      chat.OwnerID == user.ID,
		"Error":        errMsg,
	})
}
