package handlers

import (
	"github.com/rs/zerolog"

	"webchat/internal/services"
)

// Handler holds the initialized services the page handlers compose.
type Handler struct {
	auth     *services.AuthService
	chats    *services.ChatService
	messages *services.MessageService
	log      zerolog.Logger

	// cookieMaxAge matches the token TTL so cookie and token expire together.
	cookieMaxAge int
}

func New(auth *services.AuthService, chats *services.ChatService, messages *services.MessageService, log zerolog.Logger, cookieMaxAge int) *Handler {
	return &Handler{
		auth:         auth,
		chats:        chats,
		messages:     messages,
		log:          log,
		cookieMaxAge: cookieMaxAge,
	}
}
