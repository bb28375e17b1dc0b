package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shubhmangal/backend/internal/domain"
	"github.com/shubhmangal/backend/internal/usecase/chat"
)

// sessionHeader carries the questionnaire session id between turns.
const sessionHeader = "X-Chat-Session"

type ChatHandler struct {
	chatUseCase *chat.ChatUseCase
}

func NewChatHandler(chatUseCase *chat.ChatUseCase) *ChatHandler {
	return &ChatHandler{chatUseCase: chatUseCase}
}

func (h *ChatHandler) Start(c *gin.Context) {
	turn, err := h.chatUseCase.Start(c.Request.Context(), c.GetString("uid"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to start chat"})
		return
	}
	c.JSON(http.StatusOK, turn)
}

func (h *ChatHandler) Answer(c *gin.Context) {
	sessionID := c.GetHeader(sessionHeader)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing chat session header"})
		return
	}

	var req chat.AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	turn, err := h.chatUseCase.Answer(c.Request.Context(), sessionID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "chat session not found or expired"})
		case errors.Is(err, domain.ErrNoHobbiesSelected):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "please select at least one hobby"})
		case errors.Is(err, domain.ErrInvalidAnswer):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "please choose one of the offered options"})
		case errors.Is(err, domain.ErrSessionFinished):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "chat session already finished"})
		default:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, turn)
}

func (h *ChatHandler) Results(c *gin.Context) {
	sessionID := c.GetHeader(sessionHeader)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing chat session header"})
		return
	}

	matches, prefs, err := h.chatUseCase.Results(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "no results for this session"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load results"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"matches":     matches,
		"preferences": prefs,
	})
}

func (h *ChatHandler) Cancel(c *gin.Context) {
	sessionID := c.GetHeader(sessionHeader)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing chat session header"})
		return
	}

	if err := h.chatUseCase.Cancel(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to cancel chat"})
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "chat session cancelled"})
}
