package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shubhmangal/backend/internal/domain"
	"github.com/shubhmangal/backend/internal/usecase/interest"
)

type InterestHandler struct {
	interestUseCase *interest.InterestUseCase
}

func NewInterestHandler(interestUseCase *interest.InterestUseCase) *InterestHandler {
	return &InterestHandler{interestUseCase: interestUseCase}
}

// ExpressRequest identifies the profile being expressed interest in.
type ExpressRequest struct {
	TargetUID string `json:"target_uid" binding:"required"`
}

func (h *InterestHandler) Express(c *gin.Context) {
	var req ExpressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	in, err := h.interestUseCase.Express(c.Request.Context(), c.GetString("uid"), req.TargetUID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSelfInterest):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cannot express interest in yourself"})
		case errors.Is(err, domain.ErrAdminInterest):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "admin accounts cannot express interest"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to express interest"})
		}
		return
	}

	c.JSON(http.StatusOK, in)
}

func (h *InterestHandler) List(c *gin.Context) {
	result, err := h.interestUseCase.ListForUser(c.Request.Context(), c.GetString("uid"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load interests"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *InterestHandler) Check(c *gin.Context) {
	in, exists, err := h.interestUseCase.Check(c.Request.Context(), c.GetString("uid"), c.Param("target_uid"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to check interest"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"exists":   exists,
		"interest": in,
	})
}

func (h *InterestHandler) Accept(c *gin.Context) {
	h.respond(c, h.interestUseCase.Accept)
}

func (h *InterestHandler) Reject(c *gin.Context) {
	h.respond(c, h.interestUseCase.Reject)
}

func (h *InterestHandler) respond(c *gin.Context, action func(ctx context.Context, id, callerUID string) error) {
	err := action(c.Request.Context(), c.Param("id"), c.GetString("uid"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInterestNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "interest not found"})
		case errors.Is(err, domain.ErrNotTarget):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "only the interest target may respond"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to update interest"})
		}
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "interest updated"})
}

func (h *InterestHandler) PendingCount(c *gin.Context) {
	n, err := h.interestUseCase.PendingCount(c.Request.Context(), c.GetString("uid"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to count pending interests"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pending": n})
}
