package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shubhmangal/backend/internal/domain"
	"github.com/shubhmangal/backend/internal/usecase/interest"
	"github.com/shubhmangal/backend/internal/usecase/profile"
)

type AdminHandler struct {
	profileUseCase  *profile.ProfileUseCase
	interestUseCase *interest.InterestUseCase
}

func NewAdminHandler(profileUseCase *profile.ProfileUseCase, interestUseCase *interest.InterestUseCase) *AdminHandler {
	return &AdminHandler{
		profileUseCase:  profileUseCase,
		interestUseCase: interestUseCase,
	}
}

// ListProfiles returns all profiles, optionally narrowed by ?q= substring
// search and ?status=.
func (h *AdminHandler) ListProfiles(c *gin.Context) {
	term := c.Query("q")
	status := domain.ProfileStatus(c.Query("status"))
	if status != "" && !domain.ValidStatus(status) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid status filter"})
		return
	}

	profiles, err := h.profileUseCase.Search(c.Request.Context(), term, status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list profiles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": profiles, "count": len(profiles)})
}

// UpdateProfile applies an admin field edit, including the vetting fields
// (caste, bihar/bahi, intercaste) that signup leaves empty.
func (h *AdminHandler) UpdateProfile(c *gin.Context) {
	var req profile.AdminUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	p, err := h.profileUseCase.AdminUpdate(c.Request.Context(), c.Param("uid"), &req)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// SetStatusRequest is the admin status transition payload.
type SetStatusRequest struct {
	Status domain.ProfileStatus `json:"status" binding:"required"`
}

func (h *AdminHandler) SetStatus(c *gin.Context) {
	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	err := h.profileUseCase.SetStatus(c.Request.Context(), c.Param("uid"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid profile status"})
		case errors.Is(err, domain.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "profile not found"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to update status"})
		}
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "status updated"})
}

// AddNoteRequest is the admin note payload.
type AddNoteRequest struct {
	Note string `json:"note" binding:"required"`
}

func (h *AdminHandler) AddNote(c *gin.Context) {
	var req AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.profileUseCase.AddNote(c.Request.Context(), c.Param("uid"), req.Note); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to add note"})
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "note added"})
}

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.profileUseCase.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) ListPairs(c *gin.Context) {
	pairs, err := h.interestUseCase.ListAcceptedPairs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load accepted pairs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pairs": pairs, "count": len(pairs)})
}

// ExportCSV streams the current (optionally filtered) profile list as a
// CSV download.
func (h *AdminHandler) ExportCSV(c *gin.Context) {
	term := c.Query("q")
	status := domain.ProfileStatus(c.Query("status"))
	if status != "" && !domain.ValidStatus(status) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid status filter"})
		return
	}

	profiles, err := h.profileUseCase.Search(c.Request.Context(), term, status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list profiles"})
		return
	}

	filename := fmt.Sprintf("shubhmangal_profiles_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := profile.ExportCSV(c.Writer, profiles); err != nil {
		// Headers are already out; nothing useful left to send.
		c.Abort()
	}
}
