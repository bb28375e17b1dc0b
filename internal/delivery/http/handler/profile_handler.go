package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shubhmangal/backend/internal/domain"
	"github.com/shubhmangal/backend/internal/usecase/profile"
)

type ProfileHandler struct {
	profileUseCase *profile.ProfileUseCase
}

func NewProfileHandler(profileUseCase *profile.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{profileUseCase: profileUseCase}
}

func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	uid := c.GetString("uid")

	p, err := h.profileUseCase.Get(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) UpdateMyProfile(c *gin.Context) {
	uid := c.GetString("uid")

	var req profile.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	p, err := h.profileUseCase.Update(c.Request.Context(), uid, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "profile not found"})
		case errors.Is(err, domain.ErrProfileLocked):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "profile can only be edited while pending or rejected"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to update profile"})
		}
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) UpdateMyPhoto(c *gin.Context) {
	uid := c.GetString("uid")

	file, _, err := c.Request.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "photo file is required"})
		return
	}
	defer file.Close()

	p, err := h.profileUseCase.UpdatePhoto(c.Request.Context(), uid, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to update photo"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// GetProfile returns another user's profile. Only approved profiles are
// visible unless the caller is the owner or an admin.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	uid := c.Param("uid")
	callerUID := c.GetString("uid")
	isAdmin := c.GetBool("is_admin")

	p, err := h.profileUseCase.Get(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load profile"})
		return
	}

	if p.Status != domain.StatusApproved && callerUID != uid && !isAdmin {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "profile not found"})
		return
	}

	if !isAdmin {
		p.Notes = nil // admin annotations stay internal
	}
	c.JSON(http.StatusOK, p)
}
