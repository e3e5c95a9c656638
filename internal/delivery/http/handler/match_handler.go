package handler

import (
	"errors"
	"net/http"

	"github.com/KaurHarleen1930/hokienest-backend/internal/domain"
	"github.com/KaurHarleen1930/hokienest-backend/internal/usecase/match"
	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchUseCase *match.MatchUseCase
}

func NewMatchHandler(matchUseCase *match.MatchUseCase) *MatchHandler {
	return &MatchHandler{matchUseCase: matchUseCase}
}

// GenerateMatches handles POST /matches/generate
func (h *MatchHandler) GenerateMatches(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	req := &match.GenerateMatchesRequest{}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}
	}

	resp, err := h.matchUseCase.GenerateMatches(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "profile not found"})
		case errors.Is(err, domain.ErrPreferencesIncomplete):
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrInvalidWeightAllocation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to generate matches"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetSavedMatches handles GET /matches
func (h *MatchHandler) GetSavedMatches(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	saved, err := h.matchUseCase.GetSavedMatches(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get matches"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"matches": saved,
		"total":   len(saved),
	})
}
