package prompt

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainprompt "github.com/promptvault/promptvault/internal/domain/prompt"
	promptsvc "github.com/promptvault/promptvault/internal/service/prompt"
)

func Register(rg *gin.RouterGroup, svc *promptsvc.Service) {
	rg.GET("/", listPrompts(svc))
	rg.POST("/", createPrompt(svc))
	rg.GET("/:id", getPrompt(svc))
	rg.PUT("/:id", updatePrompt(svc))
	rg.DELETE("/:id", deletePrompt(svc))
	rg.PATCH("/:id", markPromptUsed(svc))
}

func listPrompts(svc *promptsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		// recent=true wins: the query ignores search/category/favorites.
		filters := domainprompt.ListFilters{
			Search:        c.Query("search"),
			Category:      c.Query("category"),
			FavoritesOnly: c.Query("favorites") == "true",
			RecentOnly:    c.Query("recent") == "true",
		}

		prompts, err := svc.List(c.Request.Context(), filters)
		if err != nil {
			slog.Error("list prompts failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch prompts"})
			return
		}
		if prompts == nil {
			prompts = []domainprompt.Prompt{}
		}
		c.JSON(http.StatusOK, prompts)
	}
}

type createPromptReq struct {
	Title             string      `json:"title" binding:"required"`
	Description       string      `json:"description"`
	Content           string      `json:"content" binding:"required"`
	Category          string      `json:"category"`
	ContextProfileIDs []uuid.UUID `json:"context_profile_ids"`
}

func createPrompt(svc *promptsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createPromptReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title and content are required"})
			return
		}

		p, err := svc.Create(c.Request.Context(), req.Title, req.Description, req.Content, req.Category, req.ContextProfileIDs)
		if err != nil {
			slog.Error("create prompt failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create prompt"})
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

func getPrompt(svc *promptsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		p, err := svc.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, domainprompt.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "prompt not found"})
				return
			}
			slog.Error("get prompt failed", "id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch prompt"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func updatePrompt(svc *promptsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		var patch domainprompt.Patch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
			return
		}

		p, err := svc.Update(c.Request.Context(), id, patch)
		if err != nil {
			switch {
			case errors.Is(err, domainprompt.ErrEmptyPatch):
				c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
			case errors.Is(err, domainprompt.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "prompt not found"})
			default:
				slog.Error("update prompt failed", "id", id, "error", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update prompt"})
			}
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func deletePrompt(svc *promptsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		if err := svc.Delete(c.Request.Context(), id); err != nil {
			if errors.Is(err, domainprompt.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "prompt not found"})
				return
			}
			slog.Error("delete prompt failed", "id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete prompt"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "prompt deleted"})
	}
}

// markPromptUsed handles PATCH /prompts/:id — no body, bumps last_used.
func markPromptUsed(svc *promptsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		p, err := svc.MarkUsed(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, domainprompt.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "prompt not found"})
				return
			}
			slog.Error("mark prompt used failed", "id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update prompt"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}
