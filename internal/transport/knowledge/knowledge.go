package knowledge

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainknowledge "github.com/promptvault/promptvault/internal/domain/knowledge"
	knowledgesvc "github.com/promptvault/promptvault/internal/service/knowledge"
)

func Register(rg *gin.RouterGroup, svc *knowledgesvc.Service) {
	rg.GET("/", listKnowledgeBases(svc))
	rg.POST("/", createKnowledgeBase(svc))
	rg.GET("/:id", getKnowledgeBase(svc))
	rg.PUT("/:id", updateKnowledgeBase(svc))
	rg.DELETE("/:id", deleteKnowledgeBase(svc))
}

func listKnowledgeBases(svc *knowledgesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		filters := domainknowledge.ListFilters{
			Search:   c.Query("search"),
			Category: c.Query("category"),
		}

		kbs, err := svc.List(c.Request.Context(), filters)
		if err != nil {
			slog.Error("list knowledge bases failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch knowledge bases"})
			return
		}
		if kbs == nil {
			kbs = []domainknowledge.KnowledgeBase{}
		}
		c.JSON(http.StatusOK, kbs)
	}
}

type createKnowledgeBaseReq struct {
	Title             string      `json:"title" binding:"required"`
	Description       string      `json:"description"`
	Content           string      `json:"content" binding:"required"`
	Category          string      `json:"category"`
	ContextProfileIDs []uuid.UUID `json:"context_profile_ids"`
}

func createKnowledgeBase(svc *knowledgesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createKnowledgeBaseReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title and content are required"})
			return
		}

		kb, err := svc.Create(c.Request.Context(), req.Title, req.Description, req.Content, req.Category, req.ContextProfileIDs)
		if err != nil {
			slog.Error("create knowledge base failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create knowledge base"})
			return
		}
		c.JSON(http.StatusCreated, kb)
	}
}

func getKnowledgeBase(svc *knowledgesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		kb, err := svc.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, domainknowledge.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "knowledge base not found"})
				return
			}
			slog.Error("get knowledge base failed", "id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch knowledge base"})
			return
		}
		c.JSON(http.StatusOK, kb)
	}
}

func updateKnowledgeBase(svc *knowledgesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		var patch domainknowledge.Patch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
			return
		}

		kb, err := svc.Update(c.Request.Context(), id, patch)
		if err != nil {
			switch {
			case errors.Is(err, domainknowledge.ErrEmptyPatch):
				c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
			case errors.Is(err, domainknowledge.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "knowledge base not found"})
			default:
				slog.Error("update knowledge base failed", "id", id, "error", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update knowledge base"})
			}
			return
		}
		c.JSON(http.StatusOK, kb)
	}
}

func deleteKnowledgeBase(svc *knowledgesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		if err := svc.Delete(c.Request.Context(), id); err != nil {
			if errors.Is(err, domainknowledge.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "knowledge base not found"})
				return
			}
			slog.Error("delete knowledge base failed", "id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete knowledge base"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "knowledge base deleted"})
	}
}
