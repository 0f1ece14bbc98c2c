package contextprofile

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domaincontext "github.com/promptvault/promptvault/internal/domain/contextprofile"
	contextsvc "github.com/promptvault/promptvault/internal/service/contextprofile"
)

func Register(rg *gin.RouterGroup, svc *contextsvc.Service) {
	rg.GET("/", listContextProfiles(svc))
	rg.POST("/", createContextProfile(svc))
	rg.GET("/:id", getContextProfile(svc))
	rg.PUT("/:id", updateContextProfile(svc))
	rg.DELETE("/:id", deleteContextProfile(svc))
}

func listContextProfiles(svc *contextsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		filters := domaincontext.ListFilters{
			Search: c.Query("search"),
		}

		profiles, err := svc.List(c.Request.Context(), filters)
		if err != nil {
			slog.Error("list context profiles failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch context profiles"})
			return
		}
		if profiles == nil {
			profiles = []domaincontext.ContextProfile{}
		}
		c.JSON(http.StatusOK, profiles)
	}
}

type createContextProfileReq struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	JSONData    json.RawMessage `json:"json_data" binding:"required"`
}

func createContextProfile(svc *contextsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createContextProfileReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and json_data are required"})
			return
		}

		cp, err := svc.Create(c.Request.Context(), req.Name, req.Description, req.JSONData)
		if err != nil {
			if errors.Is(err, domaincontext.ErrInvalidJSON) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON data"})
				return
			}
			slog.Error("create context profile failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create context profile"})
			return
		}
		c.JSON(http.StatusCreated, cp)
	}
}

func getContextProfile(svc *contextsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		cp, err := svc.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, domaincontext.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "context profile not found"})
				return
			}
			slog.Error("get context profile failed", "id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch context profile"})
			return
		}
		c.JSON(http.StatusOK, cp)
	}
}

func updateContextProfile(svc *contextsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		var patch domaincontext.Patch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
			return
		}

		cp, err := svc.Update(c.Request.Context(), id, patch)
		if err != nil {
			switch {
			case errors.Is(err, domaincontext.ErrEmptyPatch):
				c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
			case errors.Is(err, domaincontext.ErrInvalidJSON):
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON data"})
			case errors.Is(err, domaincontext.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "context profile not found"})
			default:
				slog.Error("update context profile failed", "id", id, "error", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update context profile"})
			}
			return
		}
		c.JSON(http.StatusOK, cp)
	}
}

func deleteContextProfile(svc *contextsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		if err := svc.Delete(c.Request.Context(), id); err != nil {
			if errors.Is(err, domaincontext.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "context profile not found"})
				return
			}
			slog.Error("delete context profile failed", "id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete context profile"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "context profile deleted"})
	}
}
