package data

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/promptvault/promptvault/internal/domain/export"
	adminsvc "github.com/promptvault/promptvault/internal/service/admin"
)

func Register(rg *gin.RouterGroup, svc *adminsvc.Service) {
	rg.GET("/export", exportData(svc))
	rg.DELETE("/reset", resetData(svc))
}

func exportData(svc *adminsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		scope, err := export.ParseScope(c.Query("type"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		snap, err := svc.Export(c.Request.Context(), scope)
		if err != nil {
			slog.Error("export failed", "scope", scope, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export data"})
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", snap.Filename()))
		c.JSON(http.StatusOK, snap)
	}
}

func resetData(svc *adminsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		resetAt, err := svc.Reset(c.Request.Context())
		if err != nil {
			slog.Error("reset failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset data"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":  "all data has been reset",
			"reset_at": resetAt,
		})
	}
}
