package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crmtrack-backend/archive"
	"crmtrack-backend/store"
	"crmtrack-backend/utils"
)

// ArchiveController exposes the operator-triggered snapshot export. The
// archiver is nil when no archive database is configured.
type ArchiveController struct {
	stores   *store.Stores
	archiver *archive.Archiver
}

func NewArchiveController(stores *store.Stores, archiver *archive.Archiver) *ArchiveController {
	return &ArchiveController{stores: stores, archiver: archiver}
}

// Export writes the current dataset to the archive database as one batch.
// Nothing is ever read back; the live dataset stays in memory.
func (ac *ArchiveController) Export(c *gin.Context) {
	if ac.archiver == nil {
		utils.RespondWithError(c, http.StatusServiceUnavailable, "Archive storage not configured")
		return
	}

	result, err := ac.archiver.Export(ac.stores)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to export snapshot")
		return
	}

	c.JSON(http.StatusOK, result)
}
