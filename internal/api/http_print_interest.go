package api

import (
	"net/http"
	"portrait/internal/entity"

	"github.com/gin-gonic/gin"
)

func (h *HTTPHandler) RecordPrintInterest(c *gin.Context) {
	var request entity.PrintInterestRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		InvalidPayload(c)
		return
	}

	id, err := h.printInterests.Record(c.Request.Context(), CurrentUserID(c), request)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "id": id})
}
