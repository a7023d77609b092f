package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vacationplanner/services"
)

// Export renders the trip with the named renderer as an attachment.
func (h *Handler) Export(format string) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, ok := h.renderers[format]
		if !ok {
			respondError(c, http.StatusNotFound, "not_found", "unknown export format "+format)
			return
		}
		plan, err := h.planner.GetTrip(c.Request.Context(), c.Param("tripId"))
		if err != nil {
			h.respondDomainError(c, err)
			return
		}

		data, err := r.Render(plan)
		if err != nil {
			h.respondDomainError(c, fmt.Errorf("render %s: %w", format, err))
			return
		}
		h.metrics.Exported(c.Request.Context(), format)
		h.log.Info("trip exported",
			zap.String("id", plan.ID),
			zap.String("format", format),
			zap.Int("bytes", len(data)))

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", services.ExportFilename(plan, r)))
		c.Header("Cache-Control", "no-store")
		c.Data(http.StatusOK, r.ContentType(), data)
	}
}
