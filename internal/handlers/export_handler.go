package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bracurobu/traction-intake/internal/dtos"
	"github.com/bracurobu/traction-intake/internal/middleware"
	"github.com/bracurobu/traction-intake/internal/services"
	"github.com/bracurobu/traction-intake/internal/session"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler downloads the currently loaded dashboard page as .xlsx. It
// sees the same page + view parameters as the table, never the full upstream
// collection.
type ExportHandler struct {
	listSvc   *services.ListingService
	exportSvc *services.ExportService
	sessions  *session.Store
	logger    *zap.Logger
}

func NewExportHandler(listSvc *services.ListingService, exportSvc *services.ExportService, sessions *session.Store, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{listSvc: listSvc, exportSvc: exportSvc, sessions: sessions, logger: logger}
}

// Export is the GET /api/applicants/export endpoint.
func (h *ExportHandler) Export(c *gin.Context) {
	var q dtos.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.listSvc.FetchPage(c.Request.Context(), middleware.SessionToken(c), &q)
	if err != nil {
		// Same recovery as the table view.
		writeFetchError(c, err, h.sessions, h.logger)
		return
	}

	buf, err := h.exportSvc.Workbook(services.RowsFromApplicants(resp.Items))
	if err != nil {
		h.logger.Error("workbook generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate export"})
		return
	}
	if buf == nil {
		// Empty page: logged by the service, no file produced.
		c.Status(http.StatusNoContent)
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", `attachment; filename="`+services.Filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
