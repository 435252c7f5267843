package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/refpay/earnings-be/internal/domain"
	"github.com/refpay/earnings-be/internal/service"
	"github.com/refpay/earnings-be/pkg/logger"
)

type EarningsHandler struct {
	service service.EarningsService
	logger  *logger.Logger
}

func NewEarningsHandler(svc service.EarningsService, log *logger.Logger) *EarningsHandler {
	return &EarningsHandler{
		service: svc,
		logger:  log,
	}
}

type reviewRequest struct {
	Reason string `json:"reason"`
	Notes  string `json:"notes"`
}

type bulkReviewRequest struct {
	EarningIDs []string `json:"earningIds"`
	Reason     string   `json:"reason"`
	Notes      string   `json:"notes"`
}

// BulkUpload ingests a batch of earning drafts, as JSON or as a multipart
// CSV upload. Partial failure is still a 200 with the full report; only
// fatal batch errors return 4xx without details.
func (h *EarningsHandler) BulkUpload(c echo.Context) error {
	ctx := c.Request().Context()
	uploadedBy := callerIdentity(c)

	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		return h.bulkUploadCSV(c, uploadedBy)
	}

	var batch domain.BulkUploadBatch
	if err := c.Bind(&batch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "malformed payload",
		})
	}
	batch.UploadedBy = uploadedBy

	response, err := h.service.BulkUpload(ctx, batch)
	if err != nil {
		return h.bulkUploadError(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

func (h *EarningsHandler) bulkUploadCSV(c echo.Context, uploadedBy string) error {
	ctx := c.Request().Context()

	file, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "file is required",
		})
	}

	src, err := file.Open()
	if err != nil {
		h.logger.Error(ctx, "Failed to open uploaded file",
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to open file",
		})
	}
	defer src.Close()

	batch := domain.BulkUploadBatch{
		BatchDescription: c.FormValue("batchDescription"),
		AutoConfirm:      c.FormValue("autoConfirm") == "true",
		UploadedBy:       uploadedBy,
	}

	response, err := h.service.BulkUploadCSV(ctx, src, batch)
	if err != nil {
		return h.bulkUploadError(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

func (h *EarningsHandler) bulkUploadError(c echo.Context, err error) error {
	ctx := c.Request().Context()

	if domain.IsFatalBatchError(err) {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
	}

	h.logger.Error(ctx, "Bulk upload failed",
		"error", err,
	)
	return c.JSON(http.StatusInternalServerError, map[string]string{
		"error": "failed to process batch",
	})
}

func (h *EarningsHandler) Approve(c echo.Context) error {
	ctx := c.Request().Context()
	earningID := c.Param("id")

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "malformed payload",
		})
	}

	earning, err := h.service.Approve(ctx, earningID, callerIdentity(c), req.Notes)
	if err != nil {
		return h.reviewError(c, earningID, err)
	}

	return c.JSON(http.StatusOK, earning)
}

func (h *EarningsHandler) Reject(c echo.Context) error {
	ctx := c.Request().Context()
	earningID := c.Param("id")

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "malformed payload",
		})
	}

	earning, err := h.service.Reject(ctx, earningID, callerIdentity(c), req.Reason, req.Notes)
	if err != nil {
		return h.reviewError(c, earningID, err)
	}

	return c.JSON(http.StatusOK, earning)
}

func (h *EarningsHandler) BulkApprove(c echo.Context) error {
	ctx := c.Request().Context()

	var req bulkReviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "malformed payload",
		})
	}

	summary, err := h.service.BulkApprove(ctx, req.EarningIDs, callerIdentity(c), req.Notes)
	if err != nil {
		return h.reviewError(c, "", err)
	}

	return c.JSON(http.StatusOK, summary)
}

func (h *EarningsHandler) BulkReject(c echo.Context) error {
	ctx := c.Request().Context()

	var req bulkReviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "malformed payload",
		})
	}

	summary, err := h.service.BulkReject(ctx, req.EarningIDs, callerIdentity(c), req.Reason, req.Notes)
	if err != nil {
		return h.reviewError(c, "", err)
	}

	return c.JSON(http.StatusOK, summary)
}

func (h *EarningsHandler) reviewError(c echo.Context, earningID string, err error) error {
	ctx := c.Request().Context()

	switch {
	case errors.Is(err, domain.ErrEarningNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "earning not found",
		})
	case errors.Is(err, domain.ErrStateConflict):
		return c.JSON(http.StatusConflict, map[string]string{
			"error": "earning is not pending",
		})
	case errors.Is(err, domain.ErrReasonRequired):
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "reason is required",
		})
	}

	h.logger.Error(ctx, "Review operation failed",
		"earning_id", earningID,
		"error", err,
	)
	return c.JSON(http.StatusInternalServerError, map[string]string{
		"error": "review operation failed",
	})
}

func (h *EarningsHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	filter := domain.EarningFilter{
		AgentID: c.QueryParam("agent_id"),
		Tier:    c.QueryParam("tier"),
		Search:  c.QueryParam("search"),
		Page:    1,
		PerPage: 20,
	}

	if raw := c.QueryParam("status"); raw != "" {
		status := domain.EarningStatus(raw)
		if status != domain.EarningStatusPending &&
			status != domain.EarningStatusConfirmed &&
			status != domain.EarningStatusCancelled {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "status must be pending, confirmed or cancelled",
			})
		}
		filter.Status = &status
	}

	if page, err := strconv.Atoi(c.QueryParam("page")); err == nil && page >= 1 {
		filter.Page = page
	}
	if perPage, err := strconv.Atoi(c.QueryParam("per_page")); err == nil && perPage >= 1 {
		filter.PerPage = perPage
	}

	if from, ok := parseDate(c.QueryParam("from")); ok {
		filter.From = &from
	}
	if to, ok := parseDate(c.QueryParam("to")); ok {
		filter.To = &to
	}

	earnings, total, err := h.service.List(ctx, filter)
	if err != nil {
		h.logger.Error(ctx, "Failed to list earnings",
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to list earnings",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"items":    earnings,
		"page":     filter.Page,
		"per_page": filter.PerPage,
		"total":    total,
	})
}

// Template serves the canonical CSV upload template.
func (h *EarningsHandler) Template(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="earnings_template.csv"`)
	return c.Blob(http.StatusOK, "text/csv", []byte(service.TemplateCSV()))
}

// callerIdentity trusts the upstream gateway to authenticate the admin and
// forward their id.
func callerIdentity(c echo.Context) string {
	if id := c.Request().Header.Get("X-Admin-ID"); id != "" {
		return id
	}
	return "system"
}

func parseDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}
