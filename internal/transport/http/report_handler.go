package http

import (
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"salespulse/internal/dataset"
	apierrors "salespulse/internal/errors"
	"salespulse/internal/report"
	"salespulse/internal/services"
)

// TemplateFileName is the download name of the sample workbook.
const TemplateFileName = "sales_template.xlsx"

// ReportHandler handles upload, forecast, and artifact download requests
// with RFC 7807 compliance.
type ReportHandler struct {
	service      ReportServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
	maxBytes     int64
}

// NewReportHandler creates a report handler. maxBytes caps the upload body.
func NewReportHandler(service ReportServiceInterface, maxBytes int64, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *ReportHandler {
	return &ReportHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "report_handler")),
		errorHandler: errorHandler,
		maxBytes:     maxBytes,
	}
}

// Routes returns the report routes with proper Chi patterns.
func (h *ReportHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/upload", h.Upload)
	r.Post("/forecast", h.Forecast)
	r.Get("/template", h.Template)

	r.Route("/reports/{runID}", func(r chi.Router) {
		r.Use(h.RunIDCtx)
		r.Get("/document", h.DownloadDocument)
		r.Get("/chart", h.DownloadChart)
	})

	return r
}

// RunIDCtx validates the run ID parameter. "latest" and UUIDs pass through;
// the artifact store does the final resolution.
func (h *ReportHandler) RunIDCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		runID := chi.URLParam(r, "runID")
		if runID == "" {
			h.errorHandler.HandleError(w, r, apierrors.NewValidationError("run ID is required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// forecastRequest carries the dataset a client got back from an upload.
type forecastRequest struct {
	Data dataset.Dataset `json:"data"`
}

// forecastResponse extends the run result with the chart encoded for inline
// display, mirroring what the dashboard embeds in an <img> tag.
type forecastResponse struct {
	*services.ForecastResult
	Chart string `json:"chart_png_base64"`
}

// Upload handles POST /api/upload. It expects a multipart form with the
// workbook under the "file" field and responds with the dashboard payload.
func (h *ReportHandler) Upload(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetReqID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		h.errorHandler.HandleError(w, r, h.mapBodyError(err, "multipart form could not be parsed"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.NewValidationError("upload requires a workbook in the \"file\" field"))
		return
	}
	defer file.Close()

	h.logger.InfoContext(r.Context(), "processing upload",
		slog.String("request_id", reqID),
		slog.String("filename", header.Filename),
		slog.Int64("size", header.Size),
	)

	data, err := h.service.IngestUpload(r.Context(), file)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, data)
}

// Forecast handles POST /api/forecast. The body carries the dataset from a
// previous upload; the response includes the forecast points, the run ID,
// and the chart as base64 PNG.
func (h *ReportHandler) Forecast(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	var req forecastRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.errorHandler.HandleError(w, r, h.mapBodyError(err, "request body is not valid JSON"))
		return
	}
	if len(req.Data) == 0 {
		h.errorHandler.HandleError(w, r, apierrors.NewValidationError("forecast requires a non-empty dataset"))
		return
	}

	result, err := h.service.RunForecast(r.Context(), req.Data)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, forecastResponse{
		ForecastResult: result,
		Chart:          base64.StdEncoding.EncodeToString(result.ChartPNG),
	})
}

// DownloadDocument handles GET /api/reports/{runID}/document.
func (h *ReportHandler) DownloadDocument(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.ReportDocument(r.Context(), chi.URLParam(r, "runID"))
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	h.writeAttachment(w, data, "application/pdf", report.DocumentFileName)
}

// DownloadChart handles GET /api/reports/{runID}/chart.
func (h *ReportHandler) DownloadChart(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.ChartImage(r.Context(), chi.URLParam(r, "runID"))
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	h.writeAttachment(w, data, "image/png", report.ChartFileName)
}

// Template handles GET /api/template.
func (h *ReportHandler) Template(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.Template(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	h.writeAttachment(w, data, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", TemplateFileName)
}

func (h *ReportHandler) writeAttachment(w http.ResponseWriter, data []byte, contentType, filename string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Error("failed to write attachment", slog.String("error", err.Error()))
	}
}

// mapBodyError converts a body read failure into the pipeline's error
// taxonomy. Oversized bodies surface as 413, everything else as validation.
// The multipart reader does not always preserve the MaxBytesError type, so
// the sentinel message is matched as a fallback.
func (h *ReportHandler) mapBodyError(err error, message string) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) || strings.Contains(err.Error(), "request body too large") {
		return apierrors.NewPayloadTooLargeError(h.maxBytes)
	}
	return apierrors.NewValidationError(message)
}
