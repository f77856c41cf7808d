package http

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ensaf/contracts-service/internal/http/middleware"
	"github.com/ensaf/contracts-service/internal/model"
	"github.com/ensaf/contracts-service/internal/service"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Handler struct {
	contracts *service.ContractService
	assist    *service.AssistService
	log       zerolog.Logger
	uploadMax int64
	now       func() time.Time
}

func NewHandler(contracts *service.ContractService, assist *service.AssistService, uploadMax int64, log zerolog.Logger) *Handler {
	return &Handler{contracts: contracts, assist: assist, log: log, uploadMax: uploadMax, now: time.Now}
}

func (h *Handler) Register(router *gin.Engine) {
	router.GET("/health", h.health)

	api := router.Group("/api")
	api.GET("/contract-fields", h.contractFields)
	api.POST("/generate-contract", h.generateContract)
	api.POST("/explain-clause", h.explainClause)
	api.POST("/export-pdf", h.exportPDF)
	api.POST("/export-xlsx", h.exportXLSX)
	api.POST("/review-contract", h.reviewContract)
}

type contractRequest struct {
	FormData     model.Submission        `json:"form_data"`
	ContractData *model.ContractDocument `json:"contract_data"`
}

type explainRequest struct {
	ClauseText string `json:"clause_text"`
	Language   string `json:"language"`
}

type reviewRequest struct {
	ContractText string `json:"contract_text"`
	Language     string `json:"language"`
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": h.now().Format(time.RFC3339)})
}

func (h *Handler) contractFields(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "fields": h.contracts.Fields()})
}

func (h *Handler) generateContract(c *gin.Context) {
	var req contractRequest
	if !h.bindJSON(c, &req) {
		return
	}

	doc := h.contracts.Build(req.FormData)
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"contract":     doc,
		"generated_at": h.now().Format(time.RFC3339),
	})
}

func (h *Handler) explainClause(c *gin.Context) {
	var req explainRequest
	if !h.bindJSON(c, &req) {
		return
	}

	explanation, err := h.assist.Explain(c.Request.Context(), req.ClauseText, req.Language)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "explanation": explanation})
}

func (h *Handler) exportPDF(c *gin.Context) {
	var req contractRequest
	if !h.bindJSON(c, &req) {
		return
	}

	result, err := h.contracts.ExportPDF(c.Request.Context(), service.ExportInput{
		Submission: req.FormData,
		Document:   req.ContractData,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.attachment(c, contentTypePDF, result)
}

func (h *Handler) exportXLSX(c *gin.Context) {
	var req contractRequest
	if !h.bindJSON(c, &req) {
		return
	}

	result, err := h.contracts.ExportExcel(c.Request.Context(), service.ExportInput{
		Submission: req.FormData,
		Document:   req.ContractData,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.attachment(c, contentTypeXLSX, result)
}

func (h *Handler) reviewContract(c *gin.Context) {
	if h.uploadMax > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.uploadMax)
	}

	var input service.ReviewInput
	if isForm(c.ContentType()) {
		parsed, ok := h.readForm(c)
		if !ok {
			return
		}
		input = parsed
	} else {
		var req reviewRequest
		if !h.bindJSON(c, &req) {
			return
		}
		input = service.ReviewInput{Text: req.ContractText, Language: req.Language}
	}

	result, err := h.assist.Review(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"review":      result.Review,
		"text_length": result.TextLength,
		"reviewed_at": result.ReviewedAt.Format(time.RFC3339),
	})
}

func (h *Handler) readForm(c *gin.Context) (service.ReviewInput, bool) {
	input := service.ReviewInput{
		Text:     c.PostForm("contract_text"),
		Language: c.PostForm("language"),
	}

	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		return input, true
	}
	header, err := c.FormFile("contract_file")
	switch {
	case errors.Is(err, http.ErrMissingFile):
		return input, true
	case err != nil:
		h.requestError(c, err)
		return input, false
	}

	content, err := readUpload(header)
	if err != nil {
		h.requestError(c, err)
		return input, false
	}
	input.File = &service.Upload{Name: header.Filename, Content: content}
	return input, true
}

func readUpload(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

// bindJSON accepts an empty body as an empty request.
func (h *Handler) bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		h.requestError(c, err)
		return false
	}
	return true
}

func (h *Handler) requestError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"success": false, "error": "uploaded content is too large"})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
}

func (h *Handler) attachment(c *gin.Context, contentType string, result *service.FileResult) {
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, contentType, result.Content)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrUnsupportedFile),
		errors.Is(err, service.ErrExtraction):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, service.ErrAssistant), errors.Is(err, service.ErrRender):
		h.log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
	default:
		h.log.Error().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal error"})
	}
}

func isForm(contentType string) bool {
	return strings.HasPrefix(contentType, "multipart/form-data") ||
		strings.HasPrefix(contentType, "application/x-www-form-urlencoded")
}
