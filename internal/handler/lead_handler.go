package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/northcoast-bjj/academy-api/internal/models"
	"github.com/northcoast-bjj/academy-api/internal/service"
	appErrors "github.com/northcoast-bjj/academy-api/pkg/errors"
	"github.com/northcoast-bjj/academy-api/pkg/response"
)

// LeadHandler exposes the public form endpoints and the admin lead views.
type LeadHandler struct {
	leads *service.LeadService
}

// NewLeadHandler constructs handler.
func NewLeadHandler(leads *service.LeadService) *LeadHandler {
	return &LeadHandler{leads: leads}
}

// SubmitContact godoc
// @Summary Submit the contact form
// @Tags Leads
// @Accept json
// @Produce json
// @Param payload body service.ContactRequest true "Contact payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 429 {object} response.Envelope
// @Router /contact [post]
func (h *LeadHandler) SubmitContact(c *gin.Context) {
	var req service.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	lead, err := h.leads.SubmitContact(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, lead)
}

// SubmitExitIntent godoc
// @Summary Submit the exit-intent capture form
// @Tags Leads
// @Accept json
// @Produce json
// @Param payload body service.ExitIntentRequest true "Exit intent payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 429 {object} response.Envelope
// @Router /exit-intent [post]
func (h *LeadHandler) SubmitExitIntent(c *gin.Context) {
	var req service.ExitIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	lead, err := h.leads.SubmitExitIntent(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, lead)
}

// SubmitKidsTrial godoc
// @Summary Submit the kids free-trial signup form
// @Tags Leads
// @Accept json
// @Produce json
// @Param payload body service.KidsTrialRequest true "Kids trial payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 429 {object} response.Envelope
// @Router /kids-trial [post]
func (h *LeadHandler) SubmitKidsTrial(c *gin.Context) {
	var req service.KidsTrialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	lead, err := h.leads.SubmitKidsTrial(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, lead)
}

// List godoc
// @Summary List captured leads
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param kind query string false "Filter by form kind"
// @Param search query string false "Match against name or email"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /admin/leads [get]
func (h *LeadHandler) List(c *gin.Context) {
	filter := leadFilter(c)
	leads, pagination, err := h.leads.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, leads, pagination)
}

// Export godoc
// @Summary Export captured leads
// @Tags Admin
// @Produce octet-stream
// @Security BearerAuth
// @Param format query string false "csv or pdf" default(csv)
// @Param kind query string false "Filter by form kind"
// @Success 200 {file} file
// @Router /admin/leads/export [get]
func (h *LeadHandler) Export(c *gin.Context) {
	filter := leadFilter(c)
	format := c.DefaultQuery("format", "csv")
	stamp := time.Now().Format("20060102")

	switch format {
	case "csv":
		payload, err := h.leads.ExportCSV(c.Request.Context(), filter)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=leads-%s.csv", stamp))
		c.Data(http.StatusOK, "text/csv", payload)
	case "pdf":
		payload, err := h.leads.ExportPDF(c.Request.Context(), filter)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=leads-%s.pdf", stamp))
		c.Data(http.StatusOK, "application/pdf", payload)
	default:
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf"))
	}
}

func leadFilter(c *gin.Context) models.LeadFilter {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	return models.LeadFilter{
		Kind:     c.Query("kind"),
		Search:   c.Query("search"),
		Page:     page,
		PageSize: pageSize,
	}
}
