package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/northcoast-bjj/academy-api/internal/models"
	appErrors "github.com/northcoast-bjj/academy-api/pkg/errors"
	"github.com/northcoast-bjj/academy-api/pkg/export"
	"github.com/northcoast-bjj/academy-api/pkg/jobs"
)

type leadRepository interface {
	Create(ctx context.Context, lead *models.Lead) error
	List(ctx context.Context, filter models.LeadFilter) ([]models.Lead, int, error)
}

// ContactRequest is the main contact-form payload.
type ContactRequest struct {
	Name      string `json:"name" validate:"required,min=2"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"omitempty,phone"`
	Message   string `json:"message" validate:"required,min=10"`
	FreeTrial bool   `json:"free_trial"`
	Source    string `json:"source" validate:"omitempty,max=64"`
}

// ExitIntentRequest is the minimal exit-popup capture.
type ExitIntentRequest struct {
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
}

// KidsTrialRequest is the kids free-trial signup payload.
type KidsTrialRequest struct {
	ParentName    string `json:"parent_name" validate:"required,min=2"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required,min=10,phone"`
	ChildName     string `json:"child_name" validate:"required,min=2"`
	ChildAge      int    `json:"child_age" validate:"required,min=4,max=15"`
	PreferredDays string `json:"preferred_days" validate:"omitempty,max=128"`
	Comments      string `json:"comments" validate:"omitempty,max=1000"`
}

var phonePattern = regexp.MustCompile(`^[\d\s()+-]+$`)

// LeadService validates, persists and fans out prospect submissions.
type LeadService struct {
	repo     leadRepository
	queue    *jobs.Queue
	metrics  *MetricsService
	validate *validator.Validate
	logger   *zap.Logger
}

func NewLeadService(repo leadRepository, queue *jobs.Queue, metrics *MetricsService, logger *zap.Logger) *LeadService {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	return &LeadService{repo: repo, queue: queue, metrics: metrics, validate: v, logger: logger}
}

// SubmitContact records a contact-form lead.
func (s *LeadService) SubmitContact(ctx context.Context, req ContactRequest) (*models.Lead, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}
	lead := &models.Lead{
		Kind:      models.LeadContact,
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:     optional(req.Phone),
		Message:   optional(req.Message),
		FreeTrial: req.FreeTrial,
		Source:    optional(req.Source),
	}
	return s.store(ctx, lead)
}

// SubmitExitIntent records an exit-popup lead.
func (s *LeadService) SubmitExitIntent(ctx context.Context, req ExitIntentRequest) (*models.Lead, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}
	lead := &models.Lead{
		Kind:  models.LeadExitIntent,
		Name:  strings.TrimSpace(req.Name),
		Email: strings.ToLower(strings.TrimSpace(req.Email)),
	}
	return s.store(ctx, lead)
}

// SubmitKidsTrial records a kids free-trial signup.
func (s *LeadService) SubmitKidsTrial(ctx context.Context, req KidsTrialRequest) (*models.Lead, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}
	age := req.ChildAge
	lead := &models.Lead{
		Kind:          models.LeadKidsTrial,
		Name:          strings.TrimSpace(req.ParentName),
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:         optional(req.Phone),
		Message:       optional(req.Comments),
		FreeTrial:     true,
		ChildName:     optional(req.ChildName),
		ChildAge:      &age,
		PreferredDays: optional(req.PreferredDays),
	}
	return s.store(ctx, lead)
}

func (s *LeadService) store(ctx context.Context, lead *models.Lead) (*models.Lead, error) {
	if err := s.repo.Create(ctx, lead); err != nil {
		s.logger.Error("failed to store lead", zap.String("kind", string(lead.Kind)), zap.Error(err))
		return nil, appErrors.Wrap(err, "LEAD_STORE_FAILED", http.StatusInternalServerError, "Failed to save submission")
	}
	if s.metrics != nil {
		s.metrics.RecordLeadCaptured(string(lead.Kind))
	}
	if s.queue != nil {
		if err := s.queue.Enqueue(jobs.Job{
			ID:      lead.ID,
			Type:    "lead.notify",
			Payload: lead,
		}); err != nil {
			// Notification delivery is best-effort, the lead is already saved.
			s.logger.Warn("failed to enqueue lead notification", zap.String("lead_id", lead.ID), zap.Error(err))
		}
	}
	s.logger.Info("lead captured",
		zap.String("lead_id", lead.ID),
		zap.String("kind", string(lead.Kind)),
	)
	return lead, nil
}

// List returns leads for the admin dashboard.
func (s *LeadService) List(ctx context.Context, filter models.LeadFilter) ([]models.Lead, *models.Pagination, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}
	leads, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list leads", zap.Error(err))
		return nil, nil, appErrors.Wrap(err, "LEAD_LIST_FAILED", http.StatusInternalServerError, "Failed to list leads")
	}
	pagination := &models.Pagination{
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalCount: total,
	}
	return leads, pagination, nil
}

// ExportCSV renders the filtered lead list as CSV.
func (s *LeadService) ExportCSV(ctx context.Context, filter models.LeadFilter) ([]byte, error) {
	dataset, err := s.exportDataset(ctx, filter)
	if err != nil {
		return nil, err
	}
	return export.NewCSVExporter().Render(*dataset)
}

// ExportPDF renders the filtered lead list as a PDF table.
func (s *LeadService) ExportPDF(ctx context.Context, filter models.LeadFilter) ([]byte, error) {
	dataset, err := s.exportDataset(ctx, filter)
	if err != nil {
		return nil, err
	}
	return export.NewPDFExporter().Render(*dataset, "Lead Submissions")
}

func (s *LeadService) exportDataset(ctx context.Context, filter models.LeadFilter) (*export.Dataset, error) {
	filter.Page = 1
	filter.PageSize = 1000
	leads, _, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to load leads for export", zap.Error(err))
		return nil, appErrors.Wrap(err, "LEAD_EXPORT_FAILED", http.StatusInternalServerError, "Failed to export leads")
	}

	dataset := &export.Dataset{
		Headers: []string{"Submitted", "Kind", "Name", "Email", "Phone", "Child", "Age", "Message"},
	}
	for _, lead := range leads {
		row := map[string]string{
			"Submitted": lead.CreatedAt.Format("2006-01-02 15:04"),
			"Kind":      string(lead.Kind),
			"Name":      lead.Name,
			"Email":     lead.Email,
			"Phone":     deref(lead.Phone),
			"Child":     deref(lead.ChildName),
			"Message":   deref(lead.Message),
		}
		if lead.ChildAge != nil {
			row["Age"] = fmt.Sprintf("%d", *lead.ChildAge)
		}
		dataset.Rows = append(dataset.Rows, row)
	}
	return dataset, nil
}

func optional(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func validationError(err error) error {
	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		return appErrors.ErrValidation
	}
	details := make([]appErrors.FieldError, 0, len(invalid))
	for _, fe := range invalid {
		details = append(details, appErrors.FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: fieldMessage(fe),
		})
	}
	return appErrors.WithDetails(appErrors.ErrValidation, details)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("Must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("Must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "phone":
		return "Must be a valid phone number"
	default:
		return "Invalid value"
	}
}
