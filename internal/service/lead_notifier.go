package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/northcoast-bjj/academy-api/internal/models"
	"github.com/northcoast-bjj/academy-api/pkg/jobs"
)

// LeadNotifier delivers new-lead notifications off the request path.
// The current sink is the structured log, which the on-call front-desk
// tooling tails; swapping in an email or CRM sink only means replacing
// Handle.
type LeadNotifier struct {
	logger *zap.Logger
}

func NewLeadNotifier(logger *zap.Logger) *LeadNotifier {
	return &LeadNotifier{logger: logger}
}

// Handle implements jobs.Handler.
func (n *LeadNotifier) Handle(ctx context.Context, job jobs.Job) error {
	lead, ok := job.Payload.(*models.Lead)
	if !ok {
		return fmt.Errorf("unexpected payload type %T", job.Payload)
	}
	fields := []zap.Field{
		zap.String("lead_id", lead.ID),
		zap.String("kind", string(lead.Kind)),
		zap.String("name", lead.Name),
		zap.String("email", lead.Email),
	}
	if lead.ChildName != nil {
		fields = append(fields, zap.String("child_name", *lead.ChildName))
	}
	n.logger.Info("new lead notification", fields...)
	return nil
}
