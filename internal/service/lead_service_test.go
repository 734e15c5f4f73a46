package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/northcoast-bjj/academy-api/internal/models"
	appErrors "github.com/northcoast-bjj/academy-api/pkg/errors"
)

type mockLeadRepo struct {
	created []models.Lead
	leads   []models.Lead
}

func (m *mockLeadRepo) Create(ctx context.Context, lead *models.Lead) error {
	lead.ID = "lead-1"
	m.created = append(m.created, *lead)
	return nil
}

func (m *mockLeadRepo) List(ctx context.Context, filter models.LeadFilter) ([]models.Lead, int, error) {
	return m.leads, len(m.leads), nil
}

func newLeadServiceForTest() (*LeadService, *mockLeadRepo) {
	repo := &mockLeadRepo{}
	return NewLeadService(repo, nil, nil, zap.NewNop()), repo
}

func TestSubmitContact(t *testing.T) {
	svc, repo := newLeadServiceForTest()

	lead, err := svc.SubmitContact(context.Background(), ContactRequest{
		Name:      "  Jane Doe  ",
		Email:     "Jane@Example.COM",
		Phone:     "(555) 123-4567",
		Message:   "I'd like to try a class next week.",
		FreeTrial: true,
		Source:    "homepage",
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)

	assert.Equal(t, models.LeadContact, lead.Kind)
	assert.Equal(t, "Jane Doe", lead.Name)
	assert.Equal(t, "jane@example.com", lead.Email)
	require.NotNil(t, lead.Phone)
	assert.Equal(t, "(555) 123-4567", *lead.Phone)
	assert.True(t, lead.FreeTrial)
}

func TestSubmitContactValidation(t *testing.T) {
	svc, repo := newLeadServiceForTest()

	_, err := svc.SubmitContact(context.Background(), ContactRequest{
		Name:    "J",
		Email:   "not-an-email",
		Message: "short",
	})
	require.Error(t, err)
	assert.Empty(t, repo.created)

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)

	fields := make(map[string]string)
	for _, d := range appErr.Details {
		fields[d.Field] = d.Message
	}
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "message")
}

func TestSubmitContactRejectsBadPhone(t *testing.T) {
	svc, _ := newLeadServiceForTest()

	_, err := svc.SubmitContact(context.Background(), ContactRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "call me maybe",
		Message: "I'd like to try a class next week.",
	})
	require.Error(t, err)

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Len(t, appErr.Details, 1)
	assert.Equal(t, "phone", appErr.Details[0].Field)
}

func TestSubmitExitIntent(t *testing.T) {
	svc, _ := newLeadServiceForTest()

	lead, err := svc.SubmitExitIntent(context.Background(), ExitIntentRequest{
		Name:  "Jane",
		Email: "jane@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, models.LeadExitIntent, lead.Kind)
	assert.Nil(t, lead.Phone)
	assert.Nil(t, lead.Message)
}

func TestSubmitKidsTrial(t *testing.T) {
	svc, _ := newLeadServiceForTest()

	lead, err := svc.SubmitKidsTrial(context.Background(), KidsTrialRequest{
		ParentName:    "Jane Doe",
		Email:         "jane@example.com",
		Phone:         "555 123 4567",
		ChildName:     "Sam",
		ChildAge:      7,
		PreferredDays: "Mon, Wed",
	})
	require.NoError(t, err)

	assert.Equal(t, models.LeadKidsTrial, lead.Kind)
	assert.True(t, lead.FreeTrial)
	require.NotNil(t, lead.ChildName)
	assert.Equal(t, "Sam", *lead.ChildName)
	require.NotNil(t, lead.ChildAge)
	assert.Equal(t, 7, *lead.ChildAge)
}

func TestSubmitKidsTrialAgeBounds(t *testing.T) {
	svc, _ := newLeadServiceForTest()

	for _, age := range []int{3, 16} {
		_, err := svc.SubmitKidsTrial(context.Background(), KidsTrialRequest{
			ParentName: "Jane Doe",
			Email:      "jane@example.com",
			Phone:      "555 123 4567",
			ChildName:  "Sam",
			ChildAge:   age,
		})
		require.Error(t, err, "age %d", age)
	}
}

func TestListClampsPagination(t *testing.T) {
	repo := &mockLeadRepo{leads: []models.Lead{{ID: "a"}, {ID: "b"}}}
	svc := NewLeadService(repo, nil, nil, zap.NewNop())

	_, pagination, err := svc.List(context.Background(), models.LeadFilter{Page: -1, PageSize: 5000})
	require.NoError(t, err)
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, 20, pagination.PageSize)
	assert.Equal(t, 2, pagination.TotalCount)
}

func TestExportCSV(t *testing.T) {
	message := "Interested in the kids program"
	repo := &mockLeadRepo{leads: []models.Lead{{
		ID:      "lead-1",
		Kind:    models.LeadContact,
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: &message,
	}}}
	svc := NewLeadService(repo, nil, nil, zap.NewNop())

	payload, err := svc.ExportCSV(context.Background(), models.LeadFilter{})
	require.NoError(t, err)

	text := string(payload)
	lines := strings.Split(strings.TrimSpace(text), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Email")
	assert.Contains(t, lines[1], "jane@example.com")
	assert.Contains(t, lines[1], "Interested in the kids program")
}

func TestExportPDF(t *testing.T) {
	repo := &mockLeadRepo{leads: []models.Lead{{
		ID:    "lead-1",
		Kind:  models.LeadKidsTrial,
		Name:  "Jane Doe",
		Email: "jane@example.com",
	}}}
	svc := NewLeadService(repo, nil, nil, zap.NewNop())

	payload, err := svc.ExportPDF(context.Background(), models.LeadFilter{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(payload), "%PDF"))
}
