package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/northcoast-bjj/academy-api/internal/service"
	"github.com/northcoast-bjj/academy-api/pkg/response"
)

// ScheduleHandler exposes the derived timetable views.
type ScheduleHandler struct {
	schedules *service.ScheduleService
	maxAge    int
}

// NewScheduleHandler constructs handler. maxAge is the Cache-Control
// max-age in seconds for the public schedule payloads.
func NewScheduleHandler(schedules *service.ScheduleService, maxAge int) *ScheduleHandler {
	return &ScheduleHandler{schedules: schedules, maxAge: maxAge}
}

// Week godoc
// @Summary Full weekly class schedule grouped by day
// @Tags Schedule
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /schedule [get]
func (h *ScheduleHandler) Week(c *gin.Context) {
	week, err := h.schedules.Week(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Cacheable(c, week, h.maxAge)
}

// KidsGroups godoc
// @Summary Kids program age-group cards
// @Tags Schedule
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /schedule/kids [get]
func (h *ScheduleHandler) KidsGroups(c *gin.Context) {
	groups, err := h.schedules.KidsGroups(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Cacheable(c, groups, h.maxAge)
}

// TimeSlots godoc
// @Summary Morning, lunch and evening training summary
// @Tags Schedule
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /schedule/slots [get]
func (h *ScheduleHandler) TimeSlots(c *gin.Context) {
	slots, err := h.schedules.TimeSlots(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Cacheable(c, slots, h.maxAge)
}

// Saturday godoc
// @Summary Saturday training highlight
// @Tags Schedule
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /schedule/saturday [get]
func (h *ScheduleHandler) Saturday(c *gin.Context) {
	info, err := h.schedules.Saturday(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Cacheable(c, info, h.maxAge)
}

// BusinessHours godoc
// @Summary Opening hours derived from the timetable
// @Tags Schedule
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /schedule/hours [get]
func (h *ScheduleHandler) BusinessHours(c *gin.Context) {
	blocks, err := h.schedules.BusinessHours(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Cacheable(c, blocks, h.maxAge)
}
