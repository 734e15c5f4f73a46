package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/northcoast-bjj/academy-api/internal/service"
	"github.com/northcoast-bjj/academy-api/pkg/response"
)

// ContentHandler serves the marketing-site content endpoints: staff
// profiles, student achievements and the review carousel.
type ContentHandler struct {
	instructors  *service.InstructorService
	achievements *service.AchievementService
	reviews      *service.ReviewService
	maxAge       int
}

// NewContentHandler constructs handler.
func NewContentHandler(instructors *service.InstructorService, achievements *service.AchievementService, reviews *service.ReviewService, maxAge int) *ContentHandler {
	return &ContentHandler{instructors: instructors, achievements: achievements, reviews: reviews, maxAge: maxAge}
}

// Instructors godoc
// @Summary List coaching staff profiles
// @Tags Content
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /instructors [get]
func (h *ContentHandler) Instructors(c *gin.Context) {
	instructors, err := h.instructors.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Cacheable(c, instructors, h.maxAge)
}

// Achievements godoc
// @Summary List student achievements
// @Tags Content
// @Produce json
// @Param featured query bool false "Featured entries only"
// @Param limit query int false "Cap the number of entries"
// @Success 200 {object} response.Envelope
// @Router /achievements [get]
func (h *ContentHandler) Achievements(c *gin.Context) {
	featured := c.Query("featured") == "true"
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	achievements, err := h.achievements.List(c.Request.Context(), featured, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Cacheable(c, achievements, h.maxAge)
}

// Reviews godoc
// @Summary Featured reviews with aggregate rating
// @Tags Content
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /reviews [get]
func (h *ContentHandler) Reviews(c *gin.Context) {
	payload, err := h.reviews.Featured(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Cacheable(c, payload, h.maxAge)
}
