package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northcoast-bjj/academy-api/internal/models"
)

func record(name, day, clock, duration, level string) models.ClassRecord {
	return models.ClassRecord{
		ClassName: name,
		DayOfWeek: day,
		Time:      clock,
		Duration:  duration,
		Level:     level,
		IsActive:  true,
	}
}

func TestGroupByDayCoversAllDays(t *testing.T) {
	grouped := GroupByDay(nil)
	require.Len(t, grouped, 7)
	for _, day := range Days {
		assert.NotNil(t, grouped[day])
		assert.Empty(t, grouped[day])
	}
}

func TestGroupByDaySortsByStartTime(t *testing.T) {
	records := []models.ClassRecord{
		record("Evening Fundamentals", models.Monday, "6:00 PM", "60 min", models.LevelAllLevels),
		record("Early Bird", models.Monday, "6:00 AM", "60 min", models.LevelAllLevels),
		record("Lunch Roll", models.Monday, "12:00 PM", "45 min", models.LevelAdvanced),
	}

	grouped := GroupByDay(records)
	monday := grouped[models.Monday]
	require.Len(t, monday, 3)
	assert.Equal(t, "Early Bird", monday[0].ClassName)
	assert.Equal(t, "Lunch Roll", monday[1].ClassName)
	assert.Equal(t, "Evening Fundamentals", monday[2].ClassName)
}

func TestGroupByDayStableOnEqualTimes(t *testing.T) {
	records := []models.ClassRecord{
		record("Gi", models.Tuesday, "6:00 PM", "60 min", models.LevelAllLevels),
		record("No-Gi", models.Tuesday, "6:00 PM", "60 min", models.LevelAdvanced),
	}

	grouped := GroupByDay(records)
	tuesday := grouped[models.Tuesday]
	require.Len(t, tuesday, 2)
	assert.Equal(t, "Gi", tuesday[0].ClassName)
	assert.Equal(t, "No-Gi", tuesday[1].ClassName)
}

func TestGroupByDaySkipsInactive(t *testing.T) {
	inactive := record("Paused", models.Friday, "6:00 PM", "60 min", models.LevelAllLevels)
	inactive.IsActive = false

	grouped := GroupByDay([]models.ClassRecord{inactive})
	assert.Empty(t, grouped[models.Friday])
}

func TestGroupByDayMalformedTimesSortFirst(t *testing.T) {
	records := []models.ClassRecord{
		record("Evening", models.Monday, "6:00 PM", "60 min", models.LevelAllLevels),
		record("Broken", models.Monday, "whenever", "60 min", models.LevelAllLevels),
	}

	grouped := GroupByDay(records)
	monday := grouped[models.Monday]
	require.Len(t, monday, 2)
	assert.Equal(t, "Broken", monday[0].ClassName)
}

func TestKidsAgeGroupsFallback(t *testing.T) {
	groups := KidsAgeGroups(nil)
	require.Len(t, groups, 3)

	assert.Equal(t, "little-champions", groups[0].ID)
	assert.Equal(t, "Little Champions (Novice)", groups[0].Title)
	assert.Equal(t, "30 min", groups[0].Duration)
	assert.Equal(t, "Check schedule for times", groups[0].ScheduleDays)
	assert.Equal(t, "bg-green-500", groups[0].Color)

	assert.Equal(t, "kids", groups[1].ID)
	assert.Equal(t, "45 min", groups[1].Duration)

	assert.Equal(t, "teens", groups[2].ID)
	assert.Equal(t, "60 min", groups[2].Duration)
	assert.Equal(t, "bg-purple-500", groups[2].Color)
}

func TestKidsAgeGroupsFromSchedule(t *testing.T) {
	records := []models.ClassRecord{
		record("Little Champions", models.Monday, "4:00 PM", "30 min", models.LevelAges4to6),
		record("Little Champions", models.Wednesday, "4:30 PM", "30 min", models.LevelAges4to6),
		record("Little Champions", models.Monday, "5:00 PM", "30 min", models.LevelAges4to6),
	}

	groups := KidsAgeGroups(records)
	require.Len(t, groups, 3)

	little := groups[0]
	assert.Equal(t, "30 min", little.Duration)
	// Days deduplicated in record order, time taken from the first record.
	assert.Equal(t, "Mon, Wed - 4:00 PM", little.ScheduleDays)

	// The other levels had no classes and keep the fallback card.
	assert.Equal(t, "Check schedule for times", groups[1].ScheduleDays)
	assert.Equal(t, "Check schedule for times", groups[2].ScheduleDays)
}

func TestKidsAgeGroupsIgnoresAdultClasses(t *testing.T) {
	records := []models.ClassRecord{
		record("Fundamentals", models.Monday, "6:00 PM", "60 min", models.LevelAllLevels),
	}

	groups := KidsAgeGroups(records)
	for _, g := range groups {
		assert.Equal(t, "Check schedule for times", g.ScheduleDays)
	}
}

func TestTimeSlotsFullWeek(t *testing.T) {
	records := []models.ClassRecord{
		record("Early Bird", models.Monday, "6:00 AM", "60 min", models.LevelAllLevels),
		record("Lunch Roll", models.Tuesday, "12:00 PM", "45 min", models.LevelAllLevels),
		record("Fundamentals", models.Monday, "5:30 PM", "60 min", models.LevelAllLevels),
		record("Advanced", models.Wednesday, "7:00 PM", "90 min", models.LevelAdvanced),
	}

	slots := TimeSlots(records)
	require.Len(t, slots, 3)

	assert.Equal(t, "Early Bird", slots[0].Label)
	assert.Equal(t, "6:00 AM - 60 min", slots[0].Schedule)

	assert.Equal(t, "Lunch Hour", slots[1].Label)
	assert.Equal(t, "12:00 PM - 45 min", slots[1].Schedule)

	// Evening runs from the earliest start to the end of the latest class.
	assert.Equal(t, "Evening", slots[2].Label)
	assert.Equal(t, "5:30 PM - 8:30 PM", slots[2].Schedule)
}

func TestTimeSlotsEmptyScheduleFallbacks(t *testing.T) {
	slots := TimeSlots(nil)
	require.Len(t, slots, 2)

	assert.Equal(t, "Morning", slots[0].Label)
	assert.Equal(t, "9:00 AM", slots[0].Schedule)

	assert.Equal(t, "Evening", slots[1].Label)
	assert.Equal(t, "6:00 PM - 9:00 PM", slots[1].Schedule)
}

func TestTimeSlotsOmitsLunchWhenBandEmpty(t *testing.T) {
	records := []models.ClassRecord{
		record("Fundamentals", models.Monday, "6:00 PM", "60 min", models.LevelAllLevels),
	}

	slots := TimeSlots(records)
	require.Len(t, slots, 2)
	for _, slot := range slots {
		assert.NotEqual(t, "Lunch Hour", slot.Label)
	}
}

func TestTimeSlotsExcludesKidsAndWeekend(t *testing.T) {
	records := []models.ClassRecord{
		record("Kids", models.Monday, "4:00 PM", "45 min", models.LevelAges7to11),
		record("Open Mat", models.Saturday, "10:00 AM", "120 min", models.LevelAllLevels),
	}

	slots := TimeSlots(records)
	require.Len(t, slots, 2)
	assert.Equal(t, "Morning", slots[0].Label)
	assert.Equal(t, "6:00 PM - 9:00 PM", slots[1].Schedule)
}

func TestSaturdayPicksEarliestSessions(t *testing.T) {
	records := []models.ClassRecord{
		record("Kids Open Mat", models.Saturday, "10:30 AM", "60 min", models.LevelAges7to11),
		record("Little Champions", models.Saturday, "9:30 AM", "30 min", models.LevelAges4to6),
		record("Adults Open Mat", models.Saturday, "11:00 AM", "120 min", models.LevelAllLevels),
		record("Comp Team", models.Saturday, "1:00 PM", "90 min", models.LevelAdvanced),
	}

	info := Saturday(records)
	assert.Equal(t, "9:30 AM", info.KidsTime)
	assert.Equal(t, "11:00 AM", info.AdultsTime)
	assert.Equal(t, "All ages welcome. Perfect for families with school-age children.", info.KidsDescription)
	assert.Equal(t, "Parents train while kids attend the earlier session.", info.AdultsDescription)
}

func TestSaturdayFallbacks(t *testing.T) {
	info := Saturday(nil)
	assert.Equal(t, "9:00 AM", info.KidsTime)
	assert.Equal(t, "10:00 AM", info.AdultsTime)
}

func TestSaturdayIgnoresOtherDays(t *testing.T) {
	records := []models.ClassRecord{
		record("Kids", models.Monday, "4:00 PM", "45 min", models.LevelAges7to11),
	}

	info := Saturday(records)
	assert.Equal(t, "9:00 AM", info.KidsTime)
}

func TestBusinessHoursAggregatesWeekdays(t *testing.T) {
	records := []models.ClassRecord{
		record("Early Bird", models.Monday, "6:00 AM", "60 min", models.LevelAllLevels),
		record("Advanced", models.Wednesday, "7:00 PM", "90 min", models.LevelAdvanced),
		record("Kids", models.Friday, "4:00 PM", "45 min", models.LevelAges7to11),
		record("Open Mat", models.Saturday, "10:00 AM", "120 min", models.LevelAllLevels),
	}

	blocks := BusinessHours(records)
	require.Len(t, blocks, 3)

	assert.Equal(t, "Monday - Friday", blocks[0].Days)
	assert.Equal(t, "6:00 AM - 8:30 PM", blocks[0].Time)

	assert.Equal(t, "Saturday", blocks[1].Days)
	assert.Equal(t, "10:00 AM - 12:00 PM", blocks[1].Time)

	assert.Equal(t, "Sunday", blocks[2].Days)
	assert.Equal(t, "Closed", blocks[2].Time)
}

func TestBusinessHoursEmptyScheduleFallbacks(t *testing.T) {
	blocks := BusinessHours(nil)
	require.Len(t, blocks, 3)
	assert.Equal(t, HoursBlock{Days: "Monday - Friday", Time: "6:00 AM - 9:00 PM"}, blocks[0])
	assert.Equal(t, HoursBlock{Days: "Saturday", Time: "9:00 AM - 12:00 PM"}, blocks[1])
	assert.Equal(t, HoursBlock{Days: "Sunday", Time: "Closed"}, blocks[2])
}

func TestBusinessHoursIncludesSunday(t *testing.T) {
	records := []models.ClassRecord{
		record("Open Mat", models.Sunday, "10:00 AM", "120 min", models.LevelAllLevels),
	}

	blocks := BusinessHours(records)
	require.Len(t, blocks, 3)
	assert.Equal(t, "10:00 AM - 12:00 PM", blocks[2].Time)
}
