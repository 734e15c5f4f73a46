// Package schedule derives display-ready view-models from flat
// class-schedule records. Every derivation is a pure function of its
// input: no I/O, no shared state, total over malformed data.
package schedule

import (
	"fmt"
	"sort"
	"strings"

	"github.com/northcoast-bjj/academy-api/internal/models"
)

// Days lists the canonical day names in display order.
var Days = []string{
	models.Monday,
	models.Tuesday,
	models.Wednesday,
	models.Thursday,
	models.Friday,
	models.Saturday,
	models.Sunday,
}

var dayAbbreviations = map[string]string{
	models.Monday:    "Mon",
	models.Tuesday:   "Tue",
	models.Wednesday: "Wed",
	models.Thursday:  "Thu",
	models.Friday:    "Fri",
	models.Saturday:  "Sat",
	models.Sunday:    "Sun",
}

var weekdaySet = map[string]bool{
	models.Monday:    true,
	models.Tuesday:   true,
	models.Wednesday: true,
	models.Thursday:  true,
	models.Friday:    true,
}

var adultLevels = map[string]bool{
	models.LevelAllLevels: true,
	models.LevelAdvanced:  true,
}

var kidsLevels = []string{
	models.LevelAges4to6,
	models.LevelAges7to11,
	models.LevelAgesTeens,
}

var kidsLevelSet = map[string]bool{
	models.LevelAges4to6:  true,
	models.LevelAges7to11: true,
	models.LevelAgesTeens: true,
}

// GroupByDay buckets active records under all seven canonical days.
// Days without classes map to an empty list. Each day is sorted by
// parsed start time; records sharing a start keep their input order.
func GroupByDay(records []models.ClassRecord) map[string][]models.ClassRecord {
	grouped := make(map[string][]models.ClassRecord, len(Days))

	for _, day := range Days {
		classes := []models.ClassRecord{}
		for _, r := range records {
			if r.IsActive && r.DayOfWeek == day {
				classes = append(classes, r)
			}
		}
		sort.SliceStable(classes, func(i, j int) bool {
			return ClockMinutes(classes[i].Time) < ClockMinutes(classes[j].Time)
		})
		grouped[day] = classes
	}

	return grouped
}

// AgeGroup is the kids-program card: static program copy combined with
// schedule data derived from the records for its level.
type AgeGroup struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Ages         string   `json:"ages"`
	Level        string   `json:"level"`
	Duration     string   `json:"duration"`
	ScheduleDays string   `json:"schedule_days"`
	Description  string   `json:"description"`
	Highlights   []string `json:"highlights"`
	Color        string   `json:"color"`
}

type ageGroupConfig struct {
	id               string
	title            string
	ages             string
	description      string
	highlights       []string
	color            string
	fallbackDuration string
}

var ageGroupConfigs = map[string]ageGroupConfig{
	models.LevelAges4to6: {
		id:          "little-champions",
		title:       "Little Champions (Novice)",
		ages:        "4-6 years",
		description: "Introduction to BJJ through fun games and activities. Focus on motor skills, listening, and basic movements.",
		highlights: []string{
			"Game-based learning",
			"Basic coordination drills",
			"Teamwork activities",
			"Positive reinforcement",
		},
		color:            "bg-green-500",
		fallbackDuration: "30 min",
	},
	models.LevelAges7to11: {
		id:          "kids",
		title:       "Kids BJJ (Intermediate)",
		ages:        "7-11 years",
		description: "Structured classes with technique drilling, belt progression, and supervised sparring. Building discipline and confidence.",
		highlights: []string{
			"Belt rank progression",
			"Technical drilling",
			"Light sparring",
			"Self-defense skills",
		},
		color:            "bg-blue-500",
		fallbackDuration: "45 min",
	},
	models.LevelAgesTeens: {
		id:          "teens",
		title:       "Teen Program (Advanced)",
		ages:        "12-15 years",
		description: "Advanced training preparing teens for adult classes. Competition opportunities and leadership development.",
		highlights: []string{
			"Advanced techniques",
			"Competition training",
			"Mentorship program",
			"Leadership skills",
		},
		color:            "bg-purple-500",
		fallbackDuration: "60 min",
	},
}

// KidsAgeGroups produces the three kids program cards, youngest first.
// Levels without any active class fall back to the static card with a
// "check schedule" placeholder. A populated card takes its duration and
// time from the first scheduled entry for the level, not the earliest.
func KidsAgeGroups(records []models.ClassRecord) []AgeGroup {
	result := make([]AgeGroup, 0, len(kidsLevels))

	for _, level := range kidsLevels {
		cfg := ageGroupConfigs[level]

		var matches []models.ClassRecord
		for _, r := range records {
			if r.IsActive && r.Level == level {
				matches = append(matches, r)
			}
		}

		group := AgeGroup{
			ID:          cfg.id,
			Title:       cfg.title,
			Ages:        cfg.ages,
			Level:       level,
			Description: cfg.description,
			Highlights:  cfg.highlights,
			Color:       cfg.color,
		}

		if len(matches) == 0 {
			group.Duration = cfg.fallbackDuration
			group.ScheduleDays = "Check schedule for times"
			result = append(result, group)
			continue
		}

		seen := make(map[string]bool)
		var days []string
		for _, r := range matches {
			if seen[r.DayOfWeek] {
				continue
			}
			seen[r.DayOfWeek] = true
			abbr, ok := dayAbbreviations[r.DayOfWeek]
			if !ok {
				abbr = r.DayOfWeek
			}
			days = append(days, abbr)
		}

		first := matches[0]
		group.Duration = first.Duration
		group.ScheduleDays = fmt.Sprintf("%s - %s", strings.Join(days, ", "), first.Time)
		result = append(result, group)
	}

	return result
}

// TimeSlot is a named training window on the local landing pages.
type TimeSlot struct {
	Label       string `json:"time"`
	Schedule    string `json:"schedule"`
	Description string `json:"description"`
}

// Time bands for the adult weekday slots, in minutes since midnight.
const (
	morningCutoff = 600  // before 10:00 AM
	lunchCutoff   = 840  // 10:00 AM - 2:00 PM
	eveningStart  = 1020 // 5:00 PM onward
)

// TimeSlots summarises weekday adult classes into up to three named
// windows. The morning and evening slots fall back to fixed copy when
// empty; an empty lunch band produces no slot at all.
func TimeSlots(records []models.ClassRecord) []TimeSlot {
	var weekdayAdult []models.ClassRecord
	for _, r := range records {
		if r.IsActive && weekdaySet[r.DayOfWeek] && adultLevels[r.Level] {
			weekdayAdult = append(weekdayAdult, r)
		}
	}

	var earliestMorning, firstLunch, earliestEvening, latestEvening *models.ClassRecord
	for i := range weekdayAdult {
		r := &weekdayAdult[i]
		mins := ClockMinutes(r.Time)
		switch {
		case mins < morningCutoff:
			if earliestMorning == nil || mins < ClockMinutes(earliestMorning.Time) {
				earliestMorning = r
			}
		case mins < lunchCutoff:
			if firstLunch == nil {
				firstLunch = r
			}
		case mins >= eveningStart:
			if earliestEvening == nil || mins < ClockMinutes(earliestEvening.Time) {
				earliestEvening = r
			}
			if latestEvening == nil || mins > ClockMinutes(latestEvening.Time) {
				latestEvening = r
			}
		}
	}

	var slots []TimeSlot

	if earliestMorning != nil {
		slots = append(slots, TimeSlot{
			Label:       "Early Bird",
			Schedule:    fmt.Sprintf("%s - %s", earliestMorning.Time, earliestMorning.Duration),
			Description: "Train before work. Perfect for early risers.",
		})
	} else {
		slots = append(slots, TimeSlot{
			Label:       "Morning",
			Schedule:    "9:00 AM",
			Description: "Start your day with training.",
		})
	}

	if firstLunch != nil {
		slots = append(slots, TimeSlot{
			Label:       "Lunch Hour",
			Schedule:    fmt.Sprintf("%s - %s", firstLunch.Time, firstLunch.Duration),
			Description: "Midday training for local professionals.",
		})
	}

	if earliestEvening != nil && latestEvening != nil {
		end := ClockMinutes(latestEvening.Time) + DurationMinutes(latestEvening.Duration)
		slots = append(slots, TimeSlot{
			Label:       "Evening",
			Schedule:    fmt.Sprintf("%s - %s", earliestEvening.Time, FormatClock(end)),
			Description: "Multiple classes after work hours.",
		})
	} else {
		slots = append(slots, TimeSlot{
			Label:       "Evening",
			Schedule:    "6:00 PM - 9:00 PM",
			Description: "Multiple classes after work hours.",
		})
	}

	return slots
}

// SaturdayInfo highlights the Saturday family block.
type SaturdayInfo struct {
	KidsTime          string `json:"kids_time"`
	KidsDescription   string `json:"kids_description"`
	AdultsTime        string `json:"adults_time"`
	AdultsDescription string `json:"adults_description"`
}

// Saturday picks the earliest Saturday kids class and the earliest
// Saturday adult class, with fixed fallback times when either is absent.
func Saturday(records []models.ClassRecord) SaturdayInfo {
	kidsTime := ""
	adultsTime := ""
	kidsBest := -1
	adultsBest := -1

	for _, r := range records {
		if !r.IsActive || r.DayOfWeek != models.Saturday {
			continue
		}
		mins := ClockMinutes(r.Time)
		if kidsLevelSet[r.Level] && (kidsBest == -1 || mins < kidsBest) {
			kidsBest = mins
			kidsTime = r.Time
		}
		if adultLevels[r.Level] && (adultsBest == -1 || mins < adultsBest) {
			adultsBest = mins
			adultsTime = r.Time
		}
	}

	if kidsTime == "" {
		kidsTime = "9:00 AM"
	}
	if adultsTime == "" {
		adultsTime = "10:00 AM"
	}

	return SaturdayInfo{
		KidsTime:          kidsTime,
		KidsDescription:   "All ages welcome. Perfect for families with school-age children.",
		AdultsTime:        adultsTime,
		AdultsDescription: "Parents train while kids attend the earlier session.",
	}
}

// HoursBlock is one row of the derived business-hours table.
type HoursBlock struct {
	Days string `json:"days"`
	Time string `json:"time"`
}

type dayExtent struct {
	earliest int
	latest   int
}

// BusinessHours aggregates per-day open/close extents into the three
// display rows: the Monday-Friday block, Saturday, and Sunday. Rows with
// no classes fall back to fixed copy ("Closed" for Sunday).
func BusinessHours(records []models.ClassRecord) []HoursBlock {
	extents := make(map[string]dayExtent)

	for _, r := range records {
		if !r.IsActive {
			continue
		}
		start := ClockMinutes(r.Time)
		end := start + DurationMinutes(r.Duration)

		if ext, ok := extents[r.DayOfWeek]; ok {
			if start < ext.earliest {
				ext.earliest = start
			}
			if end > ext.latest {
				ext.latest = end
			}
			extents[r.DayOfWeek] = ext
		} else {
			extents[r.DayOfWeek] = dayExtent{earliest: start, latest: end}
		}
	}

	result := make([]HoursBlock, 0, 3)

	weekdayOpen := -1
	weekdayClose := -1
	for _, day := range Days[:5] {
		ext, ok := extents[day]
		if !ok {
			continue
		}
		if weekdayOpen == -1 || ext.earliest < weekdayOpen {
			weekdayOpen = ext.earliest
		}
		if ext.latest > weekdayClose {
			weekdayClose = ext.latest
		}
	}
	if weekdayOpen >= 0 {
		result = append(result, HoursBlock{
			Days: "Monday - Friday",
			Time: fmt.Sprintf("%s - %s", FormatClock(weekdayOpen), FormatClock(weekdayClose)),
		})
	} else {
		result = append(result, HoursBlock{Days: "Monday - Friday", Time: "6:00 AM - 9:00 PM"})
	}

	if ext, ok := extents[models.Saturday]; ok {
		result = append(result, HoursBlock{
			Days: "Saturday",
			Time: fmt.Sprintf("%s - %s", FormatClock(ext.earliest), FormatClock(ext.latest)),
		})
	} else {
		result = append(result, HoursBlock{Days: "Saturday", Time: "9:00 AM - 12:00 PM"})
	}

	if ext, ok := extents[models.Sunday]; ok {
		result = append(result, HoursBlock{
			Days: "Sunday",
			Time: fmt.Sprintf("%s - %s", FormatClock(ext.earliest), FormatClock(ext.latest)),
		})
	} else {
		result = append(result, HoursBlock{Days: "Sunday", Time: "Closed"})
	}

	return result
}
