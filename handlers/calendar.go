package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lienzo/models"
	"lienzo/services/schedule"
	"lienzo/utils"
)

type dateEntry struct {
	Date string `json:"date"`
}

func toDateEntries(dates []string) []dateEntry {
	entries := make([]dateEntry, len(dates))
	for i, d := range dates {
		entries[i] = dateEntry{Date: d}
	}
	return entries
}

// GetSectionCalendarHandler returns a section's open-date set, the calendar
// the date editor intersects against.
func (h *CatalogHandler) GetSectionCalendarHandler(c *gin.Context) {
	sectionID := c.Param("id")
	dates, err := h.Service.GetOpenDates(c.Request.Context(), sectionID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch section calendar", err.Error())
		return
	}
	JSONData(c, http.StatusOK, gin.H{"dates": toDateEntries(dates)})
}

// PreviewClassDatesHandler runs the date engine server-side for one section:
// given a start date and a payment plan it returns the concrete class dates
// the section's weekly slots produce.
func (h *CatalogHandler) PreviewClassDatesHandler(c *gin.Context) {
	sectionID := c.Param("id")
	startDate := c.Query("start_date")
	planID := c.Query("payment_plan_id")
	if planID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing payment_plan_id", "")
		return
	}
	durationMonths := 1
	if raw := c.Query("duration_months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			utils.JSONError(c, http.StatusBadRequest, "invalid duration_months", raw)
			return
		}
		durationMonths = parsed
	}

	ctx := c.Request.Context()
	section, err := h.Service.GetSection(ctx, sectionID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "section not found", err.Error())
		return
	}
	plan, err := h.Service.GetPlan(ctx, planID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "payment plan not found", err.Error())
		return
	}
	openDates, err := h.Service.GetOpenDates(ctx, sectionID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch section calendar", err.Error())
		return
	}

	selections := make([]models.SlotSelection, len(section.WeeklySlots))
	for i, slot := range section.WeeklySlots {
		selections[i] = models.SlotSelection{SectionID: section.ID, CourseID: section.CourseID, Slot: slot}
	}

	open := map[string]schedule.OpenDateSet{section.ID: schedule.NewOpenDateSet(openDates)}
	dates, err := schedule.Generate(selections, *plan, startDate, durationMonths, open)
	if err != nil {
		utils.JSONError(c, statusForError(err), "failed to generate class dates", err.Error())
		return
	}

	assigned := make([]dateEntry, len(dates))
	for i, d := range dates {
		assigned[i] = dateEntry{Date: d.Date}
	}
	JSONData(c, http.StatusOK, gin.H{"assigned_dates": assigned})
}
