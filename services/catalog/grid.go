package catalog

import (
	"context"
	"sort"
	"time"

	"lienzo/models"
)

// BuildScheduleGrid normalizes the raw course/section data into a day-of-week
// × time-slot grid with remaining capacity per cell, the shape the schedule
// picker renders.
func (s *DefaultCatalogService) BuildScheduleGrid(ctx context.Context) (*models.ScheduleGrid, error) {
	courses, err := s.ListCourses(ctx)
	if err != nil {
		return nil, err
	}
	return NormalizeGrid(courses), nil
}

type cellKey struct {
	day   models.Weekday
	start int
	end   int
}

// NormalizeGrid folds every section's weekly slots into grid cells. Sections
// sharing a day and time range land in the same cell; the cell's Available is
// the sum over its sections.
func NormalizeGrid(courses []models.Course) *models.ScheduleGrid {
	cells := make(map[cellKey]*models.GridCell)
	for _, course := range courses {
		for _, section := range course.Sections {
			for _, slot := range section.WeeklySlots {
				if !slot.Day.Valid() {
					continue
				}
				key := cellKey{day: slot.Day, start: slot.Start, end: slot.End}
				cell, ok := cells[key]
				if !ok {
					cell = &models.GridCell{Day: slot.Day, Start: slot.Start, End: slot.End}
					cells[key] = cell
				}
				cell.Sections = append(cell.Sections, models.GridSection{
					SectionID:   section.ID,
					CourseID:    course.ID,
					TeacherName: section.TeacherName,
					Available:   section.Available,
				})
				cell.Available += section.Available
			}
		}
	}

	grid := &models.ScheduleGrid{Cells: make([]models.GridCell, 0, len(cells))}
	for _, cell := range cells {
		grid.Cells = append(grid.Cells, *cell)
	}
	sort.Slice(grid.Cells, func(i, j int) bool {
		di, _ := grid.Cells[i].Day.TimeWeekday()
		dj, _ := grid.Cells[j].Day.TimeWeekday()
		if weekdayOrder(di) != weekdayOrder(dj) {
			return weekdayOrder(di) < weekdayOrder(dj)
		}
		return grid.Cells[i].Start < grid.Cells[j].Start
	})
	return grid
}

// weekdayOrder places Monday first, matching how the grid is displayed.
func weekdayOrder(d time.Weekday) int {
	if d == time.Sunday {
		return 7
	}
	return int(d)
}
