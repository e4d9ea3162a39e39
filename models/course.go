package models

// WeeklySlot is a recurring weekly time commitment tied to one section.
// Start and End are minutes from midnight (e.g., 600 for 10:00 AM).
type WeeklySlot struct {
	Day   Weekday `bson:"day" json:"day"`
	Start int     `bson:"start" json:"start"`
	End   int     `bson:"end" json:"end"`
}

// Section is one taught instance of a course with a fixed teacher, capacity
// and weekly schedule. Owned by the catalog; drafts reference it by ID.
type Section struct {
	ID          string       `bson:"id" json:"id"`
	CourseID    string       `bson:"courseId" json:"courseId"`
	TeacherName string       `bson:"teacherName" json:"teacherName"`
	Capacity    int          `bson:"capacity" json:"capacity"`
	Available   int          `bson:"available" json:"available"`
	WeeklySlots []WeeklySlot `bson:"weeklySlots" json:"weeklySlots"`
}

// Course is a technique offered by the school (oil painting, ceramics, ...)
// with its taught sections nested, matching the wire shape of GET /courses.
type Course struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Sections    []Section `bson:"sections" json:"sections"`
}

// GridCell is one day-of-week × time-slot cell of the normalized schedule
// grid, with the sections teaching in that cell and their remaining capacity.
type GridCell struct {
	Day       Weekday       `json:"day"`
	Start     int           `json:"start"`
	End       int           `json:"end"`
	Sections  []GridSection `json:"sections"`
	Available int           `json:"available"`
}

// GridSection is the per-section entry inside a grid cell.
type GridSection struct {
	SectionID   string `json:"sectionId"`
	CourseID    string `json:"courseId"`
	TeacherName string `json:"teacherName"`
	Available   int    `json:"available"`
}

// ScheduleGrid is the catalog normalized into day × time cells, ordered
// Monday..Saturday then by start minute.
type ScheduleGrid struct {
	Cells []GridCell `json:"cells"`
}
