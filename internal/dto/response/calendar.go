package response

// DayCell is one cell of the rendered month grid. Cells from adjacent
// months pad the grid to whole weeks and are never selectable.
type DayCell struct {
	DateKey     string `json:"date_key"`
	Day         int    `json:"day"`
	InMonth     bool   `json:"in_month"`
	IsToday     bool   `json:"is_today"`
	IsSelected  bool   `json:"is_selected"`
	IsAvailable bool   `json:"is_available"`
	Remaining   int    `json:"remaining,omitempty"`
	Selectable  bool   `json:"selectable"`
}

type CalendarResponse struct {
	Year  int       `json:"year"`
	Month int       `json:"month"`
	Days  []DayCell `json:"days"`
}
