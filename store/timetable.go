package store

import "github.com/kaushalkrsna1602/Samay-Sahayak/models"

// TimetableStore holds the last generated timetable along with the loading
// and error flags the views read.
type TimetableStore struct {
	Timetable *models.TimetableData
	IsLoading bool
	Err       string
}

func NewTimetableStore() *TimetableStore {
	return &TimetableStore{}
}

// Set stores a generated timetable and clears any previous error.
func (s *TimetableStore) Set(data models.TimetableData) {
	s.Timetable = &data
	s.Err = ""
}

func (s *TimetableStore) SetLoading(loading bool) {
	s.IsLoading = loading
}

// SetError records a failure and stops the loading state.
func (s *TimetableStore) SetError(msg string) {
	s.Err = msg
	s.IsLoading = false
}

// Clear drops the stored timetable and error.
func (s *TimetableStore) Clear() {
	s.Timetable = nil
	s.Err = ""
}
