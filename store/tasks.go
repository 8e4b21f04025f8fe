// Package store holds the in-process state containers used by clients of
// the API: the task list, the technique selection and session config, the
// last generated timetable, and the template presets. Each store is a plain
// data container with synchronous update methods and no cross-store
// coupling.
package store

import (
	"github.com/google/uuid"

	"github.com/kaushalkrsna1602/Samay-Sahayak/models"
)

// TaskStore holds the working task list plus the category set, which starts
// from a fixed seed and is user-extensible.
type TaskStore struct {
	Tasks      []models.Task
	Categories []string
}

func NewTaskStore() *TaskStore {
	return &TaskStore{
		Tasks:      []models.Task{},
		Categories: []string{"Work", "Personal", "Health", "Learning", "Other"},
	}
}

// Add appends a task, assigning it a fresh id, and returns the stored copy.
func (s *TaskStore) Add(task models.Task) models.Task {
	task.ID = uuid.NewString()
	s.Tasks = append(s.Tasks, task)
	return task
}

// Remove deletes the task with the given id; unknown ids are a no-op.
func (s *TaskStore) Remove(id string) {
	kept := s.Tasks[:0]
	for _, t := range s.Tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.Tasks = kept
}

// TaskPatch is a partial task update; nil fields are left unchanged.
type TaskPatch struct {
	Title             *string
	Description       *string
	Priority          *string
	EstimatedDuration *int
	Category          *string
}

// Update applies a partial patch to the task with the given id and reports
// whether it was found.
func (s *TaskStore) Update(id string, patch TaskPatch) bool {
	for i := range s.Tasks {
		if s.Tasks[i].ID != id {
			continue
		}
		if patch.Title != nil {
			s.Tasks[i].Title = *patch.Title
		}
		if patch.Description != nil {
			s.Tasks[i].Description = *patch.Description
		}
		if patch.Priority != nil {
			s.Tasks[i].Priority = *patch.Priority
		}
		if patch.EstimatedDuration != nil {
			s.Tasks[i].EstimatedDuration = *patch.EstimatedDuration
		}
		if patch.Category != nil {
			s.Tasks[i].Category = *patch.Category
		}
		return true
	}
	return false
}

// AddCategory registers a new category unless it already exists.
func (s *TaskStore) AddCategory(name string) {
	for _, c := range s.Categories {
		if c == name {
			return
		}
	}
	s.Categories = append(s.Categories, name)
}

// Clear empties the task list. Categories survive.
func (s *TaskStore) Clear() {
	s.Tasks = []models.Task{}
}
