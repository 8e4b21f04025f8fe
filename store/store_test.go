package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaushalkrsna1602/Samay-Sahayak/models"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestTaskStore_AddAssignsID(t *testing.T) {
	s := NewTaskStore()

	added := s.Add(models.Task{Title: "Write report", EstimatedDuration: 60, Priority: "high"})

	assert.NotEmpty(t, added.ID)
	require.Len(t, s.Tasks, 1)
	assert.Equal(t, added, s.Tasks[0])
}

func TestTaskStore_Remove(t *testing.T) {
	s := NewTaskStore()
	a := s.Add(models.Task{Title: "A"})
	b := s.Add(models.Task{Title: "B"})

	s.Remove(a.ID)

	require.Len(t, s.Tasks, 1)
	assert.Equal(t, b.ID, s.Tasks[0].ID)

	s.Remove("unknown")
	assert.Len(t, s.Tasks, 1)
}

func TestTaskStore_Update(t *testing.T) {
	s := NewTaskStore()
	task := s.Add(models.Task{Title: "Draft", Priority: "low", EstimatedDuration: 30})

	ok := s.Update(task.ID, TaskPatch{Title: strPtr("Final"), EstimatedDuration: intPtr(45)})

	require.True(t, ok)
	assert.Equal(t, "Final", s.Tasks[0].Title)
	assert.Equal(t, 45, s.Tasks[0].EstimatedDuration)
	assert.Equal(t, "low", s.Tasks[0].Priority)

	assert.False(t, s.Update("unknown", TaskPatch{Title: strPtr("X")}))
}

func TestTaskStore_Categories(t *testing.T) {
	s := NewTaskStore()

	assert.Equal(t, []string{"Work", "Personal", "Health", "Learning", "Other"}, s.Categories)

	s.AddCategory("Side Project")
	s.AddCategory("Work") // duplicate, ignored

	assert.Equal(t, []string{"Work", "Personal", "Health", "Learning", "Other", "Side Project"}, s.Categories)
}

func TestTaskStore_ClearKeepsCategories(t *testing.T) {
	s := NewTaskStore()
	s.Add(models.Task{Title: "A"})
	s.AddCategory("Extra")

	s.Clear()

	assert.Empty(t, s.Tasks)
	assert.Contains(t, s.Categories, "Extra")
}

func TestTechniqueStore_Select(t *testing.T) {
	s := NewTechniqueStore()

	require.True(t, s.Select("pomodoro"))
	assert.Equal(t, "pomodoro", s.SelectedTechnique)
	require.NotNil(t, s.SessionConfig)
	assert.Equal(t, 25, s.SessionConfig.SessionLength)
	assert.Equal(t, 5, s.SessionConfig.BreakLength)
	assert.Equal(t, "09:00", s.SessionConfig.StartTime)
	assert.Equal(t, "17:00", s.SessionConfig.EndTime)
	assert.Equal(t, []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}, s.SessionConfig.WorkDays)
}

func TestTechniqueStore_SelectUnknown(t *testing.T) {
	s := NewTechniqueStore()

	assert.False(t, s.Select("deep-work"))
	assert.Empty(t, s.SelectedTechnique)
	assert.Nil(t, s.SessionConfig)
}

func TestTechniqueStore_UpdateSessionConfig(t *testing.T) {
	s := NewTechniqueStore()

	// A patch before any selection is a no-op.
	s.UpdateSessionConfig(SessionConfigPatch{SessionLength: intPtr(50)})
	assert.Nil(t, s.SessionConfig)

	require.True(t, s.Select("52-17"))
	s.UpdateSessionConfig(SessionConfigPatch{
		SessionLength: intPtr(50),
		StartTime:     strPtr("08:30"),
	})

	assert.Equal(t, 50, s.SessionConfig.SessionLength)
	assert.Equal(t, 17, s.SessionConfig.BreakLength)
	assert.Equal(t, "08:30", s.SessionConfig.StartTime)
}

func TestTechniqueStore_Reset(t *testing.T) {
	s := NewTechniqueStore()
	require.True(t, s.Select("timeboxing"))

	s.Reset()

	assert.Empty(t, s.SelectedTechnique)
	assert.Nil(t, s.SessionConfig)
}

func TestTechniqueCatalog(t *testing.T) {
	s := NewTechniqueStore()

	require.Len(t, s.Techniques, 5)
	ids := make([]string, 0, len(s.Techniques))
	for _, technique := range s.Techniques {
		ids = append(ids, technique.ID)
	}
	assert.Equal(t, []string{"pomodoro", "time-blocking", "timeboxing", "eat-that-frog", "52-17"}, ids)
}

func TestTimetableStore(t *testing.T) {
	s := NewTimetableStore()
	s.SetLoading(true)
	s.SetError("generation failed")

	assert.False(t, s.IsLoading)
	assert.Equal(t, "generation failed", s.Err)

	s.Set(models.TimetableData{Date: "2026-08-31"})

	require.NotNil(t, s.Timetable)
	assert.Equal(t, "2026-08-31", s.Timetable.Date)
	assert.Empty(t, s.Err)

	s.Clear()
	assert.Nil(t, s.Timetable)
}

func TestTemplateStore_SelectCopies(t *testing.T) {
	s := NewTemplateStore()
	require.NotEmpty(t, s.Templates)
	id := s.Templates[0].ID

	require.True(t, s.Select(id))
	require.NotNil(t, s.Selected)

	// Growing the catalog must not move the selection out from under us.
	s.Add(TimetableTemplate{Name: "Custom"})
	assert.Equal(t, id, s.Selected.ID)
}

func TestTemplateStore_SelectUnknownClears(t *testing.T) {
	s := NewTemplateStore()
	require.True(t, s.Select(s.Templates[0].ID))

	assert.False(t, s.Select("nope"))
	assert.Nil(t, s.Selected)
}

func TestTemplateStore_AddAndRemove(t *testing.T) {
	s := NewTemplateStore()
	before := len(s.Templates)

	added := s.Add(TimetableTemplate{Name: "Crunch Week"})
	assert.NotEmpty(t, added.ID)
	assert.False(t, added.CreatedAt.IsZero())
	assert.Len(t, s.Templates, before+1)

	require.True(t, s.Select(added.ID))
	s.Remove(added.ID)

	assert.Len(t, s.Templates, before)
	assert.Nil(t, s.Selected)
}
