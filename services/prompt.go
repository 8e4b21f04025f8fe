package services

import (
	"fmt"
	"strings"

	"github.com/kaushalkrsna1602/Samay-Sahayak/models"
)

// BuildTimetablePrompt serializes the tasks, technique, session
// configuration and user preferences into the instruction text sent to the
// completion service. Every input field is embedded as literal text; the
// template closes with the exact JSON shape the model must return.
func BuildTimetablePrompt(tasks []models.Task, technique models.Technique, cfg models.SessionConfig, prefs models.UserPreferences) string {
	lines := make([]string, 0, len(tasks))
	for _, task := range tasks {
		lines = append(lines, fmt.Sprintf("- %s (%d min, %s priority, %s)",
			task.Title, task.EstimatedDuration, task.Priority, task.Category))
	}

	goal := "No specific goal mentioned"
	if prefs.DailyGoal != "" {
		goal = "Main Goal: " + prefs.DailyGoal
	}

	return fmt.Sprintf(timetablePromptTemplate,
		goal,
		orDefault(prefs.EnergyLevel, "medium"),
		orDefault(prefs.PreferredWorkoutTime, "morning"),
		orDefault(prefs.PreferredLearningTime, "morning"),
		yesNo(prefs.BreaksEnabled()),
		yesNo(prefs.MealsEnabled()),
		strings.Join(lines, "\n"),
		technique.Name,
		technique.Description,
		cfg.SessionLength,
		cfg.BreakLength,
		cfg.StartTime,
		cfg.EndTime,
		strings.Join(cfg.WorkDays, ", "),
		technique.Name,
	)
}

// BuildCEOPrompt produces the executive-assistant style prompt from a raw
// brain-dump of tasks and the user's current state.
func BuildCEOPrompt(randomPlan string, prefs models.UserPreferences) string {
	return fmt.Sprintf(ceoPromptTemplate,
		randomPlan,
		orDefault(prefs.EnergyLevel, "not specified"),
		orDefault(prefs.PreferredWorkoutTime, "not specified"),
	)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

const timetablePromptTemplate = `You are an expert productivity coach and AI assistant with deep understanding of human psychology, circadian rhythms, and optimal scheduling. Your mission is to create a highly efficient, realistic, and healthy daily timetable that maximizes the user's productivity and well-being.

USER CONTEXT:
%s
Energy Level: %s
Preferred Workout Time: %s
Preferred Learning Time: %s
Include Breaks: %s
Include Meals: %s

TASKS TO SCHEDULE:
%s

TECHNIQUE: %s
%s

SESSION CONFIGURATION:
- Session Length: %d minutes
- Break Length: %d minutes
- Work Hours: %s - %s
- Work Days: %s

SCHEDULING PRINCIPLES TO FOLLOW:

1. **Common Sense & Context Awareness:**
   - Don't schedule outdoor activities (park, walk, exercise) during peak heat hours (12-3 PM)
   - Schedule exercise in morning or evening when temperatures are comfortable
   - Place high-priority tasks during peak energy hours (usually 9-11 AM)
   - Schedule creative tasks when energy is moderate
   - Place routine tasks during lower energy periods

2. **Energy Level Optimization:**
   - Low Energy: Shorter sessions, more breaks, gentle tasks first
   - Medium Energy: Balanced approach with mix of task types
   - High Energy: Longer sessions, tackle challenging tasks first

3. **Task Type Intelligence:**
   - Work/Professional: Schedule during business hours
   - Health/Exercise: Morning or evening, avoid peak heat
   - Learning/Reading: During preferred learning time or quiet hours
   - Personal: Flexible timing based on task nature
   - Creative: When energy is moderate to high

4. **Break Strategy:**
   - Short breaks (5-10 min) between work sessions
   - Longer breaks (15-30 min) every 2-3 hours
   - Lunch break around 12-1 PM
   - Use breaks for light stretching, hydration, or brief walks

5. **Priority Handling:**
   - High priority tasks get prime time slots
   - Medium priority tasks fill remaining time
   - Low priority tasks can be scheduled during lower energy periods

6. **Realistic Timing:**
   - Account for task transitions and setup time
   - Don't over-schedule - leave buffer time
   - Consider task complexity and mental load

INSTRUCTIONS:
1. Analyze the user's goal and energy level to determine optimal task placement
2. Apply common sense to outdoor activities and exercise timing
3. Respect the user's preferred times for specific activities
4. Create a balanced schedule that alternates between focused work and breaks
5. Ensure the schedule is realistic and achievable
6. Return the response in the following JSON format:

{
  "dailySchedule": [
    {
      "time": "09:00",
      "duration": 25,
      "activity": "Task Name",
      "type": "work|break|lunch|health|learning|personal",
      "description": "Brief description with reasoning",
      "priority": "high|medium|low",
      "category": "Work|Health|Learning|Personal"
    }
  ],
  "technique": "%s",
  "totalWorkTime": 480,
  "totalBreakTime": 60,
  "recommendations": [
    "Specific recommendation based on user's goal",
    "Energy management tip",
    "Productivity optimization suggestion"
  ],
  "scheduleInsights": {
    "peakProductivityTime": "9:00-11:00",
    "recommendedBreaks": "Every 90 minutes",
    "energyOptimization": "High priority tasks scheduled during peak hours"
  }
}

Make the schedule truly personalized and intelligent. Consider the user's specific context and create a timetable that will actually help them achieve their goals.`

const ceoPromptTemplate = `You are an elite Executive Assistant, tasked with structuring the day for a high-performing CEO. Your goal is to transform a raw, unstructured brain-dump of tasks and feelings into a strategic, optimized, and actionable daily plan.

**CEO's Brain-Dump:**
"%s"

**CEO's State:**
- Energy Level: %s
- Preferred Workout Time: %s

**Your Task:**
Analyze the brain-dump and create a structured, CEO-level daily schedule. Follow these principles:

1.  **Prioritize ruthlessly:** Identify the "one big thing" for the day and allocate prime, focused time for it.
2.  **Block time strategically:** Don't just list tasks. Create blocks of time for focused work, meetings, creative thinking, and personal tasks. Use time blocking.
3.  **Manage energy, not just time:** Schedule high-focus, creative tasks when energy is likely to be highest (e.g., morning). Schedule administrative or less demanding tasks for lower energy periods (e.g., after lunch).
4.  **Incorporate breaks and recovery:** A CEO's schedule is a marathon, not a sprint. Include strategic breaks for lunch, exercise, and short pauses to recharge.
5.  **Be proactive:** If the CEO mentions a vague task like "prepare for presentation," break it down into actionable steps (e.g., "Review presentation draft," "Practice delivery," "Finalize slides").
6.  **Add buffer time:** Do not schedule back-to-back meetings or tasks. Add 15-30 minute buffers to allow for travel, overruns, and context switching.
7.  **Provide a "Daily Briefing":** At the top of the schedule, provide a 2-3 sentence summary of the day's primary goal and focus.

**Output Format:**
Return the response as a JSON object with the following structure:

{
  "dailyBriefing": "A short summary of the day's main objective.",
  "dailySchedule": [
    {
      "time": "09:00 - 11:00",
      "activity": "Deep Work: Finalize Presentation",
      "type": "work",
      "description": "Two hours of uninterrupted focus to complete the presentation. All notifications off."
    }
  ],
  "recommendations": [
    "A list of strategic recommendations for the day."
  ]
}
`
