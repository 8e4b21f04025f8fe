package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kaushalkrsna1602/Samay-Sahayak/client"
	"github.com/kaushalkrsna1602/Samay-Sahayak/models"
	"github.com/kaushalkrsna1602/Samay-Sahayak/services"
	"github.com/kaushalkrsna1602/Samay-Sahayak/store"
)

var (
	// Used for flags.
	serverURL string
	userID    string
	startDate string
	endDate   string
	taskSpecs []string
	technique string
	startTime string
	noBreaks  bool
	noMeals   bool

	rootCmd = &cobra.Command{
		Use:   "samay",
		Short: "Command-line companion for the Samay Sahayak planning backend.",
	}

	healthCmd = &cobra.Command{
		Use:   "health",
		Short: "Check server and database status.",
		RunE:  runHealth,
	}

	timetablesCmd = &cobra.Command{
		Use:   "timetables",
		Short: "Work with saved timetables.",
	}

	timetablesListCmd = &cobra.Command{
		Use:   "list",
		Short: "List saved timetables for a user.",
		RunE:  runTimetablesList,
	}

	timetablesDeleteCmd = &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved timetable by id.",
		Args:  cobra.ExactArgs(1),
		RunE:  runTimetablesDelete,
	}

	analyticsCmd = &cobra.Command{
		Use:   "analytics",
		Short: "Inspect productivity analytics.",
	}

	analyticsShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show analytics history and aggregated metrics.",
		RunE:  runAnalyticsShow,
	}

	analyticsResetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Delete all analytics records for a user.",
		RunE:  runAnalyticsReset,
	}

	planCmd = &cobra.Command{
		Use:   "plan",
		Short: "Build a schedule locally without calling the server.",
		Long: `Builds a priority-ordered schedule on this machine using the selected
focus technique. Tasks are given as --task "Title:minutes:priority[:category]".`,
		RunE: runPlan,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:5000", "Base URL of the backend server.")

	timetablesListCmd.Flags().StringVar(&userID, "user", "", "User id (required).")
	analyticsShowCmd.Flags().StringVar(&userID, "user", "", "User id (required).")
	analyticsShowCmd.Flags().StringVar(&startDate, "start-date", "", "Start date (YYYY-MM-DD).")
	analyticsShowCmd.Flags().StringVar(&endDate, "end-date", "", "End date (YYYY-MM-DD).")
	analyticsResetCmd.Flags().StringVar(&userID, "user", "", "User id (required).")

	planCmd.Flags().StringArrayVar(&taskSpecs, "task", nil, `Task as "Title:minutes:priority[:category]" (repeatable).`)
	planCmd.Flags().StringVar(&technique, "technique", "pomodoro", "Focus technique id (pomodoro, time-blocking, timeboxing, eat-that-frog, 52-17).")
	planCmd.Flags().StringVar(&startTime, "start", "09:00", "Day start time (HH:MM).")
	planCmd.Flags().BoolVar(&noBreaks, "no-breaks", false, "Skip breaks between tasks.")
	planCmd.Flags().BoolVar(&noMeals, "no-meals", false, "Skip the lunch block.")

	timetablesCmd.AddCommand(timetablesListCmd)
	timetablesCmd.AddCommand(timetablesDeleteCmd)
	analyticsCmd.AddCommand(analyticsShowCmd)
	analyticsCmd.AddCommand(analyticsResetCmd)

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(timetablesCmd)
	rootCmd.AddCommand(analyticsCmd)
	rootCmd.AddCommand(planCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func api() *client.Client {
	return client.New(serverURL)
}

func requireUser() error {
	if userID == "" {
		return fmt.Errorf("--user is required")
	}
	return nil
}

func runHealth(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	resp, err := api().Health(ctx)
	if err != nil {
		return err
	}
	cmd.Printf("%s: %s (database: %s)\n", resp.Status, resp.Message, resp.Database)
	return nil
}

func runTimetablesList(cmd *cobra.Command, args []string) error {
	if err := requireUser(); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	resp, err := api().FetchTimetables(ctx, userID)
	if err != nil {
		return err
	}
	if len(resp.Timetables) == 0 {
		cmd.Println("No saved timetables.")
		return nil
	}
	for _, tt := range resp.Timetables {
		cmd.Printf("%s  %s  %s  (%d items, %d min work)\n",
			tt.ID.Hex(), tt.Data.Date, tt.Data.Technique,
			len(tt.Data.DailySchedule), tt.Data.TotalWorkTime)
	}
	return nil
}

func runTimetablesDelete(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	if err := api().DeleteTimetable(ctx, args[0]); err != nil {
		return err
	}
	cmd.Println("Deleted.")
	return nil
}

func runAnalyticsShow(cmd *cobra.Command, args []string) error {
	if err := requireUser(); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	resp, err := api().FetchAnalytics(ctx, userID, startDate, endDate)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, day := range resp.Analytics {
		fmt.Fprintf(out, "%s  %s  %d/%d tasks  score %d\n",
			day.Date, day.Technique, day.CompletedTasks, day.TotalTasks, day.ProductivityScore)
	}
	m := resp.Metrics
	fmt.Fprintf(out, "\nDays tracked: %d\n", m.TotalDays)
	fmt.Fprintf(out, "Tasks completed: %d\n", m.TotalTasksCompleted)
	fmt.Fprintf(out, "Average score: %d\n", m.AverageProductivityScore)
	fmt.Fprintf(out, "Most used technique: %s\n", m.MostUsedTechnique)
	fmt.Fprintf(out, "Current streak: %d\n", m.CurrentStreak)
	return nil
}

func runAnalyticsReset(cmd *cobra.Command, args []string) error {
	if err := requireUser(); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	resp, err := api().ResetAnalytics(ctx, userID)
	if err != nil {
		return err
	}
	cmd.Println(resp.Message)
	return nil
}

func runPlan(cmd *cobra.Command, args []string) error {
	if len(taskSpecs) == 0 {
		return fmt.Errorf("at least one --task is required")
	}

	tasks := make([]models.Task, 0, len(taskSpecs))
	for _, spec := range taskSpecs {
		task, err := parseTaskSpec(spec)
		if err != nil {
			return err
		}
		tasks = append(tasks, task)
	}

	techniques := store.NewTechniqueStore()
	if !techniques.Select(technique) {
		return fmt.Errorf("unknown technique %q", technique)
	}
	techniques.UpdateSessionConfig(store.SessionConfigPatch{StartTime: &startTime})
	selected, _ := techniques.Find(technique)

	breaks := !noBreaks
	meals := !noMeals
	prefs := models.UserPreferences{IncludeBreaks: &breaks, IncludeMeals: &meals}

	date := time.Now().Format("2006-01-02")
	timetable := services.GenerateLocalTimetable(date, tasks, selected, *techniques.SessionConfig, prefs)
	printTimetable(cmd.OutOrStdout(), timetable)
	return nil
}

func parseTaskSpec(spec string) (models.Task, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 3 {
		return models.Task{}, fmt.Errorf("invalid task %q, want Title:minutes:priority[:category]", spec)
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || minutes <= 0 {
		return models.Task{}, fmt.Errorf("invalid task duration in %q", spec)
	}
	task := models.Task{
		Title:             strings.TrimSpace(parts[0]),
		EstimatedDuration: minutes,
		Priority:          strings.ToLower(strings.TrimSpace(parts[2])),
		Category:          "Work",
	}
	if len(parts) > 3 {
		task.Category = strings.TrimSpace(parts[3])
	}
	return task, nil
}

func printTimetable(out io.Writer, tt models.TimetableData) {
	fmt.Fprintf(out, "Schedule for %s (%s)\n\n", tt.Date, tt.Technique)
	for _, item := range tt.DailySchedule {
		fmt.Fprintf(out, "%s  %-8s %3d min  %s\n", item.Time, item.Type, item.Duration, item.Activity)
	}
	fmt.Fprintf(out, "\nWork: %d min  Break: %d min\n", tt.TotalWorkTime, tt.TotalBreakTime)
	for _, rec := range tt.Recommendations {
		fmt.Fprintf(out, "  - %s\n", rec)
	}
}
