package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/Praashon/devtrackr/internal/config"
	"github.com/Praashon/devtrackr/internal/week"
	"github.com/Praashon/devtrackr/pkg/client"
)

var (
	outputJSON bool
	weekDate   string
)

var rootCmd = &cobra.Command{
	Use:   "devtrackr",
	Short: "Personal developer activity dashboard",
	Long: `A CLI for the devtrackr personal productivity dashboard.

Shows weekly GitHub activity aggregates, weekly review history with the
current streak, goals and habits, backed by the devtrackr API server.`,
}

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show the weekly activity aggregate",
	Long:  `Display the activity aggregate for the current week, or the week containing --date.`,
	RunE:  runWeek,
}

var weekReposCmd = &cobra.Command{
	Use:   "repos",
	Short: "Show per-repository stats for the week",
	Long:  `Display the ranked repository rollup for the current week, or the week containing --date.`,
	RunE:  runWeekRepos,
}

var reviewsCmd = &cobra.Command{
	Use:   "reviews",
	Short: "Show weekly review history",
	Long:  `Display the weekly review history and the current completion streak.`,
	RunE:  runReviews,
}

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Show goals",
	RunE:  runGoals,
}

var habitsCmd = &cobra.Command{
	Use:   "habits",
	Short: "Show habits and weekly progress",
	RunE:  runHabits,
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync activity events for the current week",
	Long:  `Pull fresh activity events from the configured source into the current week.`,
	RunE:  runSync,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output in JSON format")
	weekCmd.PersistentFlags().StringVar(&weekDate, "date", "", "show the week containing this date (YYYY-MM-DD)")

	rootCmd.AddCommand(weekCmd)
	weekCmd.AddCommand(weekReposCmd)
	rootCmd.AddCommand(reviewsCmd)
	rootCmd.AddCommand(goalsCmd)
	rootCmd.AddCommand(habitsCmd)
	rootCmd.AddCommand(syncCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newClient() (*client.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return client.NewClient(cfg.APIEndpoint), nil
}

// fetchWeek resolves --date against the configured week convention and
// fetches the matching week from the API
func fetchWeek(c *client.Client) (*client.WeekData, error) {
	if weekDate == "" {
		return c.GetCurrentWeek()
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	ref, err := time.Parse("2006-01-02", weekDate)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", weekDate)
	}
	window, err := week.Calculate(ref, cfg.Timezone, cfg.WeekStartsOn)
	if err != nil {
		return nil, err
	}
	return c.GetWeek(window.ID)
}

func printJSON(v interface{}) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))
	return nil
}

func runWeek(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}

	data, err := fetchWeek(c)
	if err != nil {
		return err
	}
	if outputJSON {
		return printJSON(data)
	}

	fmt.Printf("Week %s (%s to %s, %s)\n\n", data.Week.ID, data.Week.StartDate, data.Week.EndDate, data.Week.Status)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"PRs Merged", fmt.Sprintf("%d", data.Aggregate.TotalPRsMerged)})
	table.Append([]string{"Reviews", fmt.Sprintf("%d", data.Aggregate.TotalReviews)})
	table.Append([]string{"Commits", fmt.Sprintf("%d", data.Aggregate.TotalCommits)})
	table.Append([]string{"Weighted Score", fmt.Sprintf("%d", data.Aggregate.WeightedScore)})
	table.Render()

	fmt.Println()
	daily := tablewriter.NewWriter(os.Stdout)
	daily.SetHeader([]string{"Day", "Date", "Activity"})
	for _, d := range data.Aggregate.DailyDistribution {
		daily.Append([]string{d.Day, d.Date, fmt.Sprintf("%d", d.Activity)})
	}
	daily.Render()

	if len(data.Aggregate.Insights) > 0 {
		fmt.Println()
		for _, insight := range data.Aggregate.Insights {
			fmt.Printf("  * %s\n", insight)
		}
	}
	return nil
}

func runWeekRepos(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}

	data, err := fetchWeek(c)
	if err != nil {
		return err
	}
	if outputJSON {
		return printJSON(data.Aggregate.RepositoryStats)
	}

	fmt.Printf("Repository activity for %s\n\n", data.Week.ID)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Rank", "Repository", "PRs Merged", "Reviews", "Commits", "Score"})
	for _, s := range data.Aggregate.RepositoryStats {
		table.Append([]string{
			fmt.Sprintf("%d", s.ImpactRank),
			s.RepoOwner + "/" + s.RepoName,
			fmt.Sprintf("%d", s.MergedPRs),
			fmt.Sprintf("%d", s.Reviews),
			fmt.Sprintf("%d", s.Commits),
			fmt.Sprintf("%d", s.WeightedScore),
		})
	}
	table.Render()
	return nil
}

func runReviews(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}

	data, err := c.GetWeeklyReviews()
	if err != nil {
		return err
	}
	if outputJSON {
		return printJSON(data)
	}

	fmt.Printf("Current streak: %d week(s)\n\n", data.Streak)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Week", "Status", "Targets Done", "Impact Score"})
	for _, r := range data.Reviews {
		done := 0
		for _, target := range r.Targets {
			if target.Completed {
				done++
			}
		}
		table.Append([]string{
			r.WeekStartDate,
			string(r.Status),
			fmt.Sprintf("%d/%d", done, len(r.Targets)),
			fmt.Sprintf("%d", r.ActivitySummary.ImpactScore),
		})
	}
	table.Render()
	return nil
}

func runGoals(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}

	data, err := c.GetGoalsHabits()
	if err != nil {
		return err
	}
	if outputJSON {
		return printJSON(data.Goals)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Title", "Status", "Target Date", "Created"})
	for _, g := range data.Goals {
		targetDate := "-"
		if g.TargetDate != nil {
			targetDate = *g.TargetDate
		}
		table.Append([]string{g.Title, string(g.Status), targetDate, g.CreatedDate})
	}
	table.Render()
	return nil
}

func runHabits(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}

	data, err := c.GetGoalsHabits()
	if err != nil {
		return err
	}
	if outputJSON {
		return printJSON(data.Habits)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Title", "Weeks Tracked", "Weeks Kept"})
	for _, h := range data.Habits {
		kept := 0
		for _, p := range h.WeeklyProgress {
			if p.Completed {
				kept++
			}
		}
		table.Append([]string{h.Title, fmt.Sprintf("%d", len(h.WeeklyProgress)), fmt.Sprintf("%d", kept)})
	}
	table.Render()
	return nil
}

func runSync(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}

	fmt.Println("Syncing activity events...")
	data, err := c.Sync()
	if err != nil {
		return err
	}
	if outputJSON {
		return printJSON(data)
	}

	fmt.Printf("Synced %d event(s) into %s\n", data.SyncedEvents, data.WeekID)
	if data.Connection.LastSyncedAt != nil {
		fmt.Printf("Last synced at %s\n", *data.Connection.LastSyncedAt)
	}
	return nil
}
