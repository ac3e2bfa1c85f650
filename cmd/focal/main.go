package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"focal/internal/bootstrap"
	goaldto "focal/internal/modules/goal/dto"
	"focal/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var baseDir string

	root := &cobra.Command{
		Use:           "focal",
		Short:         "Goal tracking and focused-work timers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&baseDir, "base", "", "data directory (default ~/.focal)")

	root.AddCommand(newGoalCmd(&baseDir))
	root.AddCommand(newTagCmd(&baseDir))
	root.AddCommand(newPomoCmd(&baseDir))
	root.AddCommand(newThoughtCmd(&baseDir))
	root.AddCommand(newStatsCmd(&baseDir))
	root.AddCommand(newReindexCmd(&baseDir))
	return root
}

func loadApp(baseDir string) (*bootstrap.App, error) {
	cfg, err := config.New(baseDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newGoalCmd(baseDir *string) *cobra.Command {
	goal := &cobra.Command{Use: "goal", Short: "Manage goals"}

	var priority, parentID, deadlineStr string
	var tags []string
	addCmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*baseDir)
			if err != nil {
				return err
			}
			deadline, err := parseDate(deadlineStr)
			if err != nil {
				return err
			}
			out, err := app.GoalCLI.Add(context.Background(), args[0], priority, tags, parentID, deadline)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %q (%s)\n", out.Title, out.ID)
			return nil
		},
	}
	addCmd.Flags().StringVar(&priority, "priority", "", "low|medium|high (default medium)")
	addCmd.Flags().StringSliceVar(&tags, "tag", nil, "tags")
	addCmd.Flags().StringVar(&parentID, "parent", "", "parent goal id")
	addCmd.Flags().StringVar(&deadlineStr, "deadline", "", "deadline (YYYY-MM-DD)")

	var listInput goaldto.ListInput
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List goals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*baseDir)
			if err != nil {
				return err
			}
			goals, err := app.GoalCLI.List(context.Background(), listInput)
			if err != nil {
				return err
			}
			for _, g := range goals {
				printGoal(cmd, g)
			}
			return nil
		},
	}
	listCmd.Flags().BoolVar(&listInput.IncludeArchived, "all", false, "include archived goals")
	listCmd.Flags().BoolVar(&listInput.OnlyArchived, "archived", false, "archived goals only")
	listCmd.Flags().StringVar(&listInput.Priority, "priority", "", "filter by priority")
	listCmd.Flags().StringSliceVar(&listInput.Tags, "tag", nil, "filter by tags (all must match)")
	listCmd.Flags().StringVar(&listInput.ParentID, "parent", "", "filter by parent goal id")
	listCmd.Flags().BoolVar(&listInput.DueSoon, "due-soon", false, "deadline within 3 days")
	listCmd.Flags().BoolVar(&listInput.Overdue, "overdue", false, "deadline in the past")

	var newTitle, newPriority, newDeadline string
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update title, priority or deadline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*baseDir)
			if err != nil {
				return err
			}
			var title, priority *string
			if cmd.Flags().Changed("title") {
				title = &newTitle
			}
			if cmd.Flags().Changed("priority") {
				priority = &newPriority
			}
			deadline, err := parseDate(newDeadline)
			if err != nil {
				return err
			}
			out, err := app.GoalCLI.Update(context.Background(), args[0], title, priority, deadline)
			if err != nil {
				return err
			}
			printGoal(cmd, out)
			return nil
		},
	}
	updateCmd.Flags().StringVar(&newTitle, "title", "", "new title")
	updateCmd.Flags().StringVar(&newPriority, "priority", "", "new priority")
	updateCmd.Flags().StringVar(&newDeadline, "deadline", "", "new deadline (YYYY-MM-DD)")

	goal.AddCommand(addCmd, listCmd, updateCmd,
		goalToggleCmd(baseDir, "archive", "Archive a goal", func(app *bootstrap.App, id string) (goaldto.GoalOutput, error) {
			return app.GoalCLI.Archive(context.Background(), id)
		}),
		goalToggleCmd(baseDir, "restore", "Restore an archived goal", func(app *bootstrap.App, id string) (goaldto.GoalOutput, error) {
			return app.GoalCLI.Restore(context.Background(), id)
		}),
		goalToggleCmd(baseDir, "complete", "Mark a goal as completed", func(app *bootstrap.App, id string) (goaldto.GoalOutput, error) {
			return app.GoalCLI.Complete(context.Background(), id)
		}),
		goalToggleCmd(baseDir, "reopen", "Mark a completed goal as not done", func(app *bootstrap.App, id string) (goaldto.GoalOutput, error) {
			return app.GoalCLI.Reopen(context.Background(), id)
		}),
		&cobra.Command{
			Use:   "rm <id>",
			Short: "Delete a goal permanently",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				app, err := loadApp(*baseDir)
				if err != nil {
					return err
				}
				if err := app.GoalCLI.Remove(context.Background(), args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
				return nil
			},
		},
	)
	return goal
}

func goalToggleCmd(baseDir *string, use, short string, run func(*bootstrap.App, string) (goaldto.GoalOutput, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*baseDir)
			if err != nil {
				return err
			}
			out, err := run(app, args[0])
			if err != nil {
				return err
			}
			printGoal(cmd, out)
			return nil
		},
	}
}

func newTagCmd(baseDir *string) *cobra.Command {
	tag := &cobra.Command{Use: "tag", Short: "Manage goal tags"}

	tag.AddCommand(
		&cobra.Command{
			Use:   "add <goal-id> <tag>...",
			Short: "Add tags to a goal",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				app, err := loadApp(*baseDir)
				if err != nil {
					return err
				}
				out, err := app.GoalCLI.AddTags(context.Background(), args[0], args[1:])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s tags: %s\n", out.ID, strings.Join(out.Tags, ", "))
				return nil
			},
		},
		&cobra.Command{
			Use:   "rm <goal-id> <tag>",
			Short: "Remove a tag from a goal",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				app, err := loadApp(*baseDir)
				if err != nil {
					return err
				}
				out, err := app.GoalCLI.RemoveTag(context.Background(), args[0], args[1])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s tags: %s\n", out.ID, strings.Join(out.Tags, ", "))
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List all tags with goal counts",
			RunE: func(cmd *cobra.Command, _ []string) error {
				app, err := loadApp(*baseDir)
				if err != nil {
					return err
				}
				census, err := app.GoalCLI.TagCensus(context.Background())
				if err != nil {
					return err
				}
				names := make([]string, 0, len(census))
				for name := range census {
					names = append(names, name)
				}
				sort.Strings(names)
				for _, name := range names {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", name, census[name])
				}
				return nil
			},
		},
	)
	return tag
}

func newPomoCmd(baseDir *string) *cobra.Command {
	pomo := &cobra.Command{Use: "pomo", Short: "Pomodoro timer"}

	var durationMin int
	var goalID string
	startCmd := &cobra.Command{
		Use:   "start",
		Short: "Start a timer (replaces any running one)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*baseDir)
			if err != nil {
				return err
			}
			out, err := app.PomodoroCLI.Start(context.Background(), durationMin, goalID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "started %d min session at %s\n", out.DurationSec/60, out.Start.Format(time.Kitchen))
			return nil
		},
	}
	startCmd.Flags().IntVar(&durationMin, "duration", 0, "minutes (default from config)")
	startCmd.Flags().StringVar(&goalID, "goal", "", "goal id this session relates to")

	pomo.AddCommand(startCmd,
		&cobra.Command{
			Use:   "pause",
			Short: "Pause the running timer",
			RunE: func(cmd *cobra.Command, _ []string) error {
				app, err := loadApp(*baseDir)
				if err != nil {
					return err
				}
				out, err := app.PomodoroCLI.Pause(context.Background())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "paused at %s elapsed\n", formatSec(out.ElapsedSec))
				return nil
			},
		},
		&cobra.Command{
			Use:   "resume",
			Short: "Resume a paused timer",
			RunE: func(cmd *cobra.Command, _ []string) error {
				app, err := loadApp(*baseDir)
				if err != nil {
					return err
				}
				out, err := app.PomodoroCLI.Resume(context.Background())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "resumed, %s remaining\n", formatSec(out.RemainingSec))
				return nil
			},
		},
		&cobra.Command{
			Use:   "stop",
			Short: "Stop the timer and record the session",
			RunE: func(cmd *cobra.Command, _ []string) error {
				app, err := loadApp(*baseDir)
				if err != nil {
					return err
				}
				out, err := app.PomodoroCLI.Stop(context.Background())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "recorded %d min session (%s)\n", out.DurationSec/60, out.ID)
				return nil
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show the active timer",
			RunE: func(cmd *cobra.Command, _ []string) error {
				app, err := loadApp(*baseDir)
				if err != nil {
					return err
				}
				out, err := app.PomodoroCLI.Status(context.Background())
				if err != nil {
					return err
				}
				state := "running"
				if out.Paused {
					state = "paused"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: elapsed %s | remaining %s\n", state, formatSec(out.ElapsedSec), formatSec(out.RemainingSec))
				return nil
			},
		},
		&cobra.Command{
			Use:   "sessions",
			Short: "List completed sessions",
			RunE: func(cmd *cobra.Command, _ []string) error {
				app, err := loadApp(*baseDir)
				if err != nil {
					return err
				}
				sessions, err := app.PomodoroCLI.ListSessions(context.Background())
				if err != nil {
					return err
				}
				for _, s := range sessions {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d min\t%s\n", s.Start.Format("2006-01-02 15:04"), s.GoalID, s.DurationSec/60, s.ID)
				}
				return nil
			},
		},
	)
	return pomo
}

func newThoughtCmd(baseDir *string) *cobra.Command {
	thought := &cobra.Command{Use: "thought", Short: "Capture quick reflections"}

	var goalID string
	addCmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Record a thought",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*baseDir)
			if err != nil {
				return err
			}
			out, err := app.ThoughtCLI.Add(context.Background(), args[0], goalID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "noted (%s)\n", out.ID)
			return nil
		},
	}
	addCmd.Flags().StringVar(&goalID, "goal", "", "goal id this thought relates to")

	var listGoalID string
	var limit int
	var oldestFirst bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List thoughts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*baseDir)
			if err != nil {
				return err
			}
			thoughts, err := app.ThoughtCLI.List(context.Background(), listGoalID, limit, oldestFirst)
			if err != nil {
				return err
			}
			for _, t := range thoughts {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", t.Timestamp.Format("2006-01-02 15:04"), t.ID, t.Text)
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&listGoalID, "goal", "", "filter by goal id")
	listCmd.Flags().IntVar(&limit, "limit", 10, "max results (0 for all)")
	listCmd.Flags().BoolVar(&oldestFirst, "oldest-first", false, "oldest first instead of newest first")

	thought.AddCommand(addCmd, listCmd,
		&cobra.Command{
			Use:   "rm <id>",
			Short: "Delete a thought",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				app, err := loadApp(*baseDir)
				if err != nil {
					return err
				}
				if err := app.ThoughtCLI.Remove(context.Background(), args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
				return nil
			},
		},
	)
	return thought
}

func newStatsCmd(baseDir *string) *cobra.Command {
	stats := &cobra.Command{Use: "stats", Short: "Focus analytics"}

	var fromStr, toStr string
	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Totals, streaks and averages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*baseDir)
			if err != nil {
				return err
			}
			from, err := parseDate(fromStr)
			if err != nil {
				return err
			}
			to, err := parseDate(toStr)
			if err != nil {
				return err
			}
			out, err := app.StatsCLI.Summary(context.Background(), from, to)
			if err != nil {
				return err
			}
			ids := make([]string, 0, len(out.TotalsByGoal))
			for id := range out.TotalsByGoal {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			for _, id := range ids {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", id, formatSec(out.TotalsByGoal[id]))
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "streak: %d day(s), longest %d\n", out.CurrentStreak, out.LongestStreak)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "average/day: %s\n", formatSec(int(out.AveragePerDaySec)))
			if out.MostProductiveDay != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "best weekday: %s\n", out.MostProductiveDay)
			}
			return nil
		},
	}
	summaryCmd.Flags().StringVar(&fromStr, "from", "", "start date (YYYY-MM-DD)")
	summaryCmd.Flags().StringVar(&toStr, "to", "", "end date (YYYY-MM-DD)")

	var weekStartStr string
	weekCmd := &cobra.Command{
		Use:   "week",
		Short: "Seconds focused per day over a week",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*baseDir)
			if err != nil {
				return err
			}
			start := time.Now().UTC().AddDate(0, 0, -6)
			if weekStartStr != "" {
				parsed, err := parseDate(weekStartStr)
				if err != nil {
					return err
				}
				start = *parsed
			}
			out, err := app.StatsCLI.Histogram(context.Background(), start, 7)
			if err != nil {
				return err
			}
			days := make([]string, 0, len(out.SecondsByDay))
			for day := range out.SecondsByDay {
				days = append(days, day)
			}
			sort.Strings(days)
			for _, day := range days {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", day, formatSec(out.SecondsByDay[day]))
			}
			return nil
		},
	}
	weekCmd.Flags().StringVar(&weekStartStr, "start", "", "week start date (YYYY-MM-DD)")

	stats.AddCommand(summaryCmd, weekCmd)
	return stats
}

func newReindexCmd(baseDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the SQLite index from the document database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*baseDir)
			if err != nil {
				return err
			}
			if err := app.GoalCLI.Reindex(context.Background()); err != nil {
				return err
			}
			if err := app.PomodoroCLI.Reindex(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "index rebuilt")
			return nil
		},
	}
}

func printGoal(cmd *cobra.Command, g goaldto.GoalOutput) {
	markers := make([]string, 0, 2)
	if g.Completed {
		markers = append(markers, "done")
	}
	if g.Archived {
		markers = append(markers, "archived")
	}
	suffix := ""
	if len(markers) > 0 {
		suffix = " [" + strings.Join(markers, ",") + "]"
	}
	if g.Deadline != nil {
		suffix += " due " + g.Deadline.Format("2006-01-02")
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%-8s%s%s\n", g.ID, g.Priority, g.Title, suffix)
}

func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", raw)
	}
	return &parsed, nil
}

func formatSec(seconds int) string {
	d := time.Duration(seconds) * time.Second
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%dh%02dm", h, m)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}
