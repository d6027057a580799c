package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/prepdeck/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent study sessions and mock tests",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		repo := st.EventRepo()

		sessions, err := repo.RecentSessions(ctx, limit)
		if err != nil {
			return fmt.Errorf("load session history: %w", err)
		}
		tests, err := repo.RecentTests(ctx, limit)
		if err != nil {
			return fmt.Errorf("load test history: %w", err)
		}

		if len(sessions) == 0 && len(tests) == 0 {
			fmt.Println("No history yet. Run `prepdeck study` to get started.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

		if len(sessions) > 0 {
			fmt.Fprintln(w, "SESSIONS")
			fmt.Fprintln(w, "when\tsession\ttopic\taction\tplanned\tactual\toutcome")
			for _, s := range sessions {
				fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%dm\t%dm\t%s\n",
					s.Timestamp.Format("2006-01-02 15:04"),
					s.SessionID, s.TopicID, s.Action,
					s.PlannedMins, s.ActualMins, s.Outcome)
			}
			fmt.Fprintln(w)
		}

		if len(tests) > 0 {
			fmt.Fprintln(w, "MOCK TESTS")
			fmt.Fprintln(w, "when\ttest\ttopic\tquestions\tcorrect\tscore\tstar\ttime")
			for _, t := range tests {
				star := ""
				if t.StarEarned {
					star = "★"
				}
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%.0f%%\t%s\t%02d:%02d\n",
					t.Timestamp.Format("2006-01-02 15:04"),
					t.TestID, t.TopicID, t.QuestionCount, t.CorrectCount,
					t.Score, star, t.TotalTimeSecs/60, t.TotalTimeSecs%60)
			}
		}

		return w.Flush()
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum entries per section")
}
