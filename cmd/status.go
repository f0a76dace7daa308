package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/orbit/internal/progress"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Formatted progress line for every tracker",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()

	st, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	trackers, err := st.AllTrackers(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var withGoal, met int
	for i := range trackers {
		t := &trackers[i]
		rep, err := progress.Evaluate(t)
		if err != nil {
			fmt.Fprintf(out, "%-24s goal unreadable: %v\n", t.Title, err)
			continue
		}
		fmt.Fprintf(out, "%-24s %s\n", t.Title, progress.Format(rep))
		if rep.HasGoal {
			withGoal++
			if rep.Completed {
				met++
			}
		}
	}
	if withGoal > 0 {
		fmt.Fprintf(out, "\n%d of %d goals met\n", met, withGoal)
	}
	return nil
}
