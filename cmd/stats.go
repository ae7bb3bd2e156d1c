package cmd

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
)

// Stats palette and styles.
var (
	statsPrimary = lipgloss.Color("#8B5CF6") // Purple
	statsGood    = lipgloss.Color("#22C55E") // Green
	statsWarn    = lipgloss.Color("#F97316") // Orange
	statsBad     = lipgloss.Color("#F43F5E") // Rose
	statsDim     = lipgloss.Color("#94A3B8") // Slate

	statsTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(statsPrimary)

	statsLabel = lipgloss.NewStyle().
			Foreground(statsDim)

	statsValue = lipgloss.NewStyle().
			Bold(true)
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show today's focus summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")

		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		defer svc.Close()

		sum, err := svc.TodaySummary(cmd.Context(), user)
		if err != nil {
			return err
		}

		var b strings.Builder
		fmt.Fprintln(&b, statsTitle.Render(fmt.Sprintf("Today — %s", user)))
		fmt.Fprintln(&b)
		fmt.Fprintf(&b, "%s %s\n", statsLabel.Render("Focus score:   "),
			scoreStyle(sum.FocusScore).Render(fmt.Sprintf("%.0f%%", sum.FocusScore*100)))
		fmt.Fprintf(&b, "%s %s\n", statsLabel.Render("Study time:    "),
			statsValue.Render(fmtDuration(sum.StudySeconds)))
		fmt.Fprintf(&b, "%s %s\n", statsLabel.Render("Distractions:  "),
			statsValue.Render(fmtDuration(sum.DistractionSeconds)))
		fmt.Fprintf(&b, "%s %s\n", statsLabel.Render("Neutral:       "),
			statsValue.Render(fmtDuration(sum.NeutralSeconds)))
		fmt.Fprintf(&b, "%s %s\n", statsLabel.Render("Events:        "),
			statsValue.Render(fmt.Sprintf("%d", sum.EventCount)))
		fmt.Fprintf(&b, "%s %s\n", statsLabel.Render("Interventions: "),
			statsValue.Render(fmt.Sprintf("%d", sum.Interventions)))

		if len(sum.TopDistractions) > 0 {
			fmt.Fprintln(&b)
			fmt.Fprintln(&b, statsTitle.Render("Top distractions"))
			for _, d := range sum.TopDistractions {
				fmt.Fprintf(&b, "  %s  %s\n",
					statsValue.Render(fmt.Sprintf("%-24s", d.Domain)),
					statsLabel.Render(fmtDuration(d.Seconds)))
			}
		}

		fmt.Print(b.String())
		return nil
	},
}

func scoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= 0.75:
		return lipgloss.NewStyle().Bold(true).Foreground(statsGood)
	case score >= 0.5:
		return lipgloss.NewStyle().Bold(true).Foreground(statsWarn)
	default:
		return lipgloss.NewStyle().Bold(true).Foreground(statsBad)
	}
}

func fmtDuration(seconds int) string {
	d := time.Duration(seconds) * time.Second
	if d < time.Minute {
		return fmt.Sprintf("%ds", seconds)
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
}

func init() {
	statsCmd.Flags().String("user", "local", "User to summarize")
}
