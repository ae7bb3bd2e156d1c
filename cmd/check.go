package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adaptifocus/adaptifocus/internal/focus"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run a one-shot intervention check against the local database",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")
		url, _ := cmd.Flags().GetString("url")
		domain, _ := cmd.Flags().GetString("domain")
		title, _ := cmd.Flags().GetString("title")
		dwell, _ := cmd.Flags().GetInt("dwell")

		if url == "" && domain == "" {
			return fmt.Errorf("either --url or --domain is required")
		}

		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		defer svc.Close()

		res, err := svc.Check(cmd.Context(), focus.CheckRequest{
			UserID:       user,
			URL:          url,
			Domain:       domain,
			Title:        title,
			DwellSeconds: dwell,
		})
		if err != nil {
			return err
		}

		fmt.Printf("category:          %s\n", res.Category)
		fmt.Printf("distraction score: %.3f (%s)\n", res.DistractionScore, res.Scorer)
		fmt.Printf("effective score:   %.3f\n", res.EffectiveScore)
		if res.ShouldIntervene {
			fmt.Printf("intervene:         %s\n", res.Level)
			fmt.Printf("message:           %s\n", res.Message)
		} else {
			fmt.Printf("intervene:         no (level %s)\n", res.Level)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().String("user", "local", "User the check is recorded against")
	checkCmd.Flags().String("url", "", "Full URL being visited")
	checkCmd.Flags().String("domain", "", "Domain being visited (used when --url is not given)")
	checkCmd.Flags().String("title", "", "Page title, refines mixed-content domains")
	checkCmd.Flags().Int("dwell", 0, "Seconds already spent on the page")
}
