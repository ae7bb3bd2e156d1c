package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adaptifocus/adaptifocus/internal/classify"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a URL or domain without touching any state",
	RunE: func(cmd *cobra.Command, args []string) error {
		url, _ := cmd.Flags().GetString("url")
		domain, _ := cmd.Flags().GetString("domain")
		title, _ := cmd.Flags().GetString("title")
		topic, _ := cmd.Flags().GetString("topic")

		if url == "" && domain == "" {
			return fmt.Errorf("either --url or --domain is required")
		}

		d := classify.NormalizeDomain(domain)
		if d == "" {
			d = classify.ExtractDomain(url)
			if d == "" {
				return fmt.Errorf("could not extract a domain from %q", url)
			}
		}

		var v classify.Verdict
		if topic != "" {
			v = classify.ClassifyWithTopic(d, title, topic)
		} else {
			v = classify.Classify(d, title)
		}

		cmd.Printf("domain:     %s\n", d)
		cmd.Printf("category:   %s\n", v.Label)
		cmd.Printf("source:     %s\n", v.Source)
		cmd.Printf("confidence: %.2f\n", v.Confidence)
		return nil
	},
}

func init() {
	classifyCmd.Flags().String("url", "", "Full URL to classify")
	classifyCmd.Flags().String("domain", "", "Domain to classify (used when --url is not given)")
	classifyCmd.Flags().String("title", "", "Page title, refines mixed-content domains")
	classifyCmd.Flags().String("topic", "", "Active study topic, upgrades relevant pages")
}
