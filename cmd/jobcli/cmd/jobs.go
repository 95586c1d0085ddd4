package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	jobsQuery string
	jobsPage  int
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List job postings",
	Long: `List job postings from the server, one line per job.

The listing is paginated server-side; use --page to walk the pages and
--query to filter by title.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flow, _, _, err := buildFlow()
		if err != nil {
			return err
		}

		page, err := flow.Jobs(cmd.Context(), jobsQuery, jobsPage)
		if err != nil {
			return err
		}
		if len(page.Results) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no jobs found")
			return nil
		}
		for _, job := range page.Results {
			line := fmt.Sprintf("#%d %s", job.ID, job.Title)
			if job.Company != "" {
				line += " @ " + job.Company
			}
			if job.Location != "" {
				line += " (" + job.Location + ")"
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d total\n", page.Count)
		return nil
	},
}

func init() {
	jobsCmd.Flags().StringVarP(&jobsQuery, "query", "q", "", "filter jobs by title")
	jobsCmd.Flags().IntVar(&jobsPage, "page", 1, "result page to fetch")
	rootCmd.AddCommand(jobsCmd)
}
