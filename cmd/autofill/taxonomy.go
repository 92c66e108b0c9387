package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/neerajdhurandher/autofill-engine/internal/taxonomy"
)

func taxonomyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "taxonomy",
		Short: "List the field categories the classifier knows",
		RunE: func(_ *cobra.Command, _ []string) error {
			tax := taxonomy.Default()

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CATEGORY\tPRIORITY\tKEYWORDS\tSITES")
			for _, entry := range tax.All() {
				sites := make([]string, 0, len(entry.SiteSelectors))
				for site := range entry.SiteSelectors {
					sites = append(sites, site)
				}
				sort.Strings(sites)
				fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n",
					entry.Category, entry.Priority, len(entry.Keywords), strings.Join(sites, ","))
			}
			return tw.Flush()
		},
	}
}
