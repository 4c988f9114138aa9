package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// effectsSelector matches every effect in a store, nested lists included.
const effectsSelector = "$..effects.list[*]"

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List the stores that are scanned, in scan order",
	Long: `Lists every store the finder scans, in scan order, with whether it could
be read and how many effects it holds.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		red := color.New(color.FgRed).SprintFunc()
		gray := color.New(color.FgHiBlack).SprintFunc()

		_, _ = fmt.Fprintf(out, "Profile: %s\n", current.opener.Root())
		for _, s := range current.finder.Sources() {
			var status string
			doc, err := current.opener.Open(s.Store)
			switch {
			case errors.Is(err, fs.ErrNotExist):
				status = red("missing")
			case err != nil:
				status = red(fmt.Sprintf("unreadable: %v", err))
			default:
				effects, qerr := doc.Query(effectsSelector)
				if qerr != nil {
					return qerr
				}
				status = gray(fmt.Sprintf("ok, effects: %d", len(effects)))
			}
			_, _ = fmt.Fprintf(out, "  %-18s %-20s %-34s %s\n", s.Key, s.Name, s.Store, status)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}
