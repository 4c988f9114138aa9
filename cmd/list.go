package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [category]",
	Short: "List disabled effects, optionally for one category",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

var rawCmd = &cobra.Command{
	Use:   "raw",
	Short: "Print disabled effects as a JSON array",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(current.finder.DisabledEffectsRaw())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(rawCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	printList(cmd.OutOrStdout(), categoryArg(args), current.finder.DisabledEffects(categoryArg(args)))
	return nil
}

func categoryArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func printList(w io.Writer, category string, descriptions []string) {
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow, color.Bold).SprintFunc()

	scope := "in this profile"
	if category != "" {
		scope = fmt.Sprintf("in category %q", category)
	}
	if len(descriptions) == 0 {
		_, _ = fmt.Fprintln(w, green(fmt.Sprintf("No disabled effects %s.", scope)))
		return
	}

	_, _ = fmt.Fprintln(w, yellow(fmt.Sprintf("%d disabled effects %s:", len(descriptions), scope)))
	for _, d := range descriptions {
		_, _ = fmt.Fprintf(w, "  %s\n", d)
	}
}
