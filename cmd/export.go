package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/TheStaticMage/firebot-disabled-effect-finder/internal/export"
	"github.com/TheStaticMage/firebot-disabled-effect-finder/internal/finder"
)

var exportCmd = &cobra.Command{
	Use:   "export [output.db] [category]",
	Short: "Write disabled effects to a SQLite database",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		output := args[0]
		category := categoryArg(args[1:])

		var selected []finder.DisabledEffect
		for _, d := range current.finder.FindDisabled() {
			if d.Matches(category) {
				selected = append(selected, d)
			}
		}

		_ = os.Remove(output) // Overwrite
		writer, err := export.NewSQLiteWriter(output)
		if err != nil {
			return err
		}
		defer func() { _ = writer.Close() }()

		if err := writer.Write(selected); err != nil {
			return fmt.Errorf("export to %s: %w", output, err)
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d disabled effects to %s\n", len(selected), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
