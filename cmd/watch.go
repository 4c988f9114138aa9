package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/TheStaticMage/firebot-disabled-effect-finder/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [category]",
	Short: "Print disabled effects and again whenever a store changes",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		category := categoryArg(args)
		cyan := color.New(color.FgCyan).SprintFunc()

		printList(out, category, current.finder.DisabledEffects(category))

		var stores []string
		for _, s := range current.finder.Sources() {
			stores = append(stores, s.Store)
		}
		w, err := watch.New(current.cfg.Profile(), stores, func(changed []string) {
			current.invalidate(changed)
			_, _ = fmt.Fprintln(out, cyan(fmt.Sprintf("Changed: %s", strings.Join(changed, ", "))))
			printList(out, category, current.finder.DisabledEffects(category))
		}, current.logger.Sugar())
		if err != nil {
			return fmt.Errorf("start watcher: %w", err)
		}
		if err := w.Start(ctx); err != nil {
			return err
		}
		defer w.Stop()

		<-ctx.Done()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
