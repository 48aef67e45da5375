package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// showSubcommand prints the crash log.
func showSubcommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the crash log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.classifier()
			if err != nil {
				return err
			}
			content, err := c.CrashLog().Read()
			if err != nil {
				return err
			}
			if content == "" {
				a.logger.Info("crash log is empty", "path", c.CrashLog().Path())
				return nil
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), content)
			return err
		},
	}
}

// clearSubcommand deletes the crash log.
func clearSubcommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the crash log",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			c, err := a.classifier()
			if err != nil {
				return err
			}
			if err := c.CrashLog().Clear(); err != nil {
				return err
			}
			a.logger.Info("crash log cleared", "path", c.CrashLog().Path())
			return nil
		},
	}
}
