package main

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/adibhanna/hiitsessions/internal/interval"
)

var formatCmd = &cobra.Command{
	Use:   "format MILLISECONDS...",
	Short: "Print elapsed milliseconds as MM:SS:CC",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		ms, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return errors.Errorf("invalid milliseconds %q", arg)
		}
		if ms < 0 {
			return errors.Errorf("milliseconds must not be negative, got %d", ms)
		}
		fmt.Fprintln(cmd.OutOrStdout(), interval.FormatMillis(ms))
	}
	return nil
}
