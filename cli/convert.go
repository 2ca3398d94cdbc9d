package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"investsim/service"
)

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.AddCommand(convertYearsCmd, convertMonthsCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a period to days",
}

var convertYearsCmd = &cobra.Command{
	Use:   "years N",
	Short: "Convert years to days (365-day years)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, args[0], service.YearsToDays)
	},
}

var convertMonthsCmd = &cobra.Command{
	Use:   "months N",
	Short: "Convert months to days (30-day months)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, args[0], service.MonthsToDays)
	},
}

func runConvert(cmd *cobra.Command, arg string, fn func(float64) (int, error)) error {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", arg)
	}
	days, err := fn(v)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), days)
	return nil
}
