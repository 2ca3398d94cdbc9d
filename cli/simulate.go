package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"investsim/domain"
	"investsim/service"
)

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.AddCommand(simulateCDBCmd, simulateIPOCmd, simulateInflationCmd)

	for _, c := range []*cobra.Command{simulateCDBCmd, simulateIPOCmd, simulateInflationCmd} {
		addCDBFlags(c.Flags())
	}
	for _, c := range []*cobra.Command{simulateIPOCmd, simulateInflationCmd} {
		addIPOFlags(c.Flags())
	}
	simulateInflationCmd.Flags().Float64("inflation-rate", 0, "Annual inflation rate in percent (-50 to 50)")
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a simulation locally and print the result as JSON",
}

var simulateCDBCmd = &cobra.Command{
	Use:   "cdb",
	Short: "CDB with daily compounding and regressive income tax",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := cdbInputFromFlags(cmd.Flags())
		if err != nil {
			return err
		}
		result, err := service.CalculateCDBBasic(input)
		return printResult(cmd, result, err)
	},
}

var simulateIPOCmd = &cobra.Command{
	Use:   "cdb-ipo",
	Short: "CDB combined with an IPO position",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := ipoInputFromFlags(cmd.Flags())
		if err != nil {
			return err
		}
		result, err := service.CalculateCDBWithIPO(input)
		return printResult(cmd, result, err)
	},
}

var simulateInflationCmd = &cobra.Command{
	Use:   "cdb-ipo-inflation",
	Short: "CDB and IPO portfolio adjusted for inflation",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ipo, err := ipoInputFromFlags(cmd.Flags())
		if err != nil {
			return err
		}
		input := domain.CDBWithIPOInflationInput{
			CDBWithIPOInput: ipo,
			InflationRate:   optionalFloat(cmd.Flags(), "inflation-rate"),
		}
		result, err := service.CalculateCDBWithIPOInflation(input)
		return printResult(cmd, result, err)
	},
}

func addCDBFlags(fs *pflag.FlagSet) {
	fs.Float64("initial-amount", 0, "Amount invested in the CDB")
	fs.Float64("rate", 13.75, "Annual CDI rate in percent")
	fs.Float64("cdb-rate", 100, "Percentage of the CDI paid by the CDB")
	fs.Int("period", 0, "Investment period in days")
	fs.Float64("years", 0, "Investment period in years (instead of --period)")
	fs.Float64("months", 0, "Investment period in months (instead of --period)")
}

func addIPOFlags(fs *pflag.FlagSet) {
	fs.Float64("ipo-shares", 0, "Number of IPO shares")
	fs.Float64("ipo-price", 0, "IPO price per share")
	fs.Float64("ipo-growth-rate", 0, "Expected annual IPO growth in percent (>= -100)")
}

func cdbInputFromFlags(fs *pflag.FlagSet) (domain.CDBBasicInput, error) {
	amount, _ := fs.GetFloat64("initial-amount")
	rate, _ := fs.GetFloat64("rate")
	cdbRate, _ := fs.GetFloat64("cdb-rate")

	period, err := periodFromFlags(fs)
	if err != nil {
		return domain.CDBBasicInput{}, err
	}

	return domain.CDBBasicInput{
		InitialAmount: amount,
		Rate:          rate,
		Period:        period,
		CDBRate:       cdbRate,
	}, nil
}

func ipoInputFromFlags(fs *pflag.FlagSet) (domain.CDBWithIPOInput, error) {
	cdb, err := cdbInputFromFlags(fs)
	if err != nil {
		return domain.CDBWithIPOInput{}, err
	}
	shares, _ := fs.GetFloat64("ipo-shares")
	price, _ := fs.GetFloat64("ipo-price")

	return domain.CDBWithIPOInput{
		CDBBasicInput: cdb,
		IPOShares:     shares,
		IPOPrice:      price,
		IPOGrowthRate: optionalFloat(fs, "ipo-growth-rate"),
	}, nil
}

// periodFromFlags resolves the period from exactly one of --period, --years or --months.
func periodFromFlags(fs *pflag.FlagSet) (int, error) {
	set := 0
	for _, name := range []string{"period", "years", "months"} {
		if fs.Changed(name) {
			set++
		}
	}
	if set > 1 {
		return 0, errors.New("use only one of --period, --years or --months")
	}

	switch {
	case fs.Changed("years"):
		years, _ := fs.GetFloat64("years")
		return service.YearsToDays(years)
	case fs.Changed("months"):
		months, _ := fs.GetFloat64("months")
		return service.MonthsToDays(months)
	default:
		period, _ := fs.GetInt("period")
		return period, nil
	}
}

// optionalFloat returns nil when the flag was not given on the command line.
func optionalFloat(fs *pflag.FlagSet, name string) *float64 {
	if !fs.Changed(name) {
		return nil
	}
	v, _ := fs.GetFloat64(name)
	return &v
}

func printResult(cmd *cobra.Command, result any, err error) error {
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			for _, msg := range verr.Messages {
				fmt.Fprintln(cmd.ErrOrStderr(), msg)
			}
			return errors.New("invalid simulation input")
		}
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
