//Command natal computes a tropical birth chart and prints it as JSON.
//
//	natal chart --date 1989-10-07 --time 06:00 --location "Smithtown NY" --missing-time reject
//
//Planetary longitudes come from the JPL Horizons service, so chart needs
//network access. Zone data for historical offsets is compiled in.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	natal "github.com/juliexu77/aster-original-starry-theme-sub000"
)

var (
	//Global flags
	verbose bool

	//chart flags
	birthDate     string
	birthTime     string
	locationText  string
	missingTime   string
	gazetteerPath string
	timeout       time.Duration

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "natal",
	Short: "natal - tropical birth chart calculator",
	Long: `natal computes tropical natal charts: sign, degree and whole-sign house
for the Sun, the Moon, the planets and Chiron, plus the ascendant.

Location text resolves against a built-in gazetteer; the birth time converts
to UTC with the offset that was historically in force at that place on that
date. Planetary positions come from the JPL Horizons ephemeris service.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		return nil
	},
}

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Compute a birth chart and print it as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		defer func() { _ = logger.Sync() }()

		policy, err := parsePolicy(missingTime)
		if err != nil {
			return err
		}

		opts := natal.Options{
			Ephemeris:   natal.NewHorizonsClient(),
			MissingTime: policy,
		}
		if gazetteerPath != "" {
			f, err := os.Open(gazetteerPath)
			if err != nil {
				return fmt.Errorf("opening gazetteer: %w", err)
			}
			defer f.Close()
			if opts.Gazetteer, err = natal.LoadGazetteer(f); err != nil {
				return err
			}
			logger.Debug("loaded custom gazetteer",
				zap.String("path", gazetteerPath),
				zap.Int("places", opts.Gazetteer.NumPlaces()))
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		rec := natal.BirthRecord{Date: birthDate, LocalTime: birthTime, LocationText: locationText}
		logger.Info("computing chart",
			zap.String("date", rec.Date),
			zap.String("time", rec.LocalTime),
			zap.String("location", rec.LocationText))

		chart, err := natal.Assemble(ctx, rec, opts)
		if err != nil {
			logger.Error("chart computation failed", zap.Error(err))
			return err
		}
		if chart.Ascendant == nil {
			logger.Warn("ascendant unavailable, houses omitted")
		}

		out, err := json.MarshalIndent(chart, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func parsePolicy(s string) (natal.MissingTimePolicy, error) {
	switch s {
	case "reject":
		return natal.MissingTimeReject, nil
	case "omit":
		return natal.MissingTimeOmit, nil
	case "noon":
		return natal.MissingTimeAssumeNoon, nil
	default:
		return 0, fmt.Errorf("unknown missing-time policy %q (want reject, omit or noon)", s)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	chartCmd.Flags().StringVar(&birthDate, "date", "", "birth date, YYYY-MM-DD (required)")
	chartCmd.Flags().StringVar(&birthTime, "time", "", "local birth time, 24h HH:MM")
	chartCmd.Flags().StringVar(&locationText, "location", "", "free-form birth location")
	chartCmd.Flags().StringVar(&missingTime, "missing-time", "", "policy when --time is absent: reject, omit or noon (required)")
	chartCmd.Flags().StringVar(&gazetteerPath, "gazetteer", "", "path to a custom gazetteer YAML")
	chartCmd.Flags().DurationVar(&timeout, "timeout", 60*time.Second, "overall deadline for the ephemeris calls")
	_ = chartCmd.MarkFlagRequired("date")
	_ = chartCmd.MarkFlagRequired("missing-time")

	rootCmd.AddCommand(chartCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
