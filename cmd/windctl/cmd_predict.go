package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"windpower-prediction-api/client"
	"windpower-prediction-api/models"
)

var fieldUsage = map[string]string{
	"Location":   "location identifier (>=1)",
	"Temp_2m":    "air temperature at 2m, °C",
	"RelHum_2m":  "relative humidity at 2m, percent (0-100)",
	"DP_2m":      "dew point at 2m, °C",
	"WS_10m":     "wind speed at 10m, m/s",
	"WS_100m":    "wind speed at 100m, m/s",
	"WD_10m":     "wind direction at 10m, degrees (0-360)",
	"WD_100m":    "wind direction at 100m, degrees (0-360)",
	"WG_10m":     "wind gust at 10m, m/s",
	"hour":       "hour of day (0-23)",
	"day":        "day of month (1-31)",
	"month":      "month (1-12)",
	"dayofweek":  "day of week, Monday=0 (0-6)",
	"is_weekend": "1 if Saturday/Sunday, else 0",
}

// Inputs stay strings until ParseForm runs, so unparseable text surfaces as a
// validation message instead of a flag-parse failure.
var predictInputs = map[string]*string{}

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Submit one reading and print the predicted power output",
	RunE:  runPredict,
}

func init() {
	rootCmd.AddCommand(predictCmd)
	for _, name := range client.FieldNames {
		predictInputs[name] = predictCmd.Flags().String(flagName(name), "", fieldUsage[name])
	}
}

// flagName maps a field name to its CLI flag: Temp_2m → temp-2m.
func flagName(field string) string {
	return strings.ReplaceAll(strings.ToLower(field), "_", "-")
}

func runPredict(cmd *cobra.Command, args []string) error {
	raw := make(map[string]string, len(predictInputs))
	for name, value := range predictInputs {
		raw[name] = *value
	}

	// Validation failures abort before any network call.
	req, violations := client.ParseForm(raw)
	if len(violations) > 0 {
		return errors.New(strings.Join(violations, "\n"))
	}

	resp, err := client.New(serverURL).Predict(context.Background(), *req)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			return fmt.Errorf("prediction rejected: %s", apiErr.Message)
		}
		return fmt.Errorf("could not reach the prediction service: %w", err)
	}

	printPrediction(resp.Prediction)
	return nil
}

func printPrediction(p float64) {
	fmt.Printf("Prediction: %.4f (%.1f%% of capacity)\n", p, p*100)
	fmt.Printf("Status:     %s\n", models.ClassifyPower(p))
	fmt.Printf("%s %.1f%%\n", renderBar(p, 30), p*100)
}

// renderBar draws a fixed-width percentage bar for a normalized value.
func renderBar(p float64, width int) string {
	p = math.Max(0.0, math.Min(1.0, p))
	filled := int(math.Round(p * float64(width)))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
