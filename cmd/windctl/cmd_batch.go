package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"windpower-prediction-api/client"
	"windpower-prediction-api/models"
)

var batchFile string

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Submit a JSON file with a list of readings",
	RunE:  runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringVar(&batchFile, "file", "", "path to a JSON array of prediction requests")
	cobra.CheckErr(batchCmd.MarkFlagRequired("file"))
}

func runBatch(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(batchFile)
	if err != nil {
		return fmt.Errorf("read %s: %w", batchFile, err)
	}

	var reqs []models.PredictionRequest
	if err := json.Unmarshal(data, &reqs); err != nil {
		return fmt.Errorf("%s must contain a JSON array of prediction objects: %w", batchFile, err)
	}

	// Validate every item locally before any network call, aggregating all
	// violations across the file.
	var violations []string
	for i := range reqs {
		for _, name := range reqs[i].MissingFields() {
			violations = append(violations, fmt.Sprintf("item %d: %s is required", i, name))
		}
		for _, v := range reqs[i].ValidateRanges() {
			violations = append(violations, fmt.Sprintf("item %d: %s", i, v))
		}
	}
	if len(violations) > 0 {
		return errors.New(strings.Join(violations, "\n"))
	}

	resp, err := client.New(serverURL).PredictBatch(context.Background(), reqs)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			return fmt.Errorf("batch rejected: %s", apiErr.Message)
		}
		return fmt.Errorf("could not reach the prediction service: %w", err)
	}

	fmt.Printf("Predictions: %d\n", resp.Count)
	for i, p := range resp.Predictions {
		fmt.Printf("%3d  %.4f  %-6s %s\n", i, p, models.ClassifyPower(p), renderBar(p, 20))
	}
	return nil
}
