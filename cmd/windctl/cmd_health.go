package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"windpower-prediction-api/client"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check service and model status",
	RunE:  runHealth,
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show metadata of the loaded model",
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(infoCmd)
}

func runHealth(cmd *cobra.Command, args []string) error {
	health, err := client.New(serverURL).Health(context.Background())
	if err != nil {
		return fmt.Errorf("could not reach the prediction service: %w", err)
	}

	fmt.Printf("Status:       %s\n", health.Status)
	fmt.Printf("Model loaded: %t\n", health.ModelLoaded)
	fmt.Printf("Version:      %s\n", health.Version)
	fmt.Printf("Timestamp:    %s\n", health.Timestamp)
	return nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	info, err := client.New(serverURL).ModelInfo(context.Background())
	if err != nil {
		return fmt.Errorf("could not fetch model info: %w", err)
	}

	fmt.Printf("Model:            %s\n", info.ModelName)
	fmt.Printf("Algorithm:        %s\n", info.Algorithm)
	fmt.Printf("Version:          %s\n", info.Version)
	fmt.Printf("Estimators:       %d\n", info.NEstimators)
	fmt.Printf("Input features:   %d\n", info.InputFeatures)
	fmt.Printf("Training samples: %d\n", info.TrainingSamples)
	fmt.Printf("R2:               %.4f\n", info.R2Score)
	fmt.Printf("MAE:              %.4f\n", info.MAE)
	fmt.Printf("RMSE:             %.4f\n", info.RMSE)
	fmt.Printf("Output:           %s\n", info.OutputType)
	return nil
}
