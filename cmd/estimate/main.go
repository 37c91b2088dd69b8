// Command estimate prices a move offline with the same engine the API uses.
//
//	estimate -input move.json [-catalog rules.yaml] [-actor cli]
//
// Without -catalog the embedded default catalog is used. The EstimateResult
// is printed as JSON on stdout; its hashes match what the API would store for
// the same input and catalog version.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"moving_pricing/internal/domain/entities"
	"moving_pricing/internal/domain/pricing"
	"moving_pricing/internal/infrastructure/catalog"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("estimate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	inputPath := fs.String("input", "", "path to the estimate input JSON (- for stdin)")
	catalogPath := fs.String("catalog", "", "path to a YAML or JSON rule catalog (default: embedded)")
	actor := fs.String("actor", "cli", "actor recorded as calculatedBy")
	validateOnly := fs.Bool("validate", false, "only validate the input")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inputPath == "" {
		fs.Usage()
		return errors.New("-input is required")
	}

	input, err := readInput(*inputPath)
	if err != nil {
		return err
	}

	estimator := pricing.NewEstimator()
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")

	if *validateOnly {
		return enc.Encode(estimator.ValidateInput(input))
	}

	c, err := catalog.NewFileSource(*catalogPath).Load(context.Background())
	if err != nil {
		return err
	}
	if err := pricing.ValidateCatalog(c); err != nil {
		return err
	}

	result, err := estimator.Calculate(input, &c, *actor)
	var verr *pricing.ValidationError
	if errors.As(err, &verr) {
		_ = enc.Encode(verr.Outcome)
		return errors.New("input rejected")
	}
	if err != nil {
		return err
	}
	return enc.Encode(result)
}

func readInput(path string) (entities.EstimateInput, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return entities.EstimateInput{}, fmt.Errorf("read input: %w", err)
	}
	var input entities.EstimateInput
	if err := json.Unmarshal(data, &input); err != nil {
		return entities.EstimateInput{}, fmt.Errorf("decode input: %w", err)
	}
	return input, nil
}
