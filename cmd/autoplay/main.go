package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"stocksim/cmd/autoplay/runner"
)

func main() {
	days := flag.Int("days", 14, "Number of trading days to simulate")
	seed := flag.Int64("seed", 0, "RNG seed, 0 for time-based")
	cash := flag.String("cash", "10000", "Starting cash")
	service := flag.Float64("service", 0.95, "Target service level for the auto policy")
	flag.Parse()

	startingCash, err := decimal.NewFromString(*cash)
	if err != nil || !startingCash.IsPositive() {
		fmt.Fprintf(os.Stderr, "invalid -cash value %q\n", *cash)
		os.Exit(1)
	}

	result, err := runner.Run(runner.Config{
		Days:         *days,
		Seed:         *seed,
		StartingCash: startingCash,
		ServiceLevel: *service,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "autoplay failed: %v\n", err)
		os.Exit(1)
	}

	out, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(out))
}
