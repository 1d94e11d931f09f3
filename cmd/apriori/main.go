package main

import (
	"github.com/projectdiscovery/apriori/internal/runner"
	"github.com/projectdiscovery/gologger"
)

func main() {
	cliOpts := runner.ParseFlags()

	r, err := runner.New(cliOpts)
	if err != nil {
		gologger.Fatal().Msgf("could not prepare mining: %v", err)
	}
	if err := r.Run(); err != nil {
		gologger.Fatal().Msgf("mining failed: %v", err)
	}
}
