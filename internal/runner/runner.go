package runner

import (
	"io"
	"os"

	"github.com/projectdiscovery/apriori"
	"github.com/projectdiscovery/gologger"
)

// Runner reads the transactions and writes mined itemsets
type Runner struct {
	options *Options
	miner   *apriori.Miner
}

// New loads the input and prepares the miner
func New(options *Options) (*Runner, error) {
	dataset, err := readInput(options)
	if err != nil {
		return nil, err
	}
	miner, err := apriori.New(&apriori.Options{
		Dataset:      dataset,
		Separator:    options.Separator,
		MinSupport:   options.MinSupport,
		MaxLevel:     options.MaxLevel,
		Counter:      options.Counter,
		DisablePrune: options.DisablePrune,
		Format:       options.Format,
		Template:     options.Template,
	})
	if err != nil {
		return nil, err
	}
	gologger.Verbose().Msgf("Mining with min-support %v using %v counter", miner.Options.MinSupport, miner.Options.Counter)
	return &Runner{options: options, miner: miner}, nil
}

// Run mines all levels and writes them to the configured output
func (r *Runner) Run() error {
	output, err := getOutputWriter(r.options.Output)
	if err != nil {
		return err
	}
	defer closeOutput(output, r.options.Output)
	return r.miner.ExecuteWithWriter(output)
}

// readInput encodes transactions from the input file or stdin
func readInput(options *Options) (*apriori.Dataset, error) {
	separator := options.Separator
	if separator == "" {
		separator = apriori.DefaultConfig.Separator
	}
	readOpts := &apriori.ReadOptions{Separator: separator}
	if options.Input != "" {
		return apriori.ReadTransactionsFile(options.Input, readOpts)
	}
	return apriori.ReadTransactions(os.Stdin, readOpts)
}

// getOutputWriter returns the appropriate output writer
func getOutputWriter(outputPath string) (io.Writer, error) {
	if outputPath != "" {
		return os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	}
	return os.Stdout, nil
}

// closeOutput closes the output writer if it's a file
func closeOutput(output io.Writer, outputPath string) {
	if outputPath != "" {
		if closer, ok := output.(io.Closer); ok {
			closer.Close()
		}
	}
}
