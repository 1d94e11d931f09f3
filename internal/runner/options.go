package runner

import (
	"os"
	"strconv"
	"strings"

	"github.com/projectdiscovery/apriori"
	"github.com/projectdiscovery/apriori/mining"
	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	fileutil "github.com/projectdiscovery/utils/file"
	updateutils "github.com/projectdiscovery/utils/update"
)

type Options struct {
	Input              string // transactions file (plain or .gz), stdin if empty
	Separator          string
	MinSupport         float64
	MaxLevel           int
	Counter            string
	DisablePrune       bool
	Output             string
	Format             string
	Template           string
	Config             string
	MiningConfig       string
	DisableUpdateCheck bool
	Verbose            bool
	Silent             bool
}

func ParseFlags() *Options {
	var minSupport string
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Frequent itemset miner for transactional data using the Apriori algorithm.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Input, "input", "i", "", "transactions file, one transaction per line (stdin, plain or .gz)"),
		flagSet.StringVarP(&opts.Separator, "separator", "sep", "", "item separator within a transaction (default ',')"),
	)

	flagSet.CreateGroup("mining", "Mining",
		flagSet.StringVarP(&minSupport, "min-support", "ms", "", "minimum support as fraction or percentage (0.05, 5%) (default 0.05)"),
		flagSet.IntVarP(&opts.MaxLevel, "max-level", "ml", 0, "maximum itemset size to mine (default 0, no limit)"),
		flagSet.StringVarP(&opts.Counter, "counter", "c", "", "support counter to use ("+strings.Join(mining.Counters, ",")+")"),
		flagSet.BoolVarP(&opts.DisablePrune, "no-prune", "np", false, "disable subset pruning of candidate itemsets"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Output, "output", "o", "", "output file to write frequent itemsets"),
		flagSet.StringVarP(&opts.Format, "format", "f", "", "output format ("+strings.Join(apriori.Formats, ",")+")"),
		flagSet.StringVarP(&opts.Template, "template", "t", "", "output template per itemset ({{level}},{{items}},{{size}},{{count}},{{support}})"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display apriori version"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", `apriori cli config file (default '$HOME/.config/apriori/config.yaml')`),
		flagSet.StringVarP(&opts.MiningConfig, "mining-config", "mc", "", `mining profile file (default '$HOME/.config/apriori/config_`+version+`.yaml')`),
	)

	flagSet.CreateGroup("update", "Update",
		flagSet.CallbackVarP(GetUpdateCallback(), "update", "up", "update apriori to latest version"),
		flagSet.BoolVarP(&opts.DisableUpdateCheck, "disable-update-check", "duc", false, "disable automatic apriori update check"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Config != "" {
		if err := flagSet.MergeConfigFile(opts.Config); err != nil {
			gologger.Error().Msgf("failed to read config file got %v", err)
		}
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	if !opts.DisableUpdateCheck {
		latestVersion, err := updateutils.GetVersionCheckCallback("apriori")()
		if err != nil {
			if opts.Verbose {
				gologger.Error().Msgf("apriori version check failed: %v", err.Error())
			}
		} else {
			gologger.Info().Msgf("Current apriori version %v %v", version, updateutils.GetVersionDescription(version, latestVersion))
		}
	}

	loadDefaultConfig()
	if opts.MiningConfig != "" {
		cfg, err := apriori.NewConfig(opts.MiningConfig)
		if err != nil {
			gologger.Fatal().Msgf("failed to read %v file got: %v", opts.MiningConfig, err)
		}
		apriori.DefaultConfig = *cfg
	}

	if minSupport != "" {
		value, err := parseMinSupport(minSupport)
		if err != nil {
			gologger.Fatal().Msgf("Could not parse min-support: %s\n", err)
		}
		opts.MinSupport = value
	}

	if opts.Input == "" && !fileutil.HasStdin() {
		gologger.Fatal().Msgf("apriori: no input found")
	}
	return opts
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}

// parseMinSupport accepts a fraction (0.05) or a percentage (5%)
func parseMinSupport(value string) (float64, error) {
	value = strings.TrimSpace(value)
	percent := strings.HasSuffix(value, "%")
	value = strings.TrimSuffix(value, "%")
	support, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	if percent {
		support /= 100
	}
	if err := mining.ValidateThreshold(support); err != nil {
		return 0, err
	}
	return support, nil
}
