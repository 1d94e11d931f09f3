package runner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/projectdiscovery/apriori"
	"github.com/projectdiscovery/gologger"
	fileutil "github.com/projectdiscovery/utils/file"
)

// defaultConfigPath returns the location of the default mining profile
func defaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, fmt.Sprintf(".config/apriori/config_%v.yaml", version)), nil
}

// loadDefaultConfig uses the default profile as apriori.DefaultConfig,
// creating it on first run
func loadDefaultConfig() {
	cfgPath, err := defaultConfigPath()
	if err != nil {
		gologger.Verbose().Msgf("could not locate home directory: %v", err)
		return
	}
	if fileutil.FileExists(cfgPath) {
		// if it exists use that data as default
		cfg, err := apriori.NewConfig(cfgPath)
		if err != nil {
			gologger.Warning().Msgf("ignoring invalid default config %v: %v", cfgPath, err)
			return
		}
		apriori.DefaultConfig = *cfg
		return
	}
	if err := os.MkdirAll(filepath.Dir(cfgPath), 0700); err != nil {
		gologger.Error().Msgf("failed to create config dir got: %v", err)
		return
	}
	if err := apriori.GenerateSample(cfgPath); err != nil {
		gologger.Error().Msgf("failed to save default config to %v got: %v", cfgPath, err)
	}
}
