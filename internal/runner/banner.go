package runner

import (
	"github.com/projectdiscovery/gologger"
	updateutils "github.com/projectdiscovery/utils/update"
)

var banner = `
                _            _ 
  __ _ _ __  _ __(_) ___  _ __(_)
 / _' | '_ \| '__| |/ _ \| '__| |
| (_| | |_) | |  | | (_) | |  | |
 \__,_| .__/|_|  |_|\___/|_|  |_|
      |_|                        
`

var version = "v0.0.1"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tprojectdiscovery.io\n\n")
}

// GetUpdateCallback returns a callback function that updates apriori
func GetUpdateCallback() func() {
	return func() {
		showBanner()
		updateutils.GetUpdateToolCallback("apriori", version)()
	}
}
