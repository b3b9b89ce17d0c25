// Package cli implements the portion command-line interface.
//
// # Overview
//
// portion scales ingredient quantities to a new number of servings. It reads
// lines such as "1 1/2 dl mjölk" or "2 cups flour", normalizes the leading
// amount and writes the rescaled lines. Lines it cannot read are returned
// unchanged.
//
// # Commands
//
// scale - Scale lines or a recipe document:
//
//	portion scale --from 4 --to 6 [--locale sv] "2 dl mjölk" "3 ägg"
//	portion scale -f recipe.yaml --to 8 [--shopping-list]
//
// Lines are read from stdin when none are given as arguments. A recipe may
// be a local file or an HTTP/HTTPS URL, in YAML or JSON; its own servings
// are the starting point. --shopping-list flattens the scaled recipe into
// plain text items.
//
// parse - Show how lines are read without scaling them:
//
//	portion parse "ca 1-2 dl mjölk" --format table
//
// # Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//	--locale, -l   Locales used to read lines, e.g. en or en,sv (default: all)
//	--log-level    Log level: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Environment Variables
//
//	PORTION_LOG_LEVEL  Default for --log-level
//	PORTION_LOCALE     Default for --locale
//
// # Exit Codes
//
//	0  Success
//	1  Invalid arguments or execution failure
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/mchmarny/portion/pkg/cli.version=1.0.0'"
package cli
