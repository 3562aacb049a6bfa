// Package cli provides command-line interface functionality for refcheck.
package cli

import (
	"fmt"
	"strings"

	"github.com/pkg/profile"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"refcheck/internal/errors"
	"refcheck/internal/output"
)

// Version is set at build time.
var Version = "dev"

var out = output.New()

// Run executes the CLI with the given arguments and returns an exit code.
// A bare invocation runs the default check command against ./result and
// ./output, so the tool stays usable with no arguments at all.
func Run(args []string) int {
	if len(args) > 0 {
		switch args[0] {
		case "-h", "--help", "help":
			printUsage()
			return errors.ExitSuccess
		case "--version", "version":
			out.Println("refcheck %s", Version)
			return errors.ExitSuccess
		}
	}

	opts, remaining, err := parseGlobalFlags(args)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}

	out.SetQuiet(opts.Quiet)
	if opts.NoColor {
		out.SetColor(false)
	}

	if opts.Profile {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	cmd := "check"
	var cmdArgs []string
	if len(remaining) > 0 {
		cmd = remaining[0]
		cmdArgs = remaining[1:]
	}

	switch cmd {
	case "check":
		return cmdCheck(cmdArgs, opts)
	case "list":
		return cmdList(cmdArgs, opts)
	case "config":
		return cmdConfig(cmdArgs, opts)
	default:
		out.ErrorPrefix("unknown command %q", cmd)
		out.Hint("run 'refcheck help' for usage")
		return errors.ExitConfigError
	}
}

// GlobalOptions holds parsed global flags.
type GlobalOptions struct {
	ResultsDir string
	OutputsDir string
	ConfigPath string
	KeepGoing  bool
	Strict     bool
	Summary    bool
	Quiet      bool
	NoColor    bool
	Verbose    bool
	Profile    bool
}

// parseGlobalFlags manually parses global flags from arguments.
// Flags may appear on either side of the command word, in both
// "--flag value" and "--flag=value" forms.
func parseGlobalFlags(args []string) (*GlobalOptions, []string, error) {
	opts := &GlobalOptions{}
	var remaining []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, value, hasValue := strings.Cut(arg, "=")

		switch name {
		case "--results", "--outputs", "--config":
			if !hasValue {
				if i+1 >= len(args) {
					return nil, nil, fmt.Errorf("%s requires a value", name)
				}
				i++
				value = args[i]
			}
			if value == "" {
				return nil, nil, fmt.Errorf("%s requires a value", name)
			}
			switch name {
			case "--results":
				opts.ResultsDir = value
			case "--outputs":
				opts.OutputsDir = value
			case "--config":
				opts.ConfigPath = value
			}

		case "--keep-going", "--strict", "--summary", "--quiet", "--no-color", "--verbose", "--profile":
			if hasValue {
				return nil, nil, fmt.Errorf("%s does not take a value", name)
			}
			switch name {
			case "--keep-going":
				opts.KeepGoing = true
			case "--strict":
				opts.Strict = true
			case "--summary":
				opts.Summary = true
			case "--quiet":
				opts.Quiet = true
			case "--no-color":
				opts.NoColor = true
			case "--verbose":
				opts.Verbose = true
			case "--profile":
				opts.Profile = true
			}

		default:
			if strings.HasPrefix(arg, "-") {
				return nil, nil, fmt.Errorf("unknown flag: %s", arg)
			}
			remaining = append(remaining, arg)
		}
	}

	return opts, remaining, nil
}

func printUsage() {
	out.HelpTitle("refcheck - verify produced test outputs against reference results")

	out.HelpSection("Usage:")
	out.HelpUsage("refcheck [command] [flags]")

	out.HelpSection("Commands:")
	const cmdWidth = 8
	out.HelpCommand("check", "Compare every discovered case (default)", cmdWidth)
	out.HelpCommand("list", "Print the sorted identifier list", cmdWidth)
	out.HelpCommand("config", "Print the effective configuration", cmdWidth)
	out.HelpCommand("version", "Print the refcheck version", cmdWidth)
	out.HelpCommand("help", "Show this help", cmdWidth)

	out.HelpSection("Flags:")
	const flagWidth = 17
	out.HelpFlag("--results <dir>", "Results directory (default ./result)", flagWidth)
	out.HelpFlag("--outputs <dir>", "Outputs directory (default ./output)", flagWidth)
	out.HelpFlag("--config <file>", "Config file (default refcheck.yml if present)", flagWidth)
	out.HelpFlag("--keep-going", "Report unreadable outputs as failed instead of aborting", flagWidth)
	out.HelpFlag("--strict", "Exit non-zero when any case fails", flagWidth)
	out.HelpFlag("--summary", "Print a summary after the verdict lines", flagWidth)
	out.HelpFlag("--verbose", "Describe the first difference of each failed case", flagWidth)
	out.HelpFlag("--quiet", "Suppress diagnostics on stderr", flagWidth)
	out.HelpFlag("--no-color", "Disable colored output", flagWidth)
	out.HelpFlag("--profile", "Write a CPU profile for the run", flagWidth)

	out.HelpSection("Examples:")
	titleCase := cases.Title(language.English)
	for _, cmd := range []string{"check", "list"} {
		out.HelpExample(fmt.Sprintf("refcheck %s --results golden --outputs actual", cmd),
			fmt.Sprintf("%s custom directories", titleCase.String(cmd)))
	}
	out.HelpExample("refcheck --strict --summary", "Gate CI on every case passing")
	out.Println("")
}
