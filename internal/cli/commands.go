package cli

import (
	"os"

	"refcheck/internal/config"
	"refcheck/internal/errors"
	"refcheck/internal/verify"
)

// resolveOptions merges flags over the config file over built-in defaults.
// The returned Config carries the remaining settings (strict mode) that do
// not belong to the verification core.
func resolveOptions(opts *GlobalOptions) (verify.Options, *config.Config, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return verify.Options{}, nil, err
	}

	vopts := verify.Options{
		ResultsDir: cfg.ResultsDir,
		OutputsDir: cfg.OutputsDir,
		ResultExt:  cfg.ResultExtension,
		OutputExt:  cfg.OutputExtension,
		KeepGoing:  cfg.KeepGoing || opts.KeepGoing,
		Verbose:    opts.Verbose,
	}
	if opts.ResultsDir != "" {
		vopts.ResultsDir = opts.ResultsDir
	}
	if opts.OutputsDir != "" {
		vopts.OutputsDir = opts.OutputsDir
	}

	return vopts, cfg, nil
}

// loadConfig returns the config from --config, from refcheck.yml in the
// working directory, or the built-in defaults when neither exists.
func loadConfig(opts *GlobalOptions) (*config.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		if _, err := os.Stat(config.DefaultFileName); err != nil {
			return config.Default(), nil
		}
		path = config.DefaultFileName
	}

	cfg, warnings, err := config.LoadAndValidate(path)
	if err != nil {
		if _, ok := err.(*errors.CheckError); ok {
			return nil, err
		}
		return nil, errors.Configf("%v", err)
	}

	for _, w := range warnings {
		out.WarningSimple("%s", w)
	}
	return cfg, nil
}

// cmdCheck runs the full verification pass.
func cmdCheck(args []string, opts *GlobalOptions) int {
	if len(args) > 0 {
		out.ErrorPrefix("check takes no arguments")
		return errors.ExitConfigError
	}

	vopts, cfg, err := resolveOptions(opts)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	runner := &verify.Runner{Opts: vopts, Out: out}
	res, err := runner.Run()
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	if opts.Summary {
		printRunSummary(res)
	}

	if (opts.Strict || cfg.Strict) && res.Failed > 0 {
		return errors.ExitRuntimeError
	}
	return errors.ExitSuccess
}

// cmdList prints only the sorted identifier list.
func cmdList(args []string, opts *GlobalOptions) int {
	if len(args) > 0 {
		out.ErrorPrefix("list takes no arguments")
		return errors.ExitConfigError
	}

	vopts, _, err := resolveOptions(opts)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	ids := verify.Discover(vopts.ResultsDir)
	out.Println("%s", verify.FormatIDList(ids))
	return errors.ExitSuccess
}

// cmdConfig prints the effective configuration after merging flags,
// config file, and defaults.
func cmdConfig(args []string, opts *GlobalOptions) int {
	if len(args) > 0 {
		out.ErrorPrefix("config takes no arguments")
		return errors.ExitConfigError
	}

	vopts, cfg, err := resolveOptions(opts)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	out.Println("results_dir: %s", vopts.ResultsDir)
	out.Println("outputs_dir: %s", vopts.OutputsDir)
	out.Println("result_extension: %s", vopts.ResultExt)
	out.Println("output_extension: %s", vopts.OutputExt)
	out.Println("keep_going: %v", vopts.KeepGoing)
	out.Println("strict: %v", opts.Strict || cfg.Strict)
	return errors.ExitSuccess
}
