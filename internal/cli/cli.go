package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/gridlabelgo/internal/app"
	"github.com/vk/gridlabelgo/internal/export"
	"github.com/vk/gridlabelgo/internal/qr"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("gridlabelgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
GridLabelGo - Printable vector labels for parts storage bins.

Usage:
  gridlabelgo [options] [PARTS_PATH]

Arguments:
  PARTS_PATH
    Path to a single .csv/.tsv parts file or a directory containing them.

Options:
`)
		flagSet.PrintDefaults()
	}

	partsFlag := flagSet.String("parts", "", "Path to the parts file or directory.")
	pFlag := flagSet.String("p", "", "Path to the parts file or directory (shorthand).")
	templateFlag := flagSet.String("template", "", "Path to a custom label template. Empty uses the built-in template.")
	profileFlag := flagSet.String("profile", "", "Path to an HCL label profile. Empty uses the compiled defaults.")
	outputDirFlag := flagSet.String("output-dir", "labels", "Directory the exported labels are written to.")
	formatFlag := flagSet.String("format", "png", "Output format. Options: 'png', 'pdf' or 'svg'.")
	qrTypeFlag := flagSet.String("qr-type", "compact", "Code variant to aim for. Options: 'compact' or 'standard'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	quietFlag := flagSet.Bool("q", false, "Quiet mode, log errors only. Overrides -log-level.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *partsFlag != "" {
		path = *partsFlag
	} else if *pFlag != "" {
		path = *pFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Parts path determined.", "path", path)

	if path == "" {
		slog.Debug("No parts path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	format, err := export.ParseFormat(strings.ToLower(*formatFlag))
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	qrMode, err := qr.ParseMode(strings.ToLower(*qrTypeFlag))
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	logFormat, err := app.ParseLogFormat(*logFormatFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	logLevel, err := app.ParseLogLevel(*logLevelFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if *quietFlag {
		logLevel = slog.LevelError
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		PartsPath:    path,
		TemplatePath: *templateFlag,
		ProfilePath:  *profileFlag,
		OutputDir:    *outputDirFlag,
		Format:       format,
		QRMode:       qrMode,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
