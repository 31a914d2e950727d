package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrHelp is returned when --help or -h was given. The caller prints Usage
// and exits successfully.
var ErrHelp = errors.New("help requested")

type CommandLine struct {
	EnvFile  string
	LogLevel string
}

func ProcessCommandLineArgs(args []string) (CommandLine, error) {
	var cl CommandLine

	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			return cl, ErrHelp
		} else if value, ok := strings.CutPrefix(arg, "--env-file="); ok {
			cl.EnvFile = value
		} else if value, ok := strings.CutPrefix(arg, "--log-level="); ok {
			cl.LogLevel = value
		} else {
			return cl, errors.Errorf("unrecognized option: %s", arg)
		}
	}

	return cl, nil
}

func Usage(w io.Writer) {
	fmt.Fprintln(w, "\nOptions")
	fmt.Fprintln(w, "\t--env-file=<path>")
	fmt.Fprintln(w, "\t\tRead environment settings from a dotenv file")
	fmt.Fprintln(w, "\t--log-level=<level>")
	fmt.Fprintln(w, "\t\tOne of trace, debug, info, warning, error")
	fmt.Fprintln(w, "\nEnvironment")
	for _, v := range environment {
		fmt.Fprintf(w, "\t%s\n\t\t%s\n", v.name, v.help)
	}
}
