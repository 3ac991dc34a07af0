package main

import (
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	logging "github.com/op/go-logging"
)

var log = logging.MustGetLogger("main")

var stderrLogFormat = logging.MustStringFormatter(
	`%{color:reset}%{color}%{time:15:04:05.000} [%{module}] [%{level}] %{message}`,
)

// out receives command output; tests replace it.
var out io.Writer = os.Stdout

type Options struct {
	LogLevel string `short:"l" long:"loglevel" default:"warning" description:"set the logging level [debug, info, notice, warning, error, critical]"`
}

var opts Options

func newParser() *flags.Parser {
	parser := flags.NewParser(&opts, flags.Default)
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		if err := setupLogging(opts.LogLevel); err != nil {
			return err
		}
		return cmd.Execute(args)
	}

	parser.AddCommand("pubkey",
		"derive a public key",
		"The pubkey command prints the SEC encoding, address and WIF for a secret",
		&PubKey{})
	parser.AddCommand("sign",
		"sign a message",
		"The sign command signs a message, or a hash given with --z, with a deterministic nonce",
		&Sign{})
	parser.AddCommand("verify",
		"verify a signature",
		"The verify command checks a DER signature against a public key and exits with status 1 when it is invalid",
		&Verify{})
	parser.AddCommand("batch",
		"verify a file of signatures",
		"The batch command verifies every signature in a JSON or CSV file in parallel",
		&Batch{})
	return parser
}

func setupLogging(level string) error {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		return err
	}
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, stderrLogFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(lvl, "")
	logging.SetBackend(leveled)
	return nil
}

func main() {
	if _, err := newParser().Parse(); err != nil {
		os.Exit(1)
	}
}
