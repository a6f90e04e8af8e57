// package main ...
package main

// import ...
import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"paepcke.de/bgpview"
	"paepcke.de/bgpview/apifetch"
)

// const shortcuts
const (
	// DEFAULTS  [convinient build time defaults]
	_APPNAME         = "bgpview"
	_DEFAULT_TIMEOUT = time.Duration(0)
)

// errNoCommand is returned when no subcommand was given
var errNoCommand = errors.New("no command given")

// options holds the global flags
type options struct {
	baseURL   string
	userAgent string
	timeout   time.Duration
	proxy     string
	debug     bool
	noColor   bool
}

// main ..
func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the cli for args and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	opts := &options{}
	root := newRootCmd(opts, stdout, stderr)
	if args == nil {
		args = []string{} // cobra falls back to os.Args on nil
	}
	root.SetArgs(args)
	cmd, err := root.ExecuteC()
	if err == nil {
		return 0
	}
	if cmd == nil {
		cmd = root
	}
	fmt.Fprint(stderr, cmd.UsageString())
	if !errors.Is(err, errNoCommand) {
		au := aurora.NewAurora(!opts.noColor && isTerminal(stderr))
		fmt.Fprintln(stderr, au.Red(err.Error()))
	}
	return 1
}

// newRootCmd ...
func newRootCmd(opts *options, stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   _APPNAME,
		Short: "bgpview.io CLI client",
		Long: `bgpview.io CLI client

Query prefixes, peers, upstreams, downstreams and internet exchanges of an ASN,
or the covering prefixes of an IP address. ASN queries may carry an AS prefix (AS15169).`,
		Example: `  bgpview asn -q AS15169
  bgpview prefixes -q 15169 --terse
  bgpview ix -q 3356 -t
  bgpview ip -q 8.8.8.8 -v`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return errNoCommand
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.baseURL, "base-url", apifetch.DefaultConfig().BaseURL, "api base url")
	flags.StringVar(&opts.userAgent, "user-agent", apifetch.DefaultConfig().UserAgent, "http user agent")
	flags.DurationVar(&opts.timeout, "timeout", _DEFAULT_TIMEOUT, "request timeout, 0 waits forever")
	flags.StringVar(&opts.proxy, "proxy", "", "outbound proxy url (default HTTPS_PROXY)")
	flags.BoolVar(&opts.debug, "debug", false, "debug log to stderr")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored error output")
	flags.MarkHidden("base-url")

	for _, kind := range bgpview.Kinds() {
		root.AddCommand(newKindCmd(kind, opts, stdout, stderr))
	}
	return root
}

// newKindCmd builds the subcommand of one query kind
func newKindCmd(kind bgpview.Kind, opts *options, stdout, stderr io.Writer) *cobra.Command {
	var (
		query   string
		verbose bool
		terse   bool
	)
	cmd := &cobra.Command{
		Use:   string(kind) + " --query <" + kind.QueryHelp() + ">",
		Short: kind.Help(),
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(opts.debug, stderr)
			defer logger.Sync()
			bgpview.SetLogger(logger)

			client, err := apifetch.New(apifetch.Config{
				BaseURL:   opts.baseURL,
				UserAgent: opts.userAgent,
				Timeout:   opts.timeout,
				Proxy:     opts.proxy,
			}, logger)
			if err != nil {
				return err
			}
			proj, err := bgpview.Lookup(cmd.Context(), client, kind, query)
			if err != nil {
				return err
			}
			return bgpview.Render(stdout, proj, bgpview.SelectMode(verbose, terse))
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&query, "query", "q", "", kind.QueryHelp())
	flags.BoolVarP(&verbose, "verbose", "v", false, "show all data")
	flags.BoolVarP(&terse, "terse", "t", false, "show terse data")
	cmd.MarkFlagRequired("query")
	return cmd
}

//
// LITTLE GENERIC HELPER SECTION
//

// newLogger returns a console logger on w when debug is set, a no-op logger otherwise
func newLogger(debug bool, w io.Writer) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), zap.DebugLevel))
}

// isTerminal ...
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
