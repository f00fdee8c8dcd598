// ABOUTME: CLI flag parsing using stdlib flag package, one FlagSet per subcommand
// ABOUTME: Supports shell, connect, serve, themes, config and version

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

// errUsage marks a command line that could not be parsed; usage is already printed.
var errUsage = errors.New("usage")

const usage = `usage: lunaterm <command> [flags]

commands:
  shell     run a local shell in the terminal (default)
  connect   attach to a lunaterm server over websocket
  serve     serve local shells to websocket clients
  themes    list the available themes
  config    get or set persisted settings
  version   print the version
`

type cliArgs struct {
	command string

	verbose  bool
	logFile  string
	control  bool
	socket   string
	trzsz    bool
	zmodem   bool
	download string
	words    bool

	shell string
	args  []string

	url    string
	header []string

	addr       string
	anyOrigin  bool
	maxClients int

	preview bool
	pick    bool
}

// parseArgs splits argv (without the program name) into a command and its
// flags. An empty argv or a leading flag selects shell.
func parseArgs(argv []string, stderr io.Writer) (cliArgs, error) {
	args := cliArgs{command: "shell"}
	if len(argv) > 0 && !strings.HasPrefix(argv[0], "-") {
		args.command, argv = argv[0], argv[1:]
	}

	fs := flag.NewFlagSet("lunaterm "+args.command, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fmt.Fprintf(stderr, "\nflags for %s:\n", args.command)
		fs.PrintDefaults()
	}

	sessionFlags := func() {
		fs.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
		fs.StringVar(&args.logFile, "log-file", "", "Log destination (default ~/.lunaterm/lunaterm.log)")
		fs.BoolVar(&args.control, "control", false, "Serve the host control channel on a unix socket")
		fs.StringVar(&args.socket, "socket", "", "Control socket path (default ~/.lunaterm/host.sock)")
		fs.BoolVar(&args.words, "select-word", true, "Right-click selects the word under the pointer")
	}

	switch args.command {
	case "shell":
		sessionFlags()
		fs.StringVar(&args.shell, "shell", "", "Program to run (default $SHELL)")
		fs.BoolVar(&args.trzsz, "trzsz", false, "Enable trz/tsz file transfer")
		fs.BoolVar(&args.zmodem, "zmodem", false, "Enable rz/sz when --trzsz is set")
		fs.StringVar(&args.download, "download", "", "Directory for received files")
	case "connect":
		sessionFlags()
		fs.Func("header", "Extra handshake header as Name: value (repeatable)", func(v string) error {
			if !strings.Contains(v, ":") {
				return fmt.Errorf("header %q: want Name: value", v)
			}
			args.header = append(args.header, v)
			return nil
		})
	case "serve":
		fs.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
		fs.StringVar(&args.addr, "addr", "127.0.0.1:7681", "Listen address")
		fs.StringVar(&args.shell, "shell", "", "Program to run per connection (default $SHELL)")
		fs.BoolVar(&args.anyOrigin, "any-origin", false, "Accept websocket handshakes from any origin")
		fs.IntVar(&args.maxClients, "max-clients", 0, "Concurrent connection cap (0 = unlimited)")
	case "themes":
		fs.BoolVar(&args.preview, "preview", false, "Show the ANSI palette of each theme")
		fs.BoolVar(&args.pick, "pick", false, "Choose the theme interactively and save it")
	case "config", "version":
	case "help":
		fmt.Fprint(stderr, usage)
		return args, errUsage
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", args.command, usage)
		return args, errUsage
	}

	if err := fs.Parse(argv); err != nil {
		return args, errUsage
	}
	args.args = fs.Args()

	if args.command == "connect" {
		if len(args.args) != 1 {
			fmt.Fprintln(stderr, "connect: exactly one websocket URL is required")
			return args, errUsage
		}
		args.url = args.args[0]
	}
	return args, nil
}
