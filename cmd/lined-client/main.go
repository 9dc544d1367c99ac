package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/tbxark/lined/pkg/lined/client"
	"github.com/tbxark/lined/pkg/lined/version"
)

func main() {
	var (
		serverAddr  string
		dialTimeout time.Duration
		showVersion bool
	)

	pflag.StringVar(&serverAddr, "server", "127.0.0.1:8080", "Server address")
	pflag.DurationVar(&dialTimeout, "dial-timeout", 5*time.Second, "Total time budget for connecting to the server")
	pflag.BoolVarP(&showVersion, "version", "v", false, "Show version information")
	pflag.Parse()

	if showVersion {
		fmt.Println(version.GetFullVersion())
		os.Exit(0)
	}

	if pflag.NArg() < 1 {
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [flags] <command>\n", os.Args[0])
		_, _ = fmt.Fprintln(os.Stderr, "Examples:")
		_, _ = fmt.Fprintf(os.Stderr, "  %s PING\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "  %s \"ECHO Hello World\"\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "  %s TIME\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "  %s STATS\n", os.Args[0])
		os.Exit(1)
	}

	c := &client.Client{
		ServerAddr:  serverAddr,
		DialTimeout: dialTimeout,
	}

	response, err := c.Run(pflag.Arg(0))
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	fmt.Print(response)
}
