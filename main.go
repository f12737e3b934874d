package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lquan-tech/porfolio/internal/di"
	"github.com/lquan-tech/porfolio/internal/structures"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "path to the YAML config file")
	flag.BoolVar(&flags.DebugMode, "debug", false, "mirror logs to stderr in human-readable form")
	flag.Parse()

	if _, err := di.InitApp(flags); err != nil {
		fmt.Fprintf(os.Stderr, "porfolio: %s\n", err)
		os.Exit(1)
	}
}
