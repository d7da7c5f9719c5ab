// astbin CLI - encodes ESTree JSON documents into flat node-record buffers
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/chazu/astbin/config"
)

func main() {
	configPath := flag.String("config", "", "Path to astbin.toml (default: search upward from the working directory)")
	outDir := flag.String("o", "", "Output directory for .astbin files (overrides [output] dir)")
	bundlePath := flag.String("bundle", "", "Collect all buffers into one CBOR bundle (overrides [output] bundle)")
	dump := flag.Bool("dump", false, "Print the record tree of every encoded file")
	verify := flag.Bool("verify", false, "Verify the given bundle files instead of encoding")
	jobs := flag.Int("j", -1, "Files encoded in parallel (overrides [run] jobs; 0 = GOMAXPROCS)")
	verbose := flag.Bool("v", false, "Verbose output")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: astbin [options] [paths...]\n\n")
		fmt.Fprintf(os.Stderr, "Encodes ESTree JSON documents (*.json) into astbin record buffers.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  astbin app.json                 # Write app.astbin next to the input\n")
		fmt.Fprintf(os.Stderr, "  astbin -o out ./ast/...         # Encode a tree of documents into out/\n")
		fmt.Fprintf(os.Stderr, "  astbin -bundle all.cbor ./ast   # One CBOR bundle for a directory\n")
		fmt.Fprintf(os.Stderr, "  astbin -dump app.json           # Print the record tree\n")
		fmt.Fprintf(os.Stderr, "  astbin -verify all.cbor         # Check a bundle\n")
	}
	flag.Parse()

	verbosity := 0
	if *verbose {
		verbosity = 2
	}
	commonlog.Configure(verbosity, nil)
	log := commonlog.GetLogger("astbin")

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if *verify {
		if err := verifyBundles(os.Stdout, flag.Args()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := applyFlags(cfg, *outDir, *bundlePath, *jobs); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	r, err := newRunner(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer r.Close()

	var files []string
	for _, path := range flag.Args() {
		found, err := collectInputs(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		files = append(files, found...)
	}

	var dumpTo io.Writer
	if *dump {
		dumpTo = os.Stdout
	}
	if failed := r.Run(context.Background(), files, dumpTo); failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d files failed\n", failed, len(files))
		r.Close()
		os.Exit(1)
	}
}

// loadConfig reads the file given with -config, or searches upward from
// the working directory, falling back to defaults.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	cfg, err := config.FindAndLoad(".")
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = config.Default()
	}
	return cfg, nil
}

// applyFlags overrides cfg with the command line values that were given
// and validates the result. A negative jobs value means -j was not set.
func applyFlags(cfg *config.Config, outDir, bundlePath string, jobs int) error {
	if outDir != "" {
		cfg.Output.Dir = outDir
	}
	if bundlePath != "" {
		cfg.Output.Bundle = bundlePath
	}
	if jobs >= 0 {
		cfg.Run.Jobs = jobs
	}
	return cfg.Validate()
}
