// Command vvlgen generates the dynamic state helpers from the Vulkan XML
// registry.
//
// Usage:
//
//	vvlgen [options] [vk.xml]
//
// Examples:
//
//	vvlgen vk.xml                      # Generate both helper files
//	vvlgen -o generated vk.xml         # Generate into a directory
//	vvlgen -check -o generated vk.xml  # Verify files are up to date
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	vvl "github.com/kearwood/Vulkan-ValidationLayers"
	"github.com/kearwood/Vulkan-ValidationLayers/config"
	"github.com/kearwood/Vulkan-ValidationLayers/cpp"
	"github.com/kearwood/Vulkan-ValidationLayers/vkxml"
)

var (
	configPath = flag.String("config", "", "generation manifest (YAML)")
	outDir     = flag.String("o", "", "output directory (overrides manifest)")
	targetName = flag.String("target", "", "what to render: header, source, a filename, or all")
	apiName    = flag.String("api", "", "registry api variant (overrides manifest)")
	toStdout   = flag.Bool("stdout", false, "write the rendered file to stdout")
	check      = flag.Bool("check", false, "verify files on disk are current, exit 1 on drift")
	version    = flag.Bool("version", false, "print version")
)

const vvlgenVersion = "0.1.0-dev"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("vvlgen version %s\n", vvlgenVersion)
		return
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	args := flag.Args()
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "Error: too many arguments")
		usage()
		os.Exit(1)
	}
	if len(args) == 1 {
		cfg.Registry = args[0]
	}
	if *apiName != "" {
		cfg.API = *apiName
	}
	if *outDir != "" {
		cfg.OutDir = *outDir
	}
	if *targetName != "" {
		switch *targetName {
		case "all":
			cfg.Targets = []string{cpp.HeaderFileName, cpp.SourceFileName}
		case "header":
			cfg.Targets = []string{cpp.HeaderFileName}
		case "source":
			cfg.Targets = []string{cpp.SourceFileName}
		default:
			cfg.Targets = []string{*targetName}
		}
	}

	// Flag overrides can invalidate a manifest that loaded cleanly.
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	targets, err := cfg.TargetList()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *toStdout && *check {
		fmt.Fprintln(os.Stderr, "Error: -stdout and -check are mutually exclusive")
		os.Exit(1)
	}
	if *toStdout && len(targets) != 1 {
		fmt.Fprintln(os.Stderr, "Error: -stdout requires a single -target")
		os.Exit(1)
	}

	// Read and parse the registry
	data, err := os.ReadFile(cfg.Registry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading registry: %v\n", err)
		os.Exit(1)
	}
	reg, err := vkxml.Parse(data, cfg.RegistryOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing registry: %v\n", err)
		os.Exit(1)
	}
	if _, ok := reg.Group(vvl.DynamicStateGroup); !ok {
		fmt.Fprintf(os.Stderr, "Warning: %s has no %s group, generating an empty enum\n",
			cfg.Registry, vvl.DynamicStateGroup)
	}
	set := vvl.Collect(reg)

	if *toStdout {
		text, err := vvl.Render(set, targets[0], cfg.BackendOptions(targets[0]))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(text)
		return
	}

	if *check {
		stale := false
		for _, target := range targets {
			text, err := vvl.Render(set, target, cfg.BackendOptions(target))
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			path := filepath.Join(cfg.OutDir, target.Filename())
			disk, err := os.ReadFile(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Missing: %s\n", path)
				stale = true
				continue
			}
			if string(disk) != text {
				fmt.Fprintf(os.Stderr, "Out of date: %s\n", path)
				stale = true
			}
		}
		if stale {
			os.Exit(1)
		}
		fmt.Printf("Up to date: %d file(s)\n", len(targets))
		return
	}

	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	// Render and write the targets in parallel
	written := make([]int, len(targets))
	var g errgroup.Group
	for i, target := range targets {
		i, target := i, target
		g.Go(func() error {
			text, err := vvl.Render(set, target, cfg.BackendOptions(target))
			if err != nil {
				return err
			}
			path := filepath.Join(cfg.OutDir, target.Filename())
			if err := os.WriteFile(path, []byte(text), 0644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			written[i] = len(text)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for i, target := range targets {
		fmt.Printf("Generated %s (%d bytes, %d states)\n",
			filepath.Join(cfg.OutDir, target.Filename()), written[i], set.Len())
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: vvlgen [options] [vk.xml]\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  vvlgen vk.xml                     Generate both helper files\n")
	fmt.Fprintf(os.Stderr, "  vvlgen -o generated vk.xml        Generate into a directory\n")
	fmt.Fprintf(os.Stderr, "  vvlgen -check -o generated vk.xml Verify files are up to date\n")
	fmt.Fprintf(os.Stderr, "  vvlgen -target header -stdout vk.xml\n")
	fmt.Fprintf(os.Stderr, "                                    Render the header to stdout\n")
}
