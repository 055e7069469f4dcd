// Command svgsteg embeds and extracts hidden messages in SVG images by
// perturbing the least-significant digits of coordinate literals.
//
// Usage:
//
//	svgsteg embed [flags] <message-file> <cover-file> <key>
//	svgsteg extract [flags] <stego-file> <key>
//	svgsteg capacity [flags] <cover-file>
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/wudi/svgsteg/observability"
	"github.com/wudi/svgsteg/profile"
	"github.com/wudi/svgsteg/scripting"
	"github.com/wudi/svgsteg/steg"
	"github.com/wudi/svgsteg/svg"
)

type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "embed":
		err = runEmbed(os.Args[2:])
	case "extract":
		err = runExtract(os.Args[2:])
	case "capacity":
		err = runCapacity(os.Args[2:])
	case "-h", "-help", "--help", "help":
		usage()
		return
	default:
		err = usageError{fmt.Sprintf("unknown mode %q", os.Args[1])}
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "svgsteg: %v\n", err)
		if _, ok := err.(usageError); ok {
			usage()
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage:
	svgsteg embed [flags] <message-file> <cover-file> <key>
	svgsteg extract [flags] <stego-file> <key>
	svgsteg capacity [flags] <cover-file>

Flags:
	-profile file   YAML carrier profile (default: built-in SVG profile)
	-filter file    JavaScript slot filter script
	-v              verbose logging to stderr
`)
}

// modeFlags holds the options shared by all three modes.
type modeFlags struct {
	fs          *flag.FlagSet
	profilePath *string
	filterPath  *string
	verbose     *bool
}

func newModeFlags(mode string) *modeFlags {
	fs := flag.NewFlagSet(mode, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return &modeFlags{
		fs:          fs,
		profilePath: fs.String("profile", "", "YAML carrier profile"),
		filterPath:  fs.String("filter", "", "JavaScript slot filter script"),
		verbose:     fs.Bool("v", false, "verbose logging to stderr"),
	}
}

func (m *modeFlags) parse(args []string, positional int) ([]string, error) {
	if err := m.fs.Parse(args); err != nil {
		return nil, usageError{err.Error()}
	}
	if m.fs.NArg() != positional {
		return nil, usageError{fmt.Sprintf("%s expects %d arguments, got %d", m.fs.Name(), positional, m.fs.NArg())}
	}
	return m.fs.Args(), nil
}

func (m *modeFlags) options() (steg.Options, error) {
	opts := steg.Options{}
	if *m.profilePath != "" {
		f, err := os.Open(*m.profilePath)
		if err != nil {
			return opts, fmt.Errorf("%s is not a valid file", *m.profilePath)
		}
		defer f.Close()
		prof, err := profile.Load(f)
		if err != nil {
			return opts, err
		}
		opts.Profile = prof
	}
	if *m.filterPath != "" {
		script, err := os.ReadFile(*m.filterPath)
		if err != nil {
			return opts, fmt.Errorf("%s is not a valid file", *m.filterPath)
		}
		filter, err := scripting.NewFilter(string(script))
		if err != nil {
			return opts, err
		}
		opts.Filter = filter
	}
	if *m.verbose {
		opts.Logger = observability.NewTextLogger(os.Stderr)
	}
	return opts, nil
}

func parseSVG(path string) (*svg.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s is not a valid file", path)
	}
	defer f.Close()
	doc, err := svg.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s is not a valid svg image: %v", path, err)
	}
	return doc, nil
}

func runEmbed(args []string) error {
	mf := newModeFlags("embed")
	pos, err := mf.parse(args, 3)
	if err != nil {
		return err
	}
	msgPath, coverPath, key := pos[0], pos[1], pos[2]

	opts, err := mf.options()
	if err != nil {
		return err
	}
	payload, err := os.ReadFile(msgPath)
	if err != nil {
		return fmt.Errorf("%s is not a valid file", msgPath)
	}
	doc, err := parseSVG(coverPath)
	if err != nil {
		return err
	}
	if err := steg.Embed(doc, key, payload, opts); err != nil {
		return err
	}
	if _, err := doc.WriteTo(os.Stdout); err != nil {
		return fmt.Errorf("write stego-object: %w", err)
	}
	fmt.Println()
	return nil
}

func runExtract(args []string) error {
	mf := newModeFlags("extract")
	pos, err := mf.parse(args, 2)
	if err != nil {
		return err
	}
	stegoPath, key := pos[0], pos[1]

	opts, err := mf.options()
	if err != nil {
		return err
	}
	doc, err := parseSVG(stegoPath)
	if err != nil {
		return err
	}
	payload, err := steg.Extract(doc, key, opts)
	if err != nil {
		return err
	}
	if _, err := os.Stdout.Write(payload); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	return nil
}

func runCapacity(args []string) error {
	mf := newModeFlags("capacity")
	pos, err := mf.parse(args, 1)
	if err != nil {
		return err
	}
	coverPath := pos[0]

	opts, err := mf.options()
	if err != nil {
		return err
	}
	doc, err := parseSVG(coverPath)
	if err != nil {
		return err
	}
	n, err := steg.Capacity(doc, opts)
	if err != nil {
		return err
	}
	fmt.Printf("Embedding capacity: %d ASCII characters.\n", n)
	return nil
}
