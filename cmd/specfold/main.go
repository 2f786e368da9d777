package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/erraggy/specfold"
	"github.com/erraggy/specfold/internal/mcpserver"
	"github.com/erraggy/specfold/node"
	"github.com/erraggy/specfold/pattern"
	"github.com/erraggy/specfold/resolver"
	"github.com/erraggy/specfold/transform"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("specfold v%s\n", specfold.Version())
	case "help", "-h", "--help":
		printUsage()
	case "serve":
		if err := handleServe(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "transform":
		if err := handleTransform(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "resolve":
		if err := handleResolve(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "classify":
		if err := handleClassify(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func handleServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}

// transformFlags contains flags for the transform command
type transformFlags struct {
	rootType      string
	maxIterations int
	runOnce       bool
	noResolve     bool
	remote        bool
	output        string
	asJSON        bool
}

func setupTransformFlags() (*flag.FlagSet, *transformFlags) {
	fs := flag.NewFlagSet("transform", flag.ContinueOnError)
	flags := &transformFlags{}

	fs.StringVar(&flags.rootType, "root-type", "", "type tag to seed the root node with")
	fs.IntVar(&flags.maxIterations, "max-iterations", 0, "scheduler iteration cap (default 8)")
	fs.BoolVar(&flags.runOnce, "run-once", false, "run a single pass cycle instead of iterating to a fixed point")
	fs.BoolVar(&flags.noResolve, "no-resolve", false, "skip reference substitution")
	fs.BoolVar(&flags.remote, "remote", false, "allow http/https reference resolution")
	fs.StringVar(&flags.output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.output, "output", "", "output file path (default: stdout)")
	fs.BoolVar(&flags.asJSON, "json", false, "write the enriched document as JSON instead of YAML")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: specfold transform [flags] <file>\n\n")
		_, _ = fmt.Fprintf(output, "Transform a JSON or YAML document: dereference $ref pointers, classify\npatterned field names, and iterate to a fixed point.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  specfold transform api.yaml\n")
		_, _ = fmt.Fprintf(output, "  specfold transform --root-type document -o enriched.yaml api.yaml\n")
		_, _ = fmt.Fprintf(output, "  specfold transform --remote --json api.yaml\n")
	}

	return fs, flags
}

func handleTransform(args []string) error {
	fs, flags := setupTransformFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("transform command requires exactly one file path")
	}

	docPath := fs.Arg(0)
	doc, err := loadDocument(docPath)
	if err != nil {
		return err
	}

	opts := []transform.Option{}
	if !flags.noResolve {
		res, err := resolver.New(
			resolver.WithBaseDir(filepath.Dir(docPath)),
			resolver.WithRemoteEnabled(flags.remote),
		)
		if err != nil {
			return err
		}
		opts = append(opts, transform.WithResolver(res))
	}
	if flags.rootType != "" {
		opts = append(opts, transform.WithRootType(flags.rootType))
	}
	if flags.maxIterations > 0 {
		opts = append(opts, transform.WithMaxIterations(flags.maxIterations))
	}
	if flags.runOnce {
		opts = append(opts, transform.WithRunOnce())
	}

	startTime := time.Now()
	result, err := transform.TransformWithOptions(context.Background(), doc, opts...)
	totalTime := time.Since(startTime)
	if err != nil {
		return fmt.Errorf("transforming document: %w", err)
	}

	fmt.Printf("Document Transformer\n")
	fmt.Printf("====================\n\n")
	fmt.Printf("specfold version: %s\n", specfold.Version())
	fmt.Printf("Document: %s\n", docPath)
	fmt.Printf("Iterations: %d\n", result.Iterations)
	fmt.Printf("Stable: %t\n", result.Stable)
	fmt.Printf("Total Time: %v\n\n", totalTime)

	if len(result.Diagnostics) > 0 {
		fmt.Printf("Diagnostics (%d):\n", len(result.Diagnostics))
		for _, d := range result.Diagnostics {
			fmt.Printf("  %s\n", d.String())
		}
		fmt.Println()
	}

	var data []byte
	if flags.asJSON {
		data, err = result.Node.ToJSON()
	} else {
		data, err = result.Node.ToYAML()
	}
	if err != nil {
		return fmt.Errorf("marshaling enriched document: %w", err)
	}

	if flags.output != "" {
		if err := os.WriteFile(flags.output, data, 0600); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		fmt.Printf("Output written to: %s\n", flags.output)
	} else {
		if _, err = os.Stdout.Write(data); err != nil {
			return fmt.Errorf("writing enriched document to stdout: %w", err)
		}
	}

	if !result.Stable {
		os.Exit(1)
	}
	return nil
}

// resolveFlags contains flags for the resolve command
type resolveFlags struct {
	doc    string
	remote bool
}

func setupResolveFlags() (*flag.FlagSet, *resolveFlags) {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	flags := &resolveFlags{}

	fs.StringVar(&flags.doc, "doc", "", "document to resolve inline pointers against")
	fs.BoolVar(&flags.remote, "remote", false, "allow http/https reference resolution")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: specfold resolve [flags] <pointer>\n\n")
		_, _ = fmt.Fprintf(output, "Resolve a $ref-style pointer and print the resolved subtree as JSON.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  specfold resolve --doc api.yaml '#/components/schemas/Pet'\n")
		_, _ = fmt.Fprintf(output, "  specfold resolve --doc api.yaml './common.yaml#/Tag'\n")
	}

	return fs, flags
}

func handleResolve(args []string) error {
	fs, flags := setupResolveFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("resolve command requires exactly one pointer")
	}

	pointer := fs.Arg(0)

	var doc *node.Node
	baseDir := "."
	if flags.doc != "" {
		var err error
		doc, err = loadDocument(flags.doc)
		if err != nil {
			return err
		}
		baseDir = filepath.Dir(flags.doc)
	}

	res, err := resolver.New(
		resolver.WithBaseDir(baseDir),
		resolver.WithRemoteEnabled(flags.remote),
	)
	if err != nil {
		return err
	}

	ref, err := res.Resolve(context.Background(), doc, pointer)
	if err != nil {
		return fmt.Errorf("resolving pointer: %w", err)
	}

	data, err := ref.Node.ToJSON()
	if err != nil {
		return fmt.Errorf("marshaling resolved node: %w", err)
	}

	fmt.Printf("Source: %s\n", ref.Source)
	fmt.Println(string(data))
	return nil
}

func handleClassify(args []string) error {
	fs := flag.NewFlagSet("classify", flag.ContinueOnError)
	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: specfold classify <field>\n\n")
		_, _ = fmt.Fprintf(output, "Classify a field name into its pattern family.\n\n")
		_, _ = fmt.Fprintf(output, "Examples:\n")
		_, _ = fmt.Fprintf(output, "  specfold classify '/pets/{petId}'\n")
		_, _ = fmt.Fprintf(output, "  specfold classify 'application/json'\n")
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("classify command requires exactly one field name")
	}

	field := fs.Arg(0)
	pf := pattern.Classify(field, nil)

	fmt.Printf("Field: %s\n", pf.OriginalName)
	fmt.Printf("Family: %s\n", pf.Family)
	fmt.Printf("Valid: %t\n", pf.Valid)
	fmt.Printf("Complexity: %d\n", pf.Complexity)
	if pf.Name != pf.OriginalName {
		fmt.Printf("Canonical: %s\n", pf.Name)
	}
	for _, p := range pf.Params {
		fmt.Printf("Param %d: %s (%s)\n", p.Position, p.Name, p.Type)
	}

	if !pf.Valid {
		os.Exit(1)
	}
	return nil
}

// loadDocument reads and parses a JSON or YAML document from disk.
func loadDocument(path string) (*node.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	doc, err := node.FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return doc, nil
}

func printUsage() {
	fmt.Println(`specfold - Specification Document Transformation Engine

Usage:
  specfold <command> [options]

Commands:
  transform   Transform a document: dereference refs, classify patterned fields
  resolve     Resolve a $ref-style pointer and print the result
  classify    Classify a field name into its pattern family
  serve       Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  specfold transform api.yaml
  specfold transform --root-type document -o enriched.yaml api.yaml
  specfold resolve --doc api.yaml '#/components/schemas/Pet'
  specfold classify '/pets/{petId}'
  specfold serve

Run 'specfold <command> --help' for more information on a command.`)
}
