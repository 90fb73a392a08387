// Package cmd wires the htmlshape engine's four operations (clean,
// main, siblings, children) onto a small cobra CLI: read an HTML
// document from stdin or a file, run one operation, and write the
// result to stdout or a file.
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/htmlshape/htmlshape"
	"github.com/htmlshape/htmlshape/internal/build"
	"github.com/htmlshape/htmlshape/internal/config"
	"github.com/htmlshape/htmlshape/internal/metadata"
	"github.com/htmlshape/htmlshape/pkg/fileutil"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	inputFile string
	outputDir string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "htmlshape",
	Short: "Reduce an HTML page to its main content and repeated item groups.",
	Long: `htmlshape is a CLI that takes a single HTML document and runs one
of four deterministic reductions over it:

  clean     strip the document down to an allow-listed subset of markup
  main      locate and clean the document's main content
  siblings  locate the winning group of repeated sibling elements
  children  keep only sibling items that carry an outbound link

Every operation is pure: the same input always produces the same
output, and malformed or empty input reduces to empty output rather
than an error.`,
	Version: build.FullVersion(),
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config-file", "", "config file path (JSON, overrides engine defaults)")
	rootCmd.PersistentFlags().StringVar(&inputFile, "input", "", "path to an HTML file (defaults to stdin)")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output-dir", "", "directory to write output into (defaults to stdout)")

	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(mainCmd)
	rootCmd.AddCommand(siblingsCmd)
	rootCmd.AddCommand(childrenCmd)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to
// happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// ExecuteArgsForTest runs rootCmd with args and returns its error
// instead of exiting the process, for test isolation.
func ExecuteArgsForTest(args []string) error {
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Strip the document down to an allow-listed subset of markup",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := buildEngine()
		if err != nil {
			return err
		}
		raw, err := readInput()
		if err != nil {
			return err
		}
		return writeOutput("clean", engine.Clean(raw))
	},
}

var mainCmd = &cobra.Command{
	Use:   "main",
	Short: "Locate and clean the document's main content",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := buildEngine()
		if err != nil {
			return err
		}
		raw, err := readInput()
		if err != nil {
			return err
		}
		return writeOutput("main", engine.Main(raw))
	},
}

var siblingsCmd = &cobra.Command{
	Use:   "siblings",
	Short: "Locate the winning group of repeated sibling elements",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := buildEngine()
		if err != nil {
			return err
		}
		raw, err := readInput()
		if err != nil {
			return err
		}
		return writeItems("siblings", engine.Siblings(raw))
	},
}

var childrenCmd = &cobra.Command{
	Use:   "children",
	Short: "Keep only sibling items that carry an outbound link",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := buildEngine()
		if err != nil {
			return err
		}
		raw, err := readInput()
		if err != nil {
			return err
		}
		return writeOutput("children", engine.Children(raw))
	},
}

// buildEngine constructs an htmlshape.Engine from --config-file, or the
// package-level engine defaults when no config file is given.
func buildEngine() (htmlshape.Engine, error) {
	if cfgFile == "" {
		return htmlshape.Default, nil
	}
	cfg, err := config.WithConfigFile(cfgFile)
	if err != nil {
		return htmlshape.Engine{}, fmt.Errorf("error initializing config from file: %w", err)
	}
	return htmlshape.New(cfg, metadata.NewRecorder(nil)), nil
}

// readInput reads the raw HTML from --input, or stdin if unset.
func readInput() (string, error) {
	if inputFile == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("error reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", inputFile, err)
	}
	return string(data), nil
}

// writeOutput writes a single operation's result to
// --output-dir/<op>.html, or to stdout when --output-dir is unset.
func writeOutput(operation, result string) error {
	if outputDir == "" {
		fmt.Println(result)
		return nil
	}
	if err := fileutil.EnsureDir(outputDir); err != nil {
		return fmt.Errorf("error preparing output directory: %w", err)
	}
	path := filepath.Join(outputDir, operation+".html")
	return os.WriteFile(path, []byte(result), 0644)
}

// writeItems writes the siblings operation's per-item results, either
// as numbered files under --output-dir or newline-joined on stdout.
func writeItems(operation string, items []string) error {
	if outputDir == "" {
		for _, item := range items {
			fmt.Println(item)
		}
		return nil
	}
	if err := fileutil.EnsureDir(outputDir); err != nil {
		return fmt.Errorf("error preparing output directory: %w", err)
	}
	for i, item := range items {
		path := filepath.Join(outputDir, operation+"-"+strconv.Itoa(i)+".html")
		if err := os.WriteFile(path, []byte(item), 0644); err != nil {
			return fmt.Errorf("error writing %s: %w", path, err)
		}
	}
	return nil
}

// ResetFlags restores every package-level flag to its zero value, for
// test isolation across cobra command invocations.
func ResetFlags() {
	cfgFile = ""
	inputFile = ""
	outputDir = ""
}
