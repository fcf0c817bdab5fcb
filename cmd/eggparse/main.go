// Command eggparse drives the lexer/tokenizer/parser pipeline over one or
// more Egg source files and reports their issues, exercising the front-end
// core as a standalone tool.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/hashicorp/logutils"

	"github.com/eggscript/egg/ast"
	"github.com/eggscript/egg/parser"
)

// fileResult is one file's outcome, collected so output ordering doesn't
// depend on which goroutine happens to finish first.
type fileResult struct {
	path   string
	root   *ast.Node
	issues []ast.Issue
}

func main() {
	debug := flag.Bool("d", false, "print debugging output")
	dumpAST := flag.Bool("ast", false, "print the parsed AST for each file")
	jobs := flag.Int("j", 4, "maximum number of files to parse concurrently")
	flag.Parse()

	filter := &logutils.LevelFilter{
		Levels:   []logutils.LogLevel{"DEBUG", "INFO", "WARN", "ERROR"},
		MinLevel: logutils.LogLevel("INFO"),
		Writer:   os.Stderr,
	}
	if *debug {
		filter.MinLevel = logutils.LogLevel("DEBUG")
	}
	log.SetOutput(filter)
	log.SetFlags(0)

	paths := flag.Args()
	if len(paths) == 0 {
		log.Printf("[ERROR] usage: eggparse [-d] [-ast] [-j N] file...")
		os.Exit(2)
	}

	results := make([]fileResult, len(paths))

	// Parsing one resource is independent of parsing another: bound the
	// fan-out with errgroup.SetLimit rather than spawning one goroutine per
	// file unconditionally.
	grp := new(errgroup.Group)
	grp.SetLimit(*jobs)
	for i, path := range paths {
		i, path := i, path
		grp.Go(func() error {
			log.Printf("[DEBUG] reading %s", path)
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			root, issues := parser.Parse(path, data)
			results[i] = fileResult{path: path, root: root, issues: issues}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		log.Printf("[ERROR] %s", err)
		os.Exit(1)
	}

	hadError := false
	for _, r := range results {
		for _, issue := range r.issues {
			level := "INFO"
			switch issue.Severity {
			case ast.SeverityError:
				level, hadError = "ERROR", true
			case ast.SeverityWarning:
				level = "WARN"
			}
			log.Printf("[%s] %s: %s: %s", level, r.path, issue.Range, issue.Message)
		}
		if *dumpAST && r.root != nil {
			printAST(r.path, r.root)
		}
	}

	if hadError {
		os.Exit(1)
	}
}

// printAST renders a parsed Module's tree as an indented S-expression-like
// listing, using Walk's depth to drive indentation rather than maintaining a
// separate recursive printer.
func printAST(path string, root *ast.Node) {
	fmt.Printf("%s:\n", path)
	ast.Walk(root, func(n *ast.Node, _ *ast.Node, depth int) bool {
		indent := ""
		for i := 0; i < depth; i++ {
			indent += "  "
		}
		label := n.Kind.String()
		if n.Name != "" {
			label += " " + n.Name
		}
		if n.Value.Kind != ast.ValueNone {
			label += " " + n.Value.String()
		}
		fmt.Printf("%s%s\n", indent, label)
		return true
	})
}
