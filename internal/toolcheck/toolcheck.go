// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package toolcheck reports whether the collaborators named in the
// configuration are present: the XSLT processor on PATH, the stylesheets,
// and the manifest. It looks things up; it never runs the processor.
package toolcheck

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/pdiddy/mets2rdf/pkg/types"
)

// Check is the outcome of one lookup.
type Check struct {
	Name   string
	Target string
	OK     bool
	Detail string
}

// Report collects the checks of one run.
type Report struct {
	Checks []Check
}

// Failed returns the number of checks that did not pass.
func (r Report) Failed() int {
	n := 0
	for _, c := range r.Checks {
		if !c.OK {
			n++
		}
	}
	return n
}

// Write prints the report as a table to w.
func (r Report) Write(w io.Writer) {
	fmt.Fprintf(w, "%-6s  %-14s  %-30s  %s\n", "Status", "Check", "Target", "Detail")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, c := range r.Checks {
		status := "ok"
		if !c.OK {
			status = "FAIL"
		}
		target := c.Target
		if len(target) > 30 {
			target = "..." + target[len(target)-27:]
		}
		fmt.Fprintf(w, "%-6s  %-14s  %-30s  %s\n", status, c.Name, target, c.Detail)
	}
	fmt.Fprintf(w, "\n%d check(s), %d failed\n", len(r.Checks), r.Failed())
}

// system abstracts PATH and filesystem lookups for testing.
type system interface {
	LookPath(file string) (string, error)
	Stat(name string) (os.FileInfo, error)
}

// osSystem is the production system backed by os and os/exec.
type osSystem struct{}

func (osSystem) LookPath(file string) (string, error) { return exec.LookPath(file) }

func (osSystem) Stat(name string) (os.FileInfo, error) { return os.Stat(name) }

// Run checks the list and tree configurations against the local system.
func Run(cfg types.Config) Report {
	return run(osSystem{}, cfg)
}

func run(sys system, cfg types.Config) Report {
	var r Report
	seenTools := map[string]bool{}
	for _, tool := range []string{cfg.List.Tool, cfg.Tree.Tool} {
		if seenTools[tool] {
			continue
		}
		seenTools[tool] = true
		r.Checks = append(r.Checks, checkTool(sys, tool))
	}
	r.Checks = append(r.Checks,
		checkFile(sys, "list rule", cfg.List.TransformRule),
		checkFile(sys, "tree rule", cfg.Tree.TransformRule),
		checkFile(sys, "manifest", cfg.List.Manifest),
	)
	if cfg.Tree.InputDir != "" {
		r.Checks = append(r.Checks, checkDir(sys, "input dir", cfg.Tree.InputDir))
	}
	return r
}

func checkTool(sys system, tool string) Check {
	c := Check{Name: "tool", Target: tool}
	path, err := sys.LookPath(tool)
	if err != nil {
		c.Detail = fmt.Sprintf("not found on PATH: %v", err)
		return c
	}
	c.OK = true
	c.Detail = path
	return c
}

func checkFile(sys system, name, path string) Check {
	c := Check{Name: name, Target: path}
	info, err := sys.Stat(path)
	switch {
	case err != nil:
		c.Detail = err.Error()
	case info.IsDir():
		c.Detail = "is a directory"
	default:
		c.OK = true
		c.Detail = fmt.Sprintf("%d bytes", info.Size())
	}
	return c
}

func checkDir(sys system, name, path string) Check {
	c := Check{Name: name, Target: path}
	info, err := sys.Stat(path)
	switch {
	case err != nil:
		c.Detail = err.Error()
	case !info.IsDir():
		c.Detail = "not a directory"
	default:
		c.OK = true
		c.Detail = "directory"
	}
	return c
}
