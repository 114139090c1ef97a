package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"sprite-gen/internal/masks"
	"sprite-gen/internal/render"
	"sprite-gen/internal/sprite"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "validate":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: masktools validate <masks-dir>")
			os.Exit(1)
		}
		os.Exit(runValidate(os.Stdout, args[0]))
	case "viz":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: masktools viz <mask-file>")
			os.Exit(1)
		}
		os.Exit(runViz(os.Stdout, args[0]))
	case "stats":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: masktools stats <mask-file>")
			os.Exit(1)
		}
		os.Exit(runStats(os.Stdout, args[0]))
	case "all":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: masktools all <masks-dir>")
			os.Exit(1)
		}
		os.Exit(runAll(os.Stdout, args[0]))
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: masktools <command> <path>

Commands:
  validate <masks-dir>  Validate all templates in directory
  viz      <mask-file>  Render template in editor colors with a sample sprite
  stats    <mask-file>  Show cell distribution and output size
  all      <masks-dir>  Run validate + viz + stats for all templates`)
}

// --- validate ---

// problems lists what makes a template unusable or suspicious.
func problems(m *masks.Mask) (errs, warns []string) {
	counts := m.Stats()
	if counts[sprite.MaskEmpty] == m.Width*m.Height {
		errs = append(errs, "template is all empty")
	}
	if counts[sprite.MaskBody1]+counts[sprite.MaskBody2] == 0 {
		warns = append(warns, "no body cells, every seed gives the same shape")
	}
	if _, err := sprite.Generate(m.Cells(), m.Width, m.Options(sprite.DefaultOptions())); err != nil {
		errs = append(errs, err.Error())
	}
	return errs, warns
}

func runValidate(w io.Writer, dir string) int {
	all, err := masks.LoadMasks(dir)
	if err != nil {
		fmt.Fprintf(w, "FAIL: %v\n", err)
		return 1
	}

	errors := 0
	for _, name := range sortedNames(all) {
		m := all[name]
		fmt.Fprintf(w, "Validating %q...\n", name)

		errs, warns := problems(m)
		for _, e := range errs {
			fmt.Fprintf(w, "  ERROR: %s\n", e)
		}
		for _, e := range warns {
			fmt.Fprintf(w, "  WARN: %s\n", e)
		}
		errors += len(errs)

		if len(errs) == 0 {
			fmt.Fprintf(w, "  OK (%dx%d)\n", m.Width, m.Height)
		}
	}

	if errors > 0 {
		fmt.Fprintf(w, "\n%d error(s) found\n", errors)
		return 1
	}
	fmt.Fprintf(w, "\nAll %d templates valid\n", len(all))
	return 0
}

func sortedNames(all map[string]*masks.Mask) []string {
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// --- viz ---

func runViz(w io.Writer, path string) int {
	m, err := masks.LoadMask(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintf(w, "%s (%dx%d)\n", m.Name, m.Width, m.Height)

	// Two spaces per cell in the editor palette
	for _, row := range m.Grid {
		var sb strings.Builder
		for _, c := range row {
			p := render.MaskColor(c)
			fmt.Fprintf(&sb, "\033[48;2;%d;%d;%dm  ", p.R, p.G, p.B)
		}
		sb.WriteString(render.Reset)
		fmt.Fprintln(w, sb.String())
	}

	opts := m.Options(sprite.DefaultOptions())
	s, err := sprite.Generate(m.Cells(), m.Width, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintf(w, "\nSample (seed %d):\n", opts.Seed)
	io.WriteString(w, render.HalfBlocks(s, true, render.Background))
	return 0
}

// --- stats ---

func runStats(w io.Writer, path string) int {
	m, err := masks.LoadMask(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	total := m.Width * m.Height
	fmt.Fprintf(w, "%s (%dx%d = %d cells)\n\n", m.Name, m.Width, m.Height, total)

	counts := m.Stats()
	for _, c := range []sprite.MaskCell{sprite.MaskSolid, sprite.MaskEmpty, sprite.MaskBody1, sprite.MaskBody2} {
		pct := float64(counts[c]) / float64(total) * 100
		bar := strings.Repeat("█", int(pct/2))
		fmt.Fprintf(w, "  %-6s %4d (%5.1f%%) %s\n", c, counts[c], pct, bar)
	}

	opts := m.Options(sprite.DefaultOptions())
	ow, oh := sprite.OutputSize(total, m.Width, opts)
	fmt.Fprintf(w, "\nRandom cells: %d\n", counts[sprite.MaskBody1]+counts[sprite.MaskBody2])
	fmt.Fprintf(w, "Output:       %dx%d (mirror x:%t y:%t)\n", ow, oh, opts.MirrorX, opts.MirrorY)
	return 0
}

// --- all ---

func runAll(w io.Writer, dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading directory: %v\n", err)
		return 1
	}

	// Run validate first
	fmt.Fprintln(w, "=== VALIDATE ===")
	code := runValidate(w, dir)
	if code != 0 {
		return code
	}

	// Then viz + stats for each template
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		fmt.Fprintf(w, "\n=== VIZ: %s ===\n", entry.Name())
		if code := runViz(w, path); code != 0 {
			return code
		}
		fmt.Fprintf(w, "\n=== STATS: %s ===\n", entry.Name())
		if code := runStats(w, path); code != 0 {
			return code
		}
	}

	return 0
}
