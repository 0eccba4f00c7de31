// Command loadplan computes a load plan for a single manifest and prints the
// result to stdout. It reads YAML manifests or XLSX cargo workbooks and can
// additionally write the HTML report and the volume chart to files.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alecthomas/kingpin/v2"

	"github.com/nkarpenko/cargohold/internal/manifest"
	"github.com/nkarpenko/cargohold/internal/packing"
	"github.com/nkarpenko/cargohold/internal/report"
)

func main() {
	app := kingpin.New("loadplan", "Compute a greedy 3D load plan for a cargo manifest")
	manifestPath := app.Flag("manifest", "Path to a YAML manifest or XLSX cargo workbook").Short('m').Required().String()
	containerStr := app.Flag("container", "Container dimensions as LxWxH in metres (required for XLSX input, overrides YAML)").Short('c').String()
	fillerStr := app.Flag("filler", "Filler unit as NAME:LxWxH, probed after the main load").String()
	htmlPath := app.Flag("html", "Write the HTML report to this file").String()
	chartPath := app.Flag("chart", "Write the volume chart page to this file").String()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	m, err := loadManifest(*manifestPath)
	if err != nil {
		app.Fatalf("%v", err)
	}

	if *containerStr != "" {
		spec, err := parseDims(*containerStr)
		if err != nil {
			app.Fatalf("parse container dimensions: %v", err)
		}
		m.Container = spec
	}

	if *fillerStr != "" {
		filler, err := parseFiller(*fillerStr)
		if err != nil {
			app.Fatalf("parse filler: %v", err)
		}
		m.Filler = &filler
	}

	if err := m.Validate(); err != nil {
		app.Fatalf("invalid manifest: %v", err)
	}

	summary, err := plan(m)
	if err != nil {
		app.Fatalf("%v", err)
	}

	fmt.Print(summary.Text())

	if *htmlPath != "" {
		opts := report.HTMLOptions{Title: "Load Plan"}
		if *chartPath != "" {
			opts.ChartHref = filepath.Base(*chartPath)
		}
		if err := writeFile(*htmlPath, func(w io.Writer) error {
			return summary.WriteHTML(w, opts)
		}); err != nil {
			app.Fatalf("write HTML report: %v", err)
		}
	}

	if *chartPath != "" {
		if err := writeFile(*chartPath, summary.WriteChart); err != nil {
			app.Fatalf("write chart: %v", err)
		}
	}
}

// loadManifest dispatches on the file extension. XLSX workbooks carry only the
// cargo list, so the container must come from the --container flag.
func loadManifest(path string) (manifest.Manifest, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".xlsx" {
		return manifest.Load(path)
	}

	cargo, err := manifest.ReadExcel(path)
	if err != nil {
		return manifest.Manifest{}, fmt.Errorf("read workbook: %w", err)
	}
	return manifest.Manifest{Cargo: cargo}, nil
}

func plan(m manifest.Manifest) (report.Summary, error) {
	units, err := manifest.Expand(m.Cargo)
	if err != nil {
		return report.Summary{}, err
	}

	container, err := packing.NewContainer(m.Container.Length, m.Container.Width, m.Container.Height)
	if err != nil {
		return report.Summary{}, fmt.Errorf("container: %w", err)
	}

	result := packing.New().Pack(container, units)

	fillerName := ""
	fillerCount := 0
	if m.Filler != nil {
		unit, err := packing.NewItem(m.Filler.Name, "", m.Filler.Length, m.Filler.Width, m.Filler.Height, 1)
		if err != nil {
			return report.Summary{}, fmt.Errorf("filler: %w", err)
		}
		fillerName = m.Filler.Name
		fillerCount = packing.MaxAdditional(container, unit)
	}

	return report.Build(container, result.Rejected, fillerName, fillerCount), nil
}

func parseDims(raw string) (manifest.ContainerSpec, error) {
	normalized := strings.NewReplacer("×", "x", "*", "x", "X", "x").Replace(raw)
	parts := strings.Split(normalized, "x")
	if len(parts) != 3 {
		return manifest.ContainerSpec{}, fmt.Errorf("expected LxWxH, got %q", raw)
	}

	values := make([]float64, 3)
	for i, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return manifest.ContainerSpec{}, fmt.Errorf("invalid dimension %q", part)
		}
		if value <= 0 {
			return manifest.ContainerSpec{}, fmt.Errorf("dimension must be positive, got %g", value)
		}
		values[i] = value
	}

	return manifest.ContainerSpec{Length: values[0], Width: values[1], Height: values[2]}, nil
}

func parseFiller(raw string) (manifest.Cargo, error) {
	name, dims, ok := strings.Cut(raw, ":")
	if !ok || name == "" {
		return manifest.Cargo{}, fmt.Errorf("expected NAME:LxWxH, got %q", raw)
	}

	spec, err := parseDims(dims)
	if err != nil {
		return manifest.Cargo{}, err
	}

	return manifest.Cargo{
		Name:     name,
		Length:   spec.Length,
		Width:    spec.Width,
		Height:   spec.Height,
		Quantity: 1,
	}, nil
}

func writeFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
