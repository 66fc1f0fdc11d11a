// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/benchviz/benchplot/benchchart"
	"github.com/benchviz/benchplot/benchfmt"
	"github.com/benchviz/benchplot/benchproc"
	"github.com/benchviz/benchplot/benchunit"
	"github.com/benchviz/benchplot/render"
	"github.com/benchviz/benchplot/watch"
)

var plotCmd = &cobra.Command{
	Use:   "plot [flags] results.json",
	Short: "Draw a chart of benchmark results",
	Long: `plot draws a chart of the benchmark results in results.json, merged
with the files given with --append and --overwrite, to the image file
given with --out. The image format follows the file extension: png,
jpg, svg, pdf and eps are supported.

With --watch, plot reloads the results and redraws the chart each
time one of the files changes, until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlot,
}

func init() {
	addChartFlags(plotCmd)
	f := plotCmd.Flags()
	f.String("theme", "", "color `theme` of the series")
	f.String("time-unit", "", "show times in `unit` (ns, us, ms or s)")
	f.StringP("out", "o", "chart.png", "write the chart to `file`")
	f.Bool("watch", false, "redraw the chart when the result files change")
}

// addChartFlags adds the flags selecting what a chart shows.
func addChartFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringArray("append", nil, "append the results of `file`")
	f.StringArray("overwrite", nil, "replace results by those of the same name in `file`")
	f.String("kind", "line", "chart `kind`: bar, hbar, box, line, spline or surface")
	f.String("x", "arg:0", "parameter `slot` on the X axis, such as arg:0 or tmpl:1")
	f.String("y", "real_time", "plotted `metric`")
	f.String("z", "", "parameter `slot` on the Z axis of surface charts")
	f.String("filter", "", "plot only the benchmarks matching `regexp`")
}

// chartArgs is the chart selected by the command line.
type chartArgs struct {
	src    *benchfmt.Source
	rs     *benchfmt.ResultSet
	idxs   []int
	params benchchart.PlotParams
}

// loadChart reads the results and chart parameters of the command.
func loadChart(cmd *cobra.Command, path string) (*chartArgs, error) {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	var p benchchart.PlotParams
	var err error
	if p.Kind, err = benchchart.ParseKind(viper.GetString("kind")); err != nil {
		return nil, err
	}
	if p.X, err = benchproc.ParseSlot(viper.GetString("x")); err != nil {
		return nil, err
	}
	if p.Y, err = benchchart.ParseYKind(viper.GetString("y")); err != nil {
		return nil, err
	}
	if z := viper.GetString("z"); z != "" {
		if p.Kind != benchchart.Surface {
			return nil, fmt.Errorf("--z needs a surface chart")
		}
		slot, err := benchproc.ParseSlot(z)
		if err != nil {
			return nil, err
		}
		p.Z = &slot
	}

	src := &benchfmt.Source{Path: path}
	for _, f := range viper.GetStringSlice("append") {
		src.Additional = append(src.Additional, benchfmt.AddFile{Path: f, Append: true})
	}
	for _, f := range viper.GetStringSlice("overwrite") {
		src.Additional = append(src.Additional, benchfmt.AddFile{Path: f})
	}
	rs, err := src.Load()
	if err != nil {
		return nil, err
	}
	for _, w := range rs.Warnings {
		log.Print(w)
	}

	// A nil selection is every record, so that the chart can be
	// rebuilt when the results change shape.
	var idxs []int
	if filter := viper.GetString("filter"); filter != "" {
		if idxs, err = benchproc.Select(rs, filter); err != nil {
			return nil, err
		}
		if len(idxs) == 0 {
			return nil, fmt.Errorf("no benchmarks match %q", filter)
		}
	}
	return &chartArgs{src, rs, idxs, p}, nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	ca, err := loadChart(cmd, args[0])
	if err != nil {
		return err
	}
	store, err := openSettings()
	if err != nil {
		return err
	}
	defer store.Close()

	p := benchchart.NewPlotter(ca.rs, ca.idxs, ca.params, benchchart.Options{
		Loader: ca.src,
		Store:  store,
	})
	for _, w := range p.Chart().Warnings {
		log.Print(w)
	}
	if theme := viper.GetString("theme"); theme != "" {
		if err := p.SetTheme(theme, false); err != nil {
			return err
		}
	}
	if unit := viper.GetString("time-unit"); unit != "" {
		u, err := benchunit.ParseTimeUnit(unit)
		if err != nil {
			return err
		}
		if err := p.SetTimeUnit(u, false); err != nil {
			return err
		}
	}

	out := viper.GetString("out")
	draw := func() error {
		if err := render.Save(p, out, render.Width, render.Height); err != nil {
			return err
		}
		if c := p.Chart(); c.Empty() {
			log.Printf("%s: %s", out, c.Placeholder)
		}
		return nil
	}
	if err := draw(); err != nil {
		return err
	}

	if viper.GetBool("watch") {
		p.SetAutoReload(true, false)
		if err := watchResults(cmd.Context(), p, ca.src, draw); err != nil {
			return err
		}
	}
	return p.SaveConfig()
}

// watchResults reloads p and redraws it with draw each time a file
// of src changes, until interrupted.
func watchResults(ctx context.Context, p *benchchart.Plotter, src *benchfmt.Source, draw func() error) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	w, err := watch.New(src.Paths()...)
	if err != nil {
		return err
	}
	defer w.Close()

	err = w.Run(ctx, func(path string) {
		outcome, err := p.OnFileChanged(path)
		if err != nil {
			log.Print(err)
			return
		}
		if outcome == benchchart.NotReloaded {
			return
		}
		log.Printf("reloaded %s (%s) at %s", path, outcome, p.LastReload().Format("15:04:05"))
		for _, warn := range p.Chart().Warnings {
			log.Print(warn)
		}
		if err := draw(); err != nil {
			log.Print(err)
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
