package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/delaneyj/cellparty/cell"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"
)

func addOne(v int) int {
	return v + 1
}

// powersOfTen returns 1, 10, 100, ... up to max.
func powersOfTen(max int) []int {
	var out []int
	for n := 1; n <= max; n *= 10 {
		out = append(out, n)
	}
	return out
}

func propagate(ctx context.Context, cmd *cli.Command) error {
	iters := int(cmd.Uint(itersKey))
	if iters < 1 {
		return fmt.Errorf("iters must be positive, got %d", iters)
	}
	ww := powersOfTen(int(cmd.Uint(widthKey)))
	hh := powersOfTen(int(cmd.Uint(heightKey)))

	log.Printf("warming up")
	propagateOnce(1, 1, iters)

	tbl := table.NewWriter()
	tbl.SetTitle("Cell propagation")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			calc := propagateOnce(w, h, iters)
			tbl.AppendRow(table.Row{
				fmt.Sprintf("propagate: %d * %d", w, h),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			})
		}
	}

	if isTerminal(os.Stdout) {
		tbl.Render()
	} else {
		tbl.RenderCSV()
	}
	return nil
}

// propagateOnce builds w observed chains of h maps over one root and times
// iters writes to the root.
func propagateOnce(w, h, iters int) *tachymeter.Metrics {
	tach := tachymeter.New(&tachymeter.Config{Size: iters})

	src := cell.New(1)
	seen := 0
	stops := make([]cell.Unsubscribe, 0, w)
	for i := 0; i < w; i++ {
		var last cell.Cell[int] = src
		for j := 0; j < h; j++ {
			last = cell.Map(last, addOne)
		}
		stops = append(stops, last.ObserveFunc(func(int) {
			seen++
		}))
	}

	for i := 0; i < iters; i++ {
		start := time.Now()
		src.Set(src.Value() + 1)
		tach.AddTime(time.Since(start))
	}

	for _, stop := range stops {
		stop()
	}
	if want := w * iters; seen != want {
		log.Panicf("propagate %d * %d: %d notifications, want %d", w, h, seen, want)
	}
	return tach.Calc()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
