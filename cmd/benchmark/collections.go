package main

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/cellparty/cell"
	"github.com/delaneyj/cellparty/stream"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

type scenarioResult struct {
	ops      int64
	events   int64
	duration time.Duration
	snapshot []int
	digest   string
}

func collections(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd.String(configKey))
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"scenario", "size", "nTimes", "modulus",
		"events", "time", "updateRate", "kept", "digest",
	})

	var errs []error
	for _, s := range cfg.Scenarios {
		log.Printf("Running '%s' scenario", s.Name)
		res, err := runScenario(s)
		if err != nil {
			return fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		if err := checkDigest(s, res); err != nil {
			errs = append(errs, err)
		}

		table.Append([]string{
			s.Name,
			humanize.Comma(int64(s.Size)),
			humanize.Comma(res.ops),
			fmt.Sprint(s.Modulus),
			humanize.Comma(res.events),
			fmt.Sprint(res.duration),
			humanize.Comma(res.rate()),
			humanize.Comma(int64(len(res.snapshot))),
			res.digest,
		})
	}
	table.Render()
	return errors.Join(errs...)
}

// rate is operations per millisecond. A run too fast for the clock reports 0.
func (r *scenarioResult) rate() int64 {
	if r.duration <= 0 {
		return 0
	}
	return int64(float64(r.ops) / (float64(r.duration) / float64(time.Millisecond)))
}

func checkDigest(s scenario, res *scenarioResult) error {
	if s.ExpectedDigest == "" || s.ExpectedDigest == res.digest {
		return nil
	}
	return fmt.Errorf("scenario %q: got %s, want %s: %w", s.Name, res.digest, s.ExpectedDigest, errDigestMismatch)
}

// runScenario seeds a CellArray with 0..size-1, subscribes a filter over its
// indexed stream and applies a fixed sequence of edits.
func runScenario(s scenario) (*scenarioResult, error) {
	items := make([]int, s.Size)
	for i := range items {
		items[i] = i
	}
	a := stream.NewCellArray(items...)
	filtered := stream.Filter(stream.Indexed[int, stream.Key](a), func(v int) bool {
		return v%s.Modulus == 0
	})

	res := &scenarioResult{}
	stop := filtered.Observe(
		func(int, cell.Cell[int], stream.Index[stream.Key]) { res.events++ },
		func(int) { res.events++ },
	)
	defer stop()

	start := time.Now()
	for i := 0; i < s.Iterations; i++ {
		if err := applyEdit(a, i); err != nil {
			return nil, err
		}
		res.ops++
	}
	res.duration = time.Since(start)

	res.snapshot = stream.Snapshot(filtered)
	res.digest = digest(res.snapshot)
	return res, nil
}

// applyEdit performs the i-th edit: push, overwrite, insert or remove, in turn.
func applyEdit(a *stream.CellArray[int], i int) error {
	n := a.Len().Value()
	switch i % 4 {
	case 0:
		a.Push(i)
	case 1:
		if n > 0 {
			return a.Set(i%n, i*7)
		}
	case 2:
		return a.Insert(i%(n+1), i)
	case 3:
		if n > 0 {
			a.Remove(i % n)
		}
	}
	return nil
}

func digest(values []int) string {
	h := xxhash.New()
	var buf [8]byte
	for _, v := range values {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
