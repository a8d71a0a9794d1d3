// phonbench measures cell-similarity computation over a dialect-atlas CSV.
// For every concept it compares all locality pairs (upper triangle),
// aggregates per-comparison timing and writes one CSV row per concept.
// Optionally a plain Levenshtein similarity column is included as a
// baseline next to the phonological score.
package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/hbollon/go-edlib"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/atlasling/phondist"
	"github.com/atlasling/phondist/segment"
)

type conceptResult struct {
	Concept      string
	Timing       Stats
	MeanSim      float64
	MeanBaseline float64
}

func main() {
	app := &cli.App{
		Name:  "phonbench",
		Usage: "benchmark phonological cell similarity over a dialect-atlas CSV",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Required: true, Usage: "atlas CSV file"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "report CSV file (default stdout)"},
			&cli.IntFlag{Name: "concepts", Aliases: []string{"c"}, Usage: "limit to the first N concepts (0 = all)"},
			&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Value: runtime.NumCPU(), Usage: "concurrent concepts"},
			&cli.StringFlag{Name: "weights", Usage: "TOML weight overrides"},
			&cli.BoolFlag{Name: "baseline", Usage: "add a plain Levenshtein similarity column"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg := phondist.DefaultConfig()
	if path := c.String("weights"); path != "" {
		var err error
		if cfg, err = phondist.LoadConfig(path); err != nil {
			return err
		}
	}
	cmp, err := phondist.New(
		phondist.WithConfig(cfg),
		phondist.WithCache(segment.NewCache()),
	)
	if err != nil {
		return err
	}

	atlas, err := ReadAtlasFile(c.String("input"))
	if err != nil {
		return fmt.Errorf("read atlas: %w", err)
	}
	nConcepts := len(atlas.Concepts)
	if limit := c.Int("concepts"); limit > 0 && limit < nConcepts {
		nConcepts = limit
	}
	log.Printf("atlas: %d localities, benchmarking %d of %d concepts",
		len(atlas.Localities), nConcepts, len(atlas.Concepts))

	baseline := c.Bool("baseline")
	results := make([]conceptResult, nConcepts)
	start := time.Now()

	var g errgroup.Group
	g.SetLimit(c.Int("workers"))
	for ci := 0; ci < nConcepts; ci++ {
		ci := ci
		g.Go(func() error {
			res, err := benchConcept(cmp, atlas.Concepts[ci], atlas.Column(ci), baseline)
			if err != nil {
				return err
			}
			results[ci] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	log.Printf("done in %s", time.Since(start).Round(time.Millisecond))

	return writeReport(c.String("output"), results, baseline)
}

// benchConcept times all pairwise cell comparisons of one concept column.
func benchConcept(cmp *phondist.Comparer, concept string, cells []string, baseline bool) (conceptResult, error) {
	var (
		times   []float64
		simSum  float64
		baseSum float64
	)
	pairs := 0
	for i := 0; i < len(cells); i++ {
		for j := i + 1; j < len(cells); j++ {
			t0 := time.Now()
			sim := cmp.CellSimilarity(cells[i], cells[j])
			times = append(times, time.Since(t0).Seconds())
			simSum += sim
			pairs++

			if baseline {
				bs, err := edlib.StringsSimilarity(cells[i], cells[j], edlib.Levenshtein)
				if err != nil {
					return conceptResult{}, fmt.Errorf("concept %s: baseline: %w", concept, err)
				}
				baseSum += float64(bs)
			}
		}
	}

	res := conceptResult{Concept: concept, Timing: Summarize(times)}
	if pairs > 0 {
		res.MeanSim = simSum / float64(pairs)
		if baseline {
			res.MeanBaseline = baseSum / float64(pairs)
		}
	}
	return res, nil
}

func writeReport(path string, results []conceptResult, baseline bool) error {
	out := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create report: %w", err)
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	header := []string{
		"concept", "pairs",
		"mean_us", "median_us", "min_us", "max_us", "stddev_us",
		"mean_similarity",
	}
	if baseline {
		header = append(header, "mean_levenshtein")
	}
	if err := w.Write(header); err != nil {
		return err
	}

	us := func(seconds float64) string {
		return strconv.FormatFloat(seconds*1e6, 'f', 3, 64)
	}
	for _, r := range results {
		row := []string{
			r.Concept,
			strconv.Itoa(r.Timing.Count),
			us(r.Timing.Mean), us(r.Timing.Median), us(r.Timing.Min), us(r.Timing.Max), us(r.Timing.StdDev),
			strconv.FormatFloat(r.MeanSim, 'f', 4, 64),
		}
		if baseline {
			row = append(row, strconv.FormatFloat(r.MeanBaseline, 'f', 4, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
