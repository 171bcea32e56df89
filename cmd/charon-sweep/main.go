package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"charon/internal/core"
	"charon/internal/editor"
	"charon/internal/logging"
	"charon/internal/world"

	"github.com/rs/zerolog"
)

type paramSet struct {
	maxOccupants int
	spawnCap     int
	endJitter    float64
	separation   float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("occupants=%d cap=%d jitter=%.2f separation=%.0f",
		p.maxOccupants, p.spawnCap, p.endJitter, p.separation)
}

type scenarioResult struct {
	params   paramSet
	score    int
	ticks    uint64
	stranded int
	over     bool
}

// network is drawn onto the delta layout before each run.
var network = [][]core.Point{
	{{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}},
	{{X: 3, Y: 1}, {X: 3, Y: 0}, {X: 4, Y: 0}, {X: 5, Y: 0}},
	{{X: 3, Y: 3}, {X: 3, Y: 4}, {X: 4, Y: 4}, {X: 5, Y: 4}},
}

func main() {
	steps := flag.Int("steps", 3600, "ticks to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 1337, "world seed")
	flag.Parse()

	log := logging.New("charon-sweep", os.Stderr, logging.FromEnv())

	base := world.DefaultConfig()
	base.Layout = "delta"
	base.Seed = *seed

	var sets []paramSet
	for _, occ := range []int{1, 2, 3, 4} {
		for _, spawnCap := range []int{1, 2, 3} {
			for _, jitter := range []float64{0, 0.5, 2} {
				for _, sep := range []float64{30, 50, 70} {
					sets = append(sets, paramSet{maxOccupants: occ, spawnCap: spawnCap, endJitter: jitter, separation: sep})
				}
			}
		}
	}

	log.Info().Int("sets", len(sets)).Int("workers", *workers).Int("steps", *steps).Msg("sweeping")

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				res, err := runScenario(base, params, *steps)
				if err != nil {
					log.Error().Err(err).Stringer("params", params).Msg("scenario failed")
					continue
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].over != all[j].over {
			return !all[i].over
		}
		if all[i].score != all[j].score {
			return all[i].score > all[j].score
		}
		return all[i].stranded < all[j].stranded
	})

	fmt.Printf("Completed %d scenarios in %s\n", len(all), time.Since(start).Round(time.Millisecond))
	for i := 0; i < len(all) && i < 5; i++ {
		r := all[i]
		fmt.Printf("%d. score=%d ticks=%d stranded=%d over=%t %s\n", i+1, r.score, r.ticks, r.stranded, r.over, r.params)
	}
}

func runScenario(base world.Config, params paramSet, steps int) (scenarioResult, error) {
	cfg := base
	cfg.Spirits.MaxOccupants = params.maxOccupants
	cfg.Spirits.SpawnCap = params.spawnCap
	cfg.Spirits.EndJitter = params.endJitter
	cfg.Spirits.SeparationRadius = params.separation

	w, err := world.New(cfg, zerolog.Nop())
	if err != nil {
		return scenarioResult{}, err
	}
	const dt = 1.0 / 60
	for _, stroke := range network {
		for i, c := range stroke {
			w.Tick(dt, editor.Input{Target: c, HasTarget: true, JustPressed: i == 0, Held: true})
		}
		w.Tick(dt, editor.Input{})
	}

	res := scenarioResult{params: params}
	for step := 0; step < steps && !w.Over(); step++ {
		rep := w.Tick(dt, editor.Input{})
		res.stranded += len(rep.Stranded)
	}
	res.score = w.Counters().Score
	res.ticks = w.Ticks()
	res.over = w.Over()
	return res, nil
}
