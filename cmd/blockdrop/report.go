package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockdrop/game"
	"github.com/plus3/blockdrop/shape"
	"github.com/plus3/blockdrop/tick"
)

type Report struct {
	// Configuration
	Seed       uint64
	Randomizer string
	Script     string
	Input      string
	Width      int
	Height     int
	TickRate   int
	Duration   time.Duration
	TickLimit  int

	// Results
	TotalTicks     uint64
	TotalTime      time.Duration
	TickTime       Stats
	Counters       game.Counters
	Spawns         []KindCount
	Systems        []tick.SystemStats
	BestClear      int
	Quit           bool
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type KindCount struct {
	Kind  shape.Kind
	Count int
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// collect copies the end state of g into the report.
func (r *Report) collect(g *game.Game) {
	r.Counters = g.Session().Counters().Clone()
	r.TotalTicks = r.Counters.Ticks
	r.Systems = g.Scheduler().Stats().Systems

	r.Spawns = r.Spawns[:0]
	for _, k := range shape.Kinds {
		r.Spawns = append(r.Spawns, KindCount{Kind: k, Count: r.Counters.Spawned(k)})
	}
}

const reportTemplate = `
# blockdrop Simulation Report

## Configuration
- **Well:** {{.Width}}x{{.Height}}
- **Tick Rate:** {{.TickRate}} Hz
- **Seed:** {{.Seed}}
- **Randomizer:** {{if .Script}}script {{.Script}}{{else}}{{.Randomizer}}{{end}}
- **Input:** {{if .Input}}{{.Input}}{{else}}random{{end}}
- **Limits:** {{if .Duration}}{{.Duration}}{{else}}none{{end}} / {{if .TickLimit}}{{.TickLimit}} ticks{{else}}no tick limit{{end}}

## Game
- **Ticks:** {{.TotalTicks}}{{if .Quit}} (quit){{end}}
- **Pieces Locked:** {{.Counters.Locked}}
- **Rows Eliminated:** {{.Counters.Rows}}
- **Best Clear:** {{.BestClear}}
- **Soft Resets:** {{.Counters.SoftResets}}
- **Spawns:** {{.Counters.Spawns}}
{{range .Spawns}}  - {{.Kind}}: {{.Count}} ({{percent .Count $.Counters.Spawns}})
{{end}}
## Performance Results
- **Total Time:** {{.TotalTime}}
- **Tick Time:**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}

| System | Runs | Avg | Max |
|---|---|---|---|
{{range .Systems}}| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}`

var reportFuncs = template.FuncMap{
	"bsub": func(a, b uint64) int64 {
		return int64(a) - int64(b)
	},
	"usub": func(a, b uint32) uint32 {
		return a - b
	},
	"ns": func(ns uint64) string {
		return time.Duration(ns).String()
	},
	"percent": func(n, total int) string {
		if total == 0 {
			return "0.0%"
		}
		return fmt.Sprintf("%.1f%%", float64(n)*100/float64(total))
	},
}

func (r *Report) Generate(w io.Writer) error {
	tmpl, err := template.New("report").Funcs(reportFuncs).Parse(reportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}
