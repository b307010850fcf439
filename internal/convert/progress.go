package convert

import (
	"log/slog"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Progress tracks processed input lines.
type Progress interface {
	Tick()
	Done()
}

func NewProgress(cfg PipelineConfig) Progress {
	if cfg.ShowProgress {
		return &barProgress{
			name: cfg.Name,
			bar: progressbar.NewOptions64(-1,
				progressbar.OptionSetDescription(cfg.Name),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionSpinnerType(14),
				progressbar.OptionThrottle(100*time.Millisecond),
			),
		}
	}
	return &logProgress{name: cfg.Name, every: cfg.ReportEvery}
}

type logProgress struct {
	name  string
	every int
	lines int
}

func (p *logProgress) Tick() {
	p.lines++
	if p.every > 0 && p.lines%p.every == 0 {
		slog.Info("Processed input lines", "pipeline", p.name, "lines", p.lines)
	}
}

func (p *logProgress) Done() {
	slog.Info("Processed input lines", "pipeline", p.name, "lines", p.lines, "final", true)
}

type barProgress struct {
	name  string
	bar   *progressbar.ProgressBar
	lines int
}

func (p *barProgress) Tick() {
	p.lines++
	_ = p.bar.Add(1)
}

func (p *barProgress) Done() {
	_ = p.bar.Finish()
	slog.Info("Processed input lines", "pipeline", p.name, "lines", p.lines, "final", true)
}
