package tui

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/muesli/termenv"
)

// ProgressLine is a single, self-overwriting status line for the exhaustive search.
// It is purely cosmetic: nothing it does feeds back into the search.
type ProgressLine struct {
	out      *termenv.Output
	interval time.Duration

	mu    sync.Mutex
	size  int
	total uint64
	began time.Time
	stop  chan struct{}
	wg    sync.WaitGroup

	done atomic.Uint64
}

// NewProgressLine draws on w every interval.
func NewProgressLine(w io.Writer, interval time.Duration) *ProgressLine {
	if interval <= 0 {
		interval = 250 * time.Millisecond
	}
	return &ProgressLine{
		out:      termenv.NewOutput(w),
		interval: interval,
	}
}

// Start begins tracking a search over total candidates of the given size.
func (p *ProgressLine) Start(size int, total uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.size = size
	p.total = total
	p.began = time.Now()
	p.done.Store(0)
	p.stop = make(chan struct{})

	p.wg.Add(1)
	go p.loop(p.stop)
}

// Advance records n more evaluated candidates.
func (p *ProgressLine) Advance(n uint64) {
	p.done.Add(n)
}

// Finish stops redrawing and clears the line.
func (p *ProgressLine) Finish() {
	p.mu.Lock()
	stop := p.stop
	p.stop = nil
	p.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	p.wg.Wait()

	p.out.ClearLine()
	fmt.Fprint(p.out, "\r")
}

func (p *ProgressLine) loop(stop <-chan struct{}) {
	defer p.wg.Done()
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			p.draw()
		}
	}
}

func (p *ProgressLine) draw() {
	p.mu.Lock()
	size, total, began := p.size, p.total, p.began
	p.mu.Unlock()

	p.out.ClearLine()
	fmt.Fprint(p.out, "\r"+FormatProgress(size, p.done.Load(), total, time.Since(began)))
}

// FormatProgress renders one status line, with an ETA once some work is done.
func FormatProgress(size int, done, total uint64, elapsed time.Duration) string {
	const width = 30

	ratio := 0.0
	if total > 0 {
		ratio = float64(done) / float64(total)
	}
	filled := int(ratio * width)
	if filled > width {
		filled = width
	}

	bar := make([]byte, width)
	for i := range bar {
		if i < filled {
			bar[i] = '#'
		} else {
			bar[i] = '-'
		}
	}

	eta := "?"
	if done > 0 && done <= total {
		remaining := time.Duration(float64(elapsed) * float64(total-done) / float64(done))
		eta = remaining.Round(time.Second).String()
	}
	return fmt.Sprintf("size %2d [%s] %10d/%-10d %5.1f%% eta %s", size, bar, done, total, ratio*100, eta)
}
