package ui

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer guards a bytes.Buffer shared with the ticking goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestSpinnerStopRendersElapsedSeconds(t *testing.T) {
	out := &syncBuffer{}
	clock := &fakeClock{now: time.Unix(0, 0)}

	s := NewSpinner(out, "Updating package.json", PlainStyles(), WithClock(clock.Now), WithInterval(time.Millisecond))
	s.Start()
	clock.Advance(3 * time.Second)
	s.Stop("package.json updated")

	got := out.String()
	assert.True(t, strings.HasSuffix(got, "\r   ✔ package.json updated (3s)     \n"), "got %q", got)
}

func TestSpinnerTicksBeforeStop(t *testing.T) {
	out := &syncBuffer{}
	s := NewSpinner(out, "Working", PlainStyles(), WithInterval(time.Millisecond))
	s.Start()

	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Working...")
	}, time.Second, time.Millisecond)

	s.Stop("done")
	assert.Contains(t, out.String(), "✔ done")
}

func TestSpinnerFinalLineRendersOnce(t *testing.T) {
	out := &syncBuffer{}
	s := NewSpinner(out, "Committing", PlainStyles(), WithInterval(time.Hour))
	s.Start()
	s.Fail("Committing... [ERROR]")
	s.Stop("ignored")
	s.Fail("ignored")

	got := out.String()
	assert.Equal(t, "\r   ! Committing... [ERROR] (0s)      \n", got)
}

func TestSpinnerStopWithoutStart(t *testing.T) {
	out := &syncBuffer{}
	s := NewSpinner(out, "Idle", PlainStyles())
	s.Stop("finished")

	assert.Equal(t, "\r   ✔ finished (0s)     \n", out.String())
}

func TestSpinnerNothingWrittenAfterFinalLine(t *testing.T) {
	out := &syncBuffer{}
	s := NewSpinner(out, "Fast", PlainStyles(), WithInterval(time.Microsecond))
	s.Start()
	time.Sleep(5 * time.Millisecond)
	s.Stop("ok")
	after := out.String()
	time.Sleep(5 * time.Millisecond)

	assert.Equal(t, after, out.String())
	assert.True(t, strings.HasSuffix(after, "\n"))
}

func TestPrintNumberedAlignsArrows(t *testing.T) {
	var out bytes.Buffer
	PrintNumbered(&out, PlainStyles(), []Step{
		{Title: "Configure Tokens", Detail: "https://example.com", Link: true},
		{Title: "Push to GitHub", Detail: "git push origin main"},
	})

	assert.Equal(t,
		"   1. Configure Tokens → https://example.com\n"+
			"   2. Push to GitHub   → git push origin main\n",
		out.String())
}

func TestPrintBulleted(t *testing.T) {
	var out bytes.Buffer
	PrintBulleted(&out, PlainStyles(), []Step{{Title: "Run tests", Detail: "npm test"}})

	assert.Equal(t, "   - Run tests → npm test\n", out.String())
}

func TestProgressTrackerHeadings(t *testing.T) {
	var out bytes.Buffer
	pt := NewProgressTracker(&out, PlainStyles(), "First", "Second")

	assert.Equal(t, "First", pt.GetCurrentStep())
	pt.NextStep()
	pt.NextStep()

	assert.Equal(t, "   First\n\n\n   Second\n\n", out.String())
	assert.Equal(t, "Complete", pt.GetCurrentStep())
	assert.Equal(t, 2, pt.Step())
}

func TestTableRendersVisibleColumns(t *testing.T) {
	table := NewTable([]Column{
		{Title: "#", Key: "index"},
		{Title: "TASK", Key: "task"},
		{Title: "STATUS", Key: "status", Hidden: true},
	}, []Row{{"index": "1", "task": "Updating package.json", "status": "run"}, {"index": "2"}})

	lines := strings.Split(table.Render(), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "TASK")
	assert.NotContains(t, lines[0], "STATUS")
	assert.Equal(t, strings.Repeat("─", 3+23), lines[1])
	assert.Contains(t, lines[2], "Updating package.json")
	assert.Contains(t, lines[3], "-")
}

func TestTableFitShrinksWidestColumn(t *testing.T) {
	table := NewTable([]Column{
		{Title: "#", Key: "index", Min: 3},
		{Title: "TASK", Key: "task", Min: 4},
	}, []Row{{"index": "1", "task": "Updating & installing dependencies"}}).Fit(20)

	lines := strings.Split(table.Render(), "\n")
	assert.Equal(t, strings.Repeat("─", 20), lines[1])
	assert.Contains(t, lines[2], "…")
	assert.Empty(t, NewTable([]Column{{Title: "X", Hidden: true}}, nil).Render())
}

func TestTruncateTextEllipsis(t *testing.T) {
	assert.Equal(t, "abc", TruncateText("abc", 5))
	assert.Equal(t, "abc…", TruncateText("abcdefgh", 5))
	assert.Equal(t, "...", TruncateText("abcdef", 3))
	assert.Equal(t, "", TruncateText("abc", 0))
}
