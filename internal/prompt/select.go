package prompt

import "sync"

// selectState is the active index of a select prompt. Moves are clamped at
// both ends; a move that would leave the list reports false.
type selectState struct {
	index int
	count int
}

func newSelectState(count, index int) *selectState {
	if index < 0 || index >= count {
		index = 0
	}
	return &selectState{index: index, count: count}
}

func (s *selectState) up() bool {
	if s.index == 0 {
		return false
	}
	s.index--
	return true
}

func (s *selectState) down() bool {
	if s.index >= s.count-1 {
		return false
	}
	s.index++
	return true
}

// cleanup runs fn at most once, however many exit paths call Run.
type cleanup struct {
	once sync.Once
	fn   func()
}

func newCleanup(fn func()) *cleanup {
	return &cleanup{fn: fn}
}

func (c *cleanup) Run() {
	c.once.Do(c.fn)
}
