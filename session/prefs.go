package session

import (
	"maps"
	"slices"
	"sync"
)

// ColorMode selects one of the editor color schemes.
type ColorMode int

const (
	ColorBright ColorMode = iota
	ColorLight
	ColorDark
)

// PrefsField names the preference that changed.
type PrefsField uint8

const (
	FieldColorMode PrefsField = iota
	FieldLiveWordCount
)

// Prefs holds settings shared by every open session. Changes are announced
// to subscribers synchronously, on the goroutine that made them.
type Prefs struct {
	mu            sync.Mutex
	colorMode     ColorMode
	liveWordCount bool

	subs map[int]func(PrefsField)
	next int
}

func NewPrefs(mode ColorMode, liveWordCount bool) *Prefs {
	return &Prefs{colorMode: mode, liveWordCount: liveWordCount}
}

func (p *Prefs) ColorMode() ColorMode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.colorMode
}

func (p *Prefs) SetColorMode(mode ColorMode) {
	p.mu.Lock()
	if p.colorMode == mode {
		p.mu.Unlock()
		return
	}
	p.colorMode = mode
	p.mu.Unlock()
	p.notify(FieldColorMode)
}

func (p *Prefs) LiveWordCount() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.liveWordCount
}

func (p *Prefs) SetLiveWordCount(on bool) {
	p.mu.Lock()
	if p.liveWordCount == on {
		p.mu.Unlock()
		return
	}
	p.liveWordCount = on
	p.mu.Unlock()
	p.notify(FieldLiveWordCount)
}

// Subscribe registers fn for change notifications until cancel is called.
func (p *Prefs) Subscribe(fn func(PrefsField)) (cancel func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.subs == nil {
		p.subs = make(map[int]func(PrefsField))
	}
	id := p.next
	p.next++
	p.subs[id] = fn
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.subs, id)
	}
}

func (p *Prefs) notify(f PrefsField) {
	p.mu.Lock()
	fns := make([]func(PrefsField), 0, len(p.subs))
	for _, id := range slices.Sorted(maps.Keys(p.subs)) {
		fns = append(fns, p.subs[id])
	}
	p.mu.Unlock()

	for _, fn := range fns {
		fn(f)
	}
}
