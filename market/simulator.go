package market

import (
	"math/rand"
)

// historyDepth is how many recent prices the simulator keeps per instrument
// for the chart panel.
const historyDepth = 120

// Simulator perturbs every registry price by a small bounded random delta on
// each tick. It is the registry's single writer. A tick is pure in-memory
// arithmetic and cannot fail.
type Simulator struct {
	reg      *Registry
	rng      *rand.Rand
	baseline map[string]float64
	history  map[string][]float64
}

// NewSimulator captures each instrument's session-open price as the baseline
// the displayed change percentage is computed against.
func NewSimulator(reg *Registry, seed int64) *Simulator {
	s := &Simulator{
		reg:      reg,
		rng:      rand.New(rand.NewSource(seed)),
		baseline: make(map[string]float64),
		history:  make(map[string][]float64),
	}
	for _, inst := range reg.Snapshot() {
		s.baseline[inst.Key] = inst.Price
		s.history[inst.Key] = append(s.history[inst.Key], inst.Price)
	}
	return s
}

// Tick applies one round of price movement to every instrument. The delta is
// bounded by price * volatility * 0.5, so the price can never reach zero.
// Change percentage is recomputed against the session-open baseline, not the
// prior tick's price.
func (s *Simulator) Tick() {
	s.reg.mu.Lock()
	defer s.reg.mu.Unlock()

	for _, key := range s.reg.order {
		inst := s.reg.items[key]
		delta := inst.Price * inst.Volatility() * (s.rng.Float64() - 0.5)
		inst.Price += delta

		base := s.baseline[key]
		inst.ChangePct = (inst.Price - base) / base * 100

		hist := append(s.history[key], inst.Price)
		if len(hist) > historyDepth {
			hist = hist[len(hist)-historyDepth:]
		}
		s.history[key] = hist
	}
	s.reg.version++
	s.reg.live = true
}

// History returns a copy of the recorded prices for key, oldest first.
func (s *Simulator) History(key string) []float64 {
	s.reg.mu.RLock()
	defer s.reg.mu.RUnlock()
	hist := s.history[key]
	out := make([]float64, len(hist))
	copy(out, hist)
	return out
}

// Baseline returns the session-open reference price for key.
func (s *Simulator) Baseline(key string) float64 {
	return s.baseline[key]
}
