package loadout

import (
	"context"
	"fmt"

	"barbell/internal/persist"
	"barbell/internal/trace"
)

// Loadout binds the bar weight and plate list to persisted storage.
type Loadout struct {
	bar    *persist.Value[float64]
	plates *persist.Value[Plates]
	tracer *trace.Tracer
}

// Option configures a Loadout.
type Option func(*options)

type options struct {
	onError persist.ErrorHandler
	tracer  *trace.Tracer
}

// WithErrorHandler observes swallowed storage errors.
func WithErrorHandler(fn persist.ErrorHandler) Option {
	return func(o *options) { o.onError = fn }
}

// WithTracer records a span per mutation.
func WithTracer(t *trace.Tracer) Option {
	return func(o *options) { o.tracer = t }
}

func positiveBar(w float64) error {
	if w <= 0 {
		return fmt.Errorf("bar weight %s is not positive", FormatWeight(w))
	}
	return nil
}

// Open reads both values from kv, defaulting to a 45 bar with no plates.
func Open(kv persist.KV, opts ...Option) *Loadout {
	o := options{onError: persist.LogErrors}
	for _, opt := range opts {
		opt(&o)
	}
	return &Loadout{
		bar: persist.Load(kv, KeyBarWeight, DefaultBarWeight,
			persist.WithValidator(positiveBar),
			persist.WithErrorHandler[float64](o.onError)),
		plates: persist.Load(kv, KeyPlates, Plates{},
			persist.WithErrorHandler[Plates](o.onError)),
		tracer: o.tracer,
	}
}

// BarWeight returns the current bar weight.
func (l *Loadout) BarWeight() float64 {
	return l.bar.Get()
}

// Plates returns the current plate list. Callers must not modify it.
func (l *Loadout) Plates() Plates {
	return l.plates.Get()
}

// Total returns bar weight plus all plates.
func (l *Loadout) Total() float64 {
	return Total(l.BarWeight(), l.Plates())
}

// SetBarWeight replaces the bar weight.
func (l *Loadout) SetBarWeight(w float64) {
	_, span := l.tracer.Start(context.Background(), "loadout.set_bar_weight")
	persisted := l.bar.Set(w)
	span.End(trace.Weight("bar_weight", w), trace.Bool("persisted", persisted))
}

// AddPlate appends w to the plate list.
func (l *Loadout) AddPlate(w float64) {
	_, span := l.tracer.Start(context.Background(), "loadout.add_plate")
	persisted := l.plates.Update(func(p Plates) Plates { return p.Add(w) })
	span.End(trace.Weight("plate", w), trace.Int("plates", len(l.Plates())), trace.Bool("persisted", persisted))
}

// RemovePlate drops the plate at index i; out of range is a no-op on the
// list (the unchanged list is still written back).
func (l *Loadout) RemovePlate(i int) {
	_, span := l.tracer.Start(context.Background(), "loadout.remove_plate")
	persisted := l.plates.Update(func(p Plates) Plates { return p.Remove(i) })
	span.End(trace.Int("index", i), trace.Int("plates", len(l.Plates())), trace.Bool("persisted", persisted))
}

// Reset restores the default bar and an empty plate list.
func (l *Loadout) Reset() {
	_, span := l.tracer.Start(context.Background(), "loadout.reset")
	a := l.bar.Set(DefaultBarWeight)
	b := l.plates.Set(Plates{})
	span.End(trace.Bool("persisted", a && b))
}
