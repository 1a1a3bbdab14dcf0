// Package metrics counts gameplay events on a private prometheus registry.
// Nothing is served; the registry can be gathered by tests or a debug dump.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "featherwake"

// Collector records gameplay counters. A nil *Collector is a valid no-op.
type Collector struct {
	registry *prometheus.Registry

	kills       *prometheus.CounterVec
	enemyDamage prometheus.Counter
	playerHurt  prometheus.Counter
	spells      *prometheus.CounterVec
	grassCut    prometheus.Counter
	frames      prometheus.Histogram
}

func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		kills: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "enemies_killed_total",
			Help:      "Enemies killed, by species.",
		}, []string{"species"}),
		enemyDamage: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "enemy_damage_total",
			Help:      "Damage dealt to enemies.",
		}),
		playerHurt: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "player_damage_total",
			Help:      "Damage taken by the player.",
		}),
		spells: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "spells_cast_total",
			Help:      "Spells successfully cast, by kind.",
		}, []string{"spell"}),
		grassCut: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "grass_cut_total",
			Help:      "Grass tiles destroyed by attacks.",
		}),
		frames: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "frame_update_seconds",
			Help:      "Time spent in one world update.",
			Buckets:   []float64{0.0005, 0.001, 0.002, 0.004, 0.008, 0.016, 0.032},
		}),
	}
	c.registry.MustRegister(c.kills, c.enemyDamage, c.playerHurt, c.spells, c.grassCut, c.frames)
	return c
}

func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

func (c *Collector) EnemyKilled(species string) {
	if c == nil {
		return
	}
	c.kills.WithLabelValues(species).Inc()
}

func (c *Collector) EnemyDamaged(amount float64) {
	if c == nil || amount <= 0 {
		return
	}
	c.enemyDamage.Add(amount)
}

func (c *Collector) PlayerDamaged(amount float64) {
	if c == nil || amount <= 0 {
		return
	}
	c.playerHurt.Add(amount)
}

func (c *Collector) SpellCast(spell string) {
	if c == nil {
		return
	}
	c.spells.WithLabelValues(spell).Inc()
}

func (c *Collector) GrassCut() {
	if c == nil {
		return
	}
	c.grassCut.Inc()
}

func (c *Collector) ObserveFrame(d time.Duration) {
	if c == nil {
		return
	}
	c.frames.Observe(d.Seconds())
}
