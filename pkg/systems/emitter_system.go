package systems

import (
	"log"
	"math"
	"math/rand/v2"

	"github.com/decker502/heartfx/internal/particle"
	"github.com/decker502/heartfx/pkg/config"
	"github.com/decker502/heartfx/pkg/heart"
)

// EmitterSystem emits particles along the heart curve and advances the pool.
//
// Each frame it:
//  1. spawns floor(rate·dt) particles at random points on the curve
//  2. integrates and retires particles via ParticlePool.Update
//
// The fractional remainder of rate·dt is dropped every frame, not carried
// over, so the effective rate is slightly below the nominal one at high
// frame rates.
type EmitterSystem struct {
	pool     *particle.ParticlePool
	settings *config.ParticleSettings
	rng      *rand.Rand

	// rate 每秒发射数（容量/寿命），构造时确定
	rate float64

	// TotalLaunched 累计发射的粒子数
	TotalLaunched int
}

// NewEmitterSystem creates an emitter feeding pool.
//
// settings is shared with the pool; its Velocity is read on every spawn so
// runtime tweaks take effect immediately. rng may be nil, in which case a
// randomly seeded generator is used.
func NewEmitterSystem(pool *particle.ParticlePool, settings *config.ParticleSettings, rng *rand.Rand) *EmitterSystem {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	es := &EmitterSystem{
		pool:     pool,
		settings: settings,
		rng:      rng,
		rate:     float64(pool.Cap()) / pool.Duration(),
	}
	log.Printf("[EmitterSystem] capacity=%d duration=%.2fs rate=%.1f/s",
		pool.Cap(), pool.Duration(), es.rate)
	return es
}

// Rate returns the nominal emission rate in particles per second.
func (es *EmitterSystem) Rate() float64 {
	return es.rate
}

// SpawnCount returns how many particles a frame of dt seconds emits.
func (es *EmitterSystem) SpawnCount(dt float64) int {
	if dt <= 0 {
		return 0
	}
	return int(math.Floor(es.rate * dt))
}

// Update emits the particles for a frame of dt seconds around the emitter
// center (centerX, centerY) in surface coordinates, then advances the pool.
func (es *EmitterSystem) Update(dt, centerX, centerY float64) {
	es.Emit(es.SpawnCount(dt), centerX, centerY)
	es.pool.Update(dt)
}

// Emit spawns n particles at uniformly random curve parameters.
//
// The curve is Y-up while the surface is Y-down, so the Y components of both
// position and velocity are flipped.
func (es *EmitterSystem) Emit(n int, centerX, centerY float64) {
	for i := 0; i < n; i++ {
		pos := heart.Sample(es.rng.Float64())
		dir := pos.Clone()
		dir.SetLength(es.settings.Velocity)
		es.pool.Spawn(centerX+pos.X, centerY-pos.Y, dir.X, -dir.Y)
	}
	es.TotalLaunched += n
}
