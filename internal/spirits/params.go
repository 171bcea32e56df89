package spirits

import "time"

// Params holds the steering and spawning tunables.
type Params struct {
	CellSize float64 `yaml:"cellSize"`

	MaxOccupants int `yaml:"maxOccupants"`
	SpawnCap     int `yaml:"spawnCap"`

	SpawnInterval     time.Duration `yaml:"-"`
	MinSpawnInterval  time.Duration `yaml:"-"`
	SpawnIntervalStep time.Duration `yaml:"-"`

	LoseCount        float64 `yaml:"loseCount"`
	CongestionStep   float64 `yaml:"congestionStep"`
	CongestionRelief float64 `yaml:"congestionRelief"`

	Speed            float64 `yaml:"speed"`
	Smoothing        float64 `yaml:"smoothing"`
	SeparationRadius float64 `yaml:"separationRadius"`
	EndJitter        float64 `yaml:"endJitter"`
	CandidateJitter  float64 `yaml:"candidateJitter"`
	OndulationFreq   float64 `yaml:"ondulationFreq"`
	OndulationAmp    float64 `yaml:"ondulationAmp"`
}

// DefaultParams returns the standard tuning.
func DefaultParams() Params {
	return Params{
		CellSize:          72,
		MaxOccupants:      3,
		SpawnCap:          2,
		SpawnInterval:     1200 * time.Millisecond,
		MinSpawnInterval:  500 * time.Millisecond,
		SpawnIntervalStep: 5 * time.Millisecond,
		LoseCount:         30,
		CongestionStep:    1,
		CongestionRelief:  2,
		Speed:             200,
		Smoothing:         0.1,
		SeparationRadius:  50,
		EndJitter:         0.5,
		CandidateJitter:   0.1,
		OndulationFreq:    1.5,
		OndulationAmp:     0.05,
	}
}

// spawnCap is the per-start occupancy limit for spawning, never above the
// per-cell limit.
func (p Params) spawnCap() int {
	if p.SpawnCap > p.MaxOccupants {
		return p.MaxOccupants
	}
	return p.SpawnCap
}
