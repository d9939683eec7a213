package domain

// Metrics holds the three traffic thresholds attached to an edge.
type Metrics struct {
	Normal  float64 `json:"normal" yaml:"normal"`
	Warning float64 `json:"warning" yaml:"warning"`
	Danger  float64 `json:"danger" yaml:"danger"`
}

// DefaultMetrics is used for every edge until the source format carries
// per-connection traffic data.
func DefaultMetrics() Metrics {
	return Metrics{Normal: 100, Warning: 10, Danger: 1}
}

func NewMetrics(normal, warning, danger float64) Metrics {
	return Metrics{Normal: normal, Warning: warning, Danger: danger}
}
