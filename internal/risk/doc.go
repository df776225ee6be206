// Package risk aggregates per-scanner finding counts into a bounded
// document risk score. The score is purely additive with saturated
// per-category contributions, so no single noisy scanner can push a
// document past its category cap.
package risk
