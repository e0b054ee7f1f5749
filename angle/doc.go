// Package angle provides unit-tagged angle values, Rad and Deg, for
// type-safe, self-documenting rotation inputs and outputs.
//
// Conversions multiply by π/180 or 180/π and round-trip up to floating-point
// rounding. Arithmetic never fails.
//
// Normalization convention:
//   - Normalize maps into [0, full turn), e.g. [0, 2π) for Rad.
//   - NormalizeSigned maps into [-half turn, half turn), e.g. [-π, π).
//
// Every rotation constructor in lvgeom takes Rad; pass d.Rad() when you hold
// a Deg, or use ToRad to accept either unit through the Angle interface.
package angle
