package carbon

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEstimate(t *testing.T) {
	energy, co2 := Estimate()
	require.Equal(t, EnergyPerQueryKWh, energy)
	// 精確相等：co2 就是 energy * factor，不允許近似
	require.Equal(t, EnergyPerQueryKWh*GridEmissionFactor, co2)
	require.Equal(t, 0.00034, energy)
}

func TestEstimateIsStable(t *testing.T) {
	e1, c1 := Estimate()
	e2, c2 := Estimate()
	require.Equal(t, e1, e2)
	require.Equal(t, c1, c2)
}
