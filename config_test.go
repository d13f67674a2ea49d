package mpi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetDefaultConfigAffectsGrow(t *testing.T) {
	orig := defaultConfig
	defer SetDefaultConfig(orig)

	SetDefaultConfig(Config{MaxLimbs: 1, MaxWindow: 6})
	x := New()
	err := Grow(x, 2)
	require.Error(t, err)
	var me *MPIError
	require.ErrorAs(t, err, &me)
	require.Equal(t, ErrAllocFailed, me.Code)
}
