package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector(t *testing.T) {
	// Scale / Add chaining
	{
		v := NewVector(3, []float64{1, 2, 3})
		v.Scale(2).Add(1)
		assert.Equal(t, []float64{3, 5, 7}, v.DataP())
	}
	// Min / Max / Sum
	{
		v := NewVector(4, []float64{-2, 7, 0, 3})
		assert.Equal(t, -2., v.Min())
		assert.Equal(t, 7., v.Max())
		assert.Equal(t, 8., v.Sum())
		assert.Equal(t, 7., v.MaxAbs())
	}
	// Copy is independent of the original
	{
		v := NewVector(2, []float64{1, 2})
		w := v.Copy()
		w.Set(0, 100)
		assert.Equal(t, 1., v.AtVec(0))
	}
	// Indexed assignment and subset
	{
		v := NewVector(5)
		v.AssignScalar(Index{0, 2, 4}, 9)
		assert.Equal(t, []float64{9, 0, 9, 0, 9}, v.DataP())
		assert.Equal(t, []float64{9, 9}, v.Subset(Index{2, 4}).DataP())
	}
	// Apply
	{
		v := NewVector(3, []float64{-1, 4, -9})
		v.Apply(math.Abs)
		assert.Equal(t, []float64{1, 4, 9}, v.DataP())
	}
	// Zero resets in place
	{
		v := NewVector(3, []float64{1, 2, 3})
		v.Zero()
		assert.Equal(t, 0., v.MaxAbs())
	}
}

func TestIndex(t *testing.T) {
	// NewRange is inclusive
	{
		I := NewRange(2, 5)
		assert.Equal(t, Index{2, 3, 4, 5}, I)
	}
	// Apply mutates in place, Copy does not share storage
	{
		I := NewRange(0, 3)
		J := I.Copy().Apply(func(val int) int { return 2 * val })
		assert.Equal(t, Index{0, 2, 4, 6}, J)
		assert.Equal(t, Index{0, 1, 2, 3}, I)
	}
	{
		I := NewIndexConst(3, -1)
		assert.Equal(t, Index{-1, -1, -1}, I)
		assert.True(t, I.Contains(-1))
		assert.False(t, I.Contains(0))
	}
}
