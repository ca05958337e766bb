package geometry

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"lattice/src/exact/rational"
)

func TestNewDirectionNormalizes(t *testing.T) {
	for idx, tc := range []struct {
		x, y, z int64
		want    [3]int64
	}{
		{2, 4, 6, [3]int64{1, 2, 3}},
		{1, 2, 3, [3]int64{1, 2, 3}},
		{-2, 4, -6, [3]int64{-1, 2, -3}},
		{0, 0, 5, [3]int64{0, 0, 1}},
		{0, -10, 0, [3]int64{0, -1, 0}},
		{7, 7, 7, [3]int64{1, 1, 1}},
		// The null direction stays null.
		{0, 0, 0, [3]int64{0, 0, 0}},
	} {
		t.Run(fmt.Sprintf("%d/(%d,%d,%d)", idx, tc.x, tc.y, tc.z), func(t *testing.T) {
			d := NewDirection(tc.x, tc.y, tc.z)
			require.Equal(t, tc.want, d.Components())
			for i := 0; i < 3; i++ {
				require.Equal(t, tc.want[i], d.At(i))
			}
		})
	}
}

func TestDirectionEqualIgnoresMagnitude(t *testing.T) {
	require.True(t, NewDirection[int64](2, 4, 6).Equal(NewDirection[int64](3, 6, 9)))
	require.False(t, NewDirection[int64](2, 4, 6).Equal(NewDirection[int64](-2, -4, -6)))
	require.True(t, NewDirection[int64](2, 4, 6).Neg().Equal(NewDirection[int64](-1, -2, -3)))
}

func TestDirectionFromRat(t *testing.T) {
	x := r12(1, 2)
	y := r12(1, 3)
	z := r12(1, 4)

	// Proportions 1/2 : 1/3 : 1/4 clear to 6 : 4 : 3 over lcm 12.
	d := DirectionFromRat(x, y, z)
	require.Equal(t, [3]int64{6, 4, 3}, d.Components())

	// Whole-valued coordinates reduce like plain integers.
	two := rational.FromInt[int64, twelfths](2)
	four := rational.FromInt[int64, twelfths](4)
	require.Equal(t, [3]int64{1, 2, 0}, DirectionFromRat(two, four, rat12{}).Components())
}

func TestDirectionFirstNonZeroAxis(t *testing.T) {
	require.Equal(t, 0, NewDirection[int64](5, 0, 1).FirstNonZeroAxis())
	require.Equal(t, 1, NewDirection[int64](0, -2, 1).FirstNonZeroAxis())
	require.Equal(t, 2, NewDirection[int64](0, 0, 9).FirstNonZeroAxis())
	require.Equal(t, 3, NewDirection[int64](0, 0, 0).FirstNonZeroAxis())
}

func TestDirectionLess(t *testing.T) {
	a := NewDirection[int64](1, 2, 3)
	b := NewDirection[int64](1, 3, 0)

	require.True(t, a.Less(b))
	require.False(t, b.Less(a))
	require.False(t, a.Less(a))

	// Negation sorts before the positive representative.
	require.True(t, a.Neg().Less(a))
}

func TestDirectionString(t *testing.T) {
	require.Equal(t, "<1, 2, 3>", NewDirection[int64](2, 4, 6).String())
	require.Equal(t, "<0, 0, 0>", NewDirection[int64](0, 0, 0).String())
}

func TestMutualOrthogonal(t *testing.T) {
	x := NewDirection[int64](1, 0, 0)
	y := NewDirection[int64](0, 1, 0)
	z := NewDirection[int64](0, 0, 1)

	require.True(t, MutualOrthogonal(x, y, false).Equal(z))
	require.True(t, MutualOrthogonal(x, y, true).Equal(z.Neg()))
	require.True(t, MutualOrthogonal(y, z, false).Equal(x))

	// Scaling the inputs does not change the answer.
	require.True(t, MutualOrthogonal(NewDirection[int64](5, 0, 0), NewDirection[int64](0, 7, 0), false).Equal(z))

	// Parallel or null inputs degenerate to the null direction.
	null := Direction[int64]{}
	require.True(t, MutualOrthogonal(x, x, false).Equal(null))
	require.True(t, MutualOrthogonal(x, null, false).Equal(null))
}
