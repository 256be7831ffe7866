package sizing

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTooBig = errors.New("too big")

func TestMulInt(t *testing.T) {
	t.Parallel()

	v, ok := MulInt(188, 1000)
	assert.True(t, ok)
	assert.Equal(t, 188000, v)

	v, ok = MulInt(0, math.MaxInt)
	assert.True(t, ok)
	assert.Zero(t, v)

	_, ok = MulInt(math.MaxInt/2+1, 2)
	assert.False(t, ok)

	_, ok = MulInt(-1, 4)
	assert.False(t, ok)
}

func TestInRange(t *testing.T) {
	t.Parallel()

	assert.True(t, InRange(0, 4, 4))
	assert.True(t, InRange(4, 0, 4))
	assert.False(t, InRange(1, 4, 4))
	assert.False(t, InRange(-1, 1, 4))
	assert.False(t, InRange(2, math.MaxInt, 4))
}

func TestAddUint64(t *testing.T) {
	t.Parallel()

	_, ok := AddUint64(math.MaxUint64, 1)
	assert.False(t, ok)

	sum, ok := AddUint64(2, 3)
	assert.True(t, ok)
	assert.Equal(t, uint64(5), sum)
}

func TestToInt(t *testing.T) {
	t.Parallel()

	_, err := ToInt(math.MaxUint64, errTooBig)
	assert.ErrorIs(t, err, errTooBig)

	v, err := ToInt64(42, errTooBig)
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)
}

func TestReadAllWithLimit(t *testing.T) {
	t.Parallel()

	data, err := ReadAllWithLimit(strings.NewReader("abcd"), 4, errTooBig)
	require.NoError(t, err)
	assert.Equal(t, []byte("abcd"), data)

	_, err = ReadAllWithLimit(strings.NewReader("abcde"), 4, errTooBig)
	assert.ErrorIs(t, err, errTooBig)
}
