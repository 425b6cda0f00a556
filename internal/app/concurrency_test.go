package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallel(t *testing.T) {
	t.Run("keeps result order", func(t *testing.T) {
		got, err := Parallel(context.Background(),
			func(context.Context) (int, error) { return 1, nil },
			func(context.Context) (int, error) { return 2, nil },
			func(context.Context) (int, error) { return 3, nil },
		)

		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, got)
	})

	t.Run("first error cancels the rest", func(t *testing.T) {
		boom := errors.New("boom")

		_, err := Parallel(context.Background(),
			func(context.Context) (int, error) { return 0, boom },
			func(ctx context.Context) (int, error) {
				<-ctx.Done()
				return 0, ctx.Err()
			},
		)

		require.ErrorIs(t, err, boom)
	})
}

func TestParallel2(t *testing.T) {
	s, n, err := Parallel2(context.Background(),
		func(context.Context) (string, error) { return "a", nil },
		func(context.Context) (int64, error) { return 7, nil },
	)

	require.NoError(t, err)
	assert.Equal(t, "a", s)
	assert.Equal(t, int64(7), n)

	_, n, err = Parallel2(context.Background(),
		func(context.Context) (string, error) { return "", errors.New("fail") },
		func(context.Context) (int64, error) { return 7, nil },
	)

	require.Error(t, err)
	assert.Zero(t, n)
}

func TestParallel3(t *testing.T) {
	a, b, c, err := Parallel3(context.Background(),
		func(context.Context) (int, error) { return 1, nil },
		func(context.Context) (bool, error) { return true, nil },
		func(context.Context) (map[int]int, error) { return map[int]int{1: 1}, nil },
	)

	require.NoError(t, err)
	assert.Equal(t, 1, a)
	assert.True(t, b)
	assert.Len(t, c, 1)
}
