package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMap(t *testing.T) {
	t.Run("rejects shared coordinates", func(t *testing.T) {
		_, err := NewMap(
			NewRoom("hall", At(0, 0), ""),
			NewRoom("porch", At(0, 0), ""),
		)
		assert.ErrorIs(t, err, ErrDuplicateCoordinate)
	})

	t.Run("rejects shared names", func(t *testing.T) {
		_, err := NewMap(
			NewRoom("hall", At(0, 0), ""),
			NewRoom("hall", At(0, 1), ""),
		)
		assert.ErrorIs(t, err, ErrDuplicateRoom)
	})

	t.Run("indexes by coordinate", func(t *testing.T) {
		hall := NewRoom("hall", At(2, -1), "a hall")
		m, err := NewMap(hall)
		require.NoError(t, err)

		got, ok := m.RoomAt(At(2, -1))
		assert.True(t, ok)
		assert.Equal(t, hall, got)

		_, ok = m.RoomAt(At(0, 0))
		assert.False(t, ok)
		assert.Equal(t, 1, m.Len())
	})
}

func TestConnect(t *testing.T) {
	a := NewRoom("a", At(0, 0), "")
	b := NewRoom("b", At(0, 1), "")
	c := NewRoom("c", At(1, 1), "")
	outsider := NewRoom("outsider", At(0, -1), "")

	newMap := func(t *testing.T) *Map {
		m, err := NewMap(a, b, c)
		require.NoError(t, err)
		return m
	}

	t.Run("adjacent rooms", func(t *testing.T) {
		m := newMap(t)
		require.NoError(t, m.Connect(a, b))
		assert.True(t, m.Connected(a, b))
		assert.False(t, m.Connected(b, a), "connections are directional")
	})

	t.Run("diagonal is not adjacent", func(t *testing.T) {
		m := newMap(t)
		assert.ErrorIs(t, m.Connect(a, c), ErrNotAdjacent)
		assert.False(t, m.Connected(a, c))
	})

	t.Run("unknown origin", func(t *testing.T) {
		m := newMap(t)
		assert.ErrorIs(t, m.Connect(outsider, a), ErrUnknownRoom)
	})

	t.Run("unknown target", func(t *testing.T) {
		m := newMap(t)
		assert.ErrorIs(t, m.Connect(a, outsider), ErrUnknownRoom)
	})

	t.Run("same coordinates but different room is unknown", func(t *testing.T) {
		m := newMap(t)
		impostor := NewRoom("b2", b.Coord(), "")
		assert.ErrorIs(t, m.Connect(a, impostor), ErrUnknownRoom)
	})

	t.Run("failed call stores nothing", func(t *testing.T) {
		m := newMap(t)
		assert.Error(t, m.Connect(b, a, outsider))
		assert.False(t, m.Connected(b, a))
	})

	t.Run("connect both", func(t *testing.T) {
		m := newMap(t)
		require.NoError(t, m.ConnectBoth(b, c))
		assert.True(t, m.Connected(b, c))
		assert.True(t, m.Connected(c, b))
		assert.NoError(t, m.Validate())
	})

	t.Run("validate catches one-way passages", func(t *testing.T) {
		m := newMap(t)
		require.NoError(t, m.Connect(a, b))
		assert.ErrorIs(t, m.Validate(), ErrAsymmetric)
	})
}

func TestManhattan(t *testing.T) {
	cases := []struct {
		a, b Coord
		want int
	}{
		{At(0, 0), At(0, 0), 0},
		{At(0, 0), At(0, 1), 1},
		{At(-1, 2), At(0, 2), 1},
		{At(0, 0), At(1, 1), 2},
		{At(-2, 2), At(0, 3), 3},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Manhattan(tc.a, tc.b), "%s-%s", tc.a, tc.b)
		assert.Equal(t, tc.want, Manhattan(tc.b, tc.a))
		assert.Equal(t, tc.want == 1, Adjacent(tc.a, tc.b))
	}
}

func TestNeighbours(t *testing.T) {
	m, _, err := House()
	require.NoError(t, err)

	corridor, ok := m.Room("corridor")
	require.True(t, ok)

	var names []string
	for _, r := range m.Neighbours(corridor) {
		names = append(names, r.Name())
	}
	assert.Equal(t, []string{"children's bedroom", "bathroom", "dining room", "master bedroom"}, names)
}
