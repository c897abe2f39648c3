package omegacache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := NewDirStore(dir)

	w := []uint64{1, 22, 96, 75, 1, 22, 96, 75}
	require.NoError(t, Save(s, uint64(22), w))
	require.True(t, s.Exists(CacheName(uint64(22))))

	got, err := Load[uint64](s, 22, len(w))
	require.NoError(t, err)
	require.Equal(t, w, got)
}
