package scratch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilderChain(t *testing.T) {
	Init(64)
	m := Mark()
	F().S("fps ").I(60).C(' ').F32(16.6667, 2).R('…')
	require.Equal(t, "fps 60 16.67…", StringFrom(m))
}

func TestMarkSlicesOutRuns(t *testing.T) {
	Init(64)
	F().S("prefix")
	m := Mark()
	F().S("a=").I(-3)
	require.Equal(t, "a=-3", StringFrom(m))
	require.Equal(t, "a=-3", ViewFrom(m))
	require.Equal(t, len("prefixa=-3"), Len())
}

func TestViewFromEmptyRun(t *testing.T) {
	Init(64)
	F().S("x")
	require.Equal(t, "", ViewFrom(Mark()))
}

func TestResetKeepsCapacity(t *testing.T) {
	Init(32)
	F().S("0123456789")
	c := Cap()
	Reset()
	require.Equal(t, 0, Len())
	require.Equal(t, c, Cap())

	m := Mark()
	F().I(7)
	require.Equal(t, "7", StringFrom(m))
}

func TestInitDefaultsCapacity(t *testing.T) {
	Init(0)
	require.GreaterOrEqual(t, Cap(), 1024)
}
