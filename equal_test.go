package json_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	json "github.com/AeonJh/leptjson-study"
)

func mustParse(t *testing.T, text string) *json.Value {
	t.Helper()
	v, err := json.Parse(text)
	require.NoError(t, err)
	return v
}

func TestIsEqual(t *testing.T) {
	a := mustParse(t, `{"a":1,"b":[1,2,"x"]}`)
	b := mustParse(t, `{"b":[1,2,"x"],"a":1}`)
	assert.True(t, json.IsEqual(a, b))

	c := mustParse(t, `{"a":1,"b":[1,2,"y"]}`)
	assert.False(t, json.IsEqual(a, c))
}

func TestIsEqualNumberEdgeCases(t *testing.T) {
	posZero := json.New()
	posZero.SetNumber(0)
	negZero := json.New()
	negZero.SetNumber(math.Copysign(0, -1))
	assert.True(t, json.IsEqual(posZero, negZero))

	nanA := json.New()
	nanA.SetNumber(math.NaN())
	nanB := json.New()
	nanB.SetNumber(math.NaN())
	assert.False(t, json.IsEqual(nanA, nanB))
	assert.False(t, json.IsEqual(nanA, nanA))
}

func TestEqualMethodForGoCmp(t *testing.T) {
	a := mustParse(t, `[1,2,{"x":3}]`)
	b := mustParse(t, `[1,2,{"x":3}]`)
	assert.Empty(t, cmp.Diff(a, b))

	c := mustParse(t, `[1,2,{"x":4}]`)
	assert.NotEmpty(t, cmp.Diff(a, c))
}

func TestCopyIsDeepAndIndependent(t *testing.T) {
	src := mustParse(t, `{"a":[1,2,3]}`)
	dst := json.New()
	json.Copy(dst, src)

	assert.True(t, json.IsEqual(src, dst))

	dst.FindObjectValue("a").GetArrayElement(0).SetNumber(99)
	assert.Equal(t, float64(1), src.FindObjectValue("a").GetArrayElement(0).GetNumber())
	assert.Equal(t, float64(99), dst.FindObjectValue("a").GetArrayElement(0).GetNumber())
}

func TestMoveTransfersAndResetsSource(t *testing.T) {
	src := mustParse(t, `[1,2,3]`)
	want := mustParse(t, `[1,2,3]`)
	dst := json.New()

	json.Move(dst, src)
	assert.True(t, json.IsEqual(want, dst))
	assert.Equal(t, json.Null, src.Type())
}

func TestSwapIsInvolution(t *testing.T) {
	a := mustParse(t, `1`)
	b := mustParse(t, `"x"`)
	aOrig := mustParse(t, `1`)
	bOrig := mustParse(t, `"x"`)

	json.Swap(a, b)
	assert.True(t, json.IsEqual(a, bOrig))
	assert.True(t, json.IsEqual(b, aOrig))

	json.Swap(a, b)
	assert.True(t, json.IsEqual(a, aOrig))
	assert.True(t, json.IsEqual(b, bOrig))
}
