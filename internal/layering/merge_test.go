package layering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Color *string
	Size  *string
	Bold  *bool
	Tags  []string
	Meta  map[string]int
	Inner *inner
	plain string
}

type inner struct {
	Align *string
	Width *string
}

func ptr[T any](v T) *T { return &v }

func TestMergeStrongerFieldsWin(t *testing.T) {
	strong := sample{Color: ptr("#ff0000")}
	weak := sample{Color: ptr("#333333"), Size: ptr("16px"), Bold: ptr(false)}

	got := Merge(strong, weak)

	require.NotNil(t, got.Color)
	assert.Equal(t, "#ff0000", *got.Color)
	require.NotNil(t, got.Size)
	assert.Equal(t, "16px", *got.Size)
	require.NotNil(t, got.Bold)
	assert.False(t, *got.Bold)
}

func TestMergeExplicitZeroIsSet(t *testing.T) {
	strong := sample{Bold: ptr(false), Color: ptr("")}
	weak := sample{Bold: ptr(true), Color: ptr("#333333")}

	got := Merge(strong, weak)

	assert.False(t, *got.Bold)
	assert.Equal(t, "", *got.Color)
}

func TestMergeNestedStructPointers(t *testing.T) {
	strong := sample{Inner: &inner{Align: ptr("center")}}
	weak := sample{Inner: &inner{Align: ptr("left"), Width: ptr("1px")}}

	got := Merge(strong, weak)

	require.NotNil(t, got.Inner)
	assert.Equal(t, "center", *got.Inner.Align)
	assert.Equal(t, "1px", *got.Inner.Width)
}

func TestMergeMapsAndSlices(t *testing.T) {
	strong := sample{Meta: map[string]int{"a": 2}}
	weak := sample{Meta: map[string]int{"a": 1, "b": 1}, Tags: []string{"x"}}

	got := Merge(strong, weak)

	assert.Equal(t, map[string]int{"a": 2, "b": 1}, got.Meta)
	assert.Equal(t, []string{"x"}, got.Tags)
}

func TestMergeDoesNotAlias(t *testing.T) {
	strong := sample{Color: ptr("#ff0000")}
	weak := sample{Size: ptr("16px")}

	got := Merge(strong, weak)
	*got.Color = "#000000"
	*got.Size = "1px"

	assert.Equal(t, "#ff0000", *strong.Color)
	assert.Equal(t, "16px", *weak.Size)
}

func TestMergeThreeLayers(t *testing.T) {
	top := sample{Color: ptr("a")}
	middle := sample{Color: ptr("b"), Size: ptr("b")}
	bottom := sample{Color: ptr("c"), Size: ptr("c"), Bold: ptr(true)}

	got := Merge(top, middle, bottom)

	assert.Equal(t, "a", *got.Color)
	assert.Equal(t, "b", *got.Size)
	assert.True(t, *got.Bold)
}

func TestMergeEmpty(t *testing.T) {
	got := Merge[sample]()
	assert.Nil(t, got.Color)
}

func TestCloneDetachesPointers(t *testing.T) {
	original := sample{Color: ptr("#111111"), Tags: []string{"a"}, plain: "kept-zero"}

	cloned := Clone(original)
	*cloned.Color = "#222222"
	cloned.Tags[0] = "b"

	assert.Equal(t, "#111111", *original.Color)
	assert.Equal(t, "a", original.Tags[0])
	assert.Equal(t, "", cloned.plain)
}
