package pjson

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompactScalars(t *testing.T) {
	require.Equal(t, `"a"`, String("a").compact())
	require.Equal(t, "5", Int(5).compact())
	require.Equal(t, "true", Bool(true).compact())
	require.Equal(t, "2.5", Number(2.5).compact())
}

func TestCompactArrayAndObject(t *testing.T) {
	require.Equal(t, "[1,2]", Array{Int(1), Int(2)}.compact())
	require.Equal(t, `{"a":1}`, Object{{Key: "a", Value: Int(1)}}.compact())
}

func TestRenderFitsOnOneLineWhenShort(t *testing.T) {
	require.Equal(t, "[1,2,3]", Render(Array{Int(1), Int(2), Int(3)}, 80))
	require.Equal(t, `{"a":1}`, Render(Object{{Key: "a", Value: Int(1)}}, 80))
}

func TestRenderFoldsArrayOnePerLine(t *testing.T) {
	got := Render(Array{Int(1), Int(2), Int(3)}, 3)
	want := "[\n  1,\n  2,\n  3\n]"
	require.Equal(t, want, got)
}

func TestRenderFoldsObjectOnePerLine(t *testing.T) {
	got := Render(Object{{Key: "a", Value: Int(1)}, {Key: "b", Value: Int(2)}}, 3)
	want := "{\n  \"a\": 1,\n  \"b\": 2\n}"
	require.Equal(t, want, got)
}

func TestRenderKeepsShortNestedValueOnOneLine(t *testing.T) {
	nested := Object{{Key: "xs", Value: Array{Int(1), Int(2)}}}
	got := Render(nested, 80)
	require.Equal(t, `{"xs":[1,2]}`, got)
}
