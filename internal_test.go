package pretty

import (
	"bytes"
	"errors"
	"reflect"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInternalWrite = errors.New("write failed")

type errWriterInternal struct{}

func (e *errWriterInternal) Write([]byte) (int, error) {
	return 0, errInternalWrite
}

func TestRewriteSpelling(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		name     string
		spelling string
		want     string
	}{
		"current spelling":  {name: "[]interface {}", spelling: "interface {}", want: "[]any"},
		"several":           {name: "map[interface {}]interface {}", spelling: "interface {}", want: "map[any]any"},
		"compact spelling":  {name: "[]interface{}", spelling: "interface{}", want: "[]any"},
		"already aliased":   {name: "[]any", spelling: "any", want: "[]any"},
		"no spelling":          {name: "[]int", spelling: "", want: "[]int"},
		"non-empty iface":   {name: "interface { M() }", spelling: "interface {}", want: "interface { M() }"},
		"struct is kept":    {name: "struct {}", spelling: "interface {}", want: "struct {}"},
		"qualified is kept": {name: "pretty.Pair[int,interface {}]", spelling: "interface {}", want: "pretty.Pair[int,any]"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, rewriteSpelling(tt.name, tt.spelling, "any"))
		})
	}
}

func TestEmptyInterfaceSpelling(t *testing.T) {
	t.Parallel()
	assert.Equal(t, reflect.TypeOf([]any{}).Elem().String(), emptyInterface)
}

func TestInfoOfCached(t *testing.T) {
	t.Parallel()
	typ := reflect.TypeFor[[][]int]()
	first := infoOf(typ)
	second := infoOf(typ)
	assert.Equal(t, first, second)
	assert.Equal(t, typeInfo{name: "[][]int", shape: ShapeRange, nests: true}, first)
}

func TestNests(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		typ  reflect.Type
		want bool
	}{
		"flat slice":       {typ: reflect.TypeFor[[]int](), want: false},
		"slice of slices":  {typ: reflect.TypeFor[[][]int](), want: true},
		"slice of structs": {typ: reflect.TypeFor[[]struct{ A int }](), want: true},
		"slice of strings": {typ: reflect.TypeFor[[]string](), want: false},
		"slice of any":     {typ: reflect.TypeFor[[]any](), want: false},
		"map of slices":    {typ: reflect.TypeFor[map[int][]int](), want: false},
		"seq of slices":    {typ: reflect.TypeFor[func(func([]int) bool)](), want: true},
		"seq2 of slices":   {typ: reflect.TypeFor[func(func(int, []int) bool)](), want: false},
		"flat struct":      {typ: reflect.TypeFor[struct{ A, B int }](), want: false},
		"last field nests": {typ: reflect.TypeFor[struct {
			A int
			B [2]int
		}](), want: true},
		"pair": {typ: reflect.TypeFor[Pair[[]int, []int]](), want: false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, nests(tt.typ, classify(tt.typ)))
		})
	}
}

func TestCompositePairsEnterAndLeave(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	c := p.open(Punctuation{Prefix: "[", Delimiter: ",", Suffix: "]", Indent: true}, true)
	require.True(t, c.next())
	p.write("a")
	assert.Equal(t, 1, p.Depth())
	require.True(t, c.next())
	p.write("b")
	assert.Equal(t, 1, p.Depth())
	c.close()
	assert.Equal(t, 0, p.Depth())
	assert.Equal(t, "[\n    a\n    ,b\n]", buf.String())
}

func TestCompositeEmptyDoesNotIndent(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	c := p.open(Punctuation{Prefix: "[", Suffix: "]", Indent: true}, true)
	c.close()
	assert.Equal(t, 0, p.Depth())
	assert.Equal(t, "[]", buf.String())
}

func TestCompositeStopsAfterError(t *testing.T) {
	t.Parallel()
	p := NewPrinter(&errWriterInternal{})
	c := p.open(Punctuation{Prefix: "[", Suffix: "]", Indent: true}, true)
	assert.False(t, c.next())
	c.close()
	assert.Equal(t, 0, p.Depth())
	assert.ErrorIs(t, p.Err(), errInternalWrite)
}

func TestIndentController(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	p := NewPrinter(&buf, WithIndent(2, '-'))
	p.enter()
	p.enter()
	p.separator()
	p.leave()
	p.leave()
	assert.Equal(t, 0, p.Depth())
	assert.Equal(t, "\n--\n----\n----\n--\n", buf.String())
}

func TestCompareKeys(t *testing.T) {
	t.Parallel()
	sorted := func(m any, natural bool) []any {
		var out []any
		for _, k := range sortedKeys(reflect.ValueOf(m), natural) {
			out = append(out, k.Interface())
		}
		return out
	}
	assert.Equal(t, []any{-1, 0, 5}, sorted(map[int]bool{5: true, -1: true, 0: true}, false))
	assert.Equal(t, []any{uint(1), uint(9)}, sorted(map[uint]bool{9: true, 1: true}, false))
	assert.Equal(t, []any{0.5, 1.5}, sorted(map[float64]bool{1.5: true, 0.5: true}, false))
	assert.Equal(t, []any{false, true}, sorted(map[bool]int{true: 1, false: 0}, false))
	assert.Equal(t, []any{"x10", "x9"}, sorted(map[string]int{"x9": 1, "x10": 2}, false))
	assert.Equal(t, []any{"x9", "x10"}, sorted(map[string]int{"x9": 1, "x10": 2}, true))
	assert.Equal(t, []any{[2]int{1, 2}, [2]int{1, 3}}, sorted(map[[2]int]bool{{1, 3}: true, {1, 2}: true}, false))
	assert.Equal(t, []any{complex(1, 1), complex(1, 2)}, sorted(map[complex128]bool{complex(1, 2): true, complex(1, 1): true}, false))

	type key struct {
		A string
		B int
	}
	assert.Equal(t, []any{key{"a", 2}, key{"b", 1}}, sorted(map[key]bool{{"b", 1}: true, {"a", 2}: true}, false))
	assert.Equal(t, []any{nil, 1, "a"}, sorted(map[any]bool{"a": true, nil: true, 1: true}, false))
}

func TestChanToIter(t *testing.T) {
	t.Parallel()
	ch := make(chan string, 2)
	ch <- "a"
	ch <- "b"
	close(ch)
	assert.Equal(t, []string{"a", "b"}, slices.Collect(chanToIter(ch)))
}

func TestChanToIterStopsEarly(t *testing.T) {
	t.Parallel()
	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	ch <- 3
	close(ch)
	for v := range chanToIter(ch) {
		assert.Equal(t, 1, v)
		break
	}
	assert.Equal(t, 2, <-ch)
}
