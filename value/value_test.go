package value_test

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/KimNorgaard/go-lyml/value"
)

func TestMap_SetKeepsFirstPosition(t *testing.T) {
	m := value.NewMap()
	m.Set("b", value.Int(1))
	m.Set("a", value.Int(2))
	m.Set("b", value.Int(3))

	require.Equal(t, []string{"b", "a"}, m.Keys())
	v, ok := m.Get("b")
	require.True(t, ok)
	require.Equal(t, value.Int(3), v)
	require.Equal(t, 2, m.Len())
}

func TestMap_SetNilStoresNull(t *testing.T) {
	m := value.NewMap()
	m.Set("k", nil)
	v, ok := m.Get("k")
	require.True(t, ok)
	require.Equal(t, value.Null{}, v)
}

func TestMap_ZeroValueIsUsable(t *testing.T) {
	var m value.Map
	m.Set("x", value.Bool(true))
	require.Equal(t, 1, m.Len())
	require.Equal(t, "{x: true}", m.String())
}

func TestEqual(t *testing.T) {
	m1 := value.NewMap()
	m1.Set("a", value.List{value.Int(1), value.String("x")})
	m2 := value.NewMap()
	m2.Set("a", value.List{value.Int(1), value.String("x")})
	reordered := value.NewMap()
	reordered.Set("b", value.Null{})
	reordered.Set("a", value.Null{})
	ordered := value.NewMap()
	ordered.Set("a", value.Null{})
	ordered.Set("b", value.Null{})

	tests := []struct {
		name string
		a, b value.Value
		want bool
	}{
		{"nil and null", nil, value.Null{}, true},
		{"same int", value.Int(1), value.Int(1), true},
		{"int and float", value.Int(1), value.Float(1), false},
		{"strings", value.String("a"), value.String("b"), false},
		{"lists", value.List{value.Bool(true)}, value.List{value.Bool(true)}, true},
		{"list lengths", value.List{}, value.List{value.Null{}}, false},
		{"maps", m1, m2, true},
		{"map order", reordered, ordered, false},
		{"empty maps", value.NewMap(), &value.Map{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, value.Equal(tt.a, tt.b))
		})
	}
}

func TestInterface(t *testing.T) {
	m := value.NewMap()
	m.Set("n", value.Null{})
	m.Set("l", value.List{value.Int(1), value.Float(2.5), value.String("s"), value.Bool(false)})

	require.Equal(t, map[string]any{
		"n": nil,
		"l": []any{int64(1), 2.5, "s", false},
	}, value.Interface(m))
	require.Nil(t, value.Interface(nil))
}

func TestKind(t *testing.T) {
	require.Equal(t, value.KindMap, value.NewMap().Kind())
	require.Equal(t, "integer", value.Int(0).Kind().String())
	require.Equal(t, "Kind(42)", value.Kind(42).String())
}

func TestMarshalJSON_KeepsOrder(t *testing.T) {
	m := value.NewMap()
	m.Set("zeta", value.Int(1))
	m.Set("alpha", value.List{value.String("x"), value.Null{}})
	m.Set("mid", value.Bool(true))

	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(m)
	require.NoError(t, err)
	require.JSONEq(t, `{"zeta":1,"alpha":["x",null],"mid":true}`, string(data))
	require.Equal(t, `{"zeta":1,"alpha":["x",null],"mid":true}`, string(data))
}

func TestMarshalYAML_KeepsOrder(t *testing.T) {
	m := value.NewMap()
	m.Set("zeta", value.Int(1))
	m.Set("alpha", value.String("x"))
	m.Set("none", value.Null{})

	data, err := yaml.Marshal(m)
	require.NoError(t, err)
	require.Equal(t, "zeta: 1\nalpha: x\nnone: null\n", string(data))
}
