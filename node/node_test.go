package node

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		node Node
		want string
	}{
		{"struct", &Struct{TypeName: "Phase"}, "[Phase]"},
		{"array", &Array{Elements: []Node{&Null{}, &Null{}}}, "[2 items]"},
		{"string", &String{Value: "ZelemBoss"}, "ZelemBoss"},
		{"localized", &LocalizedString{Primary: "Zelem", Secondary: "0x1234"}, "Zelem [0x1234]"},
		{"localized primary only", &LocalizedString{Primary: "Zelem"}, "Zelem"},
		{"int32", &Number{Type: Int32, Bits: uint64(math.MaxUint32)}, "-1"},
		{"uint32", &Number{Type: UInt32, Bits: 7}, "7"},
		{"int64", &Number{Type: Int64, Bits: math.MaxUint64}, "-1"},
		{"hash id", &Number{Type: HashID, Format: Hex, Bits: 0xBEEF}, "0x0000BEEF"},
		{"uint8 hex", &Number{Type: UInt8, Format: Hex, Bits: 0xA}, "0x0A"},
		{"uint16 hex", &Number{Type: UInt16, Format: Hex, Bits: 0xA}, "0x000A"},
		{"uint64 hex", &Number{Type: UInt64, Format: Hex, Bits: 0xA}, "0x000000000000000A"},
		{"float", &Number{Type: Float, Format: FloatFormat, F: 1.5}, "1.5"},
		{"bool", &Bool{Value: true}, "true"},
		{"enum", &Enum{Value: 1, Label: "box"}, "box (0x00000001)"},
		{"enum unresolved", &Enum{Value: 9}, "0x00000009"},
		{"vector2", &Vector{Shape: Vec2, C: [4]float32{1, 0.25}}, "x: 1, y: 0.25"},
		{"vector3", &Vector{Shape: Vec3, C: [4]float32{-2, 0, 3.5}}, "x: -2, y: 0, z: 3.5"},
		{"quat", &Vector{Shape: Quat, C: [4]float32{0, 0, 0, 1}}, "(quat) x: 0, y: 0, z: 0, w: 1"},
		{"null", &Null{}, "(null)"},
		{"raw", &Raw{Data: make([]byte, 172)}, "[172 bytes]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.node.Display())
		})
	}
}

func TestKinds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, KindAsset, (&String{Asset: true}).Kind())
	assert.Equal(t, KindString, (&String{}).Kind())
	assert.Equal(t, "localized", KindLocalizedString.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

func TestVectorMath(t *testing.T) {
	t.Parallel()

	v := &Vector{Shape: Vec3, C: [4]float32{3, 4, 0}}
	assert.InDelta(t, 5.0, float64(v.Vec3().Len()), 1e-6)
	assert.Equal(t, mgl32.Vec2{3, 4}, v.Vec2())

	q := &Vector{Shape: Quat, C: [4]float32{0, 0, 0, 1}}
	assert.True(t, q.Quat().ApproxEqual(mgl32.QuatIdent()))
}

func sampleTree() *Struct {
	return &Struct{
		Meta:     Meta{FieldName: "catalog"},
		TypeName: "Catalog",
		Fields: []Node{
			&Array{
				Meta:        Meta{FieldName: "entries", BinaryOffset: 0},
				ElementType: "CatalogEntry",
				Elements: []Node{
					&Struct{
						Meta:     Meta{FieldName: "[0]", BinaryOffset: 8},
						TypeName: "CatalogEntry",
						Fields: []Node{
							&String{Meta: Meta{FieldName: "assetNameWType", BinaryOffset: 8}, Value: "a.phase"},
						},
					},
				},
			},
		},
	}
}

func TestAllAndFind(t *testing.T) {
	t.Parallel()

	root := sampleTree()

	var paths []string
	for p := range All(root) {
		paths = append(paths, p)
	}
	assert.Equal(t, []string{"entries", "entries[0]", "entries[0].assetNameWType"}, paths)

	n, ok := Find(root, "entries[0].assetNameWType")
	require.True(t, ok)
	assert.Equal(t, "a.phase", n.Display())

	_, ok = Find(root, "entries[1]")
	assert.False(t, ok)

	assert.Equal(t, 4, Count(root))
}

func TestWalkSkipsChildren(t *testing.T) {
	t.Parallel()

	var seen []string
	Walk(sampleTree(), func(n Node, depth int) bool {
		seen = append(seen, n.Name())
		return n.Kind() != KindArray
	})
	assert.Equal(t, []string{"catalog", "entries"}, seen)
}

func TestStructField(t *testing.T) {
	t.Parallel()

	root := sampleTree()
	_, ok := root.Field("entries")
	assert.True(t, ok)
	_, ok = root.Field("missing")
	assert.False(t, ok)
}
