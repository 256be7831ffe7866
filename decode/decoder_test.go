package decode_test

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/recap/decode"
	"github.com/meigma/recap/internal/errs"
	"github.com/meigma/recap/internal/testutil"
	"github.com/meigma/recap/node"
	"github.com/meigma/recap/schema"
)

func testLayouts(r *schema.Registry) {
	r.Struct("Vec3", 12,
		schema.Scalar("x", schema.TypeFloat, 0),
		schema.Scalar("y", schema.TypeFloat, 4),
		schema.Scalar("z", schema.TypeFloat, 8),
	)
	r.Struct("Scalars", 0x48,
		schema.Scalar("flag", schema.TypeBool, 0x00),
		schema.Scalar("count", schema.TypeInt, 0x04),
		schema.Scalar("index", schema.TypeInt32, 0x08),
		schema.Scalar("mask", schema.TypeUInt32, 0x0C),
		schema.Scalar("id", schema.TypeHashID, 0x10),
		schema.Scalar("obj", schema.TypeObjID, 0x14),
		schema.Scalar("small", schema.TypeUInt16, 0x18),
		schema.Scalar("byte", schema.TypeUInt8, 0x1A),
		schema.Scalar("ratio", schema.TypeFloat, 0x1C),
		schema.Scalar("stamp", schema.TypeInt64, 0x20),
		schema.Scalar("big", schema.TypeUInt64, 0x28),
		schema.Scalar("legacy", schema.TypeUInt, 0x30),
		schema.Scalar("pos", schema.TypeVector2, 0x34),
		schema.Scalar("dir", schema.TypeVector3, 0x3C),
	)
	r.Struct("Rotations", 32,
		schema.Scalar("color", schema.TypeVector4, 0),
		schema.Scalar("rot", schema.TypeOrientation, 16),
	)
	r.Enum("Shape").Value("sphere", 0).Value("box", 1)
	r.Struct("Shaped", 8,
		schema.EnumField("shape", "Shape", 0),
		schema.Scalar("unbound", schema.TypeEnum, 4),
	)
	r.Struct("Texts", 0x30,
		schema.Scalar("name", schema.TypeCharPtr, 0x00),
		schema.Scalar("key", schema.TypeKey, 0x04),
		schema.Scalar("asset", schema.TypeAsset, 0x08),
		schema.CharBuffer("label", 0x0C, 16),
		schema.LocalizedString("title", 0x1C),
		schema.Scalar("note", schema.TypeChar, 0x24),
	)
	r.Struct("Holder", 8,
		schema.Optional("opt", "Vec3", 0),
		schema.Scalar("tail", schema.TypeInt, 4),
	)
	r.Struct("Lists", 0x20,
		schema.ArrayOf("nums", schema.TypeInt, 0x00),
		schema.ArrayOf("names", schema.TypeCharPtr, 0x08),
		schema.Array("vecs", "Vec3", 0x10),
		schema.ArrayOf("empty", schema.TypeFloat, 0x18),
	)
	r.Struct("Counted", 12,
		schema.ArrayOf("bytes", schema.TypeUInt8, 0).WithCountOffset(8),
	)
	r.Struct("Drops", 8,
		schema.EnumArray("drops", "Shape", 0),
	)
	r.Struct("Props", 8,
		schema.PropertyVector("props", 0),
	)
	r.Struct("Nested", 16,
		schema.Inline("at", "Vec3", 0),
		schema.Scalar("w", schema.TypeFloat, 12),
	)
}

func newDecoder(opts ...decode.Option) *decode.Decoder {
	return decode.New(schema.New(testLayouts), opts...)
}

func find(t *testing.T, tree node.Node, path string) node.Node {
	t.Helper()
	n, ok := node.Find(tree, path)
	require.True(t, ok, "no node at %q", path)
	return n
}

func TestDecodeScalars(t *testing.T) {
	t.Parallel()

	data := testutil.NewAsset(0x48).
		U8(0x00, 1).
		I32(0x04, -5).
		U32(0x08, 7).
		U32(0x0C, math.MaxUint32).
		U32(0x10, 0xDEADBEEF).
		U32(0x14, 0x10).
		U16(0x18, 513).
		U8(0x1A, 200).
		F32(0x1C, 1.5).
		U64(0x20, math.MaxUint64-1).
		U64(0x28, 1<<40).
		U32(0x30, 9).
		F32(0x34, 1, -0.25).
		F32(0x3C, 0.5, 0, 2).
		Bytes()

	tree, end, err := newDecoder().DecodeExtent("scalars", 0x48, data)
	require.NoError(t, err)
	assert.Equal(t, 0x48, end)
	assert.Equal(t, "scalars", tree.Name())
	assert.Equal(t, "Scalars", tree.TypeName)
	assert.Equal(t, "[Scalars]", tree.Display())

	tests := []struct {
		path    string
		kind    node.Kind
		display string
		offset  int
	}{
		{"flag", node.KindBool, "true", 0x00},
		{"count", node.KindNumber, "-5", 0x04},
		{"index", node.KindNumber, "7", 0x08},
		{"mask", node.KindNumber, "4294967295", 0x0C},
		{"id", node.KindNumber, "0xDEADBEEF", 0x10},
		{"obj", node.KindNumber, "0x00000010", 0x14},
		{"small", node.KindNumber, "513", 0x18},
		{"byte", node.KindNumber, "200", 0x1A},
		{"ratio", node.KindNumber, "1.5", 0x1C},
		{"stamp", node.KindNumber, "-2", 0x20},
		{"big", node.KindNumber, "1099511627776", 0x28},
		{"legacy", node.KindNumber, "9", 0x30},
		{"pos", node.KindVector, "x: 1, y: -0.25", 0x34},
		{"dir", node.KindVector, "x: 0.5, y: 0, z: 2", 0x3C},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			n := find(t, tree, tt.path)
			assert.Equal(t, tt.kind, n.Kind())
			assert.Equal(t, tt.display, n.Display())
			assert.Equal(t, tt.offset, n.Offset())
		})
	}
}

func TestDecodeRotations(t *testing.T) {
	t.Parallel()

	data := testutil.NewAsset(32).
		F32(0, 1, 2, 3, 4).
		F32(16, 0, 0, 0, 1).
		Bytes()

	tree, err := newDecoder().Decode("Rotations", 32, data)
	require.NoError(t, err)

	color := find(t, tree, "color").(*node.Vector)
	assert.Equal(t, "x: 1, y: 2, z: 3, w: 4", color.Display())
	assert.InDelta(t, 4, color.Vec4().W(), 1e-6)

	rot := find(t, tree, "rot").(*node.Vector)
	assert.Equal(t, node.Quat, rot.Shape)
	assert.Equal(t, "(quat) x: 0, y: 0, z: 0, w: 1", rot.Display())
	assert.InDelta(t, 1, rot.Quat().W, 1e-6)
}

func TestDecodeEnums(t *testing.T) {
	t.Parallel()

	data := testutil.NewAsset(8).U32(0, 1).U32(4, 7).Bytes()
	tree, err := newDecoder().Decode("Shaped", 8, data)
	require.NoError(t, err)

	shape := find(t, tree, "shape").(*node.Enum)
	assert.Equal(t, "Shape", shape.EnumType)
	assert.Equal(t, "box", shape.Label)
	assert.Equal(t, "box (0x00000001)", shape.Display())

	unbound := find(t, tree, "unbound").(*node.Enum)
	assert.Empty(t, unbound.Label)
	assert.Equal(t, "0x00000007", unbound.Display())
}

func TestDecodeStrings(t *testing.T) {
	t.Parallel()

	a := testutil.NewAsset(0x30).
		Present(0x00).
		Present(0x04).
		Text(0x0C, "inline").
		Present(0x1C).
		Present(0x20).
		Present(0x24).
		Strings("alpha", "beta", "gamma", "delta", "eps")
	data := a.Bytes()

	tree, end, err := newDecoder().DecodeExtent("Texts", a.HeaderSize(), data)
	require.NoError(t, err)
	assert.Equal(t, len(data), end)

	name := find(t, tree, "name")
	assert.Equal(t, node.KindString, name.Kind())
	assert.Equal(t, "alpha", name.Display())

	key := find(t, tree, "key")
	assert.Equal(t, node.KindAsset, key.Kind())
	assert.Equal(t, "beta", key.Display())

	_, ok := node.Find(tree, "asset")
	assert.False(t, ok, "absent asset should be omitted")

	assert.Equal(t, "inline", find(t, tree, "label").Display())
	assert.Equal(t, "gamma [delta]", find(t, tree, "title").Display())
	assert.Equal(t, "eps", find(t, tree, "note").Display())
}

func TestDecodeInlineStringUnterminated(t *testing.T) {
	t.Parallel()

	data := testutil.NewAsset(0x30).Text(0x0C, "0123456789abcdef").Bytes()
	tree, err := newDecoder().Decode("Texts", 0x30, data)
	require.NoError(t, err)
	assert.Equal(t, "0123456789abcdef", find(t, tree, "label").Display())
}

func TestDecodeNullable(t *testing.T) {
	t.Parallel()

	t.Run("absent", func(t *testing.T) {
		t.Parallel()

		data := testutil.NewAsset(8).U32(4, 3).Bytes()
		tree, end, err := newDecoder().DecodeExtent("Holder", 8, data)
		require.NoError(t, err)
		assert.Equal(t, 8, end, "cursor must not move")
		opt := find(t, tree, "opt")
		assert.Equal(t, node.KindNull, opt.Kind())
		assert.Equal(t, "(null)", opt.Display())
		assert.Equal(t, "3", find(t, tree, "tail").Display())
	})

	t.Run("present", func(t *testing.T) {
		t.Parallel()

		data := testutil.NewAsset(8).Present(0).BlobF32(1, 2, 3).Bytes()
		tree, end, err := newDecoder().DecodeExtent("Holder", 8, data)
		require.NoError(t, err)
		assert.Equal(t, 8+12, end, "cursor must advance by the struct size")

		opt := find(t, tree, "opt").(*node.Struct)
		assert.Equal(t, "Vec3", opt.TypeName)
		assert.Equal(t, 8, opt.Offset())
		assert.Equal(t, "2", find(t, tree, "opt.y").Display())
		assert.Equal(t, 12, find(t, tree, "opt.y").Offset())
	})
}

func TestDecodeInlineStruct(t *testing.T) {
	t.Parallel()

	data := testutil.NewAsset(16).F32(0, 1, 2, 3, 4).Bytes()
	tree, end, err := newDecoder().DecodeExtent("Nested", 16, data)
	require.NoError(t, err)
	assert.Equal(t, 16, end)
	assert.Equal(t, "[Vec3]", find(t, tree, "at").Display())
	assert.Equal(t, 8, find(t, tree, "at.z").Offset())
	assert.Equal(t, "4", find(t, tree, "w").Display())
}

func TestDecodeArrays(t *testing.T) {
	t.Parallel()

	a := testutil.NewAsset(0x20).
		Array(0x00, 3).
		Array(0x08, 2).
		Array(0x10, 2).
		BlobU32(1, 2, 3).
		BlobU32(1, 0).Strings("x").
		BlobF32(1, 2, 3, 4, 5, 6)
	data := a.Bytes()

	tree, end, err := newDecoder().DecodeExtent("Lists", 0x20, data)
	require.NoError(t, err)
	assert.Equal(t, len(data), end)

	nums := find(t, tree, "nums").(*node.Array)
	assert.Equal(t, "[3 items]", nums.Display())
	assert.Equal(t, "Int", nums.ElementType)
	assert.Equal(t, "2", find(t, tree, "nums[1]").Display())
	assert.Equal(t, 0x24, find(t, tree, "nums[1]").Offset())

	assert.Equal(t, "x", find(t, tree, "names[0]").Display())
	empty := find(t, tree, "names[1]")
	assert.Equal(t, node.KindString, empty.Kind())
	assert.Empty(t, empty.Display())

	vecs := find(t, tree, "vecs").(*node.Array)
	assert.Equal(t, "Vec3", vecs.ElementType)
	assert.Equal(t, 2, vecs.Len())
	assert.Equal(t, "5", find(t, tree, "vecs[1].y").Display())

	none := find(t, tree, "empty").(*node.Array)
	assert.Equal(t, 0, none.Len())
	assert.Equal(t, "Float", none.ElementType)
}

func TestDecodeCountOffset(t *testing.T) {
	t.Parallel()

	data := testutil.NewAsset(12).Present(0).I32(8, 2).Blob(5, 6).Bytes()
	tree, end, err := newDecoder().DecodeExtent("Counted", 12, data)
	require.NoError(t, err)
	assert.Equal(t, 14, end)
	assert.Equal(t, "6", find(t, tree, "bytes[1]").Display())
}

func TestDecodeEnumArrayShareBinding(t *testing.T) {
	t.Parallel()

	data := testutil.NewAsset(8).Array(0, 2).BlobU32(0, 1).Bytes()
	tree, err := newDecoder().Decode("Drops", 8, data)
	require.NoError(t, err)

	for i, label := range []string{"sphere", "box"} {
		e := find(t, tree, fmt.Sprintf("drops[%d]", i)).(*node.Enum)
		assert.Equal(t, "Shape", e.EnumType)
		assert.Equal(t, label, e.Label)
	}
}

func TestDecodePropertyVector(t *testing.T) {
	t.Parallel()

	data := testutil.NewAsset(8).
		U32(0, 1).
		U32(4, 1).
		BlobU32(0xAAAA0001, 0x2, 16, 0x10).
		Zeros(172).
		Bytes()

	tree, end, err := newDecoder().DecodeExtent("Props", 8, data)
	require.NoError(t, err)
	assert.Equal(t, 8+188, end)

	item := find(t, tree, "props[0]").(*node.Struct)
	assert.Equal(t, "AssetProperty", item.TypeName)
	assert.Equal(t, "0xAAAA0001", find(t, tree, "props[0].NameHash").Display())
	assert.Equal(t, "0x00000002", find(t, tree, "props[0].TypeHash").Display())
	assert.Equal(t, "16", find(t, tree, "props[0].ValueOffset").Display())
	assert.Equal(t, "0x00000010", find(t, tree, "props[0].Flags").Display())

	raw := find(t, tree, "props[0].VariantData")
	assert.Equal(t, node.KindRaw, raw.Kind())
	assert.Equal(t, "[172 bytes]", raw.Display())
	assert.Equal(t, 8+16, raw.Offset())
}

func TestDecodeFormatErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		root  string
		data  []byte
		opts  []decode.Option
		field string
	}{
		{
			name:  "count over default limit",
			root:  "Lists",
			data:  testutil.NewAsset(0x20).Array(0, 2_000_000).Bytes(),
			field: "nums",
		},
		{
			name:  "count over configured limit",
			root:  "Lists",
			data:  testutil.NewAsset(0x20).Array(0, 3).BlobU32(1, 2, 3).Bytes(),
			opts:  []decode.Option{decode.WithMaxArrayCount(2)},
			field: "nums",
		},
		{
			name:  "array past end of blob",
			root:  "Lists",
			data:  testutil.NewAsset(0x20).Array(0x10, 1).BlobF32(1).Bytes(),
			field: "vecs",
		},
		{
			name:  "nullable past end of blob",
			root:  "Holder",
			data:  testutil.NewAsset(8).Present(0).BlobF32(1).Bytes(),
			field: "opt",
		},
		{
			name:  "property record past end of blob",
			root:  "Props",
			data:  testutil.NewAsset(8).U32(0, 2).U32(4, 1).Zeros(188).Bytes(),
			field: "props",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			def, ok := schema.New(testLayouts).Struct(tt.root)
			require.True(t, ok)
			tree, err := newDecoder(tt.opts...).Decode(tt.root, def.Size, tt.data)
			require.Error(t, err)
			assert.Nil(t, tree)
			assert.ErrorIs(t, err, errs.ErrFormat)

			var fe *errs.FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.field, fe.Field)
			assert.Equal(t, def.Name, fe.Struct)
		})
	}
}

func TestDecodeHeaderLargerThanData(t *testing.T) {
	t.Parallel()

	_, err := newDecoder().Decode("Vec3", 12, make([]byte, 8))
	assert.ErrorIs(t, err, errs.ErrFormat)
}

func TestDecodeSchemaErrors(t *testing.T) {
	t.Parallel()

	cat := schema.New(func(r *schema.Registry) {
		r.Struct("BadEnum", 4, schema.EnumField("e", "Nope", 0))
		r.Struct("BadNullable", 4, schema.Optional("o", "Missing", 0))
		r.Struct("BadElement", 8, schema.Array("a", "Vector9", 0))
	})
	dec := decode.New(cat)

	tests := []struct {
		name    string
		root    string
		header  int
		data    []byte
		missing string
	}{
		{"unknown root", "Nothing", 4, make([]byte, 4), "Nothing"},
		{"unknown enum", "BadEnum", 4, make([]byte, 4), "Nope"},
		{"unknown nullable struct", "BadNullable", 4, testutil.NewAsset(4).Present(0).Zeros(8).Bytes(), "Missing"},
		{"unknown element type", "BadElement", 8, testutil.NewAsset(8).Array(0, 1).Zeros(8).Bytes(), "Vector9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := dec.Decode(tt.root, tt.header, tt.data)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrSchema)

			var se *errs.SchemaError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.missing, se.Name)
		})
	}
}

func TestDecodeReader(t *testing.T) {
	t.Parallel()

	data := testutil.NewAsset(12).F32(0, 1, 2, 3).Bytes()

	tree, err := newDecoder().DecodeReader(bytes.NewReader(data), "Vec3", 12)
	require.NoError(t, err)
	assert.Equal(t, "3", find(t, tree, "z").Display())

	_, err = newDecoder(decode.WithMaxInput(4)).DecodeReader(bytes.NewReader(data), "Vec3", 12)
	assert.ErrorIs(t, err, errs.ErrSizeOverflow)
}

func TestDecodeFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "origin.vec3")
	data := testutil.NewAsset(12).F32(0, 7, 8, 9).Bytes()
	require.NoError(t, os.WriteFile(path, data, 0o600))

	tree, err := newDecoder().DecodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Vec3", tree.TypeName)
	assert.Equal(t, "8", find(t, tree, "y").Display())

	_, err = newDecoder().DecodeFile(filepath.Join(dir, "origin.unknown"))
	assert.ErrorIs(t, err, errs.ErrFormat)

	_, err = newDecoder().DecodeFile(filepath.Join(dir, "missing.vec3"))
	assert.ErrorIs(t, err, errs.ErrIO)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
