package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/recap/decode"
	"github.com/meigma/recap/schema"
	"github.com/meigma/recap/schema/catalog"
)

func TestDefaultValidates(t *testing.T) {
	t.Parallel()

	require.NoError(t, catalog.Default().Validate())
}

func TestDefaultIsShared(t *testing.T) {
	t.Parallel()

	assert.Same(t, catalog.Default(), catalog.Default())
}

func TestZeroBufferDecodesEveryStruct(t *testing.T) {
	t.Parallel()

	cat := catalog.Default()
	dec := decode.New(cat)
	for s := range cat.Structs() {
		t.Run(s.Name, func(t *testing.T) {
			t.Parallel()

			tree, end, err := dec.DecodeExtent(s.Name, s.Size, make([]byte, s.Size))
			require.NoError(t, err)
			assert.Equal(t, s.Size, end, "zero indicators must not consume blob bytes")
			assert.Equal(t, s.Name, tree.TypeName)
			// Absent strings are omitted, everything else yields a node.
			assert.LessOrEqual(t, len(tree.Children()), len(s.Fields))
		})
	}
}

func TestFileTypes(t *testing.T) {
	t.Parallel()

	cat := catalog.Default()
	tests := []struct {
		ext    string
		root   string
		header int
	}{
		{"phase", "Phase", 16},
		{".Phase", "Phase", 16},
		{"noun", "", 0},
		{"nonplayerclass", "NonPlayerClass", 0x7C},
		{"catalog", "Catalog", 8},
		{"aidefinition", "AIDefinition", 640},
	}
	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			t.Parallel()

			ft, ok := cat.FileType(tt.ext)
			if tt.root == "" {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.root, ft.RootStruct)
			assert.Equal(t, tt.header, ft.HeaderSize)
		})
	}
}

func TestImplicitEnumBindings(t *testing.T) {
	t.Parallel()

	cat := catalog.Default()
	tests := []struct {
		structName string
		field      string
		enum       string
	}{
		{"NonPlayerClass", "creatureType", "NonPlayerClass.creatureType"},
		{"NonPlayerClass", "mNPCType", "NonPlayerClass.mNPCType"},
		{"NonPlayerClass", "dropType", "NonPlayerClass.dropType"},
		{"CrystalDef", "type", "CrystalDef.type"},
		{"CrystalDef", "rarity", "CrystalDef.rarity"},
		{"cGfxComponentDef", "gfxType", "cGfxComponentDef.gfxType"},
	}
	for _, tt := range tests {
		t.Run(tt.structName+"."+tt.field, func(t *testing.T) {
			t.Parallel()

			s, ok := cat.Struct(tt.structName)
			require.True(t, ok)
			var found bool
			for _, f := range s.Fields {
				if f.Name == tt.field {
					found = true
					assert.Equal(t, tt.enum, f.EnumType)
				}
			}
			assert.True(t, found, "field %s missing", tt.field)
		})
	}
}

func TestSourcesExtend(t *testing.T) {
	t.Parallel()

	custom := func(r *schema.Registry) {
		r.Struct("Phase", 4, schema.Scalar("ignored", schema.TypeInt, 0))
		r.Struct("Noun", 4, schema.Scalar("id", schema.TypeUInt32, 0))
	}
	cat := schema.New(append(catalog.Sources(), custom)...)

	phase, ok := cat.Struct("phase")
	require.True(t, ok)
	assert.Equal(t, 16, phase.Size)

	_, ok = cat.Struct("noun")
	assert.True(t, ok)

	builtin, _ := catalog.Default().Len()
	structs, _ := cat.Len()
	assert.Equal(t, builtin+1, structs)
}
