package catalog

import "github.com/meigma/recap/schema"

// globalTypes registers the small value types shared by many assets.
func globalTypes(r *schema.Registry) {
	r.Struct("cSPVector2", 8,
		schema.Scalar("x", schema.TypeFloat, 0),
		schema.Scalar("y", schema.TypeFloat, 4),
	)
	r.Struct("cSPVector3", 12,
		schema.Scalar("x", schema.TypeFloat, 0),
		schema.Scalar("y", schema.TypeFloat, 4),
		schema.Scalar("z", schema.TypeFloat, 8),
	)
	r.Struct("cSPBoundingBox", 24,
		schema.Inline("min", "cSPVector3", 0),
		schema.Inline("max", "cSPVector3", 12),
	)

	// A property record is a fixed 188-byte slot with two inline buffers.
	r.Struct("cAssetProperty", 188,
		schema.Scalar("GUID", schema.TypeUInt, 0),
		schema.CharBuffer("name", 4, 80),
		schema.Scalar("type", schema.TypeUInt, 84),
		schema.CharBuffer("value", 88, 80),
	)
	r.Struct("cAssetPropertyList", 8,
		schema.Array("mpAssetProperties", "cAssetProperty", 0),
	)
	r.Struct("cAssetQueryString", 4,
		schema.Scalar("query", schema.TypeCharPtr, 0),
	)
	r.Struct("cKeyAsset", 16,
		schema.Scalar("key", schema.TypeKey, 0),
	)
	r.Struct("cLongDescription", 20,
		schema.LocalizedString("description", 0),
	)
}

// catalogTypes registers the per-package asset index found in catalog_N
// files.
func catalogTypes(r *schema.Registry) {
	r.Struct("Catalog", 8,
		schema.Array("entries", "CatalogEntry", 0),
	)
	r.Struct("CatalogEntry", 40,
		schema.Scalar("assetNameWType", schema.TypeCharPtr, 0),
		schema.Scalar("compileTime", schema.TypeInt64, 8),
		schema.Scalar("version", schema.TypeInt, 16),
		schema.Scalar("typeCrc", schema.TypeUInt, 20),
		schema.Scalar("dataCrc", schema.TypeUInt, 24),
		schema.Scalar("sourceFileNameWType", schema.TypeCharPtr, 28),
		schema.ArrayOf("tags", schema.TypeCharPtr, 32),
	)
}
