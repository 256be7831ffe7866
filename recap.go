package recap

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/meigma/recap/dbpf"
	"github.com/meigma/recap/decode"
	"github.com/meigma/recap/internal/errs"
	"github.com/meigma/recap/node"
	"github.com/meigma/recap/schema"
	"github.com/meigma/recap/schema/catalog"
)

// CatalogType is the asset type of numbered catalog entries.
const CatalogType = "Catalog"

var catalogName = regexp.MustCompile(`(?i)^catalog_\d+$`)

// DefaultCatalog returns the built-in schema catalog.
func DefaultCatalog() *schema.Catalog {
	return catalog.Default()
}

// AssetType splits an asset name into its base name and asset type.
//
// A trailing ".bin" is ignored. Names of the form "catalog_N" have type
// [CatalogType]; other names carry their type after the first dot, as in
// "default.AffixTuning". ok is false when no type can be determined.
func AssetType(name string) (base, typ string, ok bool) {
	if len(name) >= 4 && strings.EqualFold(name[len(name)-4:], ".bin") {
		name = name[:len(name)-4]
	}
	if catalogName.MatchString(name) {
		return name, CatalogType, true
	}
	base, typ, ok = strings.Cut(name, ".")
	if typ == "" {
		return base, "", false
	}
	return base, typ, ok
}

// LoadAsset reads the archive entry called name from r and decodes it with
// the built-in catalog. The root struct is chosen from the asset type in
// the name; see [AssetType].
func LoadAsset(r *dbpf.Reader, name string, opts ...decode.Option) (*node.Struct, error) {
	return loadAsset(decode.New(DefaultCatalog(), opts...), r, name)
}

// DecodeFile decodes a loose asset file with the built-in catalog, taking
// the root struct from the file extension.
func DecodeFile(path string, opts ...decode.Option) (*node.Struct, error) {
	return decode.New(DefaultCatalog(), opts...).DecodeFile(path)
}

func loadAsset(dec *decode.Decoder, r *dbpf.Reader, name string) (*node.Struct, error) {
	_, typ, ok := AssetType(name)
	if !ok {
		return nil, errs.Formatf("cannot determine asset type of %q", name)
	}
	ft, ok := dec.Catalog().FileType(typ)
	if !ok {
		return nil, errs.Formatf("unknown asset type %q", typ)
	}

	data, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	tree, err := dec.Decode(ft.RootStruct, ft.HeaderSize, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return tree, nil
}
