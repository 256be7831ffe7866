// Package catalog holds the built-in asset layouts.
//
// The layouts are plain [schema.Source] functions listed by [Sources]. Use
// [Default] for the merged catalog, or combine Sources with custom sources
// through [schema.New]:
//
//	cat := schema.New(append(catalog.Sources(), myLayouts)...)
package catalog

import (
	"sync"

	"github.com/meigma/recap/schema"
)

// Sources returns the built-in sources in registration order.
func Sources() []schema.Source {
	return []schema.Source{
		globalEnums,
		globalTypes,
		catalogTypes,
		characterTypes,
		aiTypes,
		tuningTypes,
		volumeTypes,
		componentTypes,
		graphicsTypes,
		runtimeTypes,
		markersetTypes,
		lightTypes,
		environmentTypes,
		packetTypes,
	}
}

var defaultCatalog = sync.OnceValue(func() *schema.Catalog {
	return schema.New(Sources()...)
})

// Default returns the catalog built from Sources. It is built on first use
// and shared afterwards.
func Default() *schema.Catalog {
	return defaultCatalog()
}
