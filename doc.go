// Package recap decodes Darkspore compiled assets and reads the DBPF/DBBF
// archives that store them.
//
// Most programs need three pieces: a schema catalog describing struct
// layouts, a [decode.Decoder] that turns bytes into a [node.Struct] tree,
// and a [dbpf.Reader] that locates and decompresses archive entries. This
// package wires them together for the common case.
//
// # Quick Start
//
// Decode one asset straight out of an archive:
//
//	r, err := dbpf.Open("AssetData_Binary.package")
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	tree, err := recap.LoadAsset(r, "ZelemBoss.phase")
//	if err != nil {
//	    return err
//	}
//	for path, n := range node.All(tree) {
//	    fmt.Println(path, n.Display())
//	}
//
// Loose files are decoded by extension with [DecodeFile].
//
// # Names
//
// Archive entries are addressed by hashes. Load the type and file
// registries with [dbpf.LoadRegistries] and pass them through
// [dbpf.WithRegistries] so that names resolve and listings print readable
// names instead of hex ids.
//
// # Errors
//
// Failures match one of [ErrSchema], [ErrFormat], [ErrIO], [ErrNotFound] or
// [ErrSizeOverflow] with errors.Is. Decode failures inside a struct are
// reported as [*FieldError].
package recap
