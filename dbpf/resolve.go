package dbpf

import (
	"fmt"
	"iter"
	"path/filepath"
	"strings"

	"github.com/meigma/recap/hashid"
	"github.com/meigma/recap/internal/errs"
	"github.com/meigma/recap/names"
)

// Registry file names inside a registry directory.
const (
	TypeRegistryFile = "reg_type.txt"
	FileRegistryFile = "reg_file.txt"
)

// LoadRegistries reads the type and file registries from dir. Missing
// files yield empty registries.
func LoadRegistries(dir string) (types, files *names.Registry, err error) {
	types, files = names.New(), names.New()
	if err := types.LoadFileIfExists(filepath.Join(dir, TypeRegistryFile)); err != nil {
		return nil, nil, err
	}
	if err := files.LoadFileIfExists(filepath.Join(dir, FileRegistryFile)); err != nil {
		return nil, nil, err
	}
	return types, files, nil
}

// instanceHash resolves the name part of a virtual name.
func (r *Reader) instanceHash(name string) uint32 {
	if h, ok := r.files.Hash(name); ok {
		return h
	}
	if h, ok := r.project.Hash(name); ok {
		return h
	}
	return hashid.Parse(name)
}

func (r *Reader) typeHash(typ string) uint32 {
	if h, ok := r.types.Hash(typ); ok {
		return h
	}
	return hashid.Parse(typ)
}

// Resolve finds the entry for a virtual name "name" or "name.type".
//
// The name part is looked up in the file registry, then in the names
// embedded in the archive, and is otherwise parsed as an id literal or
// hashed. The type part is looked up in the type registry the same way.
// An entry matching both parts wins over one matching the name alone.
func (r *Reader) Resolve(name string) (Entry, bool) {
	base, typ, hasType := strings.Cut(name, ".")
	instance := r.instanceHash(base)

	if hasType {
		th := r.typeHash(typ)
		for _, e := range r.entries {
			if e.Key.Instance == instance && e.Key.Type == th {
				return e, true
			}
		}
	}
	for _, e := range r.entries {
		if e.Key.Instance == instance {
			return e, true
		}
	}
	return Entry{}, false
}

// Get resolves name and returns the entry payload.
func (r *Reader) Get(name string) ([]byte, error) {
	e, ok := r.Resolve(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrNotFound, name)
	}
	return r.ReadEntry(e)
}

// Name returns the display names of e's instance and type, falling back to
// hex ids.
func (r *Reader) Name(e Entry) (instance, typ string) {
	return r.instanceName(e.Key.Instance), r.typeName(e.Key.Type)
}

func (r *Reader) instanceName(h uint32) string {
	if n, ok := r.files.Name(h); ok {
		return n
	}
	if n, ok := r.project.Name(h); ok {
		return n
	}
	return hashid.Format(h)
}

func (r *Reader) typeName(h uint32) string {
	if n, ok := r.types.Name(h); ok {
		return n
	}
	return hashid.Format(h)
}

// List iterates over every entry with its "instance.type" name.
func (r *Reader) List() iter.Seq2[string, Entry] {
	return func(yield func(string, Entry) bool) {
		for _, e := range r.entries {
			inst, typ := r.Name(e)
			if !yield(inst+"."+typ, e) {
				return
			}
		}
	}
}

// ListByType iterates over entries whose type is typ, named
// "instance.typ". The type hash comes from the type registry or from
// hashing typ.
func (r *Reader) ListByType(typ string) iter.Seq2[string, Entry] {
	th, ok := r.types.Hash(typ)
	if !ok {
		th = hashid.String(typ)
	}
	return func(yield func(string, Entry) bool) {
		for _, e := range r.entries {
			if e.Key.Type != th {
				continue
			}
			if !yield(r.instanceName(e.Key.Instance)+"."+typ, e) {
				return
			}
		}
	}
}
