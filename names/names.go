// Package names maps human-readable names to the 32-bit ids stored in
// archive keys, and back.
//
// Registries are plain text, one "name hash" pair per line:
//
//	// comment
//	phase      0x1C4D5F40
//	ZelemBoss  $zelemboss
//
// The hash may be written as 0x or # hex, as $ followed by a string to
// hash, or in decimal. An unparseable hash is recorded as 0.
package names

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/meigma/recap/hashid"
	"github.com/meigma/recap/internal/errs"
)

// Registry is a bidirectional name and id table. Name lookups are
// case-insensitive. Adding a pair overwrites earlier entries for either
// side, so the last line of a file wins.
//
// The zero value is not usable; create registries with New. A nil
// *Registry behaves as an empty one for lookups.
type Registry struct {
	hashes map[string]uint32
	names  map[uint32]string
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		hashes: make(map[string]uint32),
		names:  make(map[uint32]string),
	}
}

// Add records name and hash in both directions.
func (r *Registry) Add(name string, hash uint32) {
	r.hashes[strings.ToLower(name)] = hash
	r.names[hash] = name
}

// Hash returns the id registered for name.
func (r *Registry) Hash(name string) (uint32, bool) {
	if r == nil {
		return 0, false
	}
	h, ok := r.hashes[strings.ToLower(name)]
	return h, ok
}

// Name returns the name registered for hash.
func (r *Registry) Name(hash uint32) (string, bool) {
	if r == nil {
		return "", false
	}
	n, ok := r.names[hash]
	return n, ok
}

// Len returns the number of distinct names.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.hashes)
}

// Load reads registry lines from rd. Lines with fewer than two fields are
// skipped.
func (r *Registry) Load(rd io.Reader) error {
	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 0, 64<<10), 1<<20)
	for sc.Scan() {
		line, _, _ := strings.Cut(sc.Text(), "//")
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		r.Add(fields[0], parseHash(fields[1]))
	}
	if err := sc.Err(); err != nil {
		return errs.IO("read registry", err)
	}
	return nil
}

// LoadFile loads the registry file at path. A missing file is reported
// with an error matching fs.ErrNotExist.
func (r *Registry) LoadFile(path string) error {
	f, err := os.Open(path) //nolint:gosec // caller chooses the path
	if err != nil {
		return errs.IO("open registry", err)
	}
	defer f.Close()

	if err := r.Load(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// LoadFileIfExists is like LoadFile but treats a missing file as empty.
func (r *Registry) LoadFileIfExists(path string) error {
	err := r.LoadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func parseHash(s string) uint32 {
	v, _ := hashid.ParseLiteral(s)
	return v
}
