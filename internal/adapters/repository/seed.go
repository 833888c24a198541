package repository

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/domain/model"
)

// wardrobeFile is the on-disk layout of a wardrobe seed file:
//
//	items:
//	  - id: tee-1
//	    name: White Tee
//	    category: top
//	    color: White
//	    style: casual
//	    favorite: true
//	    last_worn: 2026-05-01T08:00:00Z
type wardrobeFile struct {
	Items []model.WardrobeItem `yaml:"items"`
}

// LoadWardrobeFile reads a YAML wardrobe seed file. JSON files load too.
func LoadWardrobeFile(path string) ([]model.WardrobeItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open wardrobe file: %w", err)
	}
	defer f.Close()

	items, err := ParseWardrobe(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// ParseWardrobe decodes a wardrobe seed document. Items without an id get a
// random one; items without a name or sharing an id are rejected.
func ParseWardrobe(r io.Reader) ([]model.WardrobeItem, error) {
	var doc wardrobeFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode wardrobe: %w", err)
	}

	items := make([]model.WardrobeItem, 0, len(doc.Items))
	seen := make(map[string]struct{}, len(doc.Items))
	for i, it := range doc.Items {
		if it.Name == "" {
			return nil, fmt.Errorf("%w: item %d has no name", ErrInvalidItem, i)
		}
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		if _, dup := seen[it.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, it.ID)
		}
		seen[it.ID] = struct{}{}
		items = append(items, it)
	}
	return items, nil
}
