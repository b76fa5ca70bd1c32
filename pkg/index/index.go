// Package index builds an addressable view of a placemark document: category
// containers by (lighthouse, locale, category) and the container owning each
// identity key. The index holds pointers into the document tree, so changes
// made through a Container are changes to the document.
package index

import (
	"context"
	"fmt"

	"github.com/beevik/etree"

	"github.com/agentstation/automark/pkg/errors"
	"github.com/agentstation/automark/pkg/kml"
	"github.com/agentstation/automark/pkg/logging"
	"github.com/agentstation/automark/pkg/placemark"
)

// Duplicate records an identity key seen more than once while indexing.
type Duplicate struct {
	Key      string `json:"key" yaml:"key"`
	Previous Path   `json:"previous" yaml:"previous"`
	Current  Path   `json:"current" yaml:"current"`
}

// Warning returns the duplicate as a DuplicateKeyWarning error.
func (d Duplicate) Warning() error {
	return errors.NewDuplicateKeyWarning(d.Key, d.Previous.String(), d.Current.String())
}

// Index is the hierarchy map plus the identity map of one document.
type Index struct {
	root       *etree.Element
	hierarchy  map[string]map[string]map[string]*Container
	containers []*Container
	identities map[string]*Container
	duplicates []Duplicate
}

// Option configures Build.
type Option func(*options)

type options struct {
	rootFolder string
}

// WithRootFolder selects the top-level folder holding the hierarchy by its
// name. An empty label selects the last top-level folder.
func WithRootFolder(label string) Option {
	return func(o *options) {
		o.rootFolder = label
	}
}

// Build indexes doc in a single traversal. It fails with a StructuralError
// when the document does not have the root → lighthouse → locale → category
// → placemark shape.
func Build(ctx context.Context, doc *kml.Document, opts ...Option) (*Index, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	root, err := findRoot(doc, o.rootFolder)
	if err != nil {
		return nil, err
	}

	idx := &Index{
		root:       root,
		hierarchy:  make(map[string]map[string]map[string]*Container),
		identities: make(map[string]*Container),
	}

	logger := logging.FromContext(ctx)

	for _, groupEl := range root.SelectElements(kml.TagFolder) {
		group, err := folderName(groupEl, "")
		if err != nil {
			return nil, err
		}
		if err := noPlacemarks(groupEl, group); err != nil {
			return nil, err
		}
		subgroups := idx.hierarchy[group]
		if subgroups == nil {
			subgroups = make(map[string]map[string]*Container)
			idx.hierarchy[group] = subgroups
		}

		for _, subEl := range groupEl.SelectElements(kml.TagFolder) {
			subgroup, err := folderName(subEl, group)
			if err != nil {
				return nil, err
			}
			if err := noPlacemarks(subEl, group+"/"+subgroup); err != nil {
				return nil, err
			}
			categories := subgroups[subgroup]
			if categories == nil {
				categories = make(map[string]*Container)
				subgroups[subgroup] = categories
			}

			for _, catEl := range subEl.SelectElements(kml.TagFolder) {
				category, err := folderName(catEl, group+"/"+subgroup)
				if err != nil {
					return nil, err
				}
				c := &Container{path: Path{Group: group, Subgroup: subgroup, Category: category}, el: catEl}
				if err := idx.indexContainer(c); err != nil {
					return nil, err
				}
				categories[category] = c
				idx.containers = append(idx.containers, c)

				logger.Debug().
					Str("container", c.path.String()).
					Int("entries", c.Len()).
					Msg("Indexed container")
			}
		}
	}

	for _, d := range idx.duplicates {
		logger.Debug().Str("key", d.Key).Str("previous", d.Previous.String()).
			Str("current", d.Current.String()).Msg("Duplicate identity key")
	}

	return idx, nil
}

func (idx *Index) indexContainer(c *Container) error {
	if nested := c.el.SelectElement(kml.TagFolder); nested != nil {
		return errors.NewStructuralError(c.path.String(), "category folder contains nested folders")
	}
	for _, pm := range c.Placemarks() {
		name, ok := kml.Name(pm)
		if !ok {
			return errors.NewStructuralError(c.path.String(), "placemark has no name")
		}
		key := placemark.Normalize(name)
		if prev, seen := idx.identities[key]; seen {
			idx.duplicates = append(idx.duplicates, Duplicate{Key: key, Previous: prev.path, Current: c.path})
		}
		idx.identities[key] = c
	}
	return nil
}

func findRoot(doc *kml.Document, label string) (*etree.Element, error) {
	if doc.Root() == nil {
		return nil, errors.NewStructuralError("", "no Document element")
	}
	folders := doc.Folders()
	if len(folders) == 0 {
		return nil, errors.NewStructuralError("", "document has no folders")
	}
	if label == "" {
		return folders[len(folders)-1], nil
	}

	want := placemark.Normalize(label)
	for _, f := range folders {
		if name, ok := kml.Name(f); ok && placemark.Normalize(name) == want {
			return f, nil
		}
	}
	return nil, errors.NewStructuralError("", fmt.Sprintf("root folder %q not found", label))
}

func folderName(el *etree.Element, parent string) (string, error) {
	name, ok := kml.Name(el)
	if !ok {
		return "", errors.NewStructuralError(parent, "folder has no name")
	}
	return placemark.Normalize(name), nil
}

func noPlacemarks(el *etree.Element, path string) error {
	if el.SelectElement(kml.TagPlacemark) != nil {
		return errors.NewStructuralError(path, "placemark above category level")
	}
	return nil
}

// Lookup resolves a container from raw folder names.
func (idx *Index) Lookup(group, subgroup, category string) (*Container, bool) {
	return idx.LookupPath(NewPath(group, subgroup, category))
}

// LookupPath resolves a container from a normalized path.
func (idx *Index) LookupPath(p Path) (*Container, bool) {
	c, ok := idx.hierarchy[p.Group][p.Subgroup][p.Category]
	return c, ok
}

// Owner returns the container holding the entry for key.
func (idx *Index) Owner(key string) (*Container, bool) {
	c, ok := idx.identities[key]
	return c, ok
}

// Bind records c as the owner of key.
func (idx *Index) Bind(key string, c *Container) {
	idx.identities[key] = c
}

// Unbind drops the mapping for key.
func (idx *Index) Unbind(key string) {
	delete(idx.identities, key)
}

// Reset empties the identity map.
func (idx *Index) Reset() {
	idx.identities = make(map[string]*Container)
}

// Keys returns the number of indexed identity keys.
func (idx *Index) Keys() int {
	return len(idx.identities)
}

// Containers returns every category container in document order.
func (idx *Index) Containers() []*Container {
	return idx.containers
}

// Duplicates returns the duplicate keys found while building.
func (idx *Index) Duplicates() []Duplicate {
	return idx.duplicates
}

// Len returns the number of placemarks across all containers.
func (idx *Index) Len() int {
	n := 0
	for _, c := range idx.containers {
		n += c.Len()
	}
	return n
}

// Root returns the folder the hierarchy was read from.
func (idx *Index) Root() *etree.Element {
	return idx.root
}
