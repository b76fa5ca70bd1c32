package index

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/agentstation/automark/pkg/kml"
	"github.com/agentstation/automark/pkg/placemark"
)

// Path addresses a category container by its normalized folder names.
type Path struct {
	Group    string `json:"group" yaml:"group"`
	Subgroup string `json:"subgroup" yaml:"subgroup"`
	Category string `json:"category" yaml:"category"`
}

// NewPath normalizes the three folder names.
func NewPath(group, subgroup, category string) Path {
	return Path{
		Group:    placemark.Normalize(group),
		Subgroup: placemark.Normalize(subgroup),
		Category: placemark.Normalize(category),
	}
}

// String returns the slash-joined path.
func (p Path) String() string {
	return strings.Join([]string{p.Group, p.Subgroup, p.Category}, "/")
}

// Container is a category folder holding an ordered list of placemarks.
type Container struct {
	path Path
	el   *etree.Element
}

// Path returns the container's address.
func (c *Container) Path() Path {
	return c.path
}

// Element returns the underlying Folder element.
func (c *Container) Element() *etree.Element {
	return c.el
}

// Placemarks returns the placemark elements in document order.
func (c *Container) Placemarks() []*etree.Element {
	return c.el.SelectElements(kml.TagPlacemark)
}

// Entries returns the placemarks parsed as entries.
func (c *Container) Entries() []placemark.Entry {
	pms := c.Placemarks()
	entries := make([]placemark.Entry, 0, len(pms))
	for _, pm := range pms {
		entries = append(entries, placemark.Parse(pm))
	}
	return entries
}

// Len returns the number of placemarks.
func (c *Container) Len() int {
	return len(c.Placemarks())
}

// Find returns the first placemark whose normalized label equals key.
func (c *Container) Find(key string) *etree.Element {
	for _, pm := range c.Placemarks() {
		if name, ok := kml.Name(pm); ok && placemark.Normalize(name) == key {
			return pm
		}
	}
	return nil
}

// Append adds a placemark after the existing ones.
func (c *Container) Append(pm *etree.Element) {
	c.el.AddChild(pm)
}

// Remove deletes every placemark whose normalized label equals key and
// returns how many were removed.
func (c *Container) Remove(key string) int {
	removed := 0
	for _, pm := range c.Placemarks() {
		if name, ok := kml.Name(pm); ok && placemark.Normalize(name) == key {
			c.el.RemoveChild(pm)
			removed++
		}
	}
	return removed
}

// Clear removes every placemark and returns the labels removed, in order.
func (c *Container) Clear() []string {
	pms := c.Placemarks()
	labels := make([]string, 0, len(pms))
	for _, pm := range pms {
		name, _ := kml.Name(pm)
		labels = append(labels, name)
		c.el.RemoveChild(pm)
	}
	return labels
}
