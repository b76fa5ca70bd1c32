// Package placemark builds the KML Placemark elements written for merged
// records.
package placemark

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/automark/pkg/constants"
	"github.com/agentstation/automark/pkg/kml"
)

// Normalize trims and lowercases a name. Identity keys and folder names are
// compared in this form.
func Normalize(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}

// Entry is one placemark: a person's status at a location.
type Entry struct {
	Key       string   `json:"key" yaml:"key"`
	Latitude  float64  `json:"latitude" yaml:"latitude"`
	Longitude float64  `json:"longitude" yaml:"longitude"`
	Category  Category `json:"category" yaml:"category"`
}

// New builds an Entry. The key is normalized so the label written to the
// document always equals the identity key.
func New(key string, lat, lng float64, category Category) Entry {
	return Entry{
		Key:       Normalize(key),
		Latitude:  lat,
		Longitude: lng,
		Category:  category,
	}
}

// Label returns the text written to the placemark's name element.
func (e Entry) Label() string {
	return e.Key
}

// Element renders the entry as a complete Placemark element.
func (e Entry) Element() *etree.Element {
	lat := FormatDegrees(e.Latitude)
	lng := FormatDegrees(e.Longitude)

	pm := etree.NewElement(kml.TagPlacemark)
	pm.CreateElement(kml.TagName).SetText(e.Label())

	lookAt := pm.CreateElement("LookAt")
	lookAt.CreateElement("longitude").SetText(lng)
	lookAt.CreateElement("latitude").SetText(lat)
	lookAt.CreateElement("altitude").SetText(constants.LookAtAltitude)
	lookAt.CreateElement("heading").SetText(constants.LookAtHeading)
	lookAt.CreateElement("tilt").SetText(constants.LookAtTilt)
	lookAt.CreateElement("range").SetText(constants.LookAtRange)
	lookAt.CreateElement("gx:altitudeMode").SetText(constants.AltitudeMode)

	pm.CreateElement("styleUrl").SetText(e.Category.Style())

	point := pm.CreateElement("Point")
	point.CreateElement("gx:drawOrder").SetText(constants.DrawOrder)
	point.CreateElement("coordinates").SetText(lng + "," + lat + ",0")

	return pm
}

// FormatDegrees renders decimal degrees with fixed precision and without
// trailing zeros.
func FormatDegrees(v float64) string {
	s := strconv.FormatFloat(v, 'f', constants.CoordinatePrecision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// Parse reads an Entry back from a Placemark element. Missing or unreadable
// parts are left at their zero values.
func Parse(el *etree.Element) Entry {
	var e Entry
	if name, ok := kml.Name(el); ok {
		e.Key = Normalize(name)
	}
	if style := el.SelectElement("styleUrl"); style != nil {
		e.Category = categoryForStyle(strings.TrimSpace(style.Text()))
	}
	if point := el.SelectElement("Point"); point != nil {
		if coords := point.SelectElement("coordinates"); coords != nil {
			parts := strings.Split(strings.TrimSpace(coords.Text()), ",")
			if len(parts) >= 2 {
				e.Longitude, _ = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
				e.Latitude, _ = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
			}
		}
	}
	return e
}

func categoryForStyle(style string) Category {
	for c, s := range categoryStyles {
		if s == style {
			return c
		}
	}
	return CategoryUnknown
}
