// Package testhelper provides placemark documents and record files for tests.
package testhelper

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agentstation/automark/pkg/constants"
	"github.com/agentstation/automark/pkg/kml"
)

// Map is a document with a reference folder followed by the community
// mapping hierarchy: nine category containers and four placemarks.
//
//	pune/kothrud/enrollment    asha patil
//	pune/kothrud/skilling      ravi kumar
//	pune/hadapsar/placement    meera joshi
//	mumbai/dharavi/enrollment  sunil rao
const Map = `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2" xmlns:gx="http://www.google.com/kml/ext/2.2" xmlns:kml="http://www.opengis.net/kml/2.2" xmlns:atom="http://www.w3.org/2005/Atom">
<Document>
	<name>Lighthouse Map</name>
	<Style id="s_ylw-pushpin"><IconStyle><scale>1.1</scale></IconStyle></Style>
	<Folder>
		<name>Lighthouses</name>
		<Placemark><name>Pune Lighthouse</name></Placemark>
	</Folder>
	<Folder>
		<name>Community Mapping</name>
		<Folder>
			<name>Pune</name>
			<Folder>
				<name>Kothrud</name>
				<Folder>
					<name>Enrollment</name>
					` + placemarkAsha + `
				</Folder>
				<Folder>
					<name>Skilling</name>
					<Placemark><name>Ravi Kumar</name><styleUrl>#msn_shaded_dot000</styleUrl><Point><coordinates>73.8,18.5,0</coordinates></Point></Placemark>
				</Folder>
				<Folder>
					<name>Placement</name>
				</Folder>
			</Folder>
			<Folder>
				<name> Hadapsar </name>
				<Folder><name>Enrollment</name></Folder>
				<Folder><name>Skilling</name></Folder>
				<Folder>
					<name>Placement</name>
					<Placemark><name>Meera Joshi</name><styleUrl>#msn_shaded_dot002</styleUrl></Placemark>
				</Folder>
			</Folder>
		</Folder>
		<Folder>
			<name>Mumbai</name>
			<Folder>
				<name>Dharavi</name>
				<Folder>
					<name>Enrollment</name>
					<Placemark><name>Sunil Rao</name><styleUrl>#m_ylw-pushpin100</styleUrl></Placemark>
				</Folder>
				<Folder><name>Skilling</name></Folder>
				<Folder><name>Placement</name></Folder>
			</Folder>
		</Folder>
	</Folder>
</Document>
</kml>
`

const placemarkAsha = `<Placemark>
						<name>Asha Patil</name>
						<LookAt><longitude>73.85</longitude><latitude>18.52</latitude></LookAt>
						<styleUrl>#m_ylw-pushpin100</styleUrl>
						<Point><gx:drawOrder>1</gx:drawOrder><coordinates>73.85,18.52,0</coordinates></Point>
					</Placemark>`

// MapEntries is the number of placemarks under the hierarchy of Map.
const MapEntries = 4

// MapContainers is the number of category containers in Map.
const MapContainers = 9

// DuplicateMap returns Map with a second "Asha Patil" placemark in
// mumbai/dharavi/skilling.
func DuplicateMap() string {
	return strings.Replace(Map,
		"<Folder><name>Skilling</name></Folder>\n\t\t\t\t<Folder><name>Placement</name></Folder>",
		"<Folder><name>Skilling</name><Placemark><name>asha patil </name></Placemark></Folder>\n\t\t\t\t<Folder><name>Placement</name></Folder>",
		1)
}

// Document parses content, failing the test on error.
func Document(t testing.TB, content string) *kml.Document {
	t.Helper()

	doc, err := kml.Read(strings.NewReader(content), "test.kml")
	if err != nil {
		t.Fatalf("Failed to parse test document: %v", err)
	}
	return doc
}

// WriteFile writes content to name under dir and returns the path.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), constants.FilePermissions); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}
