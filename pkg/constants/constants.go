// Package constants provides shared constants used throughout the automark codebase.
// This includes file permissions, default paths and the fixed
// presentational values written into every generated placemark.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Default values
const (
	// DefaultOutputPath is where the merged document is written when no path is given
	DefaultOutputPath = "output.kml"

	// DefaultOutputExtension is appended to output paths that have no extension
	DefaultOutputExtension = ".kml"

	// DefaultRootFolder is the label of the folder that holds the lighthouse hierarchy
	DefaultRootFolder = "community mapping"

	// DefaultIndent is the number of spaces used when re-indenting the output document
	DefaultIndent = 2

	// DefaultConfigName is the config file name searched in $HOME and the working directory
	DefaultConfigName = ".automark"

	// EnvPrefix is the prefix for automark environment variables
	EnvPrefix = "AUTOMARK"
)

// Placemark view defaults. These are constants of the output format and are
// never derived from input records.
const (
	// LookAtAltitude is the LookAt altitude of every generated placemark
	LookAtAltitude = "0"

	// LookAtHeading is the LookAt heading of every generated placemark
	LookAtHeading = "8.477988743497458e-005"

	// LookAtTilt is the LookAt tilt of every generated placemark
	LookAtTilt = "28.80817332026854"

	// LookAtRange is the LookAt range of every generated placemark
	LookAtRange = "146.3098415937417"

	// AltitudeMode is the gx:altitudeMode of every generated placemark
	AltitudeMode = "relativeToSeaFloor"

	// DrawOrder is the gx:drawOrder of every generated point
	DrawOrder = "1"
)

// Format constants
const (
	// CoordinatePrecision is the number of decimals written for decimal degrees
	CoordinatePrecision = 6

	// RecordFields is the number of comma-separated fields in an input row
	RecordFields = 7
)
