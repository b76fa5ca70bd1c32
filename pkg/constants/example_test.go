package constants_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentstation/automark/pkg/constants"
)

// Example demonstrates using constants for common operations
func Example() {
	dir, err := os.MkdirTemp("", "automark-example")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	// Create file with standard permissions
	file := filepath.Join(dir, constants.DefaultOutputPath)
	if err := os.WriteFile(file, []byte("<kml/>"), constants.FilePermissions); err != nil {
		panic(err)
	}

	fmt.Printf("Created %s with %o permissions\n", filepath.Base(file), constants.FilePermissions)
	// Output:
	// Created output.kml with 644 permissions
}

// Example_placemarkDefaults shows the fixed LookAt values of generated placemarks
func Example_placemarkDefaults() {
	fmt.Printf("tilt=%s range=%s mode=%s\n", constants.LookAtTilt, constants.LookAtRange, constants.AltitudeMode)
	// Output:
	// tilt=28.80817332026854 range=146.3098415937417 mode=relativeToSeaFloor
}
