// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package device

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/boswachter/observations/models"
)

var ErrLocationUnavailable = errors.New("location unavailable")

// Image is a picked photo. CaptureTime is zero when the picker found no
// embedded capture time.
type Image struct {
	Ref         string
	CaptureTime time.Time
}

// Coordinate is a latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// String formats the pair the way observations store it.
func (c Coordinate) String() string {
	return models.FormatLocation(c.Lat, c.Lon)
}

// FileImageSource picks a photo from a local path. An empty path is a
// canceled pick.
type FileImageSource struct {
	Path        string
	CaptureTime time.Time
}

func (s FileImageSource) Pick(ctx context.Context) (Image, bool, error) {
	if err := ctx.Err(); err != nil {
		return Image{}, false, err
	}
	if s.Path == "" {
		return Image{}, false, nil
	}

	info, err := os.Stat(s.Path)
	if err != nil {
		return Image{}, false, fmt.Errorf("open image: %w", err)
	}
	if info.IsDir() {
		return Image{}, false, fmt.Errorf("open image: %s is a directory", s.Path)
	}

	return Image{Ref: s.Path, CaptureTime: s.CaptureTime}, true, nil
}

// StaticLocator reports a fixed position, or ErrLocationUnavailable when
// none was given.
type StaticLocator struct {
	Coord *Coordinate
}

func (l StaticLocator) Locate(ctx context.Context) (Coordinate, error) {
	if err := ctx.Err(); err != nil {
		return Coordinate{}, err
	}
	if l.Coord == nil {
		return Coordinate{}, ErrLocationUnavailable
	}
	return *l.Coord, nil
}

// FileAssetMetadata reads asset timestamps from the filesystem.
type FileAssetMetadata struct{}

// ModTime returns the modification time of the file behind ref.
func (FileAssetMetadata) ModTime(ctx context.Context, ref string) (time.Time, error) {
	if err := ctx.Err(); err != nil {
		return time.Time{}, err
	}
	info, err := os.Stat(ref)
	if err != nil {
		return time.Time{}, fmt.Errorf("asset metadata: %w", err)
	}
	return info.ModTime(), nil
}
