package assets

import (
	"embed"
	"fmt"
	"image/color"
	"io/fs"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
	"gopkg.in/yaml.v3"
)

var (
	//go:embed all:fields
	fieldFS embed.FS

	//go:embed themes.yaml
	themesYAML []byte
)

// CourtPath is the embedded court layout
const CourtPath = "fields/court.tmx"

// Zone is a rectangle in field coordinates
type Zone struct {
	X, Y, Width, Height float64
}

// Court is the layout of the play field: where each paddle stands between
// points and the band power-ups appear in
type Court struct {
	P1Home      math.Vec2
	LeftHome    math.Vec2
	PowerUpZone Zone
	Width       int
	Height      int
}

// LoadCourt reads the embedded court layout
func LoadCourt() (Court, error) {
	return LoadCourtFS(fieldFS, CourtPath)
}

// LoadCourtFS reads a court layout from a TMX file. Paddle spawns are tagged
// with a "role" property (1 for Player 1, 2 for the left paddle); every object
// is reduced to its center.
func LoadCourtFS(fsys fs.FS, path string) (Court, error) {
	courtMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return Court{}, fmt.Errorf("failed to load court %s: %w", path, err)
	}

	court := Court{
		Width:  courtMap.Width * courtMap.TileWidth,
		Height: courtMap.Height * courtMap.TileHeight,
	}
	var haveP1, haveLeft, haveZone bool

	for _, og := range courtMap.ObjectGroups {
		switch og.Name {
		case "PaddleSpawn":
			for _, o := range og.Objects {
				center := math.Vec2{X: o.X + o.Width/2, Y: o.Y + o.Height/2}
				switch o.Properties.GetInt("role") {
				case 1:
					court.P1Home, haveP1 = center, true
				case 2:
					court.LeftHome, haveLeft = center, true
				}
			}
		case "PowerUpZone":
			for _, o := range og.Objects {
				court.PowerUpZone = Zone{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
				haveZone = true
			}
		}
	}

	switch {
	case !haveP1:
		return Court{}, fmt.Errorf("court %s: no Player 1 spawn", path)
	case !haveLeft:
		return Court{}, fmt.Errorf("court %s: no left paddle spawn", path)
	case !haveZone:
		return Court{}, fmt.Errorf("court %s: no power-up zone", path)
	}
	return court, nil
}

// Theme is the color scheme of the court
type Theme struct {
	Name       string
	Background color.RGBA
	Line       color.RGBA
	Accent     color.RGBA
}

type themeFile struct {
	Themes []struct {
		Name       string `yaml:"name"`
		Background string `yaml:"background"`
		Line       string `yaml:"line"`
		Accent     string `yaml:"accent"`
	} `yaml:"themes"`
}

// LoadThemes parses the embedded theme table
func LoadThemes() ([]Theme, error) {
	return ParseThemes(themesYAML)
}

func ParseThemes(data []byte) ([]Theme, error) {
	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse themes YAML: %w", err)
	}
	if len(file.Themes) == 0 {
		return nil, fmt.Errorf("themes cannot be empty")
	}

	themes := make([]Theme, 0, len(file.Themes))
	for _, t := range file.Themes {
		theme := Theme{Name: t.Name}
		var err error
		if theme.Background, err = parseHexColor(t.Background); err != nil {
			return nil, fmt.Errorf("theme %q background: %w", t.Name, err)
		}
		if theme.Line, err = parseHexColor(t.Line); err != nil {
			return nil, fmt.Errorf("theme %q line: %w", t.Name, err)
		}
		if theme.Accent, err = parseHexColor(t.Accent); err != nil {
			return nil, fmt.Errorf("theme %q accent: %w", t.Name, err)
		}
		themes = append(themes, theme)
	}
	return themes, nil
}

// parseHexColor reads an opaque "#rrggbb" color
func parseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
