package fonts

import (
	"fmt"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"
)

const dpi = 72

// Family selects the typeface used for in-game text.
type Family int

const (
	FamilyMPlus Family = iota
	FamilyGoMono
)

func (f Family) String() string {
	switch f {
	case FamilyMPlus:
		return "mplus"
	case FamilyGoMono:
		return "gomono"
	}
	return "unknown"
}

func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(s) {
	case "mplus":
		return FamilyMPlus, nil
	case "gomono", "go":
		return FamilyGoMono, nil
	}
	return 0, fmt.Errorf("unknown font family %q", s)
}

// Cache hands out font faces of one family by pixel size, creating each
// size once.
type Cache struct {
	family  Family
	newFace func(size float64) (font.Face, error)

	lock  sync.Mutex
	faces map[float64]font.Face
}

func NewCache(family Family) (*Cache, error) {
	c := &Cache{
		family: family,
		faces:  make(map[float64]font.Face),
	}

	switch family {
	case FamilyMPlus:
		tt, err := opentype.Parse(fonts.MPlus1pRegular_ttf)
		if err != nil {
			return nil, fmt.Errorf("failed to parse font: %v", err)
		}
		c.newFace = func(size float64) (font.Face, error) {
			return opentype.NewFace(tt, &opentype.FaceOptions{
				Size:    size,
				DPI:     dpi,
				Hinting: font.HintingVertical,
			})
		}
	case FamilyGoMono:
		ttfFont, err := truetype.Parse(gomonobold.TTF)
		if err != nil {
			return nil, fmt.Errorf("failed to parse font: %v", err)
		}
		c.newFace = func(size float64) (font.Face, error) {
			return truetype.NewFace(ttfFont, &truetype.Options{
				Size:    size,
				DPI:     dpi,
				Hinting: font.HintingFull,
			}), nil
		}
	default:
		return nil, fmt.Errorf("unknown font family %d", family)
	}

	return c, nil
}

func (c *Cache) Family() Family {
	return c.family
}

// Face returns the face for the given size in pixels.
func (c *Cache) Face(size float64) (font.Face, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if face, ok := c.faces[size]; ok {
		return face, nil
	}
	face, err := c.newFace(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %v", err)
	}
	c.faces[size] = face
	return face, nil
}

// MeasureString returns the advance width of s in pixels.
func (c *Cache) MeasureString(s string, size float64) (float64, error) {
	face, err := c.Face(size)
	if err != nil {
		return 0, err
	}
	return float64(font.MeasureString(face, s)) / 64, nil
}
