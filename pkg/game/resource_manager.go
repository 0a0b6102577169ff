package game

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/decker502/valentine/pkg/art"
)

// FontName identifies one of the bundled Go fonts.
type FontName string

const (
	// FontTitle is used for the page header.
	FontTitle FontName = "gobold"
	// FontBody is used for the subtitle.
	FontBody FontName = "goregular"
	// FontPixel is the monospace face used on the pixel buttons.
	FontPixel FontName = "gomonobold"
)

var fontData = map[FontName][]byte{
	FontTitle: gobold.TTF,
	FontBody:  goregular.TTF,
	FontPixel: gomonobold.TTF,
}

// ResourceManager is responsible for centralized management of page resources.
// It caches font faces and the rasterized heart and mascot sprites so each
// is built only once per size.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The internal caches use standard Go maps.
// For the single-threaded ebiten game loop, no synchronization is needed.
//
// Usage:
//
//	rm := NewResourceManager()
//	face, err := rm.LoadFont(FontTitle, 44)
//	heart := rm.HeartImage(24, config.HeartColor)
type ResourceManager struct {
	fontSourceCache map[FontName]*text.GoTextFaceSource // Cache for parsed font sources
	fontFaceCache   map[string]*text.GoTextFace         // Cache for faces: "name:size" -> face
	heartCache      map[heartKey]*ebiten.Image          // Cache for heart sprites
	mascotCache     map[int]*ebiten.Image               // Cache for mascot sprites: pixel scale -> image
}

type heartKey struct {
	size int
	c    color.RGBA
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Returns:
//   - A pointer to a newly initialized ResourceManager with empty caches.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		fontSourceCache: make(map[FontName]*text.GoTextFaceSource),
		fontFaceCache:   make(map[string]*text.GoTextFace),
		heartCache:      make(map[heartKey]*ebiten.Image),
		mascotCache:     make(map[int]*ebiten.Image),
	}
}

// LoadFont creates a text face of the given bundled font and size.
// The face is cached with a key combining font name and size.
//
// Parameters:
//   - name: One of FontTitle, FontBody, FontPixel.
//   - size: The font size in pixels.
//
// Returns:
//   - A pointer to the text.GoTextFace ready for rendering.
//   - An error if the font is unknown or cannot be parsed.
func (rm *ResourceManager) LoadFont(name FontName, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", name, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	source, ok := rm.fontSourceCache[name]
	if !ok {
		data, known := fontData[name]
		if !known {
			return nil, fmt.Errorf("unknown font %q", name)
		}
		var err error
		source, err = text.NewGoTextFaceSource(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source for %s: %w", name, err)
		}
		rm.fontSourceCache[name] = source
	}

	goTextFace := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = goTextFace
	return goTextFace, nil
}

// GetFont retrieves a previously loaded font face from the cache.
// If the font has not been loaded yet, it returns nil.
func (rm *ResourceManager) GetFont(name FontName, size float64) *text.GoTextFace {
	return rm.fontFaceCache[fmt.Sprintf("%s:%.1f", name, size)]
}

// HeartImage returns a filled heart sprite of side size, rasterizing it on
// first use.
func (rm *ResourceManager) HeartImage(size int, c color.RGBA) *ebiten.Image {
	if size < 1 {
		size = 1
	}
	key := heartKey{size: size, c: c}
	if img, ok := rm.heartCache[key]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(art.HeartImage(size, c))
	rm.heartCache[key] = img
	return img
}

// MascotImage returns the pixel-art mascot at the given pixel scale.
func (rm *ResourceManager) MascotImage(pixel int) *ebiten.Image {
	if pixel < 1 {
		pixel = 1
	}
	if img, ok := rm.mascotCache[pixel]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(art.MascotImage(pixel))
	rm.mascotCache[pixel] = img
	return img
}
