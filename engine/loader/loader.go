// Package loader decodes texture images from disk into RGBA pixel data ready for upload.
package loader

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"runtime"
	"sync"
	"time"

	// Registered decoders: the standard library covers PNG, JPEG and GIF,
	// golang.org/x/image adds BMP, TIFF and WebP.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-gl/common"
)

// ErrNoPaths is returned by LoadAll when called without any paths.
var ErrNoPaths = errors.New("no image paths given")

// ErrEmptyImage is returned when a decoded image has no pixels.
var ErrEmptyImage = errors.New("image has no pixels")

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.RWMutex

	cache        map[string]*image.RGBA
	cacheEnabled bool

	workers     int
	idleTimeout time.Duration
}

// Loader decodes image files into *image.RGBA and optionally caches the result by path.
// Decoding never touches GL state, so it is safe to call from any goroutine.
type Loader interface {
	// Load decodes the image at path. Cached results are returned without touching the disk.
	//
	// Parameters:
	//   - path: the file path of the image
	//
	// Returns:
	//   - *image.RGBA: the decoded image with its bounds starting at (0, 0)
	//   - error: error if the file cannot be opened or decoded
	Load(path string) (*image.RGBA, error)

	// LoadAll decodes every path concurrently on a worker pool.
	// The results keep the order of paths. If any path fails, the error of the
	// first failing path (in input order) is returned and the images are discarded.
	//
	// Parameters:
	//   - paths: the file paths of the images
	//
	// Returns:
	//   - []*image.RGBA: the decoded images, index-aligned with paths
	//   - error: error if paths is empty or any decode fails
	LoadAll(paths []string) ([]*image.RGBA, error)

	// Evict drops path from the cache.
	//
	// Parameters:
	//   - path: the cache key to drop
	Evict(path string)

	// Clear drops every cached image.
	Clear()
}

var _ Loader = &loader{}

// NewLoader creates a new Loader. By default caching is disabled and LoadAll uses
// one worker per CPU.
//
// Parameters:
//   - options: functional options to configure the loader
//
// Returns:
//   - Loader: the newly created loader
func NewLoader(options ...LoaderBuilderOption) Loader {
	l := &loader{
		cache:       make(map[string]*image.RGBA),
		idleTimeout: 100 * time.Millisecond,
	}
	for _, opt := range options {
		opt(l)
	}
	l.workers = common.Coalesce(max(l.workers, 0), runtime.NumCPU())
	return l
}

func (l *loader) Load(path string) (*image.RGBA, error) {
	if l.cacheEnabled {
		l.mu.RLock()
		img, ok := l.cache[path]
		l.mu.RUnlock()
		if ok {
			return img, nil
		}
	}

	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}

	if l.cacheEnabled {
		l.mu.Lock()
		l.cache[path] = img
		l.mu.Unlock()
	}
	return img, nil
}

func (l *loader) LoadAll(paths []string) ([]*image.RGBA, error) {
	if len(paths) == 0 {
		return nil, ErrNoPaths
	}

	images := make([]*image.RGBA, len(paths))
	errs := make([]error, len(paths))

	pool := worker.NewDynamicWorkerPool(min(l.workers, len(paths)), len(paths), l.idleTimeout)

	// Each task writes only its own slot, so the WaitGroup is the only barrier needed.
	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		idx, p := i, path
		pool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()
				images[idx], errs[idx] = l.Load(p)
				return nil, nil
			},
		})
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("failed to load image %d (%s): %w", i, paths[i], err)
		}
	}
	return images, nil
}

func (l *loader) Evict(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.cache, path)
}

func (l *loader) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	clear(l.cache)
}

// LoadImage opens and decodes a single image file without caching.
//
// Parameters:
//   - path: the file path of the image
//
// Returns:
//   - *image.RGBA: the decoded image with its bounds starting at (0, 0)
//   - error: error if the file cannot be opened or decoded
func LoadImage(path string) (*image.RGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image file %s: %w", path, err)
	}
	common.Logger().Debug("decoded texture image", "path", path, "width", img.Rect.Dx(), "height", img.Rect.Dy())
	return img, nil
}

// Decode decodes an image stream in any registered format and converts it to RGBA.
//
// Parameters:
//   - r: the encoded image data
//
// Returns:
//   - *image.RGBA: the decoded image with its bounds starting at (0, 0)
//   - error: error if the data cannot be decoded or is empty
func Decode(r io.Reader) (*image.RGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return ToRGBA(img)
}

// ToRGBA converts img to a tightly packed *image.RGBA anchored at (0, 0).
// An *image.RGBA that already satisfies this is returned as is.
//
// Parameters:
//   - img: the source image
//
// Returns:
//   - *image.RGBA: the converted image
//   - error: ErrEmptyImage if img has no pixels
func ToRGBA(img image.Image) (*image.RGBA, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, ErrEmptyImage
	}
	if rgba, ok := img.(*image.RGBA); ok && bounds.Min == (image.Point{}) && rgba.Stride == 4*bounds.Dx() {
		return rgba, nil
	}
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba, nil
}
