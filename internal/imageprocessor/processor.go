package imageprocessor

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

var (
	ErrInvalidImage   = errors.New("invalid image")
	ErrTooManyPixels = errors.New("image dimensions exceed the pixel limit")
)

// Result - подготовленное к сохранению изображение
type Result struct {
	Data        []byte
	ContentType string
	Ext         string
	Width       int
	Height      int
	Resized     bool
}

// Processor handles image processing operations
type Processor struct {
	quality      int // JPEG quality (1-100)
	maxDimension int   // максимальная сторона, 0 - без ограничения
	maxPixels    int64 // предел ширина*высота до декодирования, 0 - без ограничения
}

// NewProcessor creates a new image processor
func NewProcessor(quality, maxDimension int, maxPixels int64) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 85 // Default quality
	}
	if maxDimension < 0 {
		maxDimension = 0
	}
	if maxPixels < 0 {
		maxPixels = 0
	}
	return &Processor{
		quality:      quality,
		maxDimension: maxDimension,
		maxPixels:    maxPixels,
	}
}

// Prepare проверяет, что данные - изображение, и уменьшает JPEG/PNG,
// если одна из сторон больше maxDimension. Прочие форматы сохраняются как есть.
// Размеры из заголовка сверяются с maxPixels до полного декодирования.
func (p *Processor) Prepare(data []byte) (*Result, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if p.maxPixels > 0 && int64(cfg.Width)*int64(cfg.Height) > p.maxPixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooManyPixels, cfg.Width, cfg.Height)
	}

	res := &Result{
		Data:        data,
		ContentType: "image/" + format,
		Ext:         ExtensionFor("image/" + format),
		Width:       cfg.Width,
		Height:      cfg.Height,
	}

	if !p.needsResize(cfg.Width, cfg.Height) || (format != "jpeg" && format != "png") {
		return res, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	w, h := fitWithin(cfg.Width, cfg.Height, p.maxDimension)
	resized := p.resize(img, w, h)

	var buf bytes.Buffer
	switch format {
	case "jpeg":
		if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: p.quality}); err != nil {
			return nil, fmt.Errorf("failed to encode JPEG: %w", err)
		}
	case "png":
		if err := png.Encode(&buf, resized); err != nil {
			return nil, fmt.Errorf("failed to encode PNG: %w", err)
		}
	}

	res.Data = buf.Bytes()
	res.Width, res.Height = w, h
	res.Resized = true
	return res, nil
}

func (p *Processor) needsResize(width, height int) bool {
	return p.maxDimension > 0 && (width > p.maxDimension || height > p.maxDimension)
}

// fitWithin сохраняет пропорции, большая сторона становится равной max
func fitWithin(width, height, max int) (int, int) {
	if width >= height {
		h := int(float64(height) * float64(max) / float64(width))
		if h < 1 {
			h = 1
		}
		return max, h
	}
	w := int(float64(width) * float64(max) / float64(height))
	if w < 1 {
		w = 1
	}
	return w, max
}

// resize resizes an image to the exact target size
func (p *Processor) resize(img image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// DetectContentType возвращает MIME-тип части: заявленный клиентом,
// либо определенный по первым байтам, если заголовка нет
func DetectContentType(declared string, head []byte) string {
	declared = strings.TrimSpace(strings.ToLower(declared))
	if i := strings.IndexByte(declared, ';'); i >= 0 {
		declared = strings.TrimSpace(declared[:i])
	}
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	return http.DetectContentType(head)
}

// ExtensionFor - расширение файла для MIME-типа
func ExtensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
