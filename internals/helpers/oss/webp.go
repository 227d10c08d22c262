package helper

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

// ErrUnsupportedImage: bukan jpeg/png/webp.
var ErrUnsupportedImage = errors.New("unsupported image format (use jpg, png or webp)")

/* =======================================================================
   Konfigurasi WebP
======================================================================= */

type WebPOptions struct {
	MaxW     int     // batas lebar (resize keep-aspect)
	MaxH     int     // batas tinggi
	TargetKB int     // target ukuran; 0 = pakai Quality saja
	Quality  float32 // quality saat TargetKB=0
	MinQ     float32 // batas bawah binary search
	MaxQ     float32 // batas atas binary search
}

func DefaultWebPOptions() WebPOptions {
	return WebPOptions{
		MaxW:    1600,
		MaxH:    1600,
		Quality: 80,
		MinQ:    45,
		MaxQ:    85,
	}
}

/* =======================================================================
   Decode (sniff MIME, fallback ke ekstensi)
======================================================================= */

func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	kind := http.DetectContentType(head)
	if !strings.HasPrefix(kind, "image/") {
		kind = strings.ToLower(filepath.Ext(filename))
	}

	switch {
	case strings.Contains(kind, "jpeg"), kind == ".jpg":
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(kind, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(kind, "webp"):
		return webp.Decode(bytes.NewReader(all))
	}
	return nil, ErrUnsupportedImage
}

// downscaleIfNeeded: keep aspect, CatmullRom.
func downscaleIfNeeded(src image.Image, maxW, maxH int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if (maxW <= 0 || w <= maxW) && (maxH <= 0 || h <= maxH) {
		return src
	}
	scale := 1.0
	if maxW > 0 {
		scale = math.Min(scale, float64(maxW)/float64(w))
	}
	if maxH > 0 {
		scale = math.Min(scale, float64(maxH)/float64(h))
	}
	nw := max(1, int(math.Round(float64(w)*scale)))
	nh := max(1, int(math.Round(float64(h)*scale)))

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

/* =======================================================================
   Encode
   - TargetKB > 0 → binary search quality sampai <= target
   - TargetKB = 0 → sekali encode dengan Quality
======================================================================= */

func encodeToWebP(img image.Image, opt WebPOptions) ([]byte, error) {
	encodeQ := func(q float32) ([]byte, error) {
		buf := new(bytes.Buffer)
		if err := webp.Encode(buf, img, &webp.Options{Quality: q}); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	if opt.TargetKB <= 0 {
		q := opt.Quality
		if q <= 0 {
			q = 80
		}
		return encodeQ(q)
	}

	low, high := opt.MinQ, opt.MaxQ
	if low <= 0 {
		low = 45
	}
	if high <= 0 {
		high = 85
	}
	target := opt.TargetKB * 1024

	var best []byte
	for i := 0; i < 7; i++ {
		q := (low + high) / 2
		data, err := encodeQ(q)
		if err != nil {
			return nil, err
		}
		if len(data) <= target {
			best = data
			low = q // masih muat → coba quality lebih tinggi
		} else {
			high = q
		}
	}
	if best == nil {
		return encodeQ(low)
	}
	return best, nil
}

// ConvertToWebP: baca → decode → resize → encode webp.
func ConvertToWebP(r io.Reader, filename string, opts WebPOptions) ([]byte, error) {
	all, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	img, err := decodeImage(all, filename)
	if err != nil {
		return nil, err
	}
	return encodeToWebP(downscaleIfNeeded(img, opts.MaxW, opts.MaxH), opts)
}
