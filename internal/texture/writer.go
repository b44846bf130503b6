package texture

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	xdraw "golang.org/x/image/draw"
)

// ensureDir создаёт родительские директории пути, если их нет
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("ошибка создания директории %s: %w", dir, err)
	}
	return nil
}

// writePNG кодирует байты пикселей как одноканальный 8-битный PNG
func writePNG(path string, pixels []uint8, width, height int) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	img := &image.Gray{
		Pix:    pixels,
		Stride: width,
		Rect:   image.Rect(0, 0, width, height),
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ошибка создания файла %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("ошибка кодирования PNG %s: %w", path, err)
	}
	return nil
}

// writeRaw сохраняет нормализованное поле высот как big-endian uint16
// с gzip-сжатием. 16 бит на пиксель оставляют конвейеру больше точности,
// чем итоговый 8-битный PNG.
func writeRaw(path string, normalized *HeightField) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ошибка создания файла %s: %w", path, err)
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	buf := make([]byte, 2*normalized.Width)
	for row := 0; row < normalized.Height; row++ {
		for col := 0; col < normalized.Width; col++ {
			binary.BigEndian.PutUint16(buf[2*col:], uint16(normalized.At(row, col)*65535))
		}
		if _, err := gz.Write(buf); err != nil {
			return fmt.Errorf("ошибка записи поля высот %s: %w", path, err)
		}
	}

	if err := gz.Close(); err != nil {
		return fmt.Errorf("ошибка завершения gzip %s: %w", path, err)
	}
	return nil
}

// writePreview собирает лист 2x2 из текстуры и уменьшает его обратно до
// исходного размера. Если стыковка краёв нарушена, швы видны в центре
// превью крестом.
func writePreview(path string, pixels []uint8, width, height int) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	tile := &image.Gray{
		Pix:    pixels,
		Stride: width,
		Rect:   image.Rect(0, 0, width, height),
	}

	sheet := image.NewGray(image.Rect(0, 0, 2*width, 2*height))
	for row := 0; row < 2*height; row++ {
		srcRow := tile.Pix[(row%height)*width : (row%height+1)*width]
		dst := sheet.Pix[row*sheet.Stride:]
		copy(dst, srcRow)
		copy(dst[width:], srcRow)
	}

	preview := image.NewGray(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(preview, preview.Bounds(), sheet, sheet.Bounds(), xdraw.Src, nil)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ошибка создания файла %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, preview); err != nil {
		return fmt.Errorf("ошибка кодирования превью %s: %w", path, err)
	}
	return nil
}
