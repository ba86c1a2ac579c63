package figure

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/png"
	"math"
	"os"

	"github.com/pkg/errors"
)

const pngHeaderLen = 8 + 8 + 13 + 4 // signature, IHDR length+type, IHDR data, IHDR crc

// EncodePNG encodes img as PNG and tags it with a pHYs chunk carrying dpi.
func EncodePNG(img image.Image, dpi float64) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(err, "encode png")
	}
	b := buf.Bytes()
	if dpi <= 0 || len(b) < pngHeaderLen {
		return b, nil
	}
	out := make([]byte, 0, len(b)+21)
	out = append(out, b[:pngHeaderLen]...)
	out = append(out, physChunk(dpi)...)
	out = append(out, b[pngHeaderLen:]...)
	return out, nil
}

// physChunk builds a pHYs chunk: pixels per metre on both axes, unit = metre.
func physChunk(dpi float64) []byte {
	ppm := uint32(math.Round(dpi / 0.0254))
	data := make([]byte, 9)
	binary.BigEndian.PutUint32(data[0:4], ppm)
	binary.BigEndian.PutUint32(data[4:8], ppm)
	data[8] = 1

	chunk := make([]byte, 0, 4+4+len(data)+4)
	chunk = binary.BigEndian.AppendUint32(chunk, uint32(len(data)))
	chunk = append(chunk, "pHYs"...)
	chunk = append(chunk, data...)
	return binary.BigEndian.AppendUint32(chunk, crc32.ChecksumIEEE(chunk[4:]))
}

// Save writes img to path as a PNG tagged with dpi. The file is closed on every path;
// a failed write leaves the error from the first failing step.
func Save(img image.Image, path string, dpi float64) (n int, err error) {
	data, err := EncodePNG(img, dpi)
	if err != nil {
		return 0, err
	}
	f, err := os.Create(path)
	if err != nil {
		return 0, errors.Wrap(err, "create output")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close output")
		}
	}()
	n, err = f.Write(data)
	if err != nil {
		return n, errors.Wrapf(err, "write %s", path)
	}
	return n, nil
}

// ComposeAndSave composes the two panels and writes the figure to path.
func ComposeAndSave(top, bottom *Panel, st Style, caption, path string) (image.Rectangle, int, error) {
	img, err := Compose(top, bottom, st, caption)
	if err != nil {
		return image.Rectangle{}, 0, err
	}
	n, err := Save(img, path, st.DPI)
	return img.Bounds(), n, err
}
