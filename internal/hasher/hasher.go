// Package hasher derives short content hashes used to make wallpaper file
// names unique within the same second.
package hasher

import (
	"encoding/binary"
	"encoding/hex"
	"image"

	"github.com/cespare/xxhash/v2"
)

// ContentHash computes the xxHash64 of data and returns a hex string
// truncated to hexLen (0 keeps all 16 chars).
func ContentHash(data []byte, hexLen int) string {
	return truncate(xxhash.Sum64(data), hexLen)
}

// PixelHash hashes the raw pixels of img row by row, so two images with
// identical pixels hash the same regardless of stride or encoding.
func PixelHash(img *image.NRGBA, hexLen int) string {
	h := xxhash.New()
	b := img.Rect
	rowLen := b.Dx() * 4
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := img.PixOffset(b.Min.X, y)
		_, _ = h.Write(img.Pix[off : off+rowLen])
	}
	return truncate(h.Sum64(), hexLen)
}

func truncate(sum uint64, hexLen int) string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], sum)
	full := hex.EncodeToString(buf[:])
	if hexLen > 0 && hexLen < len(full) {
		return full[:hexLen]
	}
	return full
}
