// Package store caches serialized engine blobs on disk. Writes go through
// a temp file plus atomic rename so readers never observe a partial file,
// and every stored blob carries a CRC32 checksum that is verified on load.
//
// The container wraps the blob; it does not interpret it. Compressing here
// keeps the interchange format itself byte-stable for content addressing.
package store

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"os"
	"path/filepath"
)

const (
	// magicNumber identifies stored containers (ASCII: "ABGS").
	magicNumber = 0x41424753
	// version is the current container format version.
	version = 1
)

var (
	ErrInvalidMagic   = errors.New("invalid container magic number")
	ErrInvalidVersion = errors.New("unsupported container version")
)

// fileHeader is the fixed-width header at the start of every container.
type fileHeader struct {
	Magic            uint32
	Version          uint16
	Compression      uint8
	Reserved         uint8
	UncompressedSize uint32
	StoredSize       uint32
	Checksum         uint32 // CRC32 (IEEE) of the whole container, see checksum
}

// checksum computes the container CRC32: the header with its Checksum
// field zeroed, followed by the stored payload. Covering the header means
// a flipped size or compression byte fails verification instead of
// steering decompression wrong.
func checksum(h fileHeader, stored []byte) (uint32, error) {
	h.Checksum = 0
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, &h); err != nil {
		return 0, err
	}
	sum := crc32.ChecksumIEEE(buf.Bytes())
	return crc32.Update(sum, crc32.IEEETable, stored), nil
}

// ChecksumMismatchError is returned when a stored blob fails verification.
type ChecksumMismatchError struct {
	Expected uint32
	Actual   uint32
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch: expected 0x%08x, got 0x%08x", e.Expected, e.Actual)
}

// IsChecksumMismatch reports whether err is a checksum mismatch.
func IsChecksumMismatch(err error) bool {
	var cm *ChecksumMismatchError
	return errors.As(err, &cm)
}

// Save writes blob to filename inside a checksummed container, atomically
// replacing any previous file.
func Save(filename string, blob []byte, c Compression) error {
	stored, err := compress(blob, c)
	if err != nil {
		return err
	}

	header := fileHeader{
		Magic:            magicNumber,
		Version:          version,
		Compression:      uint8(c),
		UncompressedSize: uint32(len(blob)),   //nolint:gosec
		StoredSize:       uint32(len(stored)), //nolint:gosec
	}
	sum, err := checksum(header, stored)
	if err != nil {
		return err
	}
	header.Checksum = sum

	return saveToFile(filename, func(w io.Writer) error {
		if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
			return err
		}
		_, err := w.Write(stored)
		return err
	})
}

// Load reads a container from filename, verifies its checksum, and returns
// the original blob.
func Load(filename string) ([]byte, error) {
	var blob []byte
	err := loadFromFile(filename, func(r io.Reader) error {
		var header fileHeader
		if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
			return err
		}
		if header.Magic != magicNumber {
			return fmt.Errorf("%w: got 0x%08x", ErrInvalidMagic, header.Magic)
		}
		if header.Version != version {
			return fmt.Errorf("%w: got %d", ErrInvalidVersion, header.Version)
		}

		stored := make([]byte, header.StoredSize)
		if _, err := io.ReadFull(r, stored); err != nil {
			return err
		}
		actual, err := checksum(header, stored)
		if err != nil {
			return err
		}
		if actual != header.Checksum {
			return &ChecksumMismatchError{Expected: header.Checksum, Actual: actual}
		}

		out, err := decompress(stored, Compression(header.Compression), header.UncompressedSize)
		if err != nil {
			return err
		}
		blob = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return blob, nil
}

// saveToFile writes through a temp file in the same directory so the final
// rename is atomic.
func saveToFile(filename string, writeFunc func(io.Writer) error) error {
	dir := filepath.Dir(filename)
	base := filepath.Base(filename)

	tmp, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	_ = tmp.Chmod(0644)

	buf := bufio.NewWriterSize(tmp, 256*1024)
	if err := writeFunc(buf); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmpName, filename); err != nil {
		return err
	}

	// Best-effort: fsync the directory so the rename is durable on POSIX.
	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}

	tmpName = ""
	return nil
}

func loadFromFile(filename string, readFunc func(io.Reader) error) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	buf := bufio.NewReaderSize(f, 256*1024)
	return readFunc(buf)
}
