package tokens

import (
	"bytes"
	"fmt"
	"iter"
	"math/rand"
	"os"

	"github.com/edsrzf/mmap-go"
)

// defaultSeparator is the default chunk-alignment separator.
const defaultSeparator = '\n'

// sampleSeed keeps ChunkProvider sampling deterministic: the whole
// training pipeline is specified as deterministic given the same input
// bytes and configuration, so random sampling uses a fixed seed
// rather than a time-based one.
const sampleSeed = 4242

// ByteSource exposes a training-data file as a read-only, memory-mapped
// byte slice. It owns the mmap and file handle; every other component
// that reads from it borrows the returned slices read-only.
type ByteSource struct {
	f    *os.File
	data mmap.MMap
}

// OpenByteSource memory-maps the file at path for reading.
func OpenByteSource(path string) (*ByteSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tokens: open %s: %w", path, err)
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("tokens: mmap %s: %w", path, err)
	}
	return &ByteSource{f: f, data: m}, nil
}

// Close unmaps the file and closes the underlying handle.
func (s *ByteSource) Close() error {
	if err := s.data.Unmap(); err != nil {
		s.f.Close()
		return fmt.Errorf("tokens: unmap: %w", err)
	}
	return s.f.Close()
}

// AllBytes returns the entire mapped file contents.
func (s *ByteSource) AllBytes() []byte { return s.data }

// Len returns the file size in bytes.
func (s *ByteSource) Len() int { return len(s.data) }

// SampleBytes returns a contiguous slice of at least length bytes, chosen
// at a uniformly random offset and expanded outward to the nearest sep on
// both ends. If length >= the source size, the whole source is
// returned. rng drives the random offset so callers can control
// determinism (see ChunkProvider).
func (s *ByteSource) SampleBytes(rng *rand.Rand, length int, sep byte) []byte {
	data := s.data
	if length >= len(data) {
		return data
	}

	approxStart := rng.Intn(len(data) - length)

	start := bytes.LastIndexByte(data[:approxStart], sep)
	if start < 0 {
		start = 0
	}

	searchFrom := start + length - 1
	if searchFrom < 0 {
		searchFrom = 0
	}
	var finish int
	if idx := bytes.IndexByte(data[searchFrom:], sep); idx < 0 {
		finish = len(data)
	} else {
		finish = searchFrom + idx + 1
	}

	return data[start:finish]
}

// ChunkProvider yields either the whole source once, or nchunks
// independent random samples of chunkSize bytes each.
type ChunkProvider struct {
	source    *ByteSource
	nchunks   int
	chunkSize int
}

// NewChunkProvider returns a provider over source. Pass nchunks <= 0 or
// chunkSize <= 0 to always yield the whole file.
func NewChunkProvider(source *ByteSource, nchunks, chunkSize int) *ChunkProvider {
	return &ChunkProvider{
		source:    source,
		nchunks:   nchunks,
		chunkSize: chunkSize,
	}
}

// Chunks returns an iterator over the configured chunks: the whole file
// once when nchunks*chunkSize >= file size (or either is non-positive),
// else exactly nchunks independent random samples. Each call to the
// returned iterator seeds its own *rand.Rand rather than sharing one on
// the provider, so concurrent callers (the config sweep in driver.go
// evaluates several configurations against the same Chunks() value at
// once) never touch a single *rand.Rand from more than one goroutine,
// and every call replays the same sample sequence from scratch.
func (c *ChunkProvider) Chunks() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		if c.nchunks <= 0 || c.chunkSize <= 0 || c.source.Len() <= c.nchunks*c.chunkSize {
			yield(c.source.AllBytes())
			return
		}
		rng := rand.New(rand.NewSource(sampleSeed))
		for i := 0; i < c.nchunks; i++ {
			if !yield(c.source.SampleBytes(rng, c.chunkSize, defaultSeparator)) {
				return
			}
		}
	}
}
