package terra

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math/bits"
	"os"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
)

// TVOX snapshot: a compact binary dump of a whole WorldGrid. Layout after
// the 4-byte magic is a fixed little-endian header (version, chunk dims,
// terrain constants, seed, chunk count, compression, body length, xxhash64
// of the uncompressed body) followed by the body. The body stores chunks in
// ascending coordinate order; each chunk picks the smaller of a dense and a
// sparse bit-packed material encoding.

const (
	snapshotMagic   = "TVOX"
	snapshotVersion = 1

	materialBits = 3

	compNone = 0
	compZstd = 1

	encDense  = 0
	encSparse = 1
)

func encodeChunkDense(c *Chunk) []byte {
	bw := newBitWriter()
	for i := range c.Voxels {
		bw.writeBits(uint64(c.Voxels[i].Material), materialBits)
	}
	return bw.bytes()
}

func encodeChunkSparse(c *Chunk) []byte {
	idxBits := uint8(bits.Len(uint(len(c.Voxels) - 1)))
	count := 0
	for i := range c.Voxels {
		if c.Voxels[i].Material != Air {
			count++
		}
	}
	bw := newBitWriter()
	bw.writeBits(uint64(count), 32)
	for i := range c.Voxels {
		if c.Voxels[i].Material == Air {
			continue
		}
		bw.writeBits(uint64(i), idxBits)
		bw.writeBits(uint64(c.Voxels[i].Material), materialBits)
	}
	return bw.bytes()
}

func bestChunkEncoding(c *Chunk) (uint8, []byte) {
	dense := encodeChunkDense(c)
	sparse := encodeChunkSparse(c)
	if len(sparse) < len(dense) {
		return encSparse, sparse
	}
	return encDense, dense
}

func encodeBody(w *WorldGrid) []byte {
	var body bytes.Buffer
	for _, pos := range w.ChunkPositions() {
		c := w.Chunk(pos)
		enc, payload := bestChunkEncoding(c)
		_ = binary.Write(&body, binary.LittleEndian, int32(pos.X))
		_ = binary.Write(&body, binary.LittleEndian, int32(pos.Y))
		_ = binary.Write(&body, binary.LittleEndian, int32(pos.Z))
		_ = binary.Write(&body, binary.LittleEndian, enc)
		_ = binary.Write(&body, binary.LittleEndian, uint32(len(payload)))
		_, _ = body.Write(payload)
	}
	return body.Bytes()
}

// Fingerprint returns a 64-bit content hash of the world's chunks. Two
// worlds with identical chunk contents produce identical fingerprints.
func Fingerprint(w *WorldGrid) uint64 {
	return xxhash.Sum64(encodeBody(w))
}

// SaveWorld encodes the world as a TVOX snapshot with a zstd-compressed body.
func SaveWorld(w *WorldGrid) ([]byte, error) {
	body := encodeBody(w)
	sum := xxhash.Sum64(body)

	zw, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, err
	}
	compressed := zw.EncodeAll(body, nil)
	_ = zw.Close()

	var buf bytes.Buffer
	buf.WriteString(snapshotMagic)
	_ = binary.Write(&buf, binary.LittleEndian, uint8(snapshotVersion))
	_ = binary.Write(&buf, binary.LittleEndian, uint8(w.Config.ChunkSize))
	_ = binary.Write(&buf, binary.LittleEndian, uint8(w.Config.ChunkHeight))
	_ = binary.Write(&buf, binary.LittleEndian, int16(w.Config.SeaLevel))
	_ = binary.Write(&buf, binary.LittleEndian, int16(w.Config.SnowLine))
	_ = binary.Write(&buf, binary.LittleEndian, int16(w.Config.DirtDepth))
	_ = binary.Write(&buf, binary.LittleEndian, float32(w.Config.HeightScale))
	_ = binary.Write(&buf, binary.LittleEndian, w.Seed)
	_ = binary.Write(&buf, binary.LittleEndian, uint32(w.ChunkCount()))
	_ = binary.Write(&buf, binary.LittleEndian, uint8(compZstd))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(compressed)))
	_ = binary.Write(&buf, binary.LittleEndian, sum)
	_, _ = buf.Write(compressed)
	return buf.Bytes(), nil
}

// LoadWorld parses a TVOX snapshot back into a WorldGrid.
func LoadWorld(data []byte) (*WorldGrid, error) {
	if len(data) < 4 || string(data[:4]) != snapshotMagic {
		return nil, fmt.Errorf("not a TVOX snapshot")
	}
	r := bytes.NewReader(data[4:])

	var ver, chunkSize, chunkHeight, comp uint8
	var seaLevel, snowLine, dirtDepth int16
	var heightScale float32
	var seed uint64
	var count, blen uint32
	var sum uint64
	for _, field := range []any{
		&ver, &chunkSize, &chunkHeight,
		&seaLevel, &snowLine, &dirtDepth, &heightScale,
		&seed, &count, &comp, &blen, &sum,
	} {
		if err := binary.Read(r, binary.LittleEndian, field); err != nil {
			return nil, fmt.Errorf("truncated TVOX header: %w", err)
		}
	}
	if ver != snapshotVersion {
		return nil, fmt.Errorf("unsupported TVOX version %d", ver)
	}

	body := make([]byte, blen)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, fmt.Errorf("truncated TVOX body: %w", err)
	}
	switch comp {
	case compNone:
	case compZstd:
		zr, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		body, err = zr.DecodeAll(body, nil)
		zr.Close()
		if err != nil {
			return nil, fmt.Errorf("decompress TVOX body: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown TVOX compression %d", comp)
	}
	if xxhash.Sum64(body) != sum {
		return nil, fmt.Errorf("TVOX checksum mismatch")
	}

	cfg := Config{
		ChunkSize:   int(chunkSize),
		ChunkHeight: int(chunkHeight),
		HeightScale: float64(heightScale),
		SeaLevel:    int(seaLevel),
		SnowLine:    int(snowLine),
		DirtDepth:   int(dirtDepth),
	}
	w := NewWorldGrid(seed, cfg)

	br := bytes.NewReader(body)
	for i := uint32(0); i < count; i++ {
		c, pos, err := readChunk(br, cfg)
		if err != nil {
			return nil, fmt.Errorf("chunk %d: %w", i, err)
		}
		w.InsertChunk(pos, c)
	}
	return w, nil
}

func readChunk(r *bytes.Reader, cfg Config) (*Chunk, ChunkPos, error) {
	var cx, cy, cz int32
	var enc uint8
	var plen uint32
	for _, field := range []any{&cx, &cy, &cz, &enc, &plen} {
		if err := binary.Read(r, binary.LittleEndian, field); err != nil {
			return nil, ChunkPos{}, err
		}
	}
	payload := make([]byte, plen)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, ChunkPos{}, err
	}

	total := cfg.ChunkSize * cfg.ChunkHeight * cfg.ChunkSize
	mats := make([]Material, total)
	br := newBitReader(payload)
	switch enc {
	case encDense:
		for i := 0; i < total; i++ {
			v, err := br.readBits(materialBits)
			if err != nil {
				return nil, ChunkPos{}, err
			}
			mats[i] = Material(v)
		}
	case encSparse:
		idxBits := uint8(bits.Len(uint(total - 1)))
		n, err := br.readBits(32)
		if err != nil {
			return nil, ChunkPos{}, err
		}
		for i := uint64(0); i < n; i++ {
			idx, err := br.readBits(idxBits)
			if err != nil {
				return nil, ChunkPos{}, err
			}
			m, err := br.readBits(materialBits)
			if err != nil {
				return nil, ChunkPos{}, err
			}
			if idx >= uint64(total) {
				return nil, ChunkPos{}, fmt.Errorf("sparse index %d out of range", idx)
			}
			mats[idx] = Material(m)
		}
	default:
		return nil, ChunkPos{}, fmt.Errorf("unknown chunk encoding %d", enc)
	}

	c := &Chunk{Size: cfg.ChunkSize, Height: cfg.ChunkHeight, Voxels: make([]Voxel, total)}
	for i, m := range mats {
		if m >= materialCount {
			return nil, ChunkPos{}, fmt.Errorf("invalid material code %d", m)
		}
		c.Voxels[i] = Voxel{ID: int32(i), Solid: m != Air, Material: m}
	}
	return c, ChunkPos{X: int(cx), Y: int(cy), Z: int(cz)}, nil
}

// SaveWorldFile writes a TVOX snapshot to path.
func SaveWorldFile(w *WorldGrid, path string) error {
	data, err := SaveWorld(w)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadWorldFile reads a TVOX snapshot from path.
func LoadWorldFile(path string) (*WorldGrid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadWorld(data)
}
