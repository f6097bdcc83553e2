package persist

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"time"

	"path-cache/core/store"
	"path-cache/core/world"
)

// Version is the binary snapshot format version.
const Version = 1

// EncodeBinary serializes paths into the compact little-endian snapshot
// format. Coordinates are stored as float32.
func EncodeBinary(paths []*store.CachedPath) ([]byte, error) {
	var buf bytes.Buffer

	write := func(v any) error {
		return binary.Write(&buf, binary.LittleEndian, v)
	}

	if err := write(int32(Version)); err != nil {
		return nil, err
	}
	if err := write(int32(len(paths))); err != nil {
		return nil, err
	}

	for _, p := range paths {
		if err := write(uint64(p.Key)); err != nil {
			return nil, err
		}
		name := []byte(p.Name)
		if err := write(int32(len(name))); err != nil {
			return nil, err
		}
		if _, err := buf.Write(name); err != nil {
			return nil, err
		}
		writePos(&buf, p.Start)
		writePos(&buf, p.End)
		if err := write(float32(p.Distance)); err != nil {
			return nil, err
		}
		if err := write(p.UseCount); err != nil {
			return nil, err
		}
		if err := write(int32(len(p.Waypoints))); err != nil {
			return nil, err
		}
		for _, wp := range p.Waypoints {
			writePos(&buf, wp)
		}
	}

	return buf.Bytes(), nil
}

// DecodeBinary parses a binary snapshot. Distances are recomputed from the
// waypoints rather than trusted from the file.
func DecodeBinary(data []byte) ([]*store.CachedPath, error) {
	r := bytes.NewReader(data)

	read := func(v any) error {
		return binary.Read(r, binary.LittleEndian, v)
	}

	var version int32
	if err := read(&version); err != nil {
		return nil, fmt.Errorf("read version: %w", err)
	}
	if version != Version {
		return nil, fmt.Errorf("unsupported snapshot version %d", version)
	}

	var count int32
	if err := read(&count); err != nil {
		return nil, fmt.Errorf("read count: %w", err)
	}
	if count < 0 {
		return nil, fmt.Errorf("negative path count %d", count)
	}

	paths := make([]*store.CachedPath, 0, count)
	for i := int32(0); i < count; i++ {
		p := &store.CachedPath{CreatedAt: time.Now().UTC()}

		var key uint64
		if err := read(&key); err != nil {
			return nil, fmt.Errorf("path %d: read key: %w", i, err)
		}
		p.Key = store.PathKey(key)

		var nameLen int32
		if err := read(&nameLen); err != nil {
			return nil, fmt.Errorf("path %d: read name length: %w", i, err)
		}
		if nameLen < 0 || int(nameLen) > r.Len() {
			return nil, fmt.Errorf("path %d: bad name length %d", i, nameLen)
		}
		name := make([]byte, nameLen)
		if _, err := io.ReadFull(r, name); err != nil {
			return nil, fmt.Errorf("path %d: read name: %w", i, err)
		}
		p.Name = string(name)

		var err error
		if p.Start, err = readPos(r); err != nil {
			return nil, fmt.Errorf("path %d: read start: %w", i, err)
		}
		if p.End, err = readPos(r); err != nil {
			return nil, fmt.Errorf("path %d: read end: %w", i, err)
		}

		var distance float32
		if err := read(&distance); err != nil {
			return nil, fmt.Errorf("path %d: read distance: %w", i, err)
		}
		if err := read(&p.UseCount); err != nil {
			return nil, fmt.Errorf("path %d: read use count: %w", i, err)
		}

		var wpCount int32
		if err := read(&wpCount); err != nil {
			return nil, fmt.Errorf("path %d: read waypoint count: %w", i, err)
		}
		if wpCount < 0 || int(wpCount)*12 > r.Len() {
			return nil, fmt.Errorf("path %d: bad waypoint count %d", i, wpCount)
		}
		p.Waypoints = make([]world.Position, 0, wpCount)
		for j := int32(0); j < wpCount; j++ {
			wp, err := readPos(r)
			if err != nil {
				return nil, fmt.Errorf("path %d: read waypoint %d: %w", i, j, err)
			}
			p.Waypoints = append(p.Waypoints, wp)
		}

		// Stored distance is informational only; the waypoints are the truth.
		p.RecomputeDistance()
		paths = append(paths, p)
	}

	return paths, nil
}

func writePos(buf *bytes.Buffer, p world.Position) {
	var b [12]byte
	binary.LittleEndian.PutUint32(b[0:], math.Float32bits(float32(p.X)))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(float32(p.Y)))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(float32(p.Z)))
	buf.Write(b[:])
}

func readPos(r *bytes.Reader) (world.Position, error) {
	var b [12]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return world.Position{}, err
	}
	return world.Position{
		X: float64(math.Float32frombits(binary.LittleEndian.Uint32(b[0:]))),
		Y: float64(math.Float32frombits(binary.LittleEndian.Uint32(b[4:]))),
		Z: float64(math.Float32frombits(binary.LittleEndian.Uint32(b[8:]))),
	}, nil
}
