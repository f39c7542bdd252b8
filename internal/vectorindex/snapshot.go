package vectorindex

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"
)

// On-disk layout of the index blob: uint32 count, uint32 dim, then
// count*dim little-endian float32 values. The role-ID mapping sits in a
// sibling text file, one ID per line, line count equal to the vector count.

func (ix *Index) persist(snap *snapshot) error {
	if err := os.MkdirAll(ix.dir, 0o755); err != nil {
		return fmt.Errorf("create index dir: %w", err)
	}

	tmpIndex := ix.indexPath() + ".tmp"
	tmpMapping := ix.mappingPath() + ".tmp"

	if err := writeVectors(tmpIndex, snap); err != nil {
		return err
	}
	if err := writeMapping(tmpMapping, snap.roleIDs); err != nil {
		_ = os.Remove(tmpIndex)
		return err
	}

	if err := os.Rename(tmpIndex, ix.indexPath()); err != nil {
		_ = os.Remove(tmpIndex)
		_ = os.Remove(tmpMapping)
		return fmt.Errorf("commit index file: %w", err)
	}
	if err := os.Rename(tmpMapping, ix.mappingPath()); err != nil {
		_ = os.Remove(tmpMapping)
		return fmt.Errorf("commit mapping file: %w", err)
	}
	return nil
}

func (ix *Index) readSnapshot() (*snapshot, error) {
	snap, err := readVectors(ix.indexPath())
	if err != nil {
		return nil, err
	}

	ids, err := readMapping(ix.mappingPath())
	if err != nil {
		return nil, err
	}

	if len(ids) != len(snap.vectors) {
		return nil, fmt.Errorf("mapping has %d ids for %d vectors", len(ids), len(snap.vectors))
	}
	if snap.dim != ix.dim {
		return nil, fmt.Errorf("stored dimension %d does not match configured %d", snap.dim, ix.dim)
	}

	snap.roleIDs = ids
	return snap, nil
}

func writeVectors(path string, snap *snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write index file: %w", err)
	}
	w := bufio.NewWriter(f)

	if err := binary.Write(w, binary.LittleEndian, uint32(len(snap.vectors))); err != nil {
		_ = f.Close()
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(snap.dim)); err != nil {
		_ = f.Close()
		return err
	}
	for _, v := range snap.vectors {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			_ = f.Close()
			return err
		}
	}

	if err := w.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func readVectors(path string) (*snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	r := bufio.NewReader(f)

	var count, dim uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("read index header: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &dim); err != nil {
		return nil, fmt.Errorf("read index header: %w", err)
	}
	if dim == 0 || count > 1<<24 {
		return nil, fmt.Errorf("implausible index header: count=%d dim=%d", count, dim)
	}

	vectors := make([][]float32, 0, count)
	for i := uint32(0); i < count; i++ {
		v := make([]float32, dim)
		if err := binary.Read(r, binary.LittleEndian, v); err != nil {
			return nil, fmt.Errorf("read vector %d: %w", i, err)
		}
		vectors = append(vectors, v)
	}

	// Trailing bytes mean the blob does not match its own header.
	if _, err := r.ReadByte(); err != io.EOF {
		return nil, fmt.Errorf("index file has trailing data")
	}

	return &snapshot{dim: int(dim), vectors: vectors}, nil
}

func writeMapping(path string, roleIDs []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write mapping file: %w", err)
	}
	w := bufio.NewWriter(f)
	for _, id := range roleIDs {
		if _, err := w.WriteString(id + "\n"); err != nil {
			_ = f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func readMapping(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(string(b), "\n")
	ids := make([]string, 0, len(lines))
	for _, ln := range lines {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		ids = append(ids, ln)
	}
	return ids, nil
}
