package harvest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/geektoshi/nebula-harvest/internal/common"
	"github.com/geektoshi/nebula-harvest/internal/model"
)

// WriteArtifact writes out as indented JSON. The file is replaced atomically,
// so a failed write never leaves a partial artifact behind.
func WriteArtifact(path string, out model.HarvestOutput) error {
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to encode %s: %w", common.ErrWriteArtifact, path, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("%w: failed to create output directory %s: %w", common.ErrWriteArtifact, dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: failed to create temporary file in %s: %w", common.ErrWriteArtifact, dir, err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: failed to write %s: %w", common.ErrWriteArtifact, path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: failed to write %s: %w", common.ErrWriteArtifact, path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil { //nolint:gosec // artifact is meant to be world-readable
		return fmt.Errorf("%w: failed to set permissions on %s: %w", common.ErrWriteArtifact, path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: failed to write %s: %w", common.ErrWriteArtifact, path, err)
	}
	return nil
}

// ReadArtifact parses a previously written artifact.
func ReadArtifact(path string) (*model.HarvestOutput, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is operator-provided configuration
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact %s: %w", path, err)
	}
	return DecodeArtifact(data)
}

// DecodeArtifact parses artifact JSON and checks every package's
// alternatives.
func DecodeArtifact(data []byte) (*model.HarvestOutput, error) {
	var out model.HarvestOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode artifact: %w", err)
	}
	for i := range out.Packages {
		if err := out.Packages[i].Alternatives.Validate(); err != nil {
			return nil, fmt.Errorf("failed to decode artifact: package %s: %w", out.Packages[i].PkgName, err)
		}
	}
	return &out, nil
}
