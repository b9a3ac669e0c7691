package catalog

import (
	"bytes"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wonny/cryptoadvisor/internal/contracts"
)

//go:embed data/reference.yaml
var referenceYAML []byte

// File is the on-disk catalog layout
type File struct {
	Version string                  `yaml:"version"`
	Assets  []contracts.AssetRecord `yaml:"assets"`
}

// ParseYAML decodes and validates a catalog document.
// Unknown fields fail immediately so typos never reach the engine.
func ParseYAML(data []byte) (*Snapshot, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode catalog yaml: %w", err)
	}

	if len(f.Assets) == 0 {
		return nil, ValidationErrors{{Field: "assets", Message: "catalog is empty"}}
	}

	// a declared version is suffixed with the content hash so edits always change identity
	version := Hash(data)
	if f.Version != "" {
		version = f.Version + "-" + version
	}

	return NewSnapshot(f.Assets, version)
}

// LoadYAML reads a catalog document from path
func LoadYAML(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return ParseYAML(data)
}

// Reference returns the bundled ten-asset reference catalog
func Reference() (*Snapshot, error) {
	return ParseYAML(referenceYAML)
}

// ReferenceYAML returns a copy of the bundled document
func ReferenceYAML() []byte {
	return append([]byte(nil), referenceYAML...)
}

// Hash returns the truncated SHA256 of raw catalog bytes
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:16]
}
