// Package bundle - Write-once bundle storage.
// Bundles are content-hashed and versioned. No silent updates.
package bundle

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"unitcalc/core/catalog"
	"unitcalc/core/determinism"
	"unitcalc/core/graph"
	"unitcalc/internal/errors"
)

// Metadata is stored in the index alongside each bundle
type Metadata struct {
	ID          BundleID  `json:"id"`
	Schema      int       `json:"schema"`
	ContentHash string    `json:"content_hash"`
	CreatedAt   time.Time `json:"created_at"`
	Size        int64     `json:"size"`
	FilePath    string    `json:"file_path"`
}

// Store is a storage layer that enforces write-once semantics.
// A stored bundle can never be overwritten.
type Store struct {
	mu       sync.RWMutex
	basePath string
	index    map[BundleID]*Metadata
	latest   BundleID
}

// NewStore opens (creating if needed) a bundle store at basePath
func NewStore(basePath string) (*Store, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, errors.Wrap(errors.TypePersistence, "create bundle directory", err)
	}

	s := &Store{
		basePath: basePath,
		index:    make(map[BundleID]*Metadata),
	}
	if err := s.loadIndex(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(errors.TypePersistence, "load bundle index", err)
	}
	return s, nil
}

// Put writes a bundle. Fails if the ID is already stored or the target
// file exists.
func (s *Store) Put(ctx context.Context, b *CatalogBundle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !b.sealed {
		return errors.New(errors.TypePersistence, "refusing to store an unsealed bundle")
	}
	if _, exists := s.index[b.ID]; exists {
		return errors.Newf(errors.TypePersistence, "bundle %s already stored; bundles are write-once", b.ID)
	}

	data, err := serialize(b)
	if err != nil {
		return errors.Wrap(errors.TypePersistence, "serialize bundle", err)
	}

	filename := fmt.Sprintf("bundle_%s_%s.json", b.ID, b.ContentHash.Hex()[:8])
	filePath := filepath.Join(s.basePath, filename)

	if _, err := os.Stat(filePath); err == nil {
		return errors.Newf(errors.TypePersistence, "bundle file %s already exists", filename)
	}

	tempPath := filePath + ".tmp"
	if err := os.WriteFile(tempPath, data, 0444); err != nil {
		return errors.Wrap(errors.TypePersistence, "write bundle", err)
	}
	if err := os.Rename(tempPath, filePath); err != nil {
		return errors.Wrap(errors.TypePersistence, "finalize bundle", err)
	}

	meta := &Metadata{
		ID:          b.ID,
		Schema:      b.Schema,
		ContentHash: b.ContentHash.Hex(),
		CreatedAt:   b.CreatedAt,
		Size:        int64(len(data)),
		FilePath:    filePath,
	}

	s.index[b.ID] = meta
	if s.latest == "" || s.index[s.latest].CreatedAt.Before(b.CreatedAt) {
		s.latest = b.ID
	}
	return s.saveIndex()
}

// Get retrieves a bundle by ID and verifies its content hash
func (s *Store) Get(ctx context.Context, id BundleID) (*CatalogBundle, error) {
	s.mu.RLock()
	meta, ok := s.index[id]
	s.mu.RUnlock()
	if !ok {
		return nil, errors.Newf(errors.TypePersistence, "bundle %s not found", id)
	}

	data, err := os.ReadFile(meta.FilePath)
	if err != nil {
		return nil, errors.Wrap(errors.TypePersistence, "read bundle", err)
	}

	b, err := deserialize(data)
	if err != nil {
		return nil, err
	}
	if b.ContentHash.Hex() != meta.ContentHash {
		return nil, errors.Newf(errors.TypePersistence,
			"bundle %s content hash mismatch: stored data is corrupted", id)
	}
	return b, nil
}

// Latest retrieves the most recently created bundle
func (s *Store) Latest(ctx context.Context) (*CatalogBundle, error) {
	s.mu.RLock()
	id := s.latest
	s.mu.RUnlock()
	if id == "" {
		return nil, errors.New(errors.TypePersistence, "no bundles stored")
	}
	return s.Get(ctx, id)
}

// List returns metadata for every stored bundle, newest first
func (s *Store) List() []*Metadata {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Metadata, 0, len(s.index))
	for _, meta := range s.index {
		result = append(result, meta)
	}
	determinism.SortSlice(result, func(a, b *Metadata) bool {
		return a.CreatedAt.After(b.CreatedAt)
	})
	return result
}

// VerifyIntegrity re-reads every stored bundle and reports the corrupted ones
func (s *Store) VerifyIntegrity(ctx context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var corrupted []string
	for _, id := range determinism.SortedKeys(s.index) {
		meta := s.index[id]
		data, err := os.ReadFile(meta.FilePath)
		if err != nil {
			corrupted = append(corrupted, fmt.Sprintf("%s: file missing", id))
			continue
		}
		b, err := deserialize(data)
		if err != nil {
			corrupted = append(corrupted, fmt.Sprintf("%s: unreadable: %v", id, err))
			continue
		}
		if b.ContentHash.Hex() != meta.ContentHash {
			corrupted = append(corrupted, fmt.Sprintf("%s: hash mismatch", id))
		}
	}
	return corrupted
}

// bundleFile is the on-disk layout
type bundleFile struct {
	ID          BundleID                    `json:"id"`
	Schema      int                         `json:"schema"`
	ContentHash string                      `json:"content_hash"`
	CreatedAt   time.Time                   `json:"created_at"`
	Types       map[string]catalog.UnitType `json:"types"`
	Units       map[string]catalog.UnitInfo `json:"units"`
	Conversions []ConversionRecord          `json:"conversions"`
	Aliases     []AliasRecord               `json:"aliases"`
	Warnings    []graph.Warning             `json:"warnings,omitempty"`
	Stats       graph.Stats                 `json:"stats"`
}

func serialize(b *CatalogBundle) ([]byte, error) {
	f := bundleFile{
		ID:          b.ID,
		Schema:      b.Schema,
		ContentHash: b.ContentHash.Hex(),
		CreatedAt:   b.CreatedAt,
		Types:       b.types,
		Units:       b.units,
		Conversions: b.Conversions(),
		Warnings:    b.Warnings(),
		Stats:       b.stats,
	}
	for _, alias := range determinism.SortedKeys(b.aliases) {
		f.Aliases = append(f.Aliases, AliasRecord{Alias: alias, Unit: b.aliases[alias]})
	}
	return json.MarshalIndent(f, "", "  ")
}

func deserialize(data []byte) (*CatalogBundle, error) {
	var f bundleFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.TypePersistence, "decode bundle", err)
	}
	if f.Schema != SchemaVersion {
		return nil, errors.Newf(errors.TypePersistence,
			"bundle schema %d is not supported (want %d)", f.Schema, SchemaVersion)
	}

	b := &CatalogBundle{
		ID:        f.ID,
		Schema:    f.Schema,
		CreatedAt: f.CreatedAt,
		units:     f.Units,
		types:     f.Types,
		factors:   make(map[graph.Pair]decimal.Decimal, len(f.Conversions)),
		aliases:   make(map[string]string, len(f.Aliases)),
		warnings:  f.Warnings,
		stats:     f.Stats,
	}
	sortRecords(f.Conversions)
	b.conversions = f.Conversions
	for _, rec := range f.Conversions {
		factor, err := determinism.ParseFactor(rec.Factor)
		if err != nil {
			return nil, errors.Wrapf(errors.TypePersistence, err,
				"bundle conversion %s -> %s", rec.From, rec.To)
		}
		b.factors[graph.Pair{From: rec.From, To: rec.To}] = factor
	}
	for _, rec := range f.Aliases {
		b.aliases[rec.Alias] = rec.Unit
	}

	hashBytes, err := hex.DecodeString(f.ContentHash)
	if err != nil || len(hashBytes) != 32 {
		return nil, errors.New(errors.TypePersistence, "bundle carries a malformed content hash")
	}
	copy(b.ContentHash[:], hashBytes)

	if !b.Verify() {
		return nil, errors.New(errors.TypePersistence,
			"bundle content does not match its recorded hash")
	}
	b.sealed = true
	return b, nil
}

func (s *Store) loadIndex() error {
	data, err := os.ReadFile(filepath.Join(s.basePath, "index.json"))
	if err != nil {
		return err
	}

	var idx indexFile
	if err := json.Unmarshal(data, &idx); err != nil {
		return err
	}
	s.index = idx.Bundles
	s.latest = idx.Latest
	if s.index == nil {
		s.index = make(map[BundleID]*Metadata)
	}
	return nil
}

func (s *Store) saveIndex() error {
	idx := indexFile{
		Bundles:   s.index,
		Latest:    s.latest,
		UpdatedAt: time.Now().UTC(),
	}
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return errors.Wrap(errors.TypePersistence, "encode bundle index", err)
	}

	indexPath := filepath.Join(s.basePath, "index.json")
	tempPath := indexPath + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return errors.Wrap(errors.TypePersistence, "write bundle index", err)
	}
	if err := os.Rename(tempPath, indexPath); err != nil {
		return errors.Wrap(errors.TypePersistence, "finalize bundle index", err)
	}
	return nil
}

type indexFile struct {
	Bundles   map[BundleID]*Metadata `json:"bundles"`
	Latest    BundleID               `json:"latest"`
	UpdatedAt time.Time              `json:"updated_at"`
}
