// Package options loads option sets from disk: TOML files for hand-written
// sets and msgpack snapshots for sets exported by other tooling.
//
// Loaders keep malformed records (missing label or value) in the returned
// slice and only warn about them. The filter pipeline drops them at query
// time; an empty query must still hand back the set exactly as loaded.
package options

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bastiangx/typesift/pkg/match"
	"github.com/charmbracelet/log"

	"github.com/BurntSushi/toml"
	"github.com/vmihailenco/msgpack/v5"
)

// tomlSet mirrors the option-set file layout:
//
//	[[options]]
//	label = "Scoil Bhríde Primary School"
//	value = "sb-01"
type tomlSet struct {
	Options []tomlOption `toml:"options"`
}

type tomlOption struct {
	Label string `toml:"label"`
	Value any    `toml:"value"`
}

// snapshotRecord is one option in the binary snapshot format.
type snapshotRecord struct {
	Label string `msgpack:"l"`
	Value any    `msgpack:"v"`
}

// snapshot is the msgpack envelope; Count guards against truncated files.
type snapshot struct {
	Count   int              `msgpack:"n"`
	Records []snapshotRecord `msgpack:"o"`
}

// LoadFile loads an option set, picking the format from the extension:
// .toml for TOML sets, .bin for msgpack snapshots.
func LoadFile(path string) ([]match.Option, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return LoadTOML(path)
	case ".bin":
		return LoadSnapshot(path)
	default:
		return nil, fmt.Errorf("unsupported option set format: %s", path)
	}
}

// LoadTOML reads a [[options]] table array from a TOML file.
func LoadTOML(path string) ([]match.Option, error) {
	var set tomlSet
	if _, err := toml.DecodeFile(path, &set); err != nil {
		return nil, fmt.Errorf("loading option set %s: %w", path, err)
	}
	opts := make([]match.Option, len(set.Options))
	for i, o := range set.Options {
		opts[i] = match.Option{Label: o.Label, Value: o.Value}
	}
	warnMalformed(opts, path)
	return opts, nil
}

// SaveSnapshot writes opts as a msgpack snapshot.
func SaveSnapshot(path string, opts []match.Option) error {
	snap := snapshot{
		Count:   len(opts),
		Records: make([]snapshotRecord, len(opts)),
	}
	for i, opt := range opts {
		snap.Records[i] = snapshotRecord{Label: opt.Label, Value: opt.Value}
	}

	data, err := msgpack.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing snapshot %s: %w", path, err)
	}
	return nil
}

// LoadSnapshot reads a msgpack snapshot written by SaveSnapshot.
func LoadSnapshot(path string) ([]match.Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", path, err)
	}

	var snap snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot %s: %w", path, err)
	}
	if snap.Count != len(snap.Records) {
		return nil, fmt.Errorf("snapshot %s is truncated: header says %d records, found %d",
			path, snap.Count, len(snap.Records))
	}

	opts := make([]match.Option, len(snap.Records))
	for i, rec := range snap.Records {
		opts[i] = match.Option{Label: rec.Label, Value: rec.Value}
	}
	warnMalformed(opts, path)
	return opts, nil
}

// warnMalformed logs records the filter will silently drop later.
func warnMalformed(opts []match.Option, path string) {
	malformed := 0
	for _, opt := range opts {
		if opt.Label == "" || opt.Value == nil {
			malformed++
		}
	}
	if malformed > 0 {
		log.Warnf("Option set %s has %d record(s) missing label or value; they will never match", path, malformed)
	}
}
