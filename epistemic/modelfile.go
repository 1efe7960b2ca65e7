package epistemic

import (
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// YAML model files. A model definition lists one entry per world slot:
//
//	worlds:
//	  - valuation: [p, q]
//	    relations:
//	      a: [0, 1]
//	  - deleted: true
//	  - relations:
//	      a: [0]
//
// Deleted slots keep their position so that the indices in relations and in
// formulas stay meaningful.

type worldEntry struct {
	Deleted   bool             `yaml:"deleted,omitempty"`
	Valuation []string         `yaml:"valuation,omitempty"`
	Relations map[string][]int `yaml:"relations,omitempty"`
}

type modelFile struct {
	Worlds []worldEntry `yaml:"worlds"`
}

// DecodeModel reads a YAML model definition. Like Deserialize it validates
// the whole definition before returning: transitions out of a live world
// must target live worlds.
func DecodeModel(r io.Reader) (*Model, error) {
	var mf modelFile
	if err := yaml.NewDecoder(r).Decode(&mf); err != nil {
		return nil, fmt.Errorf("decoding model file: %w", err)
	}
	m := NewModel()
	m.worlds = make([]*World, len(mf.Worlds))
	for i, entry := range mf.Worlds {
		if entry.Deleted {
			if len(entry.Valuation) > 0 || len(entry.Relations) > 0 {
				return nil, fmt.Errorf("world %d: deleted slot with valuation or relations", i)
			}
			continue
		}
		w := &World{
			valuation:  make(map[string]bool),
			successors: make(map[string][]int),
		}
		for _, prop := range entry.Valuation {
			w.valuation[prop] = true
		}
		for agent, targets := range entry.Relations {
			w.successors[agent] = append([]int(nil), targets...)
		}
		m.worlds[i] = w
	}
	for i, w := range m.worlds {
		if w == nil {
			continue
		}
		for agent, targets := range w.successors {
			for _, t := range targets {
				if !m.HasWorld(t) {
					return nil, fmt.Errorf("world %d: agent %s targets missing world %d", i, agent, t)
				}
			}
		}
	}
	return m, nil
}

// EncodeModel writes m as a YAML model definition.
func EncodeModel(w io.Writer, m *Model) error {
	if m == nil {
		return ErrInvalidModel
	}
	mf := modelFile{Worlds: make([]worldEntry, len(m.worlds))}
	for i, world := range m.worlds {
		if world == nil {
			mf.Worlds[i] = worldEntry{Deleted: true}
			continue
		}
		entry := worldEntry{}
		for prop := range world.valuation {
			entry.Valuation = append(entry.Valuation, prop)
		}
		sort.Strings(entry.Valuation)
		if len(world.successors) > 0 {
			entry.Relations = make(map[string][]int, len(world.successors))
			for agent, targets := range world.successors {
				entry.Relations[agent] = append([]int(nil), targets...)
			}
		}
		mf.Worlds[i] = entry
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&mf); err != nil {
		return fmt.Errorf("encoding model file: %w", err)
	}
	return enc.Close()
}

// LoadModelFile reads a model from a YAML file on disk.
func LoadModelFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeModel(f)
}

// SaveModelFile writes a model to a YAML file on disk.
func SaveModelFile(path string, m *Model) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeModel(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
