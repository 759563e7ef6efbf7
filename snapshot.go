package fortress

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// this file contains the snapshot format: the single JSON document that
// holds a whole State, used both by the store and by export/import.
//
// Reading is permissive: any top level key may be missing (or null), it then
// keeps the value of the state it is decoded onto. Unknown keys are ignored.

// snapshot is the JSON proxy of a State.
type snapshot struct {
	History     Ledger    `json:"history"`
	Todos       Todos     `json:"todos"`
	MasterFunds Registry  `json:"masterFunds"`
	Allocations Template  `json:"allocations"`
	Settings    *Settings `json:"settings,omitempty"`
}

func newSnapshot(s *State) snapshot {
	settings := s.Settings
	return snapshot{
		History:     nonNil(s.History),
		Todos:       nonNil(s.Todos),
		MasterFunds: nonNil(s.Funds),
		Allocations: nonNil(s.Allocations),
		Settings:    &settings,
	}
}

// nonNil makes sure empty lists are written as [] rather than null.
func nonNil[S ~[]E, E any](s S) S {
	if s == nil {
		return S{}
	}
	return s
}

// EncodeSnapshot writes s as a compact JSON document.
func EncodeSnapshot(w io.Writer, s *State) error {
	if err := json.NewEncoder(w).Encode(newSnapshot(s)); err != nil {
		return fmt.Errorf("cannot encode snapshot: %w", err)
	}
	return nil
}

// ExportSnapshot writes s as an indented JSON document meant to be read by humans.
func ExportSnapshot(w io.Writer, s *State) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(newSnapshot(s)); err != nil {
		return fmt.Errorf("cannot export snapshot: %w", err)
	}
	return nil
}

// DecodeSnapshot reads a snapshot from r on top of base.
//
// It returns a new State: keys present in the document replace the
// corresponding part of base wholesale, missing keys keep base's value. base
// is never modified, even on error.
func DecodeSnapshot(r io.Reader, base *State) (*State, error) {
	next := base.Clone()
	// settings are decoded onto the current ones so that a partial settings
	// object only overrides the thresholds it names.
	settings := next.Settings
	snap := snapshot{Settings: &settings}
	dec := json.NewDecoder(r)
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("cannot decode snapshot: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("cannot decode snapshot: unexpected data after the document")
	}
	if !bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{")) {
		return nil, fmt.Errorf("cannot decode snapshot: document must be an object")
	}
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("cannot decode snapshot: %w", err)
	}
	if snap.History != nil {
		next.History = snap.History
	}
	if snap.Todos != nil {
		next.Todos = snap.Todos
	}
	if snap.MasterFunds != nil {
		next.Funds = snap.MasterFunds
	}
	if snap.Allocations != nil {
		next.Allocations = snap.Allocations
	}
	if snap.Settings != nil {
		next.Settings = *snap.Settings
	}
	return next, nil
}
