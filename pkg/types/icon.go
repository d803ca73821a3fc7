package types

import (
	"encoding/json"
	"strings"
)

// Kind is the type of a desktop entry, either as the shell reports it or
// after a shortcut has been followed to its target.
type Kind string

// Entry kinds.
const (
	KindFolder           Kind = "folder"
	KindShortcut         Kind = "shortcut"
	KindInternetShortcut Kind = "internet_shortcut"
	KindExecutable       Kind = "executable"
	KindFile             Kind = "file"
	KindImage            Kind = "image"
	KindText             Kind = "text"
	KindPDF              Kind = "pdf"
	KindUnknown          Kind = "unknown"
)

var knownKinds = map[Kind]bool{
	KindFolder:           true,
	KindShortcut:         true,
	KindInternetShortcut: true,
	KindExecutable:       true,
	KindFile:             true,
	KindImage:            true,
	KindText:             true,
	KindPDF:              true,
	KindUnknown:          true,
}

// ParseKind maps s onto a Kind. Unrecognized or empty values yield KindUnknown.
func ParseKind(s string) Kind {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if knownKinds[k] {
		return k
	}
	return KindUnknown
}

// UnmarshalJSON accepts any string and normalizes it through ParseKind so
// snapshots written by other tools never fail to load on an unfamiliar kind.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*k = ParseKind(s)
	return nil
}

// Point is a pixel position on the desktop.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// IconRecord is one desktop entry as discovered by an Enumerator.
//
// ResolvedName differs from DisplayName when the entry is a shortcut whose
// target was resolved. Kind is the resolved type; OriginalKind is the type of
// the desktop entry itself, so an unresolved shortcut is still known to be a
// shortcut. TargetPath is a filesystem path or URL, empty when unresolvable.
// SlotIndex addresses the icon for repositioning and is only stable for the
// duration of one pass.
//
// Records are read-only once enumerated.
type IconRecord struct {
	DisplayName  string  `json:"display_name"`
	ResolvedName string  `json:"resolved_name,omitempty"`
	Kind         Kind    `json:"kind"`
	OriginalKind Kind    `json:"original_kind"`
	TargetPath   string  `json:"target_path,omitempty"`
	ModTime      float64 `json:"mod_time"`
	Position     Point   `json:"position"`
	SlotIndex    int     `json:"slot_index"`
}
