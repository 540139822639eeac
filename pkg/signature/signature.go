// Package signature implements byte-pattern file type detection. Matching is
// a pure function over the input buffer and the static signature table.
package signature

import (
	"sort"

	"github.com/LegendeTestimony/sentinel-AI-sub000/pkg/models"
)

// ContainerKind marks signature entries that identify a container family
// rather than a concrete type, so the identifier knows to delegate to the
// container resolver.
type ContainerKind int

const (
	ContainerNone ContainerKind = iota
	ContainerBox                // ISO-BMFF style size-prefixed boxes
	ContainerChunk              // RIFF style chunks
)

// Entry describes a single file type signature. Entries are immutable and
// defined at build time in the static table.
type Entry struct {
	TypeID     string
	MIME       string
	Category   models.Category
	Pattern    []byte
	Offset     int
	Mask       []byte // optional; same length as Pattern when present
	Confidence int    // base confidence 0-100
	Container  ContainerKind
}

// Match is a signature entry plus the offset at which it matched.
type Match struct {
	Entry  Entry
	Offset int
}

// Scan compares every table entry against the buffer and returns all matches
// ordered by base confidence descending. Entries whose pattern would extend
// past the end of the buffer are skipped. The result may be empty.
func Scan(data []byte) []Match {
	var matches []Match
	for _, entry := range Table {
		if matchesAt(data, entry) {
			matches = append(matches, Match{Entry: entry, Offset: entry.Offset})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Entry.Confidence > matches[j].Entry.Confidence
	})
	return matches
}

func matchesAt(data []byte, entry Entry) bool {
	end := entry.Offset + len(entry.Pattern)
	if entry.Offset < 0 || end > len(data) || len(entry.Pattern) == 0 {
		return false
	}
	for i, p := range entry.Pattern {
		b := data[entry.Offset+i]
		if entry.Mask != nil {
			m := entry.Mask[i]
			if b&m != p&m {
				return false
			}
			continue
		}
		if b != p {
			return false
		}
	}
	return true
}
