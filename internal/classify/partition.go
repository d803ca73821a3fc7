package classify

import (
	"sort"

	"github.com/mesh-intelligence/desksort/pkg/types"
)

// Classified pairs a record with its category and the rule that chose it.
type Classified struct {
	Record   types.IconRecord `json:"record"`
	Category types.Category   `json:"category"`
	Rule     string           `json:"rule"`
}

// Buckets holds the four coarse placement groups. Each list keeps the order
// it was partitioned in, newest first when fed from SortByRecency.
type Buckets struct {
	Folders          []Classified
	Games            []Classified
	Content          []Classified
	ProgramsAndOther []Classified
}

// Get returns the list for b.
func (bs Buckets) Get(b types.Bucket) []Classified {
	switch b {
	case types.BucketFolders:
		return bs.Folders
	case types.BucketGames:
		return bs.Games
	case types.BucketContent:
		return bs.Content
	default:
		return bs.ProgramsAndOther
	}
}

// Len returns the number of records across all buckets.
func (bs Buckets) Len() int {
	return len(bs.Folders) + len(bs.Games) + len(bs.Content) + len(bs.ProgramsAndOther)
}

// bucketOf is the coarse mapping. Categories absent from it fall into
// ProgramsAndOther.
var bucketOf = map[types.Category]types.Bucket{
	types.CategoryFolders:         types.BucketFolders,
	types.CategoryGames:           types.BucketGames,
	types.CategoryDocuments:       types.BucketContent,
	types.CategoryImages:          types.BucketContent,
	types.CategoryVideo:           types.BucketContent,
	types.CategoryAudio:           types.BucketContent,
	types.CategoryArchives:        types.BucketContent,
	types.CategoryDevFiles:        types.BucketContent,
	types.CategoryDocumentsOnline: types.BucketContent,
	types.CategoryMediaOnline:     types.BucketContent,
	types.CategoryCloudFiles:      types.BucketContent,
}

// BucketOf maps a fine category onto its layout bucket. It is total.
func BucketOf(c types.Category) types.Bucket {
	if b, ok := bucketOf[c]; ok {
		return b
	}
	return types.BucketProgramsAndOther
}

// SortByRecency returns a copy of records ordered newest first by ModTime.
// Records with equal timestamps keep their enumeration order.
func SortByRecency(records []types.IconRecord) []types.IconRecord {
	sorted := make([]types.IconRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ModTime > sorted[j].ModTime
	})
	return sorted
}

// ClassifyAll classifies records in order.
func ClassifyAll(records []types.IconRecord, lex types.Lexicon) []Classified {
	out := make([]Classified, 0, len(records))
	for _, rec := range records {
		cat, rule := Explain(rec, lex)
		out = append(out, Classified{Record: rec, Category: cat, Rule: rule})
	}
	return out
}

// Partition groups classified records by bucket, preserving input order
// within every bucket. Nothing is dropped.
func Partition(items []Classified) Buckets {
	var bs Buckets
	for _, it := range items {
		switch BucketOf(it.Category) {
		case types.BucketFolders:
			bs.Folders = append(bs.Folders, it)
		case types.BucketGames:
			bs.Games = append(bs.Games, it)
		case types.BucketContent:
			bs.Content = append(bs.Content, it)
		default:
			bs.ProgramsAndOther = append(bs.ProgramsAndOther, it)
		}
	}
	return bs
}
