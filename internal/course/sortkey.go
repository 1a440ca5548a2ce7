package course

import (
	"cmp"
	"math"
	"slices"
	"strconv"
)

// Unnumbered is the order given to names without a leading number, so they
// sort after every numbered sibling.
const Unnumbered = math.MaxInt32

// SortKey orders files by course folder, then lecture number, then name.
type SortKey struct {
	FolderOrder int
	FileOrder   int
	Name        string
}

// KeyOf derives the SortKey of f.
func KeyOf(f ProcessedFile) SortKey {
	return SortKey{
		FolderOrder: LeadingNumber(f.FolderName),
		FileOrder:   LeadingNumber(f.Name),
		Name:        f.Name,
	}
}

// Compare orders keys by FolderOrder, FileOrder and then Name.
func (k SortKey) Compare(o SortKey) int {
	if c := cmp.Compare(k.FolderOrder, o.FolderOrder); c != 0 {
		return c
	}
	if c := cmp.Compare(k.FileOrder, o.FileOrder); c != 0 {
		return c
	}
	return cmp.Compare(k.Name, o.Name)
}

// LeadingNumber parses the run of ASCII digits at the start of s.
// It returns Unnumbered when s does not start with a digit or the number
// does not fit below Unnumbered.
func LeadingNumber(s string) int {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return Unnumbered
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n >= Unnumbered {
		return Unnumbered
	}
	return n
}

// SortFiles returns a copy of files in course order. Files with equal keys
// keep their relative input order.
func SortFiles(files []ProcessedFile) []ProcessedFile {
	sorted := append([]ProcessedFile(nil), files...)
	slices.SortStableFunc(sorted, func(a, b ProcessedFile) int {
		return KeyOf(a).Compare(KeyOf(b))
	})
	return sorted
}
