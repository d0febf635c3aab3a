// @MX:NOTE: [AUTO] Association records are persisted with the legacy "File Type"/"Icon Path" keys so existing installs load unchanged.
package models

// Association maps one file extension to an icon image.
type Association struct {
	Extension string `json:"File Type" yaml:"file_type"`
	IconPath  string `json:"Icon Path" yaml:"icon_path"`
}

// List is an ordered set of associations. Order is the editor row order and
// decides which record wins when extensions repeat.
type List []Association

// Clone returns an independent copy of the list.
func (l List) Clone() List {
	out := make(List, len(l))
	copy(out, l)
	return out
}

// Find returns the index of the first association for extension, or -1.
// Matching is exact: no case folding, no wildcard.
func (l List) Find(extension string) int {
	for i, a := range l {
		if a.Extension == extension {
			return i
		}
	}
	return -1
}

// Without returns a copy of the list with the record at index removed.
// The caller must ensure index is in range.
func (l List) Without(index int) List {
	out := make(List, 0, len(l)-1)
	out = append(out, l[:index]...)
	return append(out, l[index+1:]...)
}
