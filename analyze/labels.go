package analyze

import (
	"cmp"
	"slices"
)

// Label is a named image offset.
type Label struct {
	Name   string
	Offset int
}

// Labels returns the label table sorted by offset. Labels sharing an
// offset are ordered by name.
func Labels(table map[string]int) (labels []Label) {
	labels = make([]Label, 0, len(table))
	for name, offset := range table {
		labels = append(labels, Label{Name: name, Offset: offset})
	}

	slices.SortFunc(labels, func(a, b Label) int {
		return cmp.Or(cmp.Compare(a.Offset, b.Offset), cmp.Compare(a.Name, b.Name))
	})

	return
}

// LabelAt returns the labels naming offset.
func LabelAt(labels []Label, offset int) (names []string) {
	n, _ := slices.BinarySearchFunc(labels, offset, func(label Label, offset int) int {
		return cmp.Compare(label.Offset, offset)
	})
	for ; n < len(labels) && labels[n].Offset == offset; n++ {
		names = append(names, labels[n].Name)
	}
	return
}
