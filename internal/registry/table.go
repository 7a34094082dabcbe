package registry

import "sort"

// Table is the finished registration table: server id to Descriptor.
// It is immutable once built and safe for concurrent reads. Construct
// one with Builder.Build.
type Table struct {
	byID map[string]Descriptor
}

// Get returns the descriptor registered under id.
func (t *Table) Get(id string) (Descriptor, bool) {
	desc, ok := t.byID[id]
	return desc, ok
}

// Len returns the number of registered servers.
func (t *Table) Len() int {
	return len(t.byID)
}

// IDs returns all registered server ids in sorted order.
func (t *Table) IDs() []string {
	ids := make([]string, 0, len(t.byID))
	for id := range t.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// All returns every descriptor ordered by id.
func (t *Table) All() []Descriptor {
	descs := make([]Descriptor, 0, len(t.byID))
	for _, id := range t.IDs() {
		descs = append(descs, t.byID[id])
	}
	return descs
}

// ForFileType returns the descriptors handling a file-type tag, ordered
// by id. The host dispatches buffers of that type to these servers.
func (t *Table) ForFileType(fileType string) []Descriptor {
	var descs []Descriptor
	for _, desc := range t.All() {
		if desc.HandlesFileType(fileType) {
			descs = append(descs, desc)
		}
	}
	return descs
}
