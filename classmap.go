package img2css

import (
	"sync"
)

// ClassMap is an insertion-ordered mapping from color to class label.
// Class assignment fills it once, most frequent color first, and it is
// read-only afterwards; iteration replays entries in assignment order
// so generated style rules come out in a stable, frequency-ranked
// order. A nil *ClassMap behaves as an empty map for reads.
type ClassMap struct {
	colors []RGB
	labels map[RGB]string
	mu     sync.RWMutex
}

// NewClassMap creates an empty ClassMap.
func NewClassMap() *ClassMap {
	return &ClassMap{
		colors: make([]RGB, 0),
		labels: make(map[RGB]string),
	}
}

// Set adds a color-label pair to the map. Setting a color that is
// already present replaces its label without changing its position.
func (cm *ClassMap) Set(c RGB, label string) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if _, exists := cm.labels[c]; !exists {
		cm.colors = append(cm.colors, c)
	}
	cm.labels[c] = label
}

// Get retrieves the label assigned to a color.
func (cm *ClassMap) Get(c RGB) (string, bool) {
	if cm == nil {
		return "", false
	}
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	label, exists := cm.labels[c]
	return label, exists
}

// Colors returns the mapped colors in insertion order.
func (cm *ClassMap) Colors() []RGB {
	if cm == nil {
		return nil
	}
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	return append([]RGB{}, cm.colors...)
}

// Iterate calls f for each color-label pair in insertion order.
func (cm *ClassMap) Iterate(f func(c RGB, label string)) {
	if cm == nil {
		return
	}
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	for _, c := range cm.colors {
		f(c, cm.labels[c])
	}
}

// Len returns the number of entries in the map.
func (cm *ClassMap) Len() int {
	if cm == nil {
		return 0
	}
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	return len(cm.colors)
}

// AssignClasses pairs each ranked color with the next label from the
// sequence, so the first label names the most frequent color. The
// ranking must already be filtered and sorted; an empty ranking yields
// an empty map. The sequence is consumed in a single linear pass.
func AssignClasses(ranked []RGB, labels *LabelSequence) *ClassMap {
	cm := NewClassMap()
	for _, c := range ranked {
		cm.Set(c, labels.Next())
	}
	return cm
}
