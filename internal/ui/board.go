package ui

// Ensure Board implements Display
var _ Display = (*Board)(nil)

// Board is a map-backed Display. Hosts register the mount points their
// layout actually has; tests read back what the projector wrote.
type Board struct {
	targets map[string]*boardTarget
}

type boardTarget struct {
	text string
}

func (bt *boardTarget) SetText(text string) {
	bt.text = text
}

// NewBoard creates a board with the given mount points registered.
func NewBoard(names ...string) *Board {
	b := &Board{targets: make(map[string]*boardTarget, len(names))}
	for _, name := range names {
		b.targets[name] = &boardTarget{}
	}
	return b
}

// Target resolves a mount point by name.
func (b *Board) Target(name string) (Target, bool) {
	target, ok := b.targets[name]
	return target, ok
}

// Text returns the last text written to the named mount point.
func (b *Board) Text(name string) string {
	if target, ok := b.targets[name]; ok {
		return target.text
	}
	return ""
}
