package component

// DefaultLeafText is what a leaf without a payload renders as.
const DefaultLeafText = "Leaf"

// Leaf is the terminal node variant. It carries an optional opaque payload
// and never has children; child management lives exclusively on Container,
// so misusing a leaf as a parent is a compile error rather than a silent
// no-op.
type Leaf struct {
	payload string
	parent  *Container
}

// LeafOption configures a Leaf at construction time.
type LeafOption func(*Leaf)

// WithPayload sets the text the leaf contributes when executed.
func WithPayload(payload string) LeafOption {
	return func(l *Leaf) {
		l.payload = payload
	}
}

// NewLeaf creates a detached leaf. Without options it renders as
// DefaultLeafText.
func NewLeaf(opts ...LeafOption) *Leaf {
	l := &Leaf{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Execute returns the leaf's payload, or DefaultLeafText when none was set.
func (l *Leaf) Execute() string {
	if l.payload == "" {
		return DefaultLeafText
	}
	return l.payload
}

// IsContainer reports false; a leaf never holds children.
func (l *Leaf) IsContainer() bool { return false }

// Parent returns the container that currently owns the leaf, or nil.
func (l *Leaf) Parent() *Container { return l.parent }

// Payload returns the raw payload ("" when unset).
func (l *Leaf) Payload() string { return l.payload }

func (l *Leaf) setParent(p *Container) { l.parent = p }
