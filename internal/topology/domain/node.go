package domain

// DefaultEntryPoint is the entry node of a subgraph that declares none.
const DefaultEntryPoint = "INTERNET"

// Node is a topology node: either a *Leaf or a *Subgraph. The set is closed;
// code that needs to tell the variants apart goes through Visitor.
type Node interface {
	Name() string
	// DisplayName falls back to Name when no display name was declared.
	DisplayName() string
	Accept(v Visitor)

	sealed()
}

// Visitor has one method per Node variant.
type Visitor interface {
	VisitLeaf(l *Leaf)
	VisitSubgraph(g *Subgraph)
}

// Leaf is a terminal service with no internal structure.
type Leaf struct {
	name        string
	displayName *string
}

func NewLeaf(name string, displayName *string) *Leaf {
	return &Leaf{name: name, displayName: copyString(displayName)}
}

func (l *Leaf) Name() string { return l.name }

func (l *Leaf) DisplayName() string {
	if l.displayName != nil {
		return *l.displayName
	}
	return l.name
}

func (l *Leaf) Accept(v Visitor) { v.VisitLeaf(l) }

func (*Leaf) sealed() {}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
