// Provides the vector drawing surface charts are rendered on.
// A Document is an abstract SVG tree of groups, paths, lines,
// rectangles and texts, which can then be serialized to SVG
// or consumed by painting drivers.
// See for example svgchart/svgraster or svgchart/svgpdf .
package svgdoc

import (
	"github.com/benoitkugler/svgchart/svgpath"
)

// Bounds defines a bounding box, such as a viewport
// or the measured box of a host element.
type Bounds struct{ X, Y, W, H float64 }

// Node is one element of the document tree:
// *Group, *Path, *Line, *Rect or *Text.
type Node interface {
	isNode()
}

// TextAnchor is the horizontal alignment of a text
// relative to its position.
type TextAnchor uint8

const (
	AnchorInherit TextAnchor = iota // zero value: use the parent's anchor
	AnchorStart
	AnchorMiddle
	AnchorEnd
)

func (a TextAnchor) String() string {
	switch a {
	case AnchorStart:
		return "start"
	case AnchorMiddle:
		return "middle"
	case AnchorEnd:
		return "end"
	default:
		return ""
	}
}

// TextStyle holds the text attributes a group passes
// down to its descendants. Zero fields are inherited.
type TextStyle struct {
	FontFamily string
	FontSize   float64
	FontWeight string // "bold" or empty
	Anchor     TextAnchor
}

// DefaultTextStyle is the style in effect at the root of a document.
var DefaultTextStyle = TextStyle{
	FontFamily: "sans-serif",
	FontSize:   10,
	Anchor:     AnchorStart,
}

// inherit returns s where its zero fields are taken from parent
func (s TextStyle) inherit(parent TextStyle) TextStyle {
	if s.FontFamily == "" {
		s.FontFamily = parent.FontFamily
	}
	if s.FontSize == 0 {
		s.FontSize = parent.FontSize
	}
	if s.FontWeight == "" {
		s.FontWeight = parent.FontWeight
	}
	if s.Anchor == AnchorInherit {
		s.Anchor = parent.Anchor
	}
	return s
}

// Group is a container whose transform and
// text style apply to all its children.
type Group struct {
	Class     string
	Transform svgpath.Matrix2D
	Text      TextStyle
	Fill      string // CSS color, empty to inherit
	Children  []Node
}

// PathStyle holds the painting attributes of a path
type PathStyle struct {
	Fill        string // CSS color, "none" or empty disables filling
	Stroke      string // CSS color, "none" or empty disables stroking
	StrokeWidth float64
	Join        JoinMode
	Cap         CapMode
}

// Path binds a style to a path
type Path struct {
	Class string
	D     svgpath.Path
	Style PathStyle
}

// Line is a single stroked segment, such as a tick mark.
type Line struct {
	Class          string
	X1, Y1, X2, Y2 float64
	Stroke         string
	StrokeWidth    float64 // 0 means 1
	StrokeOpacity  float64 // 0 means 1
}

// Rect is a filled rectangle, such as a legend swatch.
type Rect struct {
	Class      string
	X, Y, W, H float64
	Fill       string
}

// Text is a single line of text. Dy is expressed in em,
// relative to the resolved font size.
type Text struct {
	Class   string
	X, Y    float64
	Dy      float64
	Content string
	Style   TextStyle
	Fill    string
}

func (*Group) isNode() {}
func (*Path) isNode()  {}
func (*Line) isNode()  {}
func (*Rect) isNode()  {}
func (*Text) isNode()  {}

// NewGroup returns an empty group with an identity transform.
func NewGroup(class string) *Group {
	return &Group{Class: class, Transform: svgpath.Identity}
}

// Append adds nodes at the end of the group.
func (g *Group) Append(nodes ...Node) {
	g.Children = append(g.Children, nodes...)
}

// AppendGroup adds and returns a new child group.
func (g *Group) AppendGroup(class string) *Group {
	child := NewGroup(class)
	g.Append(child)
	return child
}

// Document is one drawing surface: the root of an SVG tree.
type Document struct {
	Width, Height float64
	Root          *Group
}

// NewDocument returns an empty document of the given size.
func NewDocument(width, height float64) *Document {
	return &Document{Width: width, Height: height, Root: NewGroup("")}
}

// Walk calls fn for every node of the tree in document order,
// with the transform accumulated from the root.
// Returning false from fn skips the children of a group.
func (doc *Document) Walk(fn func(n Node, m svgpath.Matrix2D) bool) {
	walk(doc.Root, svgpath.Identity, fn)
}

func walk(n Node, m svgpath.Matrix2D, fn func(n Node, m svgpath.Matrix2D) bool) {
	g, isGroup := n.(*Group)
	if isGroup {
		m = m.Mult(g.Transform)
	}
	if !fn(n, m) || !isGroup {
		return
	}
	for _, child := range g.Children {
		walk(child, m, fn)
	}
}

// Find returns the nodes with the given class, in document order.
func (doc *Document) Find(class string) []Node {
	var out []Node
	doc.Walk(func(n Node, _ svgpath.Matrix2D) bool {
		if classOf(n) == class {
			out = append(out, n)
		}
		return true
	})
	return out
}

// FindGroup returns the first group with the given class, or nil.
func (doc *Document) FindGroup(class string) *Group {
	for _, n := range doc.Find(class) {
		if g, ok := n.(*Group); ok {
			return g
		}
	}
	return nil
}

// Position returns the accumulated transform of the node n,
// that is the product of the transforms of its ancestors
// (including n itself for a group).
func (doc *Document) Position(n Node) (svgpath.Matrix2D, bool) {
	var (
		out   svgpath.Matrix2D
		found bool
	)
	doc.Walk(func(node Node, m svgpath.Matrix2D) bool {
		if node == n {
			out, found = m, true
		}
		return !found
	})
	return out, found
}

func classOf(n Node) string {
	switch n := n.(type) {
	case *Group:
		return n.Class
	case *Path:
		return n.Class
	case *Line:
		return n.Class
	case *Rect:
		return n.Class
	case *Text:
		return n.Class
	}
	return ""
}
