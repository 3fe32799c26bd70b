package svgdoc

// Host is the mounting target of a drawing surface:
// the element whose measured box gives the size of the chart
// and which owns the attached documents.
type Host interface {
	// BoundingBox returns the current measured box of the element.
	BoundingBox() Bounds
	// Append attaches the document as the last child of the element.
	Append(doc *Document)
	// Remove detaches the document, returning false
	// if it was not attached.
	Remove(doc *Document) bool
	// Documents returns the attached documents.
	Documents() []*Document
}

var _ Host = (*Element)(nil) // assert interface conformance

// Element is an in-memory Host, used when
// charts are rendered outside of a browser.
// It is not safe for concurrent use.
type Element struct {
	box  Bounds
	docs []*Document
}

// NewElement returns an empty element measuring width x height.
func NewElement(width, height float64) *Element {
	return &Element{box: Bounds{W: width, H: height}}
}

// Resize changes the measured box of the element.
// Attached documents are not affected until they are redrawn.
func (e *Element) Resize(width, height float64) {
	e.box.W, e.box.H = width, height
}

func (e *Element) BoundingBox() Bounds { return e.box }

func (e *Element) Append(doc *Document) { e.docs = append(e.docs, doc) }

func (e *Element) Remove(doc *Document) bool {
	for i, d := range e.docs {
		if d == doc {
			e.docs = append(e.docs[:i], e.docs[i+1:]...)
			return true
		}
	}
	return false
}

func (e *Element) Documents() []*Document {
	return append([]*Document(nil), e.docs...)
}
