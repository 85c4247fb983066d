package ui

// Document owns the element tree and an id index.
type Document struct {
	root  *Element
	byID  map[string]*Element
}

// NewDocument creates an empty document with a detached root.
func NewDocument() *Document {
	return &Document{
		root: newElement(""),
		byID: make(map[string]*Element),
	}
}

// Root returns the document root.
func (d *Document) Root() *Element { return d.root }

// CreateElement creates a new element. A non-empty id registers the
// element in the document index; creating a second element with the
// same id replaces the index entry.
func (d *Document) CreateElement(id string) *Element {
	el := newElement(id)
	if id != "" {
		d.byID[id] = el
	}
	return el
}

// ByID returns the element with the given id, or nil when no such
// element exists. Callers are expected to tolerate nil (missing parts
// of the interface are silently ignored).
func (d *Document) ByID(id string) *Element {
	return d.byID[id]
}

// Walk visits every element of the tree in depth-first order.
func (d *Document) Walk(fn func(*Element)) {
	walk(d.root, fn)
}

func walk(el *Element, fn func(*Element)) {
	fn(el)
	for _, c := range el.children {
		walk(c, fn)
	}
}
