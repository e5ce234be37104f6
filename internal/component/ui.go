package component

import (
	"fmt"

	"github.com/dshills/keybridge/internal/dom"
)

// UI is the root component of a component tree. Its element is the body of
// a document, so components added to it are attached.
type UI struct {
	*Base
	doc *dom.Document
}

// NewUI creates a UI with its own document.
func NewUI() *UI {
	doc := dom.NewDocument()
	return &UI{Base: newBaseFor(doc.Body()), doc: doc}
}

// Document returns the UI's document.
func (u *UI) Document() *dom.Document {
	return u.doc
}

// Add appends children to the UI, attaching them.
func (u *UI) Add(children ...Component) error {
	return add(u, children)
}

// Remove detaches children from the UI.
func (u *UI) Remove(children ...Component) {
	remove(u, children)
}

// Dispatch delivers a browser event at target's element.
func (u *UI) Dispatch(target Component, event dom.BrowserEvent) dom.DispatchResult {
	if IsNil(target) {
		return dom.DispatchResult{}
	}
	return u.doc.Dispatch(target.Element(), event)
}

// Close releases the UI's document.
func (u *UI) Close() {
	u.doc.Close()
}

func add(parent Component, children []Component) error {
	for i, child := range children {
		if IsNil(child) {
			return fmt.Errorf("child %d: %w", i, ErrNilComponent)
		}
		if err := parent.Element().AppendChild(child.Element()); err != nil {
			return fmt.Errorf("child %d: %w", i, err)
		}
	}
	return nil
}

func remove(parent Component, children []Component) {
	for _, child := range children {
		if IsNil(child) {
			continue
		}
		parent.Element().RemoveChild(child.Element())
	}
}
