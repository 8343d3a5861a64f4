// Package xmlutils provides XML construction and query helpers used by the
// gateway client and the CLI. Request documents are built with etree so that
// element order follows the build sequence exactly; the remote schema is
// order-sensitive.
package xmlutils

import (
	"github.com/beevik/etree"
)

// NewRequestDocument creates an XML document with a declaration and a
// namespaced root element named after the remote operation.
func NewRequestDocument(rootName, namespace string) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	root := doc.CreateElement(rootName)
	root.CreateAttr("xmlns", namespace)
	return doc, root
}

// AddChild appends a child element with the given text, emitting it even when
// the text is empty. Use for elements the schema mandates.
func AddChild(parent *etree.Element, tag, text string) *etree.Element {
	child := parent.CreateElement(tag)
	child.SetText(text)
	return child
}

// AddChildIfSet appends a child element only when the text is non-empty.
// Absent optional fields are elided entirely, never emitted empty.
func AddChildIfSet(parent *etree.Element, tag, text string) *etree.Element {
	if text == "" {
		return nil
	}
	return AddChild(parent, tag, text)
}

// Serialize renders the document to bytes, declaration included.
func Serialize(doc *etree.Document) ([]byte, error) {
	return doc.WriteToBytes()
}
