// Package icons maps part symbol tokens to procedural vector icon
// fragments. It holds two independent registries (top view and side
// view), resolves tokens against them, and composes the resolved
// fragments into the single icon area of a label.
//
// Fragments are authored against a normalized 100x100 design square and
// carry no XML declaration, so they can be embedded directly into a
// label document.
package icons
