// Package editor implements the modal command interpreter of dvim.
//
// An Editor owns one document, its cursor, the visual anchor, the
// registers and the pending command state. Input arrives one byte at a
// time through HandleInput; every byte is fully processed before the next
// one is read. The rendering layer pulls the projected frame, usage hints
// and status fields after each byte and never touches the document.
//
// The register inspector is the only thing the editor shows by itself. It
// is drawn through a WindowHost supplied by the application.
package editor
