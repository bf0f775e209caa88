// Package adg imports Ableton drum rack presets (.adg) into kits.
//
// An .adg file is a gzip-compressed XML document. Import runs
// decode -> parse -> extract (resolving each sample path) -> remap and
// never fails outright: unreadable or malformed files produce an empty
// kit, and branches without a usable note or sample are skipped.
package adg

import (
	"drumrack/debug"
	"drumrack/kit"
)

// Parser imports preset files against a sample library configuration
type Parser struct {
	resolver *Resolver
}

// NewParser returns a parser using the auto-detected Core Library
func NewParser() *Parser {
	return NewParserWithResolver(NewResolver(DetectLibrary()))
}

// NewParserWithResolver returns a parser that resolves paths with r
func NewParserWithResolver(r *Resolver) *Parser {
	return &Parser{resolver: r}
}

// Resolver exposes the parser's path resolver
func (p *Parser) Resolver() *Resolver {
	return p.resolver
}

// SetLibraryPath overrides the Core Library location
func (p *Parser) SetLibraryPath(path string) {
	p.resolver.SetLibraryRoot(path)
}

// LibraryPath returns the Core Library location in use
func (p *Parser) LibraryPath() string {
	return p.resolver.LibraryRoot
}

// ParseFile imports path and remaps its samples onto the pad layout.
// Failures are logged and yield a kit with no mappings.
func (p *Parser) ParseFile(path string) kit.Kit {
	k, err := p.ParseFileRaw(path)
	if err != nil {
		debug.Log("adg", "import %s failed: %v", path, err)
		return k
	}
	k.Mappings = kit.Remap(k.Mappings)
	return k
}

// ParseFileRaw imports path without remapping, keeping vendor notes.
// On error the returned kit carries the name and source only.
func (p *Parser) ParseFileRaw(path string) (kit.Kit, error) {
	k := kit.Kit{
		Name:       kit.Stem(path),
		SourceFile: path,
	}

	text, err := DecodeFile(path)
	if err != nil {
		return k, err
	}
	debug.Log("adg", "decompressed %d bytes from %s", len(text), path)

	root, err := ParseDocument(text)
	if err != nil {
		return k, err
	}
	debug.Log("adg", "root tag = %s", root.Tag)

	k.Mappings = Extract(root, p.resolver)
	return k, nil
}
