// Package pipeline holds the HTML-level stages of résumé rendering:
//   - Markdown fields (pitch, descriptions) to HTML fragments via Goldmark
//   - Tag-soup tolerant parsing of rendered templates into a full document
//   - Document normalization before layout (charset, relative paths)
//
// PDF layout is handled by the root resumaker package through headless
// Chrome. This package never touches the browser.
package pipeline
