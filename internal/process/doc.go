// Package process cleans up the browser processes launched for PDF layout.
package process
