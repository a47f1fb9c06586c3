// Package templates holds the HTML shipped inside the binary.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
