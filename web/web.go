// Package web embeds the widget's front-end page. Rendering is not the
// shell's concern; the page exists so the front-end layer has something to
// host and a way to invoke the command surface.
package web

import "embed"

//go:embed index.html
var FS embed.FS
