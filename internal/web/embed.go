package web

import _ "embed"

// IndexHTML is the operator-facing upload form served at /.
//
//go:embed index.html
var IndexHTML []byte
