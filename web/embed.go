// Package web carries the embedded browser assets for the CyberGuard UI.
package web

import "embed"

//go:embed static/*
var StaticFS embed.FS
