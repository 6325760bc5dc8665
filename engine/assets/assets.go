// Package assets resolves engine resources (shaders, fonts, textures)
// relative to a configurable root directory.
package assets

import "path/filepath"

// Root is the base directory assets are loaded from, relative to the
// working directory unless absolute.
var Root = "assets"

func ShaderPath(name string) string  { return filepath.Join(Root, "shaders", name) }
func FontPath(name string) string    { return filepath.Join(Root, "fonts", name) }
func TexturePath(name string) string { return filepath.Join(Root, "textures", name) }
func ThemePath(name string) string   { return filepath.Join(Root, "themes", name) }
