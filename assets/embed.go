// Package assets embeds the default art tree. Each clip is a folder of
// numbered PNG frames, e.g. squid_idle/0.png. Clips without a folder are
// drawn with placeholders.
package assets

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed *
var embedded embed.FS

// FS returns the art tree rooted at dir on disk, or the embedded tree when
// dir is empty.
func FS(dir string) fs.FS {
	if dir == "" {
		return embedded
	}
	return os.DirFS(dir)
}
