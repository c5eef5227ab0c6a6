// Package autostart registers the application with the desktop session so
// it launches at login, the XDG analogue of a macOS launch agent. The core
// only touches this once at startup; there is no runtime contract.
package autostart

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/perchwm/perch/internal/core"
)

type Entry struct {
	Name    string
	Exec    string
	Comment string
}

// Path returns the desktop entry location for the given application name.
func Path(name string) string {
	return filepath.Join(xdg.ConfigHome, "autostart", name+".desktop")
}

func Registered(name string) (bool, error) {
	return core.FileExists(Path(name))
}

// Register writes the autostart desktop entry, replacing any existing one.
func Register(entry Entry) error {
	filePath := Path(entry.Name)
	if err := os.MkdirAll(filepath.Dir(filePath), 0700); err != nil {
		return err
	}

	content := fmt.Sprintf(`[Desktop Entry]
Type=Application
Name=%s
Exec=%s
Comment=%s
X-GNOME-Autostart-enabled=true
`, entry.Name, entry.Exec, entry.Comment)

	filePathTmp := filePath + ".tmp"
	if err := os.WriteFile(filePathTmp, []byte(content), 0600); err != nil {
		return err
	}

	return os.Rename(filePathTmp, filePath)
}

// Unregister removes the autostart desktop entry if present.
func Unregister(name string) error {
	if err := os.Remove(Path(name)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
