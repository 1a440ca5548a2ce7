package executor

import (
	"context"
	"fmt"
	"runtime"
)

// OpenerCommand returns the command that shows dir in the platform file browser.
func OpenerCommand(goos, dir string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{dir}
	case "windows":
		// explorer.exe exits 1 even when the window opens.
		return "cmd", []string{"/c", "start", "", dir}
	default:
		return "xdg-open", []string{dir}
	}
}

// OpenFolder opens dir in the file browser of the current platform.
func OpenFolder(ctx context.Context, e Executor, dir string) error {
	name, args := OpenerCommand(runtime.GOOS, dir)
	if _, err := e.Execute(ctx, name, args...); err != nil {
		return fmt.Errorf("open folder %s: %w", dir, err)
	}
	return nil
}
