//go:build linux || darwin

package rawterm

import "golang.org/x/sys/unix"

// GetSizeIoctl queries the window size directly via TIOCGWINSZ, the same
// ioctl the teacher's termios.GetSize used through cgo. golang.org/x/term
// already does this internally. Nothing in this module calls GetSizeIoctl;
// Compositor.GetWindowSize and cmd/vis use GetSize.
func GetSizeIoctl(fd int) (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}
