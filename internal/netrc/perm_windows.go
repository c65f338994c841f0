//go:build windows

package netrc

// checkPermissions is a no-op on Windows: the file mode bits reported
// there carry no useful ownership or sharing information.
func checkPermissions(path string) error {
	return nil
}
