//go:build !linux && !darwin

package meta

import "os"

// fillPlatform is the fallback for platforms without a unix stat result.
// Ownership, inode and access time stay at their zero values and the
// optional timestamps remain tagged unsupported, so downstream rendering
// sees a defined default instead of a missing field.
func fillPlatform(m *Meta, info os.FileInfo) {
}
