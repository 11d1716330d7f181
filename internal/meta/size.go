package meta

import "github.com/dustin/go-humanize"

// SizeBucket groups entry sizes into the coarse classes the theme colors
// by. Non-regular entries fall into BucketNonFile.
type SizeBucket int

const (
	BucketNonFile SizeBucket = iota
	BucketSmall
	BucketMedium
	BucketLarge
)

// SizeThresholds holds the byte boundaries between the size buckets.
type SizeThresholds struct {
	Small uint64 // sizes strictly below this are small
	Large uint64 // sizes at or above this are large
}

// DefaultSizeThresholds matches the tool's stock theme: anything under
// 4 KiB reads as small, anything from 4 MiB up reads as large.
func DefaultSizeThresholds() SizeThresholds {
	return SizeThresholds{
		Small: 4 * 1024,
		Large: 4 * 1024 * 1024,
	}
}

// SizeBucketFor classifies the entry size against the given thresholds.
func (m *Meta) SizeBucketFor(t SizeThresholds) SizeBucket {
	if m.Kind != KindFile {
		return BucketNonFile
	}
	switch {
	case m.Size < t.Small:
		return BucketSmall
	case m.Size >= t.Large:
		return BucketLarge
	default:
		return BucketMedium
	}
}

// SizeString renders the entry size in IEC units ("4.0 KiB"). When
// totalSize is true, directory sizes include their listed descendants.
func (m *Meta) SizeString(totalSize bool) string {
	size := m.Size
	if totalSize {
		size = m.TotalSize()
	}
	return humanize.IBytes(size)
}
