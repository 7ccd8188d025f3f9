package domain

// DownloadTask describes one artifact fetch from a remote repository.
type DownloadTask struct {
	URL        string // Source URL
	Dest       string // Destination path
	BackupPath string // If non-empty and Dest exists, Dest is renamed here before writing
}

// Progress reports the advancement of a streaming download.
// Total is 0 or negative when the server did not advertise a size.
type Progress struct {
	Downloaded int64
	Total      int64
}

// Fraction returns the completed fraction in [0, 1], or -1 when the
// total size is unknown and progress is indeterminate.
func (p Progress) Fraction() float64 {
	if p.Total <= 0 {
		return -1
	}
	return float64(p.Downloaded) / float64(p.Total)
}

// ProgressFunc receives progress updates during a download.
type ProgressFunc func(Progress)
