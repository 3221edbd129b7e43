package domain

// ProgressUpdate is one snapshot of a submission streamed to the UI.
type ProgressUpdate struct {
	Phase          Phase
	OverallPercent float64
	Message        string
}

// ProgressWindow is the slice of the overall percentage budget handed to the
// upload phase. Base is what prior phases already consumed, Span what the
// uploads may fill.
type ProgressWindow struct {
	Base float64
	Span float64
}

// Overall folds per-file progress into the overall percentage:
// completed files each contribute an equal share of the span, the file
// currently transferring contributes its fraction of one share. The result
// is non-decreasing as long as completed and filePercent are.
func (w ProgressWindow) Overall(totalFiles, completedFiles int, filePercent float64) float64 {
	if totalFiles <= 0 {
		return w.Base + w.Span
	}
	if filePercent < 0 {
		filePercent = 0
	}
	if filePercent > 100 {
		filePercent = 100
	}
	share := w.Span / float64(totalFiles)
	overall := w.Base + float64(completedFiles)*share + filePercent/100*share
	if max := w.Base + w.Span; overall > max {
		overall = max
	}
	return overall
}
