package pipeline

// Callers reports how many Process calls are waiting on an upload run.
func (u *Uploader) Callers() int64 {
	return u.callers.Load()
}
