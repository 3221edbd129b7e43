package tempvideo

import "post-pilot/internal/core/domain"

// Discard drops a staged video client-side. The temp object itself is not
// deleted: temp storage expires server-side.
func (s *tempVideoService) Discard(session *domain.TempVideoSession) {
	if session == nil {
		return
	}
	s.logger.Info("discarding temp video session", "temp_storage_key", session.TempStorageKey)
	session.TempStorageKey = ""
	session.PlaybackURL = ""
	session.DurationSeconds = 0
	session.Trim = nil
}
