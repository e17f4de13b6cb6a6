package session

type SessionOpt func(*Session)

// WithId sets the id the session logs under.
func WithId(id string) SessionOpt {
	return func(s *Session) {
		s.id = id
	}
}
