package sequence

// Provider supplies the ordered items for a playlist. It is called once when
// a player session opens; the result stays fixed for the session.
type Provider interface {
	Sequence(playlistID string) (Sequence, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(playlistID string) (Sequence, error)

// Sequence implements Provider.
func (f ProviderFunc) Sequence(playlistID string) (Sequence, error) {
	return f(playlistID)
}
