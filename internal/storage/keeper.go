package storage

// Keeper adapts a Store to the session's high-score boundary.
// Loads treat absent or non-positive values as 0; saves are best-effort
// so persistence never stalls or fails an update cycle.
type Keeper struct {
	store  *Store
	gameID string
}

// NewKeeper creates a Keeper for the given store. store may be nil, in
// which case loads return 0 and saves are dropped.
func NewKeeper(store *Store) *Keeper {
	return &Keeper{store: store, gameID: GameID}
}

// LoadHighScore returns the persisted high score, or 0 if the store is
// unavailable, the value is missing, or it is not a positive number.
func (k *Keeper) LoadHighScore() int {
	if k.store == nil {
		return 0
	}
	hs, err := k.store.HighScore(k.gameID)
	if err != nil || hs < 0 {
		return 0
	}
	return hs
}

// SaveHighScore records a new high score. Errors are ignored.
func (k *Keeper) SaveHighScore(score int) {
	if k.store == nil || score <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, the session continues regardless
	k.store.SaveScore(k.gameID, score)
}
