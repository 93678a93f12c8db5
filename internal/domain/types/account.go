package types

// StoredAccount is what a key store hands back: the canonical address bytes
// and the key material behind them.
type StoredAccount struct {
	Address []byte
	Keys    KeyMaterial
}
