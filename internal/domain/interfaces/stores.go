package interfaces

import domaintypes "ltoaccount/internal/domain/types"

// KeyStore persists the local account's address and key material.
type KeyStore interface {
	SaveAccount(passphrase string, acct domaintypes.StoredAccount) error
	LoadAccount(passphrase string) (domaintypes.StoredAccount, error)
}
