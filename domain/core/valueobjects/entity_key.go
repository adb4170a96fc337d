package valueobjects

import (
	"strconv"

	pkgerrors "github.com/ravjot07/TxGraph/pkg/errors"
)

// EntityKind discriminates the two node kinds of the collaborator graph.
// The values match the `type` discriminators used on the wire.
type EntityKind string

const (
	KindUser        EntityKind = "User"
	KindTransaction EntityKind = "Transaction"
)

// kind prefixes keep keys injective across kinds: a user and a
// transaction sharing a numeric id must never share a key.
const (
	userKeyPrefix        = "u"
	transactionKeyPrefix = "t"
)

// IsValid reports whether the kind is one of the two recognized values
func (k EntityKind) IsValid() bool {
	return k == KindUser || k == KindTransaction
}

// String returns the wire representation
func (k EntityKind) String() string {
	return string(k)
}

// ParseKind maps a wire discriminator to an EntityKind
func ParseKind(s string) (EntityKind, error) {
	switch s {
	case string(KindUser):
		return KindUser, nil
	case string(KindTransaction):
		return KindTransaction, nil
	default:
		return "", pkgerrors.NewInvalidKindError(s)
	}
}

// EntityKey uniquely identifies an entity across both kinds
type EntityKey string

// String returns the string representation
func (k EntityKey) String() string {
	return string(k)
}

// NewEntityKey derives the stable key for an entity. The derivation is
// pure and deterministic: a kind prefix followed by the decimal id.
func NewEntityKey(kind EntityKind, id int64) (EntityKey, error) {
	switch kind {
	case KindUser:
		return EntityKey(userKeyPrefix + strconv.FormatInt(id, 10)), nil
	case KindTransaction:
		return EntityKey(transactionKeyPrefix + strconv.FormatInt(id, 10)), nil
	default:
		return "", pkgerrors.NewInvalidKindError(string(kind))
	}
}

// MustEntityKey derives a key for a kind already validated by the caller.
// It panics on an invalid kind; use NewEntityKey for unvalidated input.
func MustEntityKey(kind EntityKind, id int64) EntityKey {
	key, err := NewEntityKey(kind, id)
	if err != nil {
		panic(err)
	}
	return key
}
