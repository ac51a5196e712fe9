package id

import (
	"strings"

	"github.com/google/uuid"
)

// transaction ids keep the short "txn_" shape the clients already parse.
const txnPrefix = "txn_"

// UUIDGenerator mints transaction identifiers from random UUIDs. Uniqueness
// is best-effort; nothing is persisted or checked against a ledger.
type UUIDGenerator struct{}

func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

func (UUIDGenerator) NewTransactionID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return txnPrefix + raw[:12]
}
