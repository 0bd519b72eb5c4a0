// Package store provides uniform read/write access to the cooperative's
// collections over two backends: the remote tabular (sheet) service and a
// local durable cache. Any remote failure flips the adapter into offline
// mode for the remainder of the process; only a restart retries the remote.
package store

import (
	"context"
	"encoding/json"
)

type Op string

const (
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Collection names double as sheet tab names on the remote service and as
// cache keys locally.
const (
	CollectionMembers      = "Members"
	CollectionTransactions = "Transactions"
	CollectionLoans        = "Loans"
	CollectionLogs         = "Logs"
)

// idKeys maps each collection to the JSON field that identifies a record,
// needed for update/delete against the locally cached copy.
var idKeys = map[string]string{
	CollectionMembers:      "member_id",
	CollectionTransactions: "transaction_id",
	CollectionLoans:        "loan_id",
	CollectionLogs:         "id",
}

func idKeyFor(collection string) string {
	if k, ok := idKeys[collection]; ok {
		return k
	}
	return "id"
}

// Remote is the tabular service contract: whole-collection reads and
// row-level writes acknowledged by a status envelope.
type Remote interface {
	ReadAll(ctx context.Context, collection string) ([]json.RawMessage, error)
	Write(ctx context.Context, op Op, collection string, record any, id string) error
}
