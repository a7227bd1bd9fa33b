package repository

import (
	"github.com/hamaza7867/POS-NEW/internal/infra"
	"github.com/hamaza7867/POS-NEW/internal/model"
)

// maxTransactions caps the history at the most recent entries; the oldest is
// evicted when a new record pushes the log past the cap.
const maxTransactions = 100

// TransactionRepository persists the capped, newest-first transaction log.
type TransactionRepository interface {
	Load() []model.Transaction
	Save(tx model.Transaction) error
}

type transactionRepo struct{ kv *infra.KVStore }

func NewTransactionRepository(kv *infra.KVStore) TransactionRepository {
	return &transactionRepo{kv: kv}
}

// Load returns the log newest first; absence or parse failure yields an empty list.
func (r *transactionRepo) Load() []model.Transaction {
	var txs []model.Transaction
	if !r.kv.Get(transactionsKey, &txs) {
		return []model.Transaction{}
	}
	return txs
}

// Save prepends tx and truncates the log to the cap.
func (r *transactionRepo) Save(tx model.Transaction) error {
	txs := r.Load()
	txs = append([]model.Transaction{tx}, txs...)
	if len(txs) > maxTransactions {
		txs = txs[:maxTransactions]
	}
	return r.kv.Set(transactionsKey, txs)
}
