package dbmetrics

import "context"

type txContextKey struct{}

// WithExecutor кладет активный транзакционный executor в context.
// Используется transaction manager-ами, чтобы репозитории выполняли
// запросы внутри той же транзакции без изменения сигнатур.
func WithExecutor(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// GetExecutor возвращает executor из context, если там есть активная
// транзакция, иначе - переданный fallback (обычно пул соединений).
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txContextKey{}).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction сообщает, выполняется ли запрос внутри транзакции
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txContextKey{}).(TxExecutor)
	return ok
}
