// Package txn wraps multi-document writes in a MongoDB transaction.
//
// The paired writes in this system (lesson + request-queue entry on submit,
// lesson + its reports on moderation removal) are committed together when the
// deployment supports transactions. Standalone servers do not; in that case
// the callback runs without a session and the writes degrade to the
// historical two-step behavior.
package txn

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// WithTransaction runs fn inside a transaction on client. When the server
// rejects transactions (standalone deployment), fn is re-run outside a
// session and any failure between the writes is surfaced as-is.
func WithTransaction(ctx context.Context, client *mongo.Client, log *zap.Logger, fn func(ctx context.Context) error) error {
	sess, err := client.StartSession()
	if err != nil {
		if IsNotSupported(err) {
			logFallback(log, err)
			return fn(ctx)
		}
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return nil, fn(sc)
	})
	if err != nil && IsNotSupported(err) {
		logFallback(log, err)
		return fn(ctx)
	}
	return err
}

func logFallback(log *zap.Logger, err error) {
	if log != nil {
		log.Warn("transactions unsupported, running writes sequentially", zap.Error(err))
	}
}

// Server error codes that indicate transactions are unavailable rather than
// that this particular transaction failed.
//
//	20  IllegalOperation (txn numbers need a replica set member)
//	51  IllegalOperation variants
//	263 OperationNotSupportedInTransaction
var notSupportedCodes = map[int32]bool{20: true, 51: true, 263: true}

// IsNotSupported reports whether err means the deployment cannot run
// multi-document transactions at all.
func IsNotSupported(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && notSupportedCodes[ce.Code] {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "transaction") &&
		(strings.Contains(msg, "replica set") || strings.Contains(msg, "not supported"))
}
