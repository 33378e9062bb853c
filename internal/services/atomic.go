package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// AtomicRunner executes fn as one all-or-nothing unit. Every store call
// made with the context passed to fn joins the same unit; if fn returns
// an error none of its writes become durable.
type AtomicRunner interface {
	Run(ctx context.Context, fn func(ctx context.Context) error) error
}

type mongoAtomic struct {
	client *mongo.Client
}

// NewMongoAtomic backs the atomic unit with a session-scoped transaction.
func NewMongoAtomic(client *mongo.Client) AtomicRunner {
	return &mongoAtomic{client: client}
}

func (a *mongoAtomic) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	sess, err := a.client.StartSession()
	if err != nil {
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(tx context.Context) (any, error) {
		return nil, fn(tx)
	})
	return err
}
