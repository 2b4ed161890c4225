package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	ierr "seller-dashboard-api/internal/errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	defaultReadTimeout = time.Second * 10

	// pingNode is never written; reading a missing doc is enough to prove the backend answers.
	pingNode = "_health"
	pingDoc  = "ping"
)

type FirestoreClient struct {
	*firestore.Client
	readTimeout time.Duration
}

var _ Client = FirestoreClient{}

func New(client *firestore.Client, readTimeout time.Duration) FirestoreClient {
	if readTimeout <= 0 {
		readTimeout = defaultReadTimeout
	}
	return FirestoreClient{
		Client:      client,
		readTimeout: readTimeout,
	}
}

func (c FirestoreClient) Query(ctx context.Context, q Query) ([]Document, error) {
	ctx, cancel := context.WithTimeout(ctx, c.readTimeout)
	defer cancel()

	query := c.Collection(q.Collection).Query
	for _, w := range q.Where {
		query = query.Where(w.Path, w.Op, w.Value)
	}

	if q.OrderBy != nil {
		query = query.OrderBy(q.OrderBy.Path, firestoreDirection(q.OrderBy.Direction))
	}

	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	docs := make([]Document, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, translate(err)
		}
		docs = append(docs, Document{ID: doc.Ref.ID, Data: doc.Data()})
	}

	return docs, nil
}

func (c FirestoreClient) GetDoc(ctx context.Context, collection, id string) (Document, error) {
	ctx, cancel := context.WithTimeout(ctx, c.readTimeout)
	defer cancel()

	if err := CheckDocID(id); err != nil {
		return Document{}, err
	}

	docSnap, err := c.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		return Document{}, translate(err)
	}

	if !docSnap.Exists() {
		return Document{}, ierr.NotFound
	}

	return Document{ID: docSnap.Ref.ID, Data: docSnap.Data()}, nil
}

// Ping performs a point read that succeeds whether or not the document exists.
func (c FirestoreClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.readTimeout)
	defer cancel()

	_, err := c.Collection(pingNode).Doc(pingDoc).Get(ctx)
	if err == nil || status.Code(err) == codes.NotFound {
		return nil
	}
	return translate(err)
}

func firestoreDirection(d Direction) firestore.Direction {
	if d == Desc {
		return firestore.Desc
	}
	return firestore.Asc
}

// translate maps driver errors onto the internal/errors kinds.
func translate(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", ierr.Unavailable, err)
	}

	switch status.Code(err) {
	case codes.NotFound:
		return fmt.Errorf("%w: %v", ierr.NotFound, err)
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %v", ierr.Invalid, err)
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled, codes.ResourceExhausted:
		return fmt.Errorf("%w: %v", ierr.Unavailable, err)
	}

	// Some transport errors arrive without a status, so errors.Is() does not work
	if strings.Contains(err.Error(), "context canceled") || strings.Contains(err.Error(), "context deadline exceeded") {
		return fmt.Errorf("%w: %v", ierr.Unavailable, err)
	}

	return err
}
