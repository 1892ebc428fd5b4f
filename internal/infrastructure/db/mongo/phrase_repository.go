package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/frasesia/frases-api/internal/core/domain"
)

type PhraseRepository struct {
	col *mongo.Collection
	ids sequence
}

func NewPhraseRepository(db *mongo.Database) *PhraseRepository {
	return &PhraseRepository{
		col: db.Collection(phrasesCollection),
		ids: newSequence(db, phrasesCollection),
	}
}

type phraseDoc struct {
	ID        int64     `bson:"_id"`
	Text      string    `bson:"text"`
	Author    string    `bson:"author"`
	OwnerID   int64     `bson:"owner_id"`
	CreatedAt time.Time `bson:"created_at"`
}

func (r *PhraseRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Phrase, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx,
		bson.M{"owner_id": ownerID},
		options.Find().SetSort(bson.D{{Key: "_id", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("find phrases: %w", err)
	}

	var docs []phraseDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode phrases: %w", err)
	}

	phrases := make([]domain.Phrase, 0, len(docs))
	for _, d := range docs {
		phrases = append(phrases, domain.Phrase{
			ID:        d.ID,
			Text:      d.Text,
			Author:    d.Author,
			OwnerID:   d.OwnerID,
			CreatedAt: d.CreatedAt,
		})
	}
	return phrases, nil
}

// Create inserts the phrase and fills in its id.
func (r *PhraseRepository) Create(ctx context.Context, p *domain.Phrase) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.ids.next(ctx)
	if err != nil {
		return err
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	doc := phraseDoc{ID: id, Text: p.Text, Author: p.Author, OwnerID: p.OwnerID, CreatedAt: p.CreatedAt}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert phrase: %w", err)
	}
	p.ID = id
	return nil
}

// Update filters on id and owner together; no match means the phrase is
// missing or belongs to someone else.
func (r *PhraseRepository) Update(ctx context.Context, ownerID, phraseID int64, text, author string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": phraseID, "owner_id": ownerID},
		bson.M{"$set": bson.M{"text": text, "author": author}},
	)
	if err != nil {
		return fmt.Errorf("update phrase: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPhraseNotFound
	}
	return nil
}

func (r *PhraseRepository) Delete(ctx context.Context, ownerID, phraseID int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": phraseID, "owner_id": ownerID})
	if err != nil {
		return fmt.Errorf("delete phrase: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPhraseNotFound
	}
	return nil
}
