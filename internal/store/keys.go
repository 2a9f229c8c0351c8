package store

import (
	"context"
	"fmt"

	"github.com/serkanatas/kopya/ent"
	"github.com/serkanatas/kopya/ent/answerkey"
)

type keyRepo struct {
	client *ent.Client
}

func (r *keyRepo) Save(ctx context.Context, rec AnswerKeyRecord) error {
	// Replace-by-name: an imported key supersedes its previous version.
	_, err := r.client.AnswerKey.Delete().
		Where(answerkey.Name(rec.Name)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("replace answer key %q: %w", rec.Name, err)
	}

	_, err = r.client.AnswerKey.Create().
		SetName(rec.Name).
		SetQuestionCount(rec.QuestionCount).
		SetAnswers(rec.Answers).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer key %q: %w", rec.Name, err)
	}
	return nil
}

func (r *keyRepo) Get(ctx context.Context, name string) (*AnswerKeyRecord, error) {
	row, err := r.client.AnswerKey.Query().
		Where(answerkey.Name(name)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("answer key %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get answer key %q: %w", name, err)
	}
	return keyRecord(row), nil
}

func (r *keyRepo) List(ctx context.Context) ([]AnswerKeyRecord, error) {
	rows, err := r.client.AnswerKey.Query().
		Order(ent.Desc(answerkey.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list answer keys: %w", err)
	}

	records := make([]AnswerKeyRecord, len(rows))
	for i, row := range rows {
		records[i] = *keyRecord(row)
	}
	return records, nil
}

func (r *keyRepo) Delete(ctx context.Context, name string) error {
	n, err := r.client.AnswerKey.Delete().
		Where(answerkey.Name(name)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete answer key %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("answer key %q: %w", name, ErrNotFound)
	}
	return nil
}

func keyRecord(row *ent.AnswerKey) *AnswerKeyRecord {
	return &AnswerKeyRecord{
		Name:          row.Name,
		QuestionCount: row.QuestionCount,
		Answers:       row.Answers,
		CreatedAt:     row.CreatedAt,
	}
}
