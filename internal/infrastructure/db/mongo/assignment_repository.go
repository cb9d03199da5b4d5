package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/SKH-TMS/tms-api/internal/core/domain"
)

const assignmentsCollection = "assigned_project_logs"

type AssignmentRepository struct {
	coll *mongo.Collection
}

func NewAssignmentRepository(db *mongo.Database) *AssignmentRepository {
	return &AssignmentRepository{coll: db.Collection(assignmentsCollection)}
}

// Insert appends a ledger entry. The unique project_id index makes this the
// authoritative already-assigned check.
func (r *AssignmentRepository) Insert(ctx context.Context, log *domain.AssignedProjectLog) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, log)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrProjectAlreadyAssigned
		}
		return fmt.Errorf("insert assignment log: %w", err)
	}
	return nil
}

// FindByProjectID retrieves the assignment for a project. A project without
// a ledger entry yields domain.ErrProjectNotAssigned.
func (r *AssignmentRepository) FindByProjectID(ctx context.Context, projectID string) (*domain.AssignedProjectLog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var log domain.AssignedProjectLog
	err := r.coll.FindOne(ctx, bson.M{"project_id": projectID}).Decode(&log)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProjectNotAssigned
		}
		return nil, err
	}
	return &log, nil
}

// List returns every ledger entry.
func (r *AssignmentRepository) List(ctx context.Context) ([]*domain.AssignedProjectLog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var logs []*domain.AssignedProjectLog
	if err := cur.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// EnsureIndexes creates the unique project_id index enforcing
// at-most-one-assignment-per-project at the store level.
func (r *AssignmentRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "project_id", Value: 1}},
		Options: uniqueIndex(),
	})
	return err
}
