package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/njrexim/cms-api/internal/core/domain"
)

type MongoUserRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(usersCollection), now: time.Now}
}

type mongoUser struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty"`
	Name                string             `bson:"name"`
	Email               string             `bson:"email"`
	PasswordHash        string             `bson:"password,omitempty"`
	Role                string             `bson:"role"`
	IsInvited           bool               `bson:"is_invited"`
	ResetPasswordToken  *string            `bson:"reset_password_token,omitempty"`
	ResetPasswordExpire *time.Time         `bson:"reset_password_expire,omitempty"`
	InvitationToken     *string            `bson:"invitation_token,omitempty"`
	InvitationExpires   *time.Time         `bson:"invitation_expires,omitempty"`
	CreatedAt           time.Time          `bson:"created_at"`
	UpdatedAt           time.Time          `bson:"updated_at"`
}

// tokenFields returns the stored hash and expiry field names for kind.
func tokenFields(kind domain.RecoveryKind) (hashField, expiryField string, err error) {
	switch kind {
	case domain.RecoveryReset:
		return "reset_password_token", "reset_password_expire", nil
	case domain.RecoveryInvite:
		return "invitation_token", "invitation_expires", nil
	default:
		return "", "", fmt.Errorf("unknown recovery kind %d", kind)
	}
}

var withoutPassword = bson.D{{Key: "password", Value: 0}}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := r.now().UTC()
	doc := mongoUser{
		ID:           primitive.NewObjectID(),
		Name:         user.Name,
		Email:        domain.NormalizeEmail(user.Email),
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		IsInvited:    user.IsInvited,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": domain.NormalizeEmail(email)})
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid}, options.FindOne().SetProjection(withoutPassword))
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M, opts ...*options.FindOneOptions) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.coll.FindOne(ctx, filter, opts...).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *MongoUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetProjection(withoutPassword).
		SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	users := make([]*domain.User, 0)
	for cur.Next(ctx) {
		var mu mongoUser
		if err := cur.Decode(&mu); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, mu.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *MongoUserRepository) Exists(ctx context.Context) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("probe users: %w", err)
	}
	return n > 0, nil
}

func (r *MongoUserRepository) CountByRole(ctx context.Context, role domain.Role) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"role": string(role)})
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (r *MongoUserRepository) Update(ctx context.Context, id string, changes domain.UserChanges) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.findAndUpdate(ctx, bson.M{"_id": oid}, r.changeSet(changes), nil)
}

func (r *MongoUserRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *MongoUserRepository) SetRecoveryToken(ctx context.Context, id string, kind domain.RecoveryKind, token *domain.RecoveryToken) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}
	hashField, expiryField, err := tokenFields(kind)
	if err != nil {
		return err
	}

	var update bson.M
	if token == nil {
		update = bson.M{
			"$unset": bson.M{hashField: "", expiryField: ""},
			"$set":   bson.M{"updated_at": r.now().UTC()},
		}
	} else {
		update = bson.M{"$set": bson.M{
			hashField:    token.Hash,
			expiryField:  token.ExpiresAt.UTC(),
			"updated_at": r.now().UTC(),
		}}
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("set %s token: %w", kind, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *MongoUserRepository) FindByRecoveryToken(ctx context.Context, kind domain.RecoveryKind, hash string, now time.Time) (*domain.User, error) {
	filter, err := recoveryFilter(kind, hash, now)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, filter, options.FindOne().SetProjection(withoutPassword))
}

// ConsumeRecoveryToken matches on hash and unexpired expiry in the update
// filter, so two concurrent consumers cannot both succeed.
func (r *MongoUserRepository) ConsumeRecoveryToken(ctx context.Context, kind domain.RecoveryKind, hash string, now time.Time, changes domain.UserChanges) (*domain.User, error) {
	filter, err := recoveryFilter(kind, hash, now)
	if err != nil {
		return nil, err
	}
	hashField, expiryField, _ := tokenFields(kind)

	user, err := r.findAndUpdate(ctx, filter, r.changeSet(changes), bson.M{hashField: "", expiryField: ""})
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidOrExpiredToken
	}
	return user, err
}

func recoveryFilter(kind domain.RecoveryKind, hash string, now time.Time) (bson.M, error) {
	hashField, expiryField, err := tokenFields(kind)
	if err != nil {
		return nil, err
	}
	return bson.M{
		hashField:   hash,
		expiryField: bson.M{"$gt": now.UTC()},
	}, nil
}

func (r *MongoUserRepository) changeSet(c domain.UserChanges) bson.M {
	set := bson.M{"updated_at": r.now().UTC()}
	if c.Name != nil {
		set["name"] = *c.Name
	}
	if c.Email != nil {
		set["email"] = domain.NormalizeEmail(*c.Email)
	}
	if c.PasswordHash != nil {
		set["password"] = *c.PasswordHash
	}
	if c.Role != nil {
		set["role"] = string(*c.Role)
	}
	if c.IsInvited != nil {
		set["is_invited"] = *c.IsInvited
	}
	return set
}

func (r *MongoUserRepository) findAndUpdate(ctx context.Context, filter, set, unset bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(withoutPassword)

	var mu mongoUser
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&mu); err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, domain.ErrUserNotFound
		case mongo.IsDuplicateKeyError(err):
			return nil, domain.ErrEmailTaken
		default:
			return nil, fmt.Errorf("update user: %w", err)
		}
	}
	return mu.toDomain(), nil
}

func (mu mongoUser) toDomain() *domain.User {
	u := &domain.User{
		ID:           mu.ID.Hex(),
		Name:         mu.Name,
		Email:        mu.Email,
		PasswordHash: mu.PasswordHash,
		Role:         domain.Role(mu.Role),
		IsInvited:    mu.IsInvited,
		CreatedAt:    mu.CreatedAt,
		UpdatedAt:    mu.UpdatedAt,
	}
	if mu.ResetPasswordToken != nil && mu.ResetPasswordExpire != nil {
		u.Reset = &domain.RecoveryToken{Hash: *mu.ResetPasswordToken, ExpiresAt: *mu.ResetPasswordExpire}
	}
	if mu.InvitationToken != nil && mu.InvitationExpires != nil {
		u.Invite = &domain.RecoveryToken{Hash: *mu.InvitationToken, ExpiresAt: *mu.InvitationExpires}
	}
	return u
}
