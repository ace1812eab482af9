package repository

import (
	"context"
	"fmt"
	"time"

	"ecotutor/internal/core"
	"ecotutor/internal/database/client"
	"ecotutor/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(mongoClient *client.MongoClient) *UserRepository {
	repository := &UserRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBEcotutor)).Collection(string(core.MongoCollectionUsers)),
	}
	// 啟動時建立常用索引（冪等、存在即跳過）
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *UserRepository) ensureIndexes(contextValue context.Context) error {
	indexModels := []mongo.IndexModel{
		{ // username 是登入主鍵，必須唯一
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetName("idx_username_unique").SetUnique(true),
		},
		{ // 依建立時間倒序查列表
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_createdAt_desc"),
		},
	}
	_, _ = repository.collection.Indexes().CreateMany(contextValue, indexModels)
	return nil
}

// Create：單文件插入。username 撞唯一索引時回傳 mongo duplicate key error，由上游轉譯。
func (repository *UserRepository) Create(
	contextValue context.Context,
	user *model.User,
) (_ *model.User, returnedError error) {

	nowUTC := time.Now().UTC()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.CreatedAt = nowUTC
	user.UpdatedAt = nowUTC

	insertResult, insertError := repository.collection.InsertOne(contextValue, user)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	user.ID = objectID
	return user, nil
}

// GetByUsername：單文件讀取（登入／session 驗證用）
func (repository *UserRepository) GetByUsername(
	contextValue context.Context,
	username string,
) (_ *model.User, returnedError error) {

	var user model.User
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"username": username}).Decode(&user); returnedError != nil {
		return nil, returnedError
	}
	return &user, nil
}

// UpdateLastSeen：單文件部分更新
func (repository *UserRepository) UpdateLastSeen(
	contextValue context.Context,
	username string,
	lastSeenTime time.Time,
) (_ int64, returnedError error) {

	update := bson.M{"$set": bson.M{"lastSeen": lastSeenTime.UTC()}}
	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"username": username}, withUpdatedAt(update))
	if updateError != nil {
		return 0, updateError
	}
	return result.MatchedCount, nil
}

// UpdateStatus：封鎖／軟刪除帳號
func (repository *UserRepository) UpdateStatus(
	contextValue context.Context,
	username string,
	status core.Status,
) (_ int64, returnedError error) {

	update := bson.M{"$set": bson.M{"status": status}}
	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"username": username}, withUpdatedAt(update))
	if updateError != nil {
		return 0, updateError
	}
	return result.MatchedCount, nil
}

// IsDuplicateKey 判斷是否為唯一索引衝突（註冊撞名）
func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
