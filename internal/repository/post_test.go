package repository

import (
	"context"
	"testing"

	"vicinity/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPost(t *testing.T, repo PostRepository, userID uint, groupID *uint, content string) *models.Post {
	t.Helper()
	post := &models.Post{Content: content, UserID: userID, GroupID: groupID}
	require.NoError(t, repo.Create(context.Background(), post))
	return post
}

func TestLikeIsIdempotentAndCountsAreDerived(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "ada")
	liker := createTestUser(t, db, "brin")
	post := createTestPost(t, repo, author.ID, nil, "hello")

	require.NoError(t, repo.Like(ctx, liker.ID, post.ID))
	require.NoError(t, repo.Like(ctx, liker.ID, post.ID))

	count, err := repo.LikeCount(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	got, err := repo.GetByID(ctx, post.ID, liker.ID)
	require.NoError(t, err)
	assert.True(t, got.Liked)

	require.NoError(t, repo.Unlike(ctx, liker.ID, post.ID))
	require.NoError(t, repo.Unlike(ctx, liker.ID, post.ID))

	count, err = repo.LikeCount(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	got, err = repo.GetByID(ctx, post.ID, liker.ID)
	require.NoError(t, err)
	assert.False(t, got.Liked)
}

func TestGetByIDAttachesDerivedCounters(t *testing.T) {
	db := setupTestDB(t)
	posts := NewPostRepository(db)
	comments := NewCommentRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "ada")
	viewer := createTestUser(t, db, "brin")
	other := createTestUser(t, db, "cleo")
	post := createTestPost(t, posts, author.ID, nil, "hello")

	require.NoError(t, posts.Like(ctx, viewer.ID, post.ID))
	require.NoError(t, posts.Like(ctx, other.ID, post.ID))
	require.NoError(t, comments.Create(ctx, &models.Comment{
		Content: "nice", UserID: other.ID, PostID: post.ID,
	}))

	got, err := posts.GetByID(ctx, post.ID, viewer.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.LikesCount)
	assert.Equal(t, 1, got.CommentsCount)
	assert.True(t, got.Liked)
	assert.Equal(t, "ada", got.User.Username)

	// A viewer who has not liked the post sees liked=false with the same counts.
	got, err = posts.GetByID(ctx, post.ID, author.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.LikesCount)
	assert.False(t, got.Liked)
}

func TestGetByIDMissingPost(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	_, err := repo.GetByID(context.Background(), 9999, 0)
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestPersonalByUserExcludesGroupPosts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "ada")
	group := createTestGroup(t, db, "gophers", author.ID)

	createTestPost(t, repo, author.ID, nil, "personal one")
	createTestPost(t, repo, author.ID, nil, "personal two")
	createTestPost(t, repo, author.ID, &group.ID, "group only")

	posts, err := repo.PersonalByUser(ctx, author.ID, 20, 0, 0)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	for _, p := range posts {
		assert.Nil(t, p.GroupID)
	}

	grouped, err := repo.ByGroup(ctx, group.ID, 20, 0, 0)
	require.NoError(t, err)
	require.Len(t, grouped, 1)
	assert.Equal(t, "group only", grouped[0].Content)
}

func TestCommentListOrderedOldestFirst(t *testing.T) {
	db := setupTestDB(t)
	posts := NewPostRepository(db)
	comments := NewCommentRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "ada")
	post := createTestPost(t, posts, author.ID, nil, "hello")

	for _, content := range []string{"first", "second", "third"} {
		require.NoError(t, comments.Create(ctx, &models.Comment{
			Content: content, UserID: author.ID, PostID: post.ID,
		}))
	}

	list, err := comments.ListByPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "first", list[0].Content)
	assert.Equal(t, "third", list[2].Content)

	got, err := posts.GetByID(ctx, post.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, got.CommentsCount)
}
