package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"socialfeed-api/models"
)

func TestCreateCommentIncrementsCounter(t *testing.T) {
	db := openTestDB(t)
	repo := NewCommentRepository(db)

	author := seedUser(t, db, "u1", "author_one")
	seedPost(t, db, "p1", author.ID, time.Now())

	require.NoError(t, repo.Create(&models.Comment{
		ID:       "c1",
		PostID:   "p1",
		AuthorID: author.ID,
		Content:  "first!",
	}))

	var post models.Post
	require.NoError(t, db.First(&post, "id = ?", "p1").Error)
	assert.Equal(t, 1, post.CommentsCount)

	var comment models.Comment
	require.NoError(t, db.First(&comment, "id = ?", "c1").Error)
	assert.Nil(t, comment.EditedAt, "no operation ever edits a comment")
}

func TestCreateCommentUnknownPostRollsBack(t *testing.T) {
	db := openTestDB(t)
	repo := NewCommentRepository(db)

	author := seedUser(t, db, "u1", "author_one")

	err := repo.Create(&models.Comment{
		ID:       "c1",
		PostID:   "missing",
		AuthorID: author.ID,
		Content:  "into the void",
	})
	require.Error(t, err, "foreign-key enforcement rejects the orphan comment")

	var count int64
	require.NoError(t, db.Model(&models.Comment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetCommentsNewestFirstWithAuthor(t *testing.T) {
	db := openTestDB(t)
	repo := NewCommentRepository(db)

	author := seedUser(t, db, "u1", "author_one")
	replier := seedUser(t, db, "u2", "replier")
	seedPost(t, db, "p1", author.ID, time.Now())
	seedPost(t, db, "p2", author.ID, time.Now())

	now := time.Now()
	for i, tc := range []struct {
		id     string
		author string
		age    time.Duration
	}{
		{"c-oldest", author.ID, 2 * time.Hour},
		{"c-middle", replier.ID, time.Hour},
		{"c-newest", replier.ID, 0},
	} {
		comment := models.Comment{
			ID:        tc.id,
			PostID:    "p1",
			AuthorID:  tc.author,
			Content:   "comment " + tc.id,
			CreatedAt: now.Add(-tc.age),
		}
		require.NoError(t, db.Create(&comment).Error, "fixture %d", i)
	}
	// A comment on another post must not leak into the result.
	require.NoError(t, db.Create(&models.Comment{
		ID: "c-other", PostID: "p2", AuthorID: replier.ID, Content: "elsewhere",
	}).Error)

	comments, err := repo.GetForPost("p1")
	require.NoError(t, err)
	require.Len(t, comments, 3)

	assert.Equal(t, "c-newest", comments[0].ID)
	assert.Equal(t, "c-middle", comments[1].ID)
	assert.Equal(t, "c-oldest", comments[2].ID)
	assert.Equal(t, "replier", comments[0].Username)
	assert.Equal(t, "author_one", comments[2].Username)
}
