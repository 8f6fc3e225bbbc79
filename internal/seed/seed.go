// Package seed provides helpers to create demo data for development and
// testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"vicinity/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Options configures a seeding run.
type Options struct {
	NumUsers    int
	NumGroups   int
	NumPosts    int
	ShouldClean bool
}

// SeedPassword is the shared plaintext password of every seeded account.
const SeedPassword = "Password1"

// Seeder populates the database with a realistic social mesh.
type Seeder struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewSeeder returns a Seeder bound to the given DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Seed creates users, a follow mesh, groups with members, and posts with
// likes and comments.
func (s *Seeder) Seed(opts Options) error {
	log.Printf("seeding %d users, %d groups, %d posts", opts.NumUsers, opts.NumGroups, opts.NumPosts)

	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return fmt.Errorf("cleanup failed: %w", err)
		}
	}

	users, err := s.createUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("create users: %w", err)
	}

	if err := s.createFollowMesh(users); err != nil {
		return fmt.Errorf("create follow mesh: %w", err)
	}

	groups, err := s.createGroups(users, opts.NumGroups)
	if err != nil {
		return fmt.Errorf("create groups: %w", err)
	}

	if err := s.createPosts(users, groups, opts.NumPosts); err != nil {
		return fmt.Errorf("create posts: %w", err)
	}

	log.Println("seeding completed")
	return nil
}

// ClearAll removes all seeded rows, children first.
func (s *Seeder) ClearAll() error {
	tables := []string{
		"likes", "comments", "posts",
		"group_memberships", "groups",
		"follow_requests", "follow_edges",
		"users",
	}
	for _, table := range tables {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) createUsers(n int) ([]*models.User, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user := &models.User{
			Username: fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
			Email:    gofakeit.Email(),
			Password: string(digest),
			Bio:      gofakeit.Sentence(10),
		}
		if err := s.db.Create(user).Error; err != nil {
			// Collisions from gofakeit's username pool are retried once
			// with a wider suffix.
			user.Username = fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(10000, 99999))
			user.Email = gofakeit.Email()
			if err := s.db.Create(user).Error; err != nil {
				return nil, err
			}
		}
		users = append(users, user)
	}
	return users, nil
}

// createFollowMesh gives every user a handful of accepted followers and a
// few still-pending requests.
func (s *Seeder) createFollowMesh(users []*models.User) error {
	if len(users) < 2 {
		return nil
	}

	for _, user := range users {
		numFollows := s.rand.Intn(5) + 1
		for i := 0; i < numFollows; i++ {
			target := users[s.rand.Intn(len(users))]
			if target.ID == user.ID {
				continue
			}
			edge := models.FollowEdge{FollowerID: user.ID, FollowedID: target.ID}
			if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&edge).Error; err != nil {
				return err
			}
		}

		if s.rand.Intn(3) == 0 {
			target := users[s.rand.Intn(len(users))]
			if target.ID == user.ID {
				continue
			}
			req := models.FollowRequest{RequesterID: user.ID, RequestedID: target.ID}
			if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&req).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Seeder) createGroups(users []*models.User, n int) ([]*models.Group, error) {
	if len(users) == 0 {
		return nil, nil
	}

	groups := make([]*models.Group, 0, n)
	for i := 0; i < n; i++ {
		creator := users[s.rand.Intn(len(users))]
		group := &models.Group{
			Name:        fmt.Sprintf("%s %s %d", gofakeit.HackerAdjective(), gofakeit.HackerNoun(), gofakeit.Number(1, 9999)),
			Description: gofakeit.Sentence(12),
			CreatorID:   creator.ID,
		}
		if err := s.db.Create(group).Error; err != nil {
			return nil, err
		}

		// Creator plus a few random members.
		memberIDs := map[uint]bool{creator.ID: true}
		numMembers := s.rand.Intn(len(users)/2+1) + 1
		for j := 0; j < numMembers; j++ {
			memberIDs[users[s.rand.Intn(len(users))].ID] = true
		}
		for userID := range memberIDs {
			membership := models.GroupMembership{GroupID: group.ID, UserID: userID}
			if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&membership).Error; err != nil {
				return nil, err
			}
		}
		groups = append(groups, group)
	}
	return groups, nil
}

func (s *Seeder) createPosts(users []*models.User, groups []*models.Group, n int) error {
	if len(users) == 0 {
		return nil
	}

	for i := 0; i < n; i++ {
		author := users[s.rand.Intn(len(users))]
		post := &models.Post{
			Content: gofakeit.Paragraph(1, 3, 8, "\n"),
			UserID:  author.ID,
			CreatedAt: time.Now().Add(
				-time.Duration(s.rand.Intn(90*24)) * time.Hour),
		}

		// Roughly a third of posts land in groups the author belongs to.
		if len(groups) > 0 && s.rand.Intn(3) == 0 {
			group := groups[s.rand.Intn(len(groups))]
			var member int64
			if err := s.db.Model(&models.GroupMembership{}).
				Where("group_id = ? AND user_id = ?", group.ID, author.ID).
				Count(&member).Error; err != nil {
				return err
			}
			if member > 0 {
				post.GroupID = &group.ID
			}
		}

		if err := s.db.Create(post).Error; err != nil {
			return err
		}

		if err := s.addEngagement(users, post); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) addEngagement(users []*models.User, post *models.Post) error {
	numLikes := s.rand.Intn(6)
	for i := 0; i < numLikes; i++ {
		like := models.Like{UserID: users[s.rand.Intn(len(users))].ID, PostID: post.ID}
		if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error; err != nil {
			return err
		}
	}

	numComments := s.rand.Intn(4)
	for i := 0; i < numComments; i++ {
		comment := models.Comment{
			Content: gofakeit.Sentence(8),
			UserID:  users[s.rand.Intn(len(users))].ID,
			PostID:  post.ID,
		}
		if err := s.db.Create(&comment).Error; err != nil {
			return err
		}
	}
	return nil
}
