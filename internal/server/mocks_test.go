package server

import (
	"context"

	"vicinity/internal/config"
	"vicinity/internal/models"
	"vicinity/internal/repository"
	"vicinity/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Search(ctx context.Context, query string, limit, offset int) ([]models.User, error) {
	args := m.Called(ctx, query, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

type MockGraphRepository struct {
	mock.Mock
}

func (m *MockGraphRepository) Follow(ctx context.Context, followerID, followedID uint) error {
	args := m.Called(ctx, followerID, followedID)
	return args.Error(0)
}

func (m *MockGraphRepository) Unfollow(ctx context.Context, followerID, followedID uint) error {
	args := m.Called(ctx, followerID, followedID)
	return args.Error(0)
}

func (m *MockGraphRepository) IsFollowing(ctx context.Context, followerID, followedID uint) (bool, error) {
	args := m.Called(ctx, followerID, followedID)
	return args.Bool(0), args.Error(1)
}

func (m *MockGraphRepository) Followers(ctx context.Context, userID uint) ([]models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockGraphRepository) Following(ctx context.Context, userID uint) ([]models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockGraphRepository) CreateRequest(ctx context.Context, requesterID, requestedID uint) error {
	args := m.Called(ctx, requesterID, requestedID)
	return args.Error(0)
}

func (m *MockGraphRepository) HasPendingRequest(ctx context.Context, requesterID, requestedID uint) (bool, error) {
	args := m.Called(ctx, requesterID, requestedID)
	return args.Bool(0), args.Error(1)
}

func (m *MockGraphRepository) ReceivedRequests(ctx context.Context, requestedID uint) ([]models.FollowRequest, error) {
	args := m.Called(ctx, requestedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FollowRequest), args.Error(1)
}

func (m *MockGraphRepository) SentRequests(ctx context.Context, requesterID uint) ([]models.FollowRequest, error) {
	args := m.Called(ctx, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FollowRequest), args.Error(1)
}

func (m *MockGraphRepository) AcceptRequest(ctx context.Context, acceptorID, requesterID uint) error {
	args := m.Called(ctx, acceptorID, requesterID)
	return args.Error(0)
}

func (m *MockGraphRepository) DeclineRequest(ctx context.Context, acceptorID, requesterID uint) error {
	args := m.Called(ctx, acceptorID, requesterID)
	return args.Error(0)
}

func (m *MockGraphRepository) JoinGroup(ctx context.Context, userID, groupID uint) error {
	args := m.Called(ctx, userID, groupID)
	return args.Error(0)
}

func (m *MockGraphRepository) LeaveGroup(ctx context.Context, userID, groupID uint) error {
	args := m.Called(ctx, userID, groupID)
	return args.Error(0)
}

func (m *MockGraphRepository) IsMember(ctx context.Context, userID, groupID uint) (bool, error) {
	args := m.Called(ctx, userID, groupID)
	return args.Bool(0), args.Error(1)
}

func (m *MockGraphRepository) Members(ctx context.Context, groupID uint) ([]models.User, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

type MockGroupRepository struct {
	mock.Mock
}

func (m *MockGroupRepository) Create(ctx context.Context, group *models.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupRepository) GetByID(ctx context.Context, id uint) (*models.Group, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Group), args.Error(1)
}

func (m *MockGroupRepository) GetByName(ctx context.Context, name string) (*models.Group, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Group), args.Error(1)
}

func (m *MockGroupRepository) Search(ctx context.Context, query string, limit, offset int) ([]models.Group, error) {
	args := m.Called(ctx, query, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Group), args.Error(1)
}

func (m *MockGroupRepository) ListForUser(ctx context.Context, userID uint) ([]models.Group, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Group), args.Error(1)
}

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	args := m.Called(ctx, id, currentUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) PersonalByUser(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	args := m.Called(ctx, userID, limit, offset, currentUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *MockPostRepository) ByGroup(ctx context.Context, groupID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	args := m.Called(ctx, groupID, limit, offset, currentUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *MockPostRepository) Like(ctx context.Context, userID, postID uint) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *MockPostRepository) Unlike(ctx context.Context, userID, postID uint) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *MockPostRepository) LikeCount(ctx context.Context, postID uint) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Comment), args.Error(1)
}

// testDeps bundles the mocks behind a Server wired exactly like production.
type testDeps struct {
	userRepo    *MockUserRepository
	graphRepo   *MockGraphRepository
	groupRepo   *MockGroupRepository
	postRepo    *MockPostRepository
	commentRepo *MockCommentRepository
}

func newTestServer() (*Server, *testDeps) {
	deps := &testDeps{
		userRepo:    new(MockUserRepository),
		graphRepo:   new(MockGraphRepository),
		groupRepo:   new(MockGroupRepository),
		postRepo:    new(MockPostRepository),
		commentRepo: new(MockCommentRepository),
	}

	s := &Server{
		config: &config.Config{
			JWTSecret:   "test-secret",
			MaxUploadMB: 16,
			UploadDir:   "static/uploads",
		},
		userRepo:    deps.userRepo,
		graphRepo:   deps.graphRepo,
		groupRepo:   deps.groupRepo,
		postRepo:    deps.postRepo,
		commentRepo: deps.commentRepo,
	}
	s.visibility = service.NewVisibility(s.graphRepo)
	s.userService = service.NewUserService(s.userRepo)
	s.followService = service.NewFollowService(s.graphRepo, s.userRepo)
	s.groupService = service.NewGroupService(s.groupRepo, s.graphRepo)
	s.postService = service.NewPostService(s.postRepo, s.commentRepo, s.graphRepo, s.visibility)
	return s, deps
}

var _ repository.UserRepository = (*MockUserRepository)(nil)
var _ repository.GraphRepository = (*MockGraphRepository)(nil)
var _ repository.GroupRepository = (*MockGroupRepository)(nil)
var _ repository.PostRepository = (*MockPostRepository)(nil)
var _ repository.CommentRepository = (*MockCommentRepository)(nil)
