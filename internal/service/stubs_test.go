package service

import (
	"context"

	"vicinity/internal/models"
)

type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	searchFn        func(context.Context, string, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Search(ctx context.Context, q string, limit, offset int) ([]models.User, error) {
	return s.searchFn(ctx, q, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:    func(context.Context, string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:        func(context.Context, *models.User) error { return nil },
		updateFn:        func(context.Context, *models.User) error { return nil },
		searchFn:        func(context.Context, string, int, int) ([]models.User, error) { return nil, nil },
	}
}

type graphRepoStub struct {
	followFn            func(context.Context, uint, uint) error
	unfollowFn          func(context.Context, uint, uint) error
	isFollowingFn       func(context.Context, uint, uint) (bool, error)
	followersFn         func(context.Context, uint) ([]models.User, error)
	followingFn         func(context.Context, uint) ([]models.User, error)
	createRequestFn     func(context.Context, uint, uint) error
	hasPendingRequestFn func(context.Context, uint, uint) (bool, error)
	receivedRequestsFn  func(context.Context, uint) ([]models.FollowRequest, error)
	sentRequestsFn      func(context.Context, uint) ([]models.FollowRequest, error)
	acceptRequestFn     func(context.Context, uint, uint) error
	declineRequestFn    func(context.Context, uint, uint) error
	joinGroupFn         func(context.Context, uint, uint) error
	leaveGroupFn        func(context.Context, uint, uint) error
	isMemberFn          func(context.Context, uint, uint) (bool, error)
	membersFn           func(context.Context, uint) ([]models.User, error)
}

func (s *graphRepoStub) Follow(ctx context.Context, followerID, followedID uint) error {
	return s.followFn(ctx, followerID, followedID)
}
func (s *graphRepoStub) Unfollow(ctx context.Context, followerID, followedID uint) error {
	return s.unfollowFn(ctx, followerID, followedID)
}
func (s *graphRepoStub) IsFollowing(ctx context.Context, followerID, followedID uint) (bool, error) {
	return s.isFollowingFn(ctx, followerID, followedID)
}
func (s *graphRepoStub) Followers(ctx context.Context, userID uint) ([]models.User, error) {
	return s.followersFn(ctx, userID)
}
func (s *graphRepoStub) Following(ctx context.Context, userID uint) ([]models.User, error) {
	return s.followingFn(ctx, userID)
}
func (s *graphRepoStub) CreateRequest(ctx context.Context, requesterID, requestedID uint) error {
	return s.createRequestFn(ctx, requesterID, requestedID)
}
func (s *graphRepoStub) HasPendingRequest(ctx context.Context, requesterID, requestedID uint) (bool, error) {
	return s.hasPendingRequestFn(ctx, requesterID, requestedID)
}
func (s *graphRepoStub) ReceivedRequests(ctx context.Context, requestedID uint) ([]models.FollowRequest, error) {
	return s.receivedRequestsFn(ctx, requestedID)
}
func (s *graphRepoStub) SentRequests(ctx context.Context, requesterID uint) ([]models.FollowRequest, error) {
	return s.sentRequestsFn(ctx, requesterID)
}
func (s *graphRepoStub) AcceptRequest(ctx context.Context, acceptorID, requesterID uint) error {
	return s.acceptRequestFn(ctx, acceptorID, requesterID)
}
func (s *graphRepoStub) DeclineRequest(ctx context.Context, acceptorID, requesterID uint) error {
	return s.declineRequestFn(ctx, acceptorID, requesterID)
}
func (s *graphRepoStub) JoinGroup(ctx context.Context, userID, groupID uint) error {
	return s.joinGroupFn(ctx, userID, groupID)
}
func (s *graphRepoStub) LeaveGroup(ctx context.Context, userID, groupID uint) error {
	return s.leaveGroupFn(ctx, userID, groupID)
}
func (s *graphRepoStub) IsMember(ctx context.Context, userID, groupID uint) (bool, error) {
	return s.isMemberFn(ctx, userID, groupID)
}
func (s *graphRepoStub) Members(ctx context.Context, groupID uint) ([]models.User, error) {
	return s.membersFn(ctx, groupID)
}

func noopGraphRepo() *graphRepoStub {
	return &graphRepoStub{
		followFn:            func(context.Context, uint, uint) error { return nil },
		unfollowFn:          func(context.Context, uint, uint) error { return nil },
		isFollowingFn:       func(context.Context, uint, uint) (bool, error) { return false, nil },
		followersFn:         func(context.Context, uint) ([]models.User, error) { return nil, nil },
		followingFn:         func(context.Context, uint) ([]models.User, error) { return nil, nil },
		createRequestFn:     func(context.Context, uint, uint) error { return nil },
		hasPendingRequestFn: func(context.Context, uint, uint) (bool, error) { return false, nil },
		receivedRequestsFn:  func(context.Context, uint) ([]models.FollowRequest, error) { return nil, nil },
		sentRequestsFn:      func(context.Context, uint) ([]models.FollowRequest, error) { return nil, nil },
		acceptRequestFn:     func(context.Context, uint, uint) error { return nil },
		declineRequestFn:    func(context.Context, uint, uint) error { return nil },
		joinGroupFn:         func(context.Context, uint, uint) error { return nil },
		leaveGroupFn:        func(context.Context, uint, uint) error { return nil },
		isMemberFn:          func(context.Context, uint, uint) (bool, error) { return false, nil },
		membersFn:           func(context.Context, uint) ([]models.User, error) { return nil, nil },
	}
}

type groupRepoStub struct {
	createFn      func(context.Context, *models.Group) error
	getByIDFn     func(context.Context, uint) (*models.Group, error)
	getByNameFn   func(context.Context, string) (*models.Group, error)
	searchFn      func(context.Context, string, int, int) ([]models.Group, error)
	listForUserFn func(context.Context, uint) ([]models.Group, error)
}

func (s *groupRepoStub) Create(ctx context.Context, group *models.Group) error {
	return s.createFn(ctx, group)
}
func (s *groupRepoStub) GetByID(ctx context.Context, id uint) (*models.Group, error) {
	return s.getByIDFn(ctx, id)
}
func (s *groupRepoStub) GetByName(ctx context.Context, name string) (*models.Group, error) {
	return s.getByNameFn(ctx, name)
}
func (s *groupRepoStub) Search(ctx context.Context, q string, limit, offset int) ([]models.Group, error) {
	return s.searchFn(ctx, q, limit, offset)
}
func (s *groupRepoStub) ListForUser(ctx context.Context, userID uint) ([]models.Group, error) {
	return s.listForUserFn(ctx, userID)
}

func noopGroupRepo() *groupRepoStub {
	return &groupRepoStub{
		createFn:      func(context.Context, *models.Group) error { return nil },
		getByIDFn:     func(context.Context, uint) (*models.Group, error) { return &models.Group{}, nil },
		getByNameFn:   func(context.Context, string) (*models.Group, error) { return nil, nil },
		searchFn:      func(context.Context, string, int, int) ([]models.Group, error) { return nil, nil },
		listForUserFn: func(context.Context, uint) ([]models.Group, error) { return nil, nil },
	}
}

type postRepoStub struct {
	createFn         func(context.Context, *models.Post) error
	getByIDFn        func(context.Context, uint, uint) (*models.Post, error)
	personalByUserFn func(context.Context, uint, int, int, uint) ([]*models.Post, error)
	byGroupFn        func(context.Context, uint, int, int, uint) ([]*models.Post, error)
	likeFn           func(context.Context, uint, uint) error
	unlikeFn         func(context.Context, uint, uint) error
	likeCountFn      func(context.Context, uint) (int64, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *postRepoStub) PersonalByUser(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.personalByUserFn(ctx, userID, limit, offset, currentUserID)
}
func (s *postRepoStub) ByGroup(ctx context.Context, groupID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.byGroupFn(ctx, groupID, limit, offset, currentUserID)
}
func (s *postRepoStub) Like(ctx context.Context, userID, postID uint) error {
	return s.likeFn(ctx, userID, postID)
}
func (s *postRepoStub) Unlike(ctx context.Context, userID, postID uint) error {
	return s.unlikeFn(ctx, userID, postID)
}
func (s *postRepoStub) LikeCount(ctx context.Context, postID uint) (int64, error) {
	return s.likeCountFn(ctx, postID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(context.Context, *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, id uint, _ uint) (*models.Post, error) {
			return &models.Post{ID: id}, nil
		},
		personalByUserFn: func(context.Context, uint, int, int, uint) ([]*models.Post, error) { return nil, nil },
		byGroupFn:        func(context.Context, uint, int, int, uint) ([]*models.Post, error) { return nil, nil },
		likeFn:           func(context.Context, uint, uint) error { return nil },
		unlikeFn:         func(context.Context, uint, uint) error { return nil },
		likeCountFn:      func(context.Context, uint) (int64, error) { return 0, nil },
	}
}

type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, uint) (*models.Comment, error)
	listByPostFn func(context.Context, uint) ([]*models.Comment, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:     func(context.Context, *models.Comment) error { return nil },
		getByIDFn:    func(_ context.Context, id uint) (*models.Comment, error) { return &models.Comment{ID: id}, nil },
		listByPostFn: func(context.Context, uint) ([]*models.Comment, error) { return nil, nil },
	}
}
