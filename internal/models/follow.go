package models

import "time"

// FollowEdge is a directed follower relationship. Its existence means the
// follower's view includes the followed user's personal posts.
// The (follower, followed) pair is unique at the storage layer so concurrent
// check-then-act sequences cannot create duplicate edges.
type FollowEdge struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null;uniqueIndex:idx_follow_pair" json:"follower_id"`
	FollowedID uint      `gorm:"not null;uniqueIndex:idx_follow_pair;index" json:"followed_id"`
	CreatedAt  time.Time `json:"created_at"`

	Follower User `gorm:"foreignKey:FollowerID" json:"follower,omitempty"`
	Followed User `gorm:"foreignKey:FollowedID" json:"followed,omitempty"`
}

// TableName specifies the table name for GORM.
func (FollowEdge) TableName() string {
	return "follow_edges"
}

// FollowRequest is a pending, unconfirmed follow awaiting accept/decline by
// the requested user. Accepting removes the request and creates the
// requester→requested edge in one transaction.
type FollowRequest struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RequesterID uint      `gorm:"not null;uniqueIndex:idx_request_pair" json:"requester_id"`
	RequestedID uint      `gorm:"not null;uniqueIndex:idx_request_pair;index" json:"requested_id"`
	CreatedAt   time.Time `json:"created_at"`

	Requester User `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	Requested User `gorm:"foreignKey:RequestedID" json:"requested,omitempty"`
}

// TableName specifies the table name for GORM.
func (FollowRequest) TableName() string {
	return "follow_requests"
}
