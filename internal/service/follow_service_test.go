package service

import (
	"context"
	"testing"
)

func TestFollowServiceSendRequestSelf(t *testing.T) {
	svc := NewFollowService(noopGraphRepo(), noopUserRepo())
	err := svc.SendRequest(context.Background(), 3, 3)
	expectAppError(t, err, "FORBIDDEN")
}

func TestFollowServiceSendRequestAlreadyFollowing(t *testing.T) {
	repo := noopGraphRepo()
	repo.isFollowingFn = func(context.Context, uint, uint) (bool, error) { return true, nil }
	repo.createRequestFn = func(context.Context, uint, uint) error {
		t.Fatal("no request should be created when already following")
		return nil
	}

	svc := NewFollowService(repo, noopUserRepo())
	err := svc.SendRequest(context.Background(), 1, 2)
	expectAppError(t, err, "VALIDATION_ERROR")
}

func TestFollowServiceSendRequestAlreadyPending(t *testing.T) {
	repo := noopGraphRepo()
	repo.hasPendingRequestFn = func(context.Context, uint, uint) (bool, error) { return true, nil }

	svc := NewFollowService(repo, noopUserRepo())
	err := svc.SendRequest(context.Background(), 1, 2)
	expectAppError(t, err, "VALIDATION_ERROR")
}

func TestFollowServiceSendRequestRecordsPair(t *testing.T) {
	repo := noopGraphRepo()
	var gotRequester, gotRequested uint
	repo.createRequestFn = func(_ context.Context, requesterID, requestedID uint) error {
		gotRequester, gotRequested = requesterID, requestedID
		return nil
	}

	svc := NewFollowService(repo, noopUserRepo())
	if err := svc.SendRequest(context.Background(), 1, 2); err != nil {
		t.Fatalf("send request failed: %v", err)
	}
	if gotRequester != 1 || gotRequested != 2 {
		t.Fatalf("request recorded as %d→%d, want 1→2", gotRequester, gotRequested)
	}
}

func TestFollowServiceAcceptPassesAcceptorFirst(t *testing.T) {
	repo := noopGraphRepo()
	var gotAcceptor, gotRequester uint
	repo.acceptRequestFn = func(_ context.Context, acceptorID, requesterID uint) error {
		gotAcceptor, gotRequester = acceptorID, requesterID
		return nil
	}

	svc := NewFollowService(repo, noopUserRepo())
	if err := svc.AcceptRequest(context.Background(), 2, 1); err != nil {
		t.Fatalf("accept failed: %v", err)
	}
	if gotAcceptor != 2 || gotRequester != 1 {
		t.Fatalf("accept recorded as acceptor=%d requester=%d, want 2 and 1", gotAcceptor, gotRequester)
	}
}

func TestFollowServiceUnfollowSelf(t *testing.T) {
	svc := NewFollowService(noopGraphRepo(), noopUserRepo())
	err := svc.Unfollow(context.Background(), 4, 4)
	expectAppError(t, err, "FORBIDDEN")
}
