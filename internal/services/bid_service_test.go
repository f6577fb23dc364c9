package services

import (
	"context"
	"testing"

	"freelancehub/internal/models"
	"freelancehub/internal/utils"
	"freelancehub/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newBidServiceForTest() (BidService, *fakeBidRepo, *fakeProjectRepo, *fakeUserRepo) {
	bidRepo := newFakeBidRepo()
	projectRepo := newFakeProjectRepo()
	userRepo := newFakeUserRepo()
	service := NewBidService(bidRepo, projectRepo, userRepo, logger.NewNopLogger())
	return service, bidRepo, projectRepo, userRepo
}

func TestCreateBidStartsPending(t *testing.T) {
	service, bidRepo, projectRepo, userRepo := newBidServiceForTest()
	ctx := context.Background()

	bidder := userRepo.addUser("dave")
	project := projectRepo.addProject("shop backend")

	details, err := service.CreateBid(ctx, bidder.ID, &CreateBidRequest{
		Proposal:  "I can deliver this in two weeks",
		BidsItems: []string{project.ID.Hex()},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if details.Bid.Response != models.BidResponsePending {
		t.Fatalf("new bid must start Pending, got %s", details.Bid.Response)
	}
	if details.Bid.ApprovedAt != nil {
		t.Fatal("new bid must not carry an approval timestamp")
	}
	if details.User == nil || details.User.ID != bidder.ID {
		t.Fatalf("bidder not resolved: %+v", details.User)
	}
	if len(details.Projects) != 1 || details.Projects[0].ID != project.ID {
		t.Fatalf("projects not resolved: %+v", details.Projects)
	}

	stored, err := bidRepo.GetByID(ctx, details.Bid.ID)
	if err != nil {
		t.Fatalf("bid not persisted: %v", err)
	}
	if stored.Response != models.BidResponsePending {
		t.Fatalf("persisted bid must be Pending, got %s", stored.Response)
	}
}

func TestCreateBidValidation(t *testing.T) {
	service, _, projectRepo, userRepo := newBidServiceForTest()
	ctx := context.Background()

	bidder := userRepo.addUser("dave")
	project := projectRepo.addProject("shop backend")

	cases := []struct {
		name    string
		request *CreateBidRequest
	}{
		{"empty proposal", &CreateBidRequest{BidsItems: []string{project.ID.Hex()}}},
		{"no projects", &CreateBidRequest{Proposal: "hi"}},
		{"malformed project id", &CreateBidRequest{Proposal: "hi", BidsItems: []string{"not-an-id"}}},
	}

	for _, tc := range cases {
		if _, err := service.CreateBid(ctx, bidder.ID, tc.request); !utils.IsInvalidInput(err) {
			t.Fatalf("%s: expected invalid input, got %v", tc.name, err)
		}
	}
}

func TestCreateBidUnknownProject(t *testing.T) {
	service, _, _, userRepo := newBidServiceForTest()
	ctx := context.Background()

	bidder := userRepo.addUser("dave")

	_, err := service.CreateBid(ctx, bidder.ID, &CreateBidRequest{
		Proposal:  "hi",
		BidsItems: []string{primitive.NewObjectID().Hex()},
	})
	if !utils.IsNotFound(err) {
		t.Fatalf("expected not found for unknown project, got %v", err)
	}
}

func TestApproveBidStampsTimestamp(t *testing.T) {
	service, bidRepo, projectRepo, userRepo := newBidServiceForTest()
	ctx := context.Background()

	bidder := userRepo.addUser("dave")
	admin := userRepo.addUser("admin")
	project := projectRepo.addProject("shop backend")

	details, err := service.CreateBid(ctx, bidder.ID, &CreateBidRequest{
		Proposal:  "hi",
		BidsItems: []string{project.ID.Hex()},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := service.TransitionStatus(ctx, details.Bid.ID, "Approved", admin.ID); err != nil {
		t.Fatalf("approval failed: %v", err)
	}

	bid, _ := bidRepo.GetByID(ctx, details.Bid.ID)
	if bid.Response != models.BidResponseApproved {
		t.Fatalf("expected Approved, got %s", bid.Response)
	}
	if bid.ApprovedAt == nil {
		t.Fatal("approval must stamp the approval timestamp")
	}
}

func TestDoubleApprovalConflicts(t *testing.T) {
	service, bidRepo, projectRepo, userRepo := newBidServiceForTest()
	ctx := context.Background()

	bidder := userRepo.addUser("dave")
	admin := userRepo.addUser("admin")
	project := projectRepo.addProject("shop backend")

	details, err := service.CreateBid(ctx, bidder.ID, &CreateBidRequest{
		Proposal:  "hi",
		BidsItems: []string{project.ID.Hex()},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := service.TransitionStatus(ctx, details.Bid.ID, "Approved", admin.ID); err != nil {
		t.Fatalf("first approval failed: %v", err)
	}
	firstApproval := *mustGetBid(t, bidRepo, details.Bid.ID).ApprovedAt

	err = service.TransitionStatus(ctx, details.Bid.ID, "Approved", admin.ID)
	if !utils.IsConflict(err) {
		t.Fatalf("second approval must conflict, got %v", err)
	}

	bid := mustGetBid(t, bidRepo, details.Bid.ID)
	if bid.Response != models.BidResponseApproved {
		t.Fatalf("state must stay Approved, got %s", bid.Response)
	}
	if !bid.ApprovedAt.Equal(firstApproval) {
		t.Fatal("failed re-approval must not move the approval timestamp")
	}
}

func TestApprovedBidCanStillBeRejected(t *testing.T) {
	service, bidRepo, projectRepo, userRepo := newBidServiceForTest()
	ctx := context.Background()

	bidder := userRepo.addUser("dave")
	admin := userRepo.addUser("admin")
	project := projectRepo.addProject("shop backend")

	details, err := service.CreateBid(ctx, bidder.ID, &CreateBidRequest{
		Proposal:  "hi",
		BidsItems: []string{project.ID.Hex()},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := service.TransitionStatus(ctx, details.Bid.ID, "Approved", admin.ID); err != nil {
		t.Fatalf("approval failed: %v", err)
	}
	if err := service.TransitionStatus(ctx, details.Bid.ID, "Rejected", admin.ID); err != nil {
		t.Fatalf("rejection after approval must be allowed: %v", err)
	}

	if bid := mustGetBid(t, bidRepo, details.Bid.ID); bid.Response != models.BidResponseRejected {
		t.Fatalf("expected Rejected, got %s", bid.Response)
	}
}

func TestInvalidStatusLeavesBidUntouched(t *testing.T) {
	service, bidRepo, projectRepo, userRepo := newBidServiceForTest()
	ctx := context.Background()

	bidder := userRepo.addUser("dave")
	admin := userRepo.addUser("admin")
	project := projectRepo.addProject("shop backend")

	details, err := service.CreateBid(ctx, bidder.ID, &CreateBidRequest{
		Proposal:  "hi",
		BidsItems: []string{project.ID.Hex()},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	for _, status := range []string{"Completed", "approved", ""} {
		err := service.TransitionStatus(ctx, details.Bid.ID, status, admin.ID)
		if !utils.IsInvalidInput(err) {
			t.Fatalf("status %q: expected invalid input, got %v", status, err)
		}
	}

	bid := mustGetBid(t, bidRepo, details.Bid.ID)
	if bid.Response != models.BidResponsePending || bid.ApprovedAt != nil {
		t.Fatalf("bid must stay untouched, got %s / %v", bid.Response, bid.ApprovedAt)
	}
}

func TestTransitionStatusUnknownBid(t *testing.T) {
	service, _, _, userRepo := newBidServiceForTest()
	ctx := context.Background()

	admin := userRepo.addUser("admin")

	err := service.TransitionStatus(ctx, primitive.NewObjectID(), "Approved", admin.ID)
	if !utils.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteBidLeavesEarningsAlone(t *testing.T) {
	bidRepo := newFakeBidRepo()
	projectRepo := newFakeProjectRepo()
	userRepo := newFakeUserRepo()
	earningRepo := newFakeEarningRepo()
	bidService := NewBidService(bidRepo, projectRepo, userRepo, logger.NewNopLogger())
	earningService := NewEarningService(earningRepo, userRepo, logger.NewNopLogger())
	ctx := context.Background()

	bidder := userRepo.addUser("dave")
	admin := userRepo.addUser("admin")
	project := projectRepo.addProject("shop backend")

	details, err := bidService.CreateBid(ctx, bidder.ID, &CreateBidRequest{
		Proposal:  "hi",
		BidsItems: []string{project.ID.Hex()},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := earningService.RecordEarning(ctx, &RecordEarningRequest{
		UserID: bidder.ID.Hex(),
		Amount: 250,
	}); err != nil {
		t.Fatalf("earning failed: %v", err)
	}

	if err := bidService.DeleteBid(ctx, details.Bid.ID, admin.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	summary, err := earningService.GetUserEarnings(ctx, bidder.ID)
	if err != nil {
		t.Fatalf("earnings lookup failed: %v", err)
	}
	if summary.TotalAmount != 250 {
		t.Fatalf("deleting a bid must not reverse payouts, total %v", summary.TotalAmount)
	}
}

func mustGetBid(t *testing.T, repo *fakeBidRepo, id primitive.ObjectID) *models.Bid {
	t.Helper()
	bid, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("bid lookup failed: %v", err)
	}
	return bid
}
