package services

import (
	"context"
	"testing"

	"freelancehub/internal/utils"
	"freelancehub/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newEarningServiceForTest() (EarningService, *fakeEarningRepo, *fakeUserRepo) {
	earningRepo := newFakeEarningRepo()
	userRepo := newFakeUserRepo()
	service := NewEarningService(earningRepo, userRepo, logger.NewNopLogger())
	return service, earningRepo, userRepo
}

func TestRecordEarning(t *testing.T) {
	service, _, userRepo := newEarningServiceForTest()
	ctx := context.Background()

	dave := userRepo.addUser("dave")

	earning, err := service.RecordEarning(ctx, &RecordEarningRequest{
		UserID: dave.ID.Hex(),
		Amount: 120.50,
	})
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if earning.User != dave.ID || earning.Amount != 120.50 {
		t.Fatalf("unexpected earning: %+v", earning)
	}
	if earning.ReceivedAt.IsZero() {
		t.Fatal("earning must carry a received timestamp")
	}
}

func TestRecordEarningValidation(t *testing.T) {
	service, _, userRepo := newEarningServiceForTest()
	ctx := context.Background()

	dave := userRepo.addUser("dave")

	for _, amount := range []float64{0, -10} {
		_, err := service.RecordEarning(ctx, &RecordEarningRequest{
			UserID: dave.ID.Hex(),
			Amount: amount,
		})
		if !utils.IsInvalidInput(err) {
			t.Fatalf("amount %v: expected invalid input, got %v", amount, err)
		}
	}

	_, err := service.RecordEarning(ctx, &RecordEarningRequest{
		UserID: "garbage",
		Amount: 10,
	})
	if !utils.IsInvalidInput(err) {
		t.Fatalf("expected invalid input for malformed user id, got %v", err)
	}

	_, err = service.RecordEarning(ctx, &RecordEarningRequest{
		UserID: primitive.NewObjectID().Hex(),
		Amount: 10,
	})
	if !utils.IsNotFound(err) {
		t.Fatalf("expected not found for unknown user, got %v", err)
	}
}

func TestEarningSummariesSum(t *testing.T) {
	service, _, userRepo := newEarningServiceForTest()
	ctx := context.Background()

	dave := userRepo.addUser("dave")
	erin := userRepo.addUser("erin")

	for _, row := range []struct {
		user   primitive.ObjectID
		amount float64
	}{{dave.ID, 100}, {dave.ID, 250.25}, {erin.ID, 80}} {
		if _, err := service.RecordEarning(ctx, &RecordEarningRequest{
			UserID: row.user.Hex(),
			Amount: row.amount,
		}); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	summary, err := service.GetUserEarnings(ctx, dave.ID)
	if err != nil {
		t.Fatalf("user summary failed: %v", err)
	}
	if len(summary.Earnings) != 2 || summary.TotalAmount != 350.25 {
		t.Fatalf("expected 2 rows / 350.25, got %d / %v", len(summary.Earnings), summary.TotalAmount)
	}

	all, err := service.GetAllEarnings(ctx)
	if err != nil {
		t.Fatalf("global summary failed: %v", err)
	}
	if len(all.Earnings) != 3 || all.TotalAmount != 430.25 {
		t.Fatalf("expected 3 rows / 430.25, got %d / %v", len(all.Earnings), all.TotalAmount)
	}
}

func TestEmptyEarningScopeSumsToZero(t *testing.T) {
	service, _, userRepo := newEarningServiceForTest()
	ctx := context.Background()

	dave := userRepo.addUser("dave")

	summary, err := service.GetUserEarnings(ctx, dave.ID)
	if err != nil {
		t.Fatalf("empty scope must not error: %v", err)
	}
	if summary.TotalAmount != 0 {
		t.Fatalf("expected total 0, got %v", summary.TotalAmount)
	}
	if summary.Earnings == nil || len(summary.Earnings) != 0 {
		t.Fatalf("expected empty slice, got %v", summary.Earnings)
	}

	all, err := service.GetAllEarnings(ctx)
	if err != nil {
		t.Fatalf("empty ledger must not error: %v", err)
	}
	if all.TotalAmount != 0 || len(all.Earnings) != 0 {
		t.Fatalf("expected empty ledger, got %+v", all)
	}
}
