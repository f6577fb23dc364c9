package services

import (
	"context"
	"fmt"
	"time"

	"freelancehub/internal/models"
	"freelancehub/internal/repositories/interfaces"
	"freelancehub/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes. They reproduce the store contracts the
// services rely on: version-conditional review writes that fail with
// ErrConflict on a stale version, and the approve-once rule on bids.

type fakeReviewDoc struct {
	reviews      []models.Review
	version      int64
	ratings      float64
	numOfReviews int
}

type fakeReviewStore struct {
	docs map[primitive.ObjectID]*fakeReviewDoc

	// forcedConflicts fails that many ReplaceReviews calls up front,
	// bumping the stored version each time like a concurrent writer would.
	forcedConflicts int
	replaceCalls    int
}

func newFakeReviewStore() *fakeReviewStore {
	return &fakeReviewStore{docs: make(map[primitive.ObjectID]*fakeReviewDoc)}
}

func (s *fakeReviewStore) addDoc(id primitive.ObjectID) {
	s.docs[id] = &fakeReviewDoc{}
}

func (s *fakeReviewStore) ReviewSnapshot(ctx context.Context, parentID primitive.ObjectID) (*interfaces.ReviewSnapshot, error) {
	doc, ok := s.docs[parentID]
	if !ok {
		return nil, fmt.Errorf("document %s: %w", parentID.Hex(), utils.ErrNotFound)
	}

	reviews := make([]models.Review, len(doc.reviews))
	copy(reviews, doc.reviews)

	return &interfaces.ReviewSnapshot{
		ParentID: parentID,
		Reviews:  reviews,
		Version:  doc.version,
	}, nil
}

func (s *fakeReviewStore) ReplaceReviews(ctx context.Context, parentID primitive.ObjectID, version int64, reviews []models.Review, ratings float64, numOfReviews int) error {
	s.replaceCalls++

	doc, ok := s.docs[parentID]
	if !ok {
		return fmt.Errorf("document %s: %w", parentID.Hex(), utils.ErrNotFound)
	}

	if s.forcedConflicts > 0 {
		s.forcedConflicts--
		doc.version++
		return fmt.Errorf("stale version: %w", utils.ErrConflict)
	}

	if doc.version != version {
		return fmt.Errorf("stale version: %w", utils.ErrConflict)
	}

	doc.reviews = reviews
	doc.ratings = ratings
	doc.numOfReviews = numOfReviews
	doc.version++
	return nil
}

type fakeUserRepo struct {
	*fakeReviewStore
	users map[primitive.ObjectID]*models.User

	// updateErr, when set, fails every Update call.
	updateErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		fakeReviewStore: newFakeReviewStore(),
		users:           make(map[primitive.ObjectID]*models.User),
	}
}

func (r *fakeUserRepo) addUser(name string) *models.User {
	user := &models.User{
		ID:   primitive.NewObjectID(),
		Name: name,
		Role: models.UserRoleUser,
	}
	r.users[user.ID] = user
	r.addDoc(user.ID)
	return user
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	r.users[user.ID] = user
	r.addDoc(user.ID)
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", utils.MsgUserNotFound, utils.ErrNotFound)
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", utils.MsgUserNotFound, utils.ErrNotFound)
}

func (r *fakeUserRepo) GetByResetToken(ctx context.Context, tokenHash string) (*models.User, error) {
	now := time.Now()
	for _, user := range r.users {
		if user.ResetPasswordToken == tokenHash && user.ResetPasswordExpire != nil && user.ResetPasswordExpire.After(now) {
			return user, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", utils.MsgUserNotFound, utils.ErrNotFound)
}

func (r *fakeUserRepo) List(ctx context.Context, params *utils.PaginationParams) ([]*models.User, int64, error) {
	all := make([]*models.User, 0, len(r.users))
	for _, user := range r.users {
		all = append(all, user)
	}
	return all, int64(len(all)), nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := r.users[id]; !ok {
		return fmt.Errorf("%s: %w", utils.MsgUserNotFound, utils.ErrNotFound)
	}
	delete(r.users, id)
	delete(r.docs, id)
	return nil
}

func (r *fakeUserRepo) GetSummaries(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*models.UserSummary, error) {
	summaries := make(map[primitive.ObjectID]*models.UserSummary)
	for _, id := range ids {
		if user, ok := r.users[id]; ok {
			summaries[id] = user.Summary()
		}
	}
	return summaries, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	user, ok := r.users[id]
	if !ok {
		return fmt.Errorf("%s: %w", utils.MsgUserNotFound, utils.ErrNotFound)
	}
	applyUserUpdates(user, updates)
	return nil
}

func (r *fakeUserRepo) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	_, ok := r.users[id]
	return ok, nil
}

func applyUserUpdates(user *models.User, updates map[string]interface{}) {
	for key, value := range updates {
		switch key {
		case "name":
			user.Name = value.(string)
		case "email":
			user.Email = value.(string)
		case "password":
			user.Password = value.(string)
		case "avatar":
			user.Avatar = value.(string)
		case "country":
			user.Country = value.(string)
		case "professional_headline":
			user.ProfessionalHeadline = value.(string)
		case "account_no":
			user.AccountNo = value.(string)
		case "upi_id":
			user.UpiID = value.(string)
		case "role":
			user.Role = value.(models.UserRole)
		case "reset_password_token":
			user.ResetPasswordToken = value.(string)
		case "reset_password_expire":
			if value == nil {
				user.ResetPasswordExpire = nil
			} else {
				expire := value.(time.Time)
				user.ResetPasswordExpire = &expire
			}
		case "last_login_at":
			at := value.(time.Time)
			user.LastLoginAt = &at
		}
	}
}

type fakeEmail struct {
	to      string
	subject string
	body    string
}

type fakeEmailService struct {
	sent []fakeEmail

	// sendErr, when set, fails every SendEmail call.
	sendErr error
}

func (s *fakeEmailService) SendEmail(ctx context.Context, to, subject, body string) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sent = append(s.sent, fakeEmail{to: to, subject: subject, body: body})
	return nil
}

type fakeProjectRepo struct {
	*fakeReviewStore
	projects map[primitive.ObjectID]*models.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{
		fakeReviewStore: newFakeReviewStore(),
		projects:        make(map[primitive.ObjectID]*models.Project),
	}
}

func (r *fakeProjectRepo) addProject(title string) *models.Project {
	project := &models.Project{
		ID:    primitive.NewObjectID(),
		Title: title,
	}
	r.projects[project.ID] = project
	r.addDoc(project.ID)
	return project
}

func (r *fakeProjectRepo) Create(ctx context.Context, project *models.Project) error {
	project.ID = primitive.NewObjectID()
	r.projects[project.ID] = project
	r.addDoc(project.ID)
	return nil
}

func (r *fakeProjectRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	project, ok := r.projects[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", utils.MsgProjectNotFound, utils.ErrNotFound)
	}
	return project, nil
}

func (r *fakeProjectRepo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.Project, error) {
	found := make([]*models.Project, 0, len(ids))
	for _, id := range ids {
		if project, ok := r.projects[id]; ok {
			found = append(found, project)
		}
	}
	return found, nil
}

func (r *fakeProjectRepo) List(ctx context.Context, filter *interfaces.ProjectFilter, params *utils.PaginationParams) ([]*models.Project, int64, error) {
	all, _ := r.ListAll(ctx)
	return all, int64(len(all)), nil
}

func (r *fakeProjectRepo) ListAll(ctx context.Context) ([]*models.Project, error) {
	all := make([]*models.Project, 0, len(r.projects))
	for _, project := range r.projects {
		all = append(all, project)
	}
	return all, nil
}

func (r *fakeProjectRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	if _, ok := r.projects[id]; !ok {
		return fmt.Errorf("%s: %w", utils.MsgProjectNotFound, utils.ErrNotFound)
	}
	return nil
}

func (r *fakeProjectRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := r.projects[id]; !ok {
		return fmt.Errorf("%s: %w", utils.MsgProjectNotFound, utils.ErrNotFound)
	}
	delete(r.projects, id)
	return nil
}

type fakeBidRepo struct {
	bids map[primitive.ObjectID]*models.Bid
}

func newFakeBidRepo() *fakeBidRepo {
	return &fakeBidRepo{bids: make(map[primitive.ObjectID]*models.Bid)}
}

func (r *fakeBidRepo) Create(ctx context.Context, bid *models.Bid) error {
	bid.ID = primitive.NewObjectID()
	bid.CreatedAt = time.Now()
	r.bids[bid.ID] = bid
	return nil
}

func (r *fakeBidRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Bid, error) {
	bid, ok := r.bids[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", utils.MsgBidNotFound, utils.ErrNotFound)
	}
	return bid, nil
}

func (r *fakeBidRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Bid, error) {
	bids := make([]*models.Bid, 0)
	for _, bid := range r.bids {
		if bid.User == userID {
			bids = append(bids, bid)
		}
	}
	return bids, nil
}

func (r *fakeBidRepo) GetAll(ctx context.Context) ([]*models.Bid, error) {
	bids := make([]*models.Bid, 0, len(r.bids))
	for _, bid := range r.bids {
		bids = append(bids, bid)
	}
	return bids, nil
}

func (r *fakeBidRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.BidResponse, approvedAt *time.Time) error {
	bid, ok := r.bids[id]
	if !ok {
		return fmt.Errorf("%s: %w", utils.MsgBidNotFound, utils.ErrNotFound)
	}

	if status == models.BidResponseApproved && bid.Response == models.BidResponseApproved {
		return fmt.Errorf("bid is already approved: %w", utils.ErrConflict)
	}

	bid.Response = status
	if approvedAt != nil {
		bid.ApprovedAt = approvedAt
	}
	return nil
}

func (r *fakeBidRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := r.bids[id]; !ok {
		return fmt.Errorf("%s: %w", utils.MsgBidNotFound, utils.ErrNotFound)
	}
	delete(r.bids, id)
	return nil
}

type fakeEarningRepo struct {
	earnings []*models.Earning
}

func newFakeEarningRepo() *fakeEarningRepo {
	return &fakeEarningRepo{}
}

func (r *fakeEarningRepo) Create(ctx context.Context, earning *models.Earning) error {
	earning.ID = primitive.NewObjectID()
	earning.ReceivedAt = time.Now()
	r.earnings = append(r.earnings, earning)
	return nil
}

func (r *fakeEarningRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Earning, error) {
	var result []*models.Earning
	for _, earning := range r.earnings {
		if earning.User == userID {
			result = append(result, earning)
		}
	}
	return result, nil
}

func (r *fakeEarningRepo) GetAll(ctx context.Context) ([]*models.Earning, error) {
	return r.earnings, nil
}

func (r *fakeEarningRepo) TotalByUserID(ctx context.Context, userID primitive.ObjectID) (float64, error) {
	total := 0.0
	for _, earning := range r.earnings {
		if earning.User == userID {
			total += earning.Amount
		}
	}
	return total, nil
}

func (r *fakeEarningRepo) TotalAll(ctx context.Context) (float64, error) {
	total := 0.0
	for _, earning := range r.earnings {
		total += earning.Amount
	}
	return total, nil
}
