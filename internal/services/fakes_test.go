package services_test

import (
	"context"
	"fmt"
	"time"

	"github.com/rafabene/poemario-backend/internal/domain/entities"
	"github.com/rafabene/poemario-backend/internal/domain/ports"
	"github.com/rafabene/poemario-backend/internal/domain/repositories"
)

// Fakes em memória para os testes de serviço. Todos usam mapas simples; os
// testes rodam em série, então não há sincronização.

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}

func (l nopLogger) With(...any) ports.Logger { return l }

type fakeUOW struct{}

func (fakeUOW) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (fakeUOW) Commit(context.Context) error                       { return nil }
func (fakeUOW) Rollback(context.Context) error                     { return nil }
func (fakeUOW) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

type recordingPublisher struct {
	events []ports.Event
}

func (r *recordingPublisher) Publish(event ports.Event) {
	r.events = append(r.events, event)
}

type fakeUserRepo struct {
	users map[string]*entities.User
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entities.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entities.User) error {
	r.seq++
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", r.seq)
	}
	user.CreatedAt = time.Now().UTC()
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*entities.User, error) {
	if u, ok := r.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email.String() == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entities.User) error {
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, _ repositories.Pagination) ([]*entities.User, error) {
	out := make([]*entities.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type fakePoemRepo struct {
	poems map[string]*entities.Poem
	seq   int
}

func newFakePoemRepo() *fakePoemRepo {
	return &fakePoemRepo{poems: make(map[string]*entities.Poem)}
}

func (r *fakePoemRepo) Create(_ context.Context, poem *entities.Poem) error {
	r.seq++
	if poem.ID == "" {
		poem.ID = fmt.Sprintf("poem-%d", r.seq)
	}
	poem.CreatedAt = time.Now().UTC()
	clone := *poem
	r.poems[poem.ID] = &clone
	return nil
}

func (r *fakePoemRepo) FindByID(_ context.Context, id string) (*entities.Poem, error) {
	if p, ok := r.poems[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, nil
}

func (r *fakePoemRepo) Update(_ context.Context, poem *entities.Poem) error {
	clone := *poem
	r.poems[poem.ID] = &clone
	return nil
}

func (r *fakePoemRepo) Delete(_ context.Context, id string) error {
	delete(r.poems, id)
	return nil
}

func (r *fakePoemRepo) List(_ context.Context, _ repositories.Pagination) ([]*entities.Poem, error) {
	out := make([]*entities.Poem, 0, len(r.poems))
	for _, p := range r.poems {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakePoemRepo) ListAll(ctx context.Context) ([]*entities.Poem, error) {
	return r.List(ctx, repositories.Pagination{})
}

func (r *fakePoemRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.poems)), nil
}

func (r *fakePoemRepo) ListByAuthor(_ context.Context, authorID string, _ repositories.Pagination) ([]*entities.Poem, error) {
	var out []*entities.Poem
	for _, p := range r.poems {
		if p.AuthorID == authorID {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakePoemRepo) CountByAuthor(_ context.Context, authorID string) (int64, error) {
	var n int64
	for _, p := range r.poems {
		if p.AuthorID == authorID {
			n++
		}
	}
	return n, nil
}

func (r *fakePoemRepo) ListPublishedByAuthor(_ context.Context, authorID string) ([]*entities.Poem, error) {
	var out []*entities.Poem
	for _, p := range r.poems {
		if p.AuthorID == authorID && p.IsPublished() {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

type fakeVoteRepo struct {
	votes map[string]*entities.FeatherVote
	seq   int
}

func newFakeVoteRepo() *fakeVoteRepo {
	return &fakeVoteRepo{votes: make(map[string]*entities.FeatherVote)}
}

func (r *fakeVoteRepo) Create(_ context.Context, vote *entities.FeatherVote) error {
	r.seq++
	if vote.ID == "" {
		vote.ID = fmt.Sprintf("vote-%d", r.seq)
	}
	vote.CreatedAt = time.Now().UTC()
	vote.UpdatedAt = vote.CreatedAt
	clone := *vote
	r.votes[vote.ID] = &clone
	return nil
}

func (r *fakeVoteRepo) FindByID(_ context.Context, id string) (*entities.FeatherVote, error) {
	if v, ok := r.votes[id]; ok {
		clone := *v
		return &clone, nil
	}
	return nil, nil
}

func (r *fakeVoteRepo) FindByVoterAndPoem(_ context.Context, voterID, poemID string) (*entities.FeatherVote, error) {
	for _, v := range r.votes {
		if v.VoterID == voterID && v.PoemID == poemID {
			clone := *v
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeVoteRepo) Update(_ context.Context, vote *entities.FeatherVote) error {
	vote.UpdatedAt = time.Now().UTC()
	clone := *vote
	r.votes[vote.ID] = &clone
	return nil
}

func (r *fakeVoteRepo) Delete(_ context.Context, id string) error {
	delete(r.votes, id)
	return nil
}

func (r *fakeVoteRepo) List(_ context.Context, _ repositories.Pagination) ([]*entities.FeatherVote, error) {
	out := make([]*entities.FeatherVote, 0, len(r.votes))
	for _, v := range r.votes {
		clone := *v
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeVoteRepo) ListAll(ctx context.Context) ([]*entities.FeatherVote, error) {
	return r.List(ctx, repositories.Pagination{})
}

func (r *fakeVoteRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.votes)), nil
}

func (r *fakeVoteRepo) ListByPoem(ctx context.Context, poemID string, _ repositories.Pagination) ([]*entities.FeatherVote, error) {
	return r.ListAllByPoem(ctx, poemID)
}

func (r *fakeVoteRepo) ListAllByPoem(_ context.Context, poemID string) ([]*entities.FeatherVote, error) {
	var out []*entities.FeatherVote
	for _, v := range r.votes {
		if v.PoemID == poemID {
			clone := *v
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeVoteRepo) CountByPoem(_ context.Context, poemID string) (int64, error) {
	var n int64
	for _, v := range r.votes {
		if v.PoemID == poemID {
			n++
		}
	}
	return n, nil
}

func (r *fakeVoteRepo) ListByVoter(_ context.Context, voterID string, _ repositories.Pagination) ([]*entities.FeatherVote, error) {
	var out []*entities.FeatherVote
	for _, v := range r.votes {
		if v.VoterID == voterID {
			clone := *v
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeVoteRepo) ListAllByVoter(ctx context.Context, voterID string) ([]*entities.FeatherVote, error) {
	return r.ListByVoter(ctx, voterID, repositories.Pagination{})
}

func (r *fakeVoteRepo) CountByVoter(_ context.Context, voterID string) (int64, error) {
	var n int64
	for _, v := range r.votes {
		if v.VoterID == voterID {
			n++
		}
	}
	return n, nil
}

type fakeTotemRepo struct {
	totems map[string]*entities.Totem
	users  *fakeUserRepo
	seq    int
}

func newFakeTotemRepo(users *fakeUserRepo) *fakeTotemRepo {
	return &fakeTotemRepo{totems: make(map[string]*entities.Totem), users: users}
}

func (r *fakeTotemRepo) Create(_ context.Context, totem *entities.Totem) error {
	r.seq++
	if totem.ID == "" {
		totem.ID = fmt.Sprintf("totem-%d", r.seq)
	}
	clone := *totem
	r.totems[totem.ID] = &clone
	return nil
}

func (r *fakeTotemRepo) FindByID(_ context.Context, id string) (*entities.Totem, error) {
	if t, ok := r.totems[id]; ok {
		clone := *t
		return &clone, nil
	}
	return nil, nil
}

func (r *fakeTotemRepo) FindByKey(_ context.Context, key string) (*entities.Totem, error) {
	for _, t := range r.totems {
		if t.Key == key {
			clone := *t
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeTotemRepo) Update(_ context.Context, totem *entities.Totem) error {
	clone := *totem
	r.totems[totem.ID] = &clone
	return nil
}

func (r *fakeTotemRepo) Delete(_ context.Context, id string) error {
	delete(r.totems, id)
	return nil
}

func (r *fakeTotemRepo) List(_ context.Context) ([]*entities.Totem, error) {
	out := make([]*entities.Totem, 0, len(r.totems))
	for _, t := range r.totems {
		clone := *t
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeTotemRepo) CountUsers(_ context.Context, totemID string) (int64, error) {
	var n int64
	for _, u := range r.users.users {
		if u.TotemID != nil && *u.TotemID == totemID {
			n++
		}
	}
	return n, nil
}

type fakeRewardRepo struct {
	rewards map[string]*entities.Reward
	grants  map[string]*entities.UserReward
	seq     int
}

func newFakeRewardRepo() *fakeRewardRepo {
	return &fakeRewardRepo{
		rewards: make(map[string]*entities.Reward),
		grants:  make(map[string]*entities.UserReward),
	}
}

func grantKey(userID, rewardID string) string {
	return userID + "/" + rewardID
}

func (r *fakeRewardRepo) Create(_ context.Context, reward *entities.Reward) error {
	r.seq++
	if reward.ID == "" {
		reward.ID = fmt.Sprintf("reward-%d", r.seq)
	}
	clone := *reward
	r.rewards[reward.ID] = &clone
	return nil
}

func (r *fakeRewardRepo) FindByID(_ context.Context, id string) (*entities.Reward, error) {
	if rw, ok := r.rewards[id]; ok {
		clone := *rw
		return &clone, nil
	}
	return nil, nil
}

func (r *fakeRewardRepo) FindByName(_ context.Context, name string) (*entities.Reward, error) {
	for _, rw := range r.rewards {
		if rw.Name == name {
			clone := *rw
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeRewardRepo) Update(_ context.Context, reward *entities.Reward) error {
	clone := *reward
	r.rewards[reward.ID] = &clone
	return nil
}

func (r *fakeRewardRepo) Delete(_ context.Context, id string) error {
	delete(r.rewards, id)
	return nil
}

func (r *fakeRewardRepo) List(_ context.Context) ([]*entities.Reward, error) {
	out := make([]*entities.Reward, 0, len(r.rewards))
	for _, rw := range r.rewards {
		clone := *rw
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeRewardRepo) Grant(_ context.Context, link *entities.UserReward) error {
	r.seq++
	if link.ID == "" {
		link.ID = fmt.Sprintf("grant-%d", r.seq)
	}
	if link.GrantedAt.IsZero() {
		link.GrantedAt = time.Now().UTC()
	}
	clone := *link
	r.grants[grantKey(link.UserID, link.RewardID)] = &clone
	return nil
}

func (r *fakeRewardRepo) Revoke(_ context.Context, userID, rewardID string) error {
	delete(r.grants, grantKey(userID, rewardID))
	return nil
}

func (r *fakeRewardRepo) FindGrant(_ context.Context, userID, rewardID string) (*entities.UserReward, error) {
	if g, ok := r.grants[grantKey(userID, rewardID)]; ok {
		clone := *g
		return &clone, nil
	}
	return nil, nil
}

func (r *fakeRewardRepo) ListGrantsByUser(_ context.Context, userID string) ([]*entities.UserReward, error) {
	var out []*entities.UserReward
	for _, g := range r.grants {
		if g.UserID == userID {
			clone := *g
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeRewardRepo) CountGrantsByUser(_ context.Context, userID string) (int64, error) {
	var n int64
	for _, g := range r.grants {
		if g.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *fakeRewardRepo) CountGrantsByReward(_ context.Context, rewardID string) (int64, error) {
	var n int64
	for _, g := range r.grants {
		if g.RewardID == rewardID {
			n++
		}
	}
	return n, nil
}
