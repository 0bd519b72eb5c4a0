package tabular

import (
	"context"

	"github.com/Yazidbusthomy27/KoperasiKita/internal/domain/member"
	"github.com/Yazidbusthomy27/KoperasiKita/internal/store"
)

type MemberRepository struct{ store *store.Adapter }

func NewMemberRepository(s *store.Adapter) *MemberRepository { return &MemberRepository{store: s} }

func (r *MemberRepository) List(ctx context.Context) ([]member.Member, error) {
	return readAll[member.Member](ctx, r.store, store.CollectionMembers)
}

func (r *MemberRepository) GetByID(ctx context.Context, id string) (*member.Member, error) {
	members, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range members {
		if members[i].ID == id {
			return &members[i], nil
		}
	}
	return nil, member.ErrNotFound
}

func (r *MemberRepository) Create(ctx context.Context, m *member.Member) error {
	return r.store.Write(ctx, store.OpCreate, store.CollectionMembers, m, "")
}

func (r *MemberRepository) Update(ctx context.Context, m *member.Member) error {
	return r.store.Write(ctx, store.OpUpdate, store.CollectionMembers, m, m.ID)
}
