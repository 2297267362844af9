package impl

import (
	"context"
	"strings"
	"time"

	"rdapi/internal/domain"
	"rdapi/internal/dto"
	"rdapi/internal/service"
	"rdapi/internal/store"
)

var _ service.AddressBookService = (*AddressBookServiceImpl)(nil)

// AddressBookServiceImpl is plain record storage behind the token guard; it
// talks to the concrete store directly.
type AddressBookServiceImpl struct {
	store *store.Store

	now   func() time.Time
	newID func() string
}

func NewAddressBookServiceImpl(st *store.Store) *AddressBookServiceImpl {
	return &AddressBookServiceImpl{
		store: st,
		now:   time.Now,
		newID: domain.NewID,
	}
}

func (s *AddressBookServiceImpl) Get(ctx context.Context, accountID domain.AccountID) (*dto.AddressBook, error) {
	out := &dto.AddressBook{Tags: []string{}, TagColors: "{}", Peers: []dto.AddressBookPeer{}}

	err := s.store.WithTx(ctx, func(tx *store.Store) error {
		ts, err := tx.AddressBooks().GetTagSet(ctx, accountID)
		if err != nil && !isNotFound(err) {
			return err
		}
		if ts != nil {
			out.Tags = splitTags(ts.Tags)
			if ts.TagColors != "" {
				out.TagColors = ts.TagColors
			}
		}

		peers, err := tx.AddressBooks().ListPeers(ctx, accountID)
		if err != nil {
			return err
		}
		for _, p := range peers {
			out.Peers = append(out.Peers, dto.AddressBookPeer{
				ID:       p.Peer,
				Username: p.Username,
				Hostname: p.Hostname,
				Platform: p.Platform,
				Hash:     p.Hash,
				Alias:    p.Alias,
				Tags:     splitTags(p.Tags),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *AddressBookServiceImpl) Replace(ctx context.Context, accountID domain.AccountID, ab dto.AddressBook) error {
	now := s.now().UnixMilli()
	return s.store.WithTx(ctx, func(tx *store.Store) error {
		colors := ab.TagColors
		if colors == "" {
			colors = "{}"
		}
		if err := tx.AddressBooks().UpsertTagSet(ctx, &domain.TagSet{
			ID:        s.newID(),
			AccountID: accountID,
			Tags:      strings.Join(ab.Tags, ","),
			TagColors: colors,
			CreatedAt: now,
		}); err != nil {
			return err
		}

		peers := make([]*domain.AddressBookPeer, 0, len(ab.Peers))
		for _, p := range ab.Peers {
			peers = append(peers, &domain.AddressBookPeer{
				ID:        s.newID(),
				AccountID: accountID,
				Peer:      p.ID,
				Username:  p.Username,
				Hostname:  p.Hostname,
				Platform:  p.Platform,
				Hash:      p.Hash,
				Alias:     p.Alias,
				Tags:      strings.Join(p.Tags, ","),
				CreatedAt: now,
			})
		}
		return tx.AddressBooks().ReplacePeers(ctx, accountID, peers)
	})
}

func splitTags(csv string) []string {
	out := []string{}
	for _, t := range strings.Split(csv, ",") {
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
