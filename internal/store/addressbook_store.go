package store

import (
	"context"

	"rdapi/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AddressBookStore struct{ db *gorm.DB }

func (s *Store) AddressBooks() *AddressBookStore { return &AddressBookStore{db: s.DB} }

func (ab *AddressBookStore) GetTagSet(ctx context.Context, accountID domain.AccountID) (*domain.TagSet, error) {
	var ts domain.TagSet
	if err := ab.db.WithContext(ctx).First(&ts, "account_id = ?", accountID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &ts, nil
}

// UpsertTagSet keeps the one-row-per-account invariant via the unique index
// on account_id.
func (ab *AddressBookStore) UpsertTagSet(ctx context.Context, ts *domain.TagSet) error {
	if ts.ID == "" {
		ts.ID = domain.NewID()
	}
	return ab.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "account_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"tags", "tag_colors", "created_at"}),
	}).Create(ts).Error
}

func (ab *AddressBookStore) ListPeers(ctx context.Context, accountID domain.AccountID) ([]*domain.AddressBookPeer, error) {
	var peers []*domain.AddressBookPeer
	if err := ab.db.WithContext(ctx).Where("account_id = ?", accountID).Find(&peers).Error; err != nil {
		return nil, err
	}
	return peers, nil
}

// ReplacePeers clears the account's saved contacts and writes the new list.
// Callers wrap this in WithTx together with the tag upsert.
func (ab *AddressBookStore) ReplacePeers(ctx context.Context, accountID domain.AccountID, peers []*domain.AddressBookPeer) error {
	if err := ab.db.WithContext(ctx).Delete(&domain.AddressBookPeer{}, "account_id = ?", accountID).Error; err != nil {
		return err
	}
	for _, p := range peers {
		if p.ID == "" {
			p.ID = domain.NewID()
		}
		if err := ab.db.WithContext(ctx).Create(p).Error; err != nil {
			return err
		}
	}
	return nil
}

func (ab *AddressBookStore) DeleteForAccount(ctx context.Context, accountID domain.AccountID) error {
	if err := ab.db.WithContext(ctx).Delete(&domain.TagSet{}, "account_id = ?", accountID).Error; err != nil {
		return err
	}
	return ab.db.WithContext(ctx).Delete(&domain.AddressBookPeer{}, "account_id = ?", accountID).Error
}
