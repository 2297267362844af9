package store

import (
	"context"

	"rdapi/internal/domain"

	"gorm.io/gorm"
)

// DeleteAccountData removes the account row plus its sessions, tag set and
// address-book peers in one transaction, and returns counts of affected
// resources captured before deletion. Devices are shared fleet records and
// stay untouched.
func (s *Store) DeleteAccountData(ctx context.Context, accountID domain.AccountID) (map[string]int64, error) {
	deleted := map[string]int64{}

	err := s.WithTx(ctx, func(tx *Store) error {
		db := tx.DB.WithContext(ctx)

		count := func(label string, query *gorm.DB) error {
			var total int64
			if err := query.Count(&total).Error; err != nil {
				return err
			}
			deleted[label] = total
			return nil
		}

		if err := count("accounts", db.Model(&domain.Account{}).Where("id = ?", accountID)); err != nil {
			return err
		}
		if err := count("sessions", db.Model(&domain.Session{}).Where("account_id = ?", accountID)); err != nil {
			return err
		}
		if err := count("tagSets", db.Model(&domain.TagSet{}).Where("account_id = ?", accountID)); err != nil {
			return err
		}
		if err := count("addressBookPeers", db.Model(&domain.AddressBookPeer{}).Where("account_id = ?", accountID)); err != nil {
			return err
		}

		if _, err := tx.Sessions().DeleteForAccount(ctx, accountID); err != nil {
			return err
		}
		if err := tx.AddressBooks().DeleteForAccount(ctx, accountID); err != nil {
			return err
		}

		return db.Delete(&domain.Account{}, "id = ?", accountID).Error
	})

	return deleted, err
}
