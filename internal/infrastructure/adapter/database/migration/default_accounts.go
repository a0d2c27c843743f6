package migration

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
)

// AccountSeeder is the account store the default accounts are written to
type AccountSeeder interface {
	GetAccountByExternalKey(ctx context.Context, externalKey string, tenantRecordID int64) (*entity.Account, error)
	CreateAccount(ctx context.Context, account *entity.Account) (*entity.Account, error)
}

// DefaultTenantRecordID is the tenant the development accounts belong to
const DefaultTenantRecordID int64 = 1

// Default account external keys and currencies
var defaultAccounts = []struct {
	externalKey string
	currency    string
}{
	{externalKey: "dev-account-usd", currency: "USD"},
	{externalKey: "dev-account-eur", currency: "EUR"},
	{externalKey: "dev-account-jpy", currency: "JPY"},
}

// CreateDefaultAccounts creates the development accounts that do not exist yet
func CreateDefaultAccounts(ctx context.Context, store AccountSeeder) ([]*entity.Account, error) {
	accounts := make([]*entity.Account, 0, len(defaultAccounts))

	for _, def := range defaultAccounts {
		existing, err := store.GetAccountByExternalKey(ctx, def.externalKey, DefaultTenantRecordID)
		if err == nil {
			accounts = append(accounts, existing)
			continue
		}
		if !errors.Is(err, errs.ErrAccountNotFound) {
			return nil, err
		}

		created, err := store.CreateAccount(ctx, &entity.Account{
			ExternalKey:    def.externalKey,
			Currency:       def.currency,
			TenantRecordID: DefaultTenantRecordID,
		})
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, created)
	}

	return accounts, nil
}
