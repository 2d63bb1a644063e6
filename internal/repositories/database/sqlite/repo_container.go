package sqlite

import (
	portsrepo "github.com/SscSPs/finance_manager/internal/core/ports/repositories"
)

func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		StockRepo:       newSQLiteStockRepository(store),
		RecordRepo:      newSQLiteFinancialRecordRepository(store),
		CategoryRepo:    newSQLiteCategoryRepository(store),
		SettingsRepo:    newSQLiteSettingsRepository(store),
		MaintenanceRepo: newSQLiteMaintenanceRepository(store),
	}
}
