package repositories

// Provider bundles the repository implementations handed to the service
// container at wiring time.
type Provider struct {
	Report ReportRepositoryFacade
	Ledger LedgerRepositoryFacade
	Fund   FundReader
	Church ChurchReader
	User   UserReader
}
