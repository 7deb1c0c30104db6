package services

// ServiceContainer bundles the service facades handed to the HTTP layer at
// wiring time.
type ServiceContainer struct {
	Report     ReportSvcFacade
	Fund       FundSvcFacade
	Auth       AuthSvcFacade
	Authorizer AuthorizerSvc
}
