package repoargs

type RepositoryName string

const (
	PaymentRepoName   RepositoryName = "payment"
	OrderRepoName     RepositoryName = "order"
	CatalogRepoName   RepositoryName = "catalog"
	AnalyticsRepoName RepositoryName = "analytics"
)
