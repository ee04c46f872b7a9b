package repoargs

// OwnerCatalogStats количество бизнесов владельца и назначенных им продуктов.
type OwnerCatalogStats struct {
	BusinessCount        int
	AssignedProductCount int
}
