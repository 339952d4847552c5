// README: Static navigation path table, the single authority on legal routes.
package ai

// NavigationPaths maps a functional-area label to its client route. The
// table is injected into the classifier prompt and checked again at
// dispatch time, so a hallucinated path can never reach the client.
var NavigationPaths = map[string]string{
	"列表找房":      "/TenantHome/browse",
	"地圖找房":      "/TenantHome/map",
	"我的收藏":      "/TenantHome/favorites",
	"預約記錄":      "/TenantHome/reservations",
	"簽署合約":      "/TenantHome/contracts",
	"租屋管理":      "/TenantHome/living",
	"修改個人資料/密碼": "/TenantHome/profile",
}

// ValidNavigationPath reports whether path appears in NavigationPaths.
func ValidNavigationPath(path string) bool {
	for _, p := range NavigationPaths {
		if p == path {
			return true
		}
	}
	return false
}
