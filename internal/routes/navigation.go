package routes

import "strings"

type (
	NavItem struct {
		Title  string
		Path   string
		Icon   string
		Active bool
	}

	NavGroup struct {
		Label string
		Items []NavItem
	}
)

var navGroups = []NavGroup{
	{
		Items: []NavItem{
			{Title: "Overview", Path: "/dashboard", Icon: "home"},
			{Title: "Investments", Path: "/dashboard/investments", Icon: "pie-chart"},
			{Title: "Transactions", Path: "/dashboard/transactions", Icon: "credit-card"},
			{Title: "Analytics", Path: "/dashboard/analytics", Icon: "bar-chart"},
			{Title: "Wallets", Path: "/dashboard/wallets", Icon: "wallet"},
		},
	},
	{
		Label: "Features",
		Items: []NavItem{
			{Title: "AI Recommendations", Path: "/dashboard/ai-recommendations", Icon: "sparkles"},
			{Title: "Risk Analysis", Path: "/dashboard/risk-analysis", Icon: "shield"},
			{Title: "Goals", Path: "/dashboard/goals", Icon: "target"},
			{Title: "Community", Path: "/dashboard/community", Icon: "users"},
			{Title: "Global Markets", Path: "/dashboard/global", Icon: "globe"},
		},
	},
	{
		Label: "Settings",
		Items: []NavItem{
			{Title: "Settings", Path: "/dashboard/settings", Icon: "settings"},
			{Title: "Profile", Path: "/dashboard/profile", Icon: "user"},
		},
	},
}

// Navigation returns the sidebar groups with Active set on the item whose
// path equals currentPath. A trailing slash is ignored.
func Navigation(currentPath string) []NavGroup {
	current := strings.TrimSuffix(currentPath, "/")
	out := make([]NavGroup, len(navGroups))
	for i, g := range navGroups {
		items := make([]NavItem, len(g.Items))
		for j, it := range g.Items {
			it.Active = it.Path == current
			items[j] = it
		}
		out[i] = NavGroup{Label: g.Label, Items: items}
	}
	return out
}
