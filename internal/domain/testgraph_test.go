package domain

import "testing"

// backbone builds the documented structure map with the layout used by the
// embedded catalog, without going through YAML
func backbone(t *testing.T) *Graph {
	t.Helper()

	std := func(id NodeID, label string, x, y float64) Node {
		return Node{ID: id, Label: label, X: x, Y: y}
	}
	sat := func(id NodeID, label string, x, y float64) Node {
		return Node{ID: id, Label: label, Tier: TierSecondary, Class: ClassSatellite, X: x, Y: y}
	}
	edge := func(from, to NodeID, rel Relation, tier Tier, route RouteStrategy) Edge {
		return Edge{ID: EdgeID(string(from) + "-" + string(to)), From: from, To: to, Relation: rel, Tier: tier, Route: route}
	}

	notes := sat("notes", "注記・内訳", 118, 14)
	notes.H = 4

	def := Definition{
		Nodes: []Node{
			std("voucher", "伝票入力", 2, 13),
			std("ledger", "総勘定元帳", 30, 13),
			std("trial-balance", "合計残高試算表", 58, 13),
			std("balance-sheet", "貸借対照表", 88, 8),
			std("activity-statement", "活動計算書", 88, 20),
			sat("journal", "仕訳日記帳", 4, 4),
			sat("cashbook", "現預金出納帳", 4, 23),
			sat("subledger", "補助元帳", 54, 23),
			sat("inventory", "財産目録", 90, 1),
			notes,
		},
		Edges: []Edge{
			edge("voucher", "ledger", RelationRecord, TierPrimary, ""),
			edge("ledger", "trial-balance", RelationPeriodicAggregate, TierPrimary, ""),
			edge("trial-balance", "balance-sheet", RelationFinalize, TierPrimary, ""),
			edge("trial-balance", "activity-statement", RelationFinalize, TierPrimary, ""),
			edge("voucher", "journal", RelationLog, TierSecondary, RouteVerticalStack),
			edge("voucher", "cashbook", RelationDailyAggregate, TierSecondary, RouteVerticalStack),
			edge("ledger", "subledger", RelationDetail, TierSecondary, RouteOrthogonal),
			edge("balance-sheet", "inventory", RelationExtract, TierSecondary, RouteVerticalStack),
			{
				ID: "balance-sheet-notes", From: "balance-sheet", To: "notes",
				Relation: RelationSupplement, Tier: TierSecondary,
				Route: RouteGroupFrame, Frame: FrameFrom,
			},
		},
		Styles: map[Relation]Style{
			RelationRecord:            {Label: "記帳"},
			RelationPeriodicAggregate: {Label: "月次集計"},
			RelationFinalize:          {Label: "決算確定"},
			RelationExtract:           {Label: "抽出", Dashed: true},
			RelationDailyAggregate:    {Label: "日次集計", Dashed: true},
			RelationLog:               {Label: "記録", Dashed: true},
			RelationDetail:            {Label: "明細", Dashed: true},
			RelationSupplement:        {Label: "補足", Dashed: true},
		},
		Pairs: []Pair{{ID: "statements", A: "balance-sheet", B: "activity-statement", Label: "この2枚はセット"}},
		Secondary: map[NodeID]Secondary{
			"voucher":       {Nodes: []NodeID{"journal", "cashbook"}, Edges: []EdgeID{"voucher-journal", "voucher-cashbook"}},
			"ledger":        {Nodes: []NodeID{"subledger"}, Edges: []EdgeID{"ledger-subledger"}},
			"balance-sheet": {Nodes: []NodeID{"inventory", "notes"}, Edges: []EdgeID{"balance-sheet-inventory", "balance-sheet-notes"}},
		},
		Breakdowns: map[NodeID]Breakdown{
			"balance-sheet": {
				Title: "貸借対照表の内訳",
				Categories: []Category{
					{ID: "assets", Label: "資産", Links: []CrossLink{{Label: "財産目録", Focus: "balance-sheet", Select: "inventory"}}},
					{ID: "liabilities", Label: "負債"},
					{ID: "net-assets", Label: "純資産", Links: []CrossLink{
						{Label: "活動計算書", Focus: "activity-statement", Select: "activity-statement"},
						{Label: "注記", Focus: "balance-sheet", Select: "notes"},
					}},
				},
			},
		},
	}

	g, err := NewGraph(def)
	if err != nil {
		t.Fatalf("NewGraph failed: %v", err)
	}
	return g
}
